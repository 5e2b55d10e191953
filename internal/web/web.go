// Package web は公開サイトと管理画面の HTML ページを描画する。
// テンプレートはバイナリに埋め込み、起動時に一度だけパースする
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
	"github.com/targetgroup/backend/pkg/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

// mdRenderer escapes raw HTML in markdown input (WithUnsafe is not set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// Pages は公開ページの表示データを組み立てる（service.PageService が実装）
type Pages interface {
	Home(ctx context.Context) *model.HomePage
	About(ctx context.Context) *model.AboutPage
	ServiceCards(ctx context.Context) []model.ServiceCard
	ServiceDetail(ctx context.Context, slug string) (*model.ServiceDetail, error)
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

// Sessions はログインフォームからのセッション開始・終了（handler.AuthHandler が実装）
type Sessions interface {
	StartSession(w http.ResponseWriter, r *http.Request, email, password string) (*model.User, error)
	EndSession(w http.ResponseWriter, r *http.Request) error
}

// Deps は Server が使うサービス群
type Deps struct {
	Pages    Pages
	Slides   service.HeroSlideService
	Catalog  service.CatalogService
	Team     service.TeamMemberService
	Messages service.ContactService
	Users    service.AuthService
	Sessions Sessions
}

// Server は HTML ページのハンドラをまとめたもの
type Server struct {
	Deps
	templates map[string]*template.Template
}

// New parses every page template against its layout.
func New(deps Deps) (*Server, error) {
	tmpl, err := parseTemplates(templateFS)
	if err != nil {
		return nil, err
	}
	return &Server{Deps: deps, templates: tmpl}, nil
}

var funcMap = template.FuncMap{
	"markdown":   renderMarkdown,
	"iconSymbol": iconSymbol,
	"statuses":   func() []model.MessageStatus { return messageStatuses },
	"icons":      func() []model.ServiceIcon { return model.ServiceIcons },
	"date":       func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	"lower":      strings.ToLower,
	"add":        func(a, b int) int { return a + b },
}

var messageStatuses = []model.MessageStatus{
	model.MessageNew,
	model.MessageRead,
	model.MessageReplied,
	model.MessageArchived,
}

func parseTemplates(fsys fs.FS) (map[string]*template.Template, error) {
	pages, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	base := map[string]*template.Template{}
	for _, layout := range []string{"layout.html", "admin_layout.html"} {
		t, err := template.New(layout).Funcs(funcMap).ParseFS(fsys, "templates/"+layout)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", layout, err)
		}
		base[layout] = t
	}

	out := make(map[string]*template.Template, len(pages))
	for _, p := range pages {
		name := strings.TrimPrefix(p, "templates/")
		if name == "layout.html" || name == "admin_layout.html" {
			continue
		}
		layout := "layout.html"
		if strings.HasPrefix(name, "admin_") {
			layout = "admin_layout.html"
		}
		t, err := base[layout].Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.ParseFS(fsys, p); err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", name, err)
		}
		out[name] = t
	}
	return out, nil
}

func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// iconSymbols はアイコン識別子から layout.html 内の SVG シンボル ID への対応表
var iconSymbols = map[model.ServiceIcon]string{
	model.IconBuilding2:     "icon-building",
	model.IconFactory:       "icon-factory",
	model.IconShip:          "icon-ship",
	model.IconGraduationCap: "icon-graduation",
	model.IconMonitor:       "icon-monitor",
	model.IconBriefcase:     "icon-briefcase",
}

func iconSymbol(icon model.ServiceIcon) string {
	return iconSymbols[icon.Resolved()]
}

// page はすべてのテンプレートに渡す共通データ
type page struct {
	Title     string
	Path      string
	CSRFField template.HTML
	CSRFToken string
	LoggedIn  bool
	Flash     string
	Error     string
	Data      any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, p page) {
	t, ok := s.templates[name]
	if !ok {
		slog.ErrorContext(r.Context(), "template not found", "template", name)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	p.Path = r.URL.Path
	p.CSRFField = csrf.TemplateField(r)
	p.CSRFToken = csrf.Token(r)
	_, p.LoggedIn = auth.UserIDFromContext(r.Context())

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, layoutOf(name), p); err != nil {
		slog.ErrorContext(r.Context(), "render failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func layoutOf(name string) string {
	if strings.HasPrefix(name, "admin_") {
		return "admin_layout.html"
	}
	return "layout.html"
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "not_found.html", page{Title: "Page Not Found"})
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "page failed", "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
