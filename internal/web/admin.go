package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
	"github.com/targetgroup/backend/pkg/auth"
)

const adminHome = "/admin"

// LoginPage handles GET /admin/login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := safeNext(r.URL.Query().Get("next"))
	if _, ok := auth.UserIDFromContext(r.Context()); ok {
		http.Redirect(w, r, next, http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "admin_login.html", page{
		Title: "Admin Login",
		Data:  loginView{Next: next},
	})
}

type loginView struct {
	Email string
	Next  string
}

// Login handles POST /admin/login.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	email := r.PostForm.Get("email")
	next := safeNext(r.PostForm.Get("next"))

	if _, err := s.Sessions.StartSession(w, r, email, r.PostForm.Get("password")); err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			slog.ErrorContext(r.Context(), "admin login failed", "error", err)
		}
		s.render(w, r, http.StatusUnauthorized, "admin_login.html", page{
			Title: "Admin Login",
			Error: "Invalid email or password",
			Data:  loginView{Email: email, Next: next},
		})
		return
	}
	http.Redirect(w, r, next, http.StatusSeeOther)
}

// safeNext only allows local admin paths as a post-login redirect target.
func safeNext(next string) string {
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, adminHome) || strings.HasPrefix(next, "//") {
		return adminHome
	}
	return next
}

// Logout handles POST /admin/logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.Sessions.EndSession(w, r); err != nil {
		slog.WarnContext(r.Context(), "admin logout failed", "error", err)
	}
	http.Redirect(w, r, adminHome+"/login", http.StatusSeeOther)
}

type dashboardView struct {
	User  *model.User
	Stats *model.DashboardStats
}

// Dashboard handles GET /admin.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Pages.Dashboard(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	view := dashboardView{Stats: stats}
	if id, ok := auth.UserIDFromContext(r.Context()); ok {
		if u, err := s.Users.GetUser(r.Context(), id); err == nil {
			view.User = u
		}
	}
	s.render(w, r, http.StatusOK, "admin_dashboard.html", page{Title: "Dashboard", Data: view})
}

// HeroSlides handles GET /admin/hero-slides.
func (s *Server) HeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := s.Slides.List(r.Context(), false)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_hero_slides.html", page{Title: "Hero Slides", Data: slides})
}

// AdminServices handles GET /admin/services.
func (s *Server) AdminServices(w http.ResponseWriter, r *http.Request) {
	services, err := s.Catalog.ListServices(r.Context(), false)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_services.html", page{Title: "Services", Data: services})
}

// AdminService handles GET /admin/services/{id}: the service with its items and benefits.
func (s *Server) AdminService(w http.ResponseWriter, r *http.Request) {
	svc, err := s.Catalog.GetService(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_service.html", page{Title: "Manage " + svc.Name, Data: svc})
}

// TeamMembers handles GET /admin/team-members.
func (s *Server) TeamMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.Team.List(r.Context(), false)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_team_members.html", page{Title: "Team Members", Data: members})
}

type messagesView struct {
	Status   string
	Messages []*model.ContactMessage
}

// AdminMessages handles GET /admin/messages?status=.
func (s *Server) AdminMessages(w http.ResponseWriter, r *http.Request) {
	status := strings.ToUpper(r.URL.Query().Get("status"))
	if status == "ALL" {
		status = ""
	}
	msgs, err := s.Messages.List(r.Context(), model.ContactListOptions{Status: status})
	if service.ValidationCode(err) != "" {
		http.Redirect(w, r, adminHome+"/messages", http.StatusSeeOther)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_messages.html", page{
		Title: "Messages",
		Data:  messagesView{Status: status, Messages: msgs},
	})
}

// AdminMessage handles GET /admin/messages/{id}. Opening a NEW message marks it READ.
func (s *Server) AdminMessage(w http.ResponseWriter, r *http.Request) {
	msg, err := s.Messages.Open(r.Context(), r.PathValue("id"))
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "admin_message.html", page{Title: msg.Subject, Data: msg})
}
