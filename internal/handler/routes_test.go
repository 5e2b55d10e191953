package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/pkg/auth"
)

type stubDashboard struct{}

func (stubDashboard) Dashboard(_ context.Context) (*model.DashboardStats, error) {
	return &model.DashboardStats{}, nil
}

func newTestMux(t *testing.T) (*http.ServeMux, *mockHeroSlideService) {
	t.Helper()
	slides := &mockHeroSlideService{}
	contacts := &mockContactService{}
	api := &API{
		Base:     New(&mockDB{}, "http://localhost:8080"),
		Auth:     newTestAuthHandler(&mockAuthService{}, &mockSessionManager{}),
		Slides:   NewHeroSlideHandler(slides),
		Services: NewServiceHandler(&mockCatalogService{}),
		Team:     NewTeamMemberHandler(&mockTeamMemberService{}),
		Messages: NewMessageHandler(contacts),
		Contact:  NewContactHandler(contacts, nil),
		Upload:   NewUploadHandler(failingStorage{}, nil),
		Stats:    NewStatsHandler(stubDashboard{}),
	}
	validator := &mockValidator{token: "valid-token", userID: "u1"}
	mux := http.NewServeMux()
	api.Register(mux, auth.RequireSession(validator, auth.SessionSecretBytes(testSessionSecret)))
	return mux, slides
}

func withSession(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{
		Name:  auth.SessionCookieName(),
		Value: auth.SignToken(token, auth.SessionSecretBytes(testSessionSecret)),
	})
	return req
}

func TestRegister_AdminWritesRequireSession(t *testing.T) {
	mux, slides := newTestMux(t)
	called := false
	slides.createFunc = func(_ context.Context, _ model.HeroSlidePatch) (*model.HeroSlide, error) {
		called = true
		return &model.HeroSlide{ID: "s1"}, nil
	}

	writes := []struct{ method, path string }{
		{http.MethodPost, "/api/admin/hero-slides"},
		{http.MethodPatch, "/api/admin/hero-slides/s1"},
		{http.MethodDelete, "/api/admin/services/s1"},
		{http.MethodPut, "/api/admin/team-members/reorder"},
		{http.MethodPost, "/api/admin/services/s1/items"},
		{http.MethodDelete, "/api/admin/services/s1/benefits/b1"},
		{http.MethodGet, "/api/admin/messages"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/auth/me"},
		{http.MethodDelete, "/api/admin/uploads/a-1.png"},
	}
	for _, w := range writes {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(w.method, w.path, strings.NewReader(`{"title":"x"}`)))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", w.method, w.path, rec.Code)
		}
	}
	if called {
		t.Error("service must not be reached without a session")
	}

	rec := httptest.NewRecorder()
	req := withSession(httptest.NewRequest(http.MethodPost, "/api/admin/hero-slides", strings.NewReader(`{"title":"x"}`)), "valid-token")
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201 with a valid session, got %d", rec.Code)
	}
	if !called {
		t.Error("expected service to be called with a valid session")
	}
}

func TestRegister_ForgedCookieRejected(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/hero-slides/s1", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName(), Value: "valid-token.deadbeef"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRegister_PublicAndCatalogReadsAreOpen(t *testing.T) {
	mux, _ := newTestMux(t)

	for _, path := range []string{
		"/api/health",
		"/api/hero-slides",
		"/api/services",
		"/api/team",
		"/api/admin/hero-slides",
		"/api/admin/services",
		"/api/admin/team-members",
	} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRegister_ContactIsPublic(t *testing.T) {
	mux, _ := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"firstName":"A","lastName":"B","email":"a@b.com","subject":"S","message":"M"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
