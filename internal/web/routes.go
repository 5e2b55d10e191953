package web

import "net/http"

// Register mounts the public and admin pages on mux.
// optional resolves a session when present (public pages, login), requirePage
// guards admin pages, wrap wraps every page (CSRF).
func (s *Server) Register(mux *http.ServeMux, optional, requirePage, wrap func(http.Handler) http.Handler) {
	page := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, wrap(optional(h)))
	}
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, wrap(requirePage(h)))
	}

	page("GET /{$}", s.Home)
	page("GET /about", s.About)
	page("GET /services", s.Services)
	page("GET /services/{slug}", s.ServiceDetail)
	page("GET /contact", s.Contact)

	page("GET /admin/login", s.LoginPage)
	page("POST /admin/login", s.Login)
	page("POST /admin/logout", s.Logout)
	admin("GET /admin", s.Dashboard)
	admin("GET /admin/hero-slides", s.HeroSlides)
	admin("GET /admin/services", s.AdminServices)
	admin("GET /admin/services/{id}", s.AdminService)
	admin("GET /admin/team-members", s.TeamMembers)
	admin("GET /admin/messages", s.AdminMessages)
	admin("GET /admin/messages/{id}", s.AdminMessage)

	page("GET /", s.NotFound)
}
