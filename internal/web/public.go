package web

import (
	"errors"
	"net/http"

	"github.com/targetgroup/backend/internal/repository"
	"github.com/targetgroup/backend/internal/service"
)

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home.html", page{
		Title: "Target Group PLC",
		Data:  s.Pages.Home(r.Context()),
	})
}

// About handles GET /about. The team section is omitted when there are no active members.
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "about.html", page{
		Title: "About Us",
		Data:  s.Pages.About(r.Context()),
	})
}

// Services handles GET /services.
func (s *Server) Services(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "services.html", page{
		Title: "Our Services",
		Data:  s.Pages.ServiceCards(r.Context()),
	})
}

// ServiceDetail handles GET /services/{slug}.
func (s *Server) ServiceDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Pages.ServiceDetail(r.Context(), r.PathValue("slug"))
	if errors.Is(err, repository.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "service_detail.html", page{
		Title: detail.Service.Name,
		Data:  detail,
	})
}

type contactView struct {
	Sent    bool
	Success string
}

// Contact handles GET /contact. The form posts to /api/contact, which redirects back here.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := page{
		Title: "Contact Us",
		Data: contactView{
			Sent:    q.Get("sent") == "1",
			Success: service.ContactSuccessMessage,
		},
	}
	if code := q.Get("error"); code != "" {
		p.Error = contactErrorText(code)
	}
	s.render(w, r, http.StatusOK, "contact.html", p)
}

func contactErrorText(code string) string {
	switch code {
	case "missing_required_fields":
		return "Please fill in all required fields."
	case "invalid_email":
		return "Please enter a valid email address."
	case "message_too_long":
		return "Your message is too long."
	default:
		return "Failed to submit message. Please try again."
	}
}

// NotFound renders the 404 page for unmatched paths.
func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	s.notFound(w, r)
}
