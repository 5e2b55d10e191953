package handler

import (
	"mime"
	"net/http"

	"github.com/targetgroup/backend/internal/metrics"
	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
)

// ContactHandler handles public contact form submissions.
type ContactHandler struct {
	contactService service.ContactService
	metrics        *metrics.Metrics
}

// NewContactHandler creates a ContactHandler with the given service. m may be nil.
func NewContactHandler(contactService service.ContactService, m *metrics.Metrics) *ContactHandler {
	return &ContactHandler{contactService: contactService, metrics: m}
}

// submitRequest is the expected body for POST /api/contact.
type submitRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// Submit handles POST /api/contact.
// JSON からの送信は JSON で応答し、HTML フォームからの送信は /contact へリダイレクトする
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	isForm := isFormRequest(r)

	var req submitRequest
	if isForm {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/contact?error=invalid_form", http.StatusSeeOther)
			return
		}
		req = submitRequest{
			FirstName: r.PostForm.Get("firstName"),
			LastName:  r.PostForm.Get("lastName"),
			Email:     r.PostForm.Get("email"),
			Phone:     r.PostForm.Get("phone"),
			Subject:   r.PostForm.Get("subject"),
			Message:   r.PostForm.Get("message"),
		}
	} else if !decodeJSON(w, r, &req) {
		return
	}

	msg := &model.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		if isForm {
			code := service.ValidationCode(err)
			if code == "" {
				code = "submit_failed"
				logFailure(r, err, "contact submit")
			}
			http.Redirect(w, r, "/contact?error="+code, http.StatusSeeOther)
			return
		}
		writeServiceError(w, r, err, "contact submit")
		return
	}
	if h.metrics != nil {
		h.metrics.ContactSubmissions.Inc()
	}

	if isForm {
		http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, submitResponse{
		Success: true,
		Message: service.ContactSuccessMessage,
		ID:      msg.ID,
	})
}

func isFormRequest(r *http.Request) bool {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mt == "application/x-www-form-urlencoded"
}
