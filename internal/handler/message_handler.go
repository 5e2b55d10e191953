package handler

import (
	"net/http"
	"strconv"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
)

// MessageHandler は管理画面のお問い合わせ受信箱を扱う。全エンドポイントがログイン必須
type MessageHandler struct {
	contactService service.ContactService
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(contactService service.ContactService) *MessageHandler {
	return &MessageHandler{contactService: contactService}
}

// List handles GET /api/admin/messages?status=&limit=&offset= (newest first).
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ContactListOptions{Status: q.Get("status")}

	var err error
	if v := q.Get("limit"); v != "" {
		if opts.Limit, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_pagination")
			return
		}
	}
	if v := q.Get("offset"); v != "" {
		if opts.Offset, err = strconv.Atoi(v); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_pagination")
			return
		}
	}

	messages, err := h.contactService.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "message list")
		return
	}
	if messages == nil {
		messages = []*model.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Get handles GET /api/admin/messages/{id}. A NEW message becomes READ.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	msg, err := h.contactService.Open(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "message get")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Update handles PATCH /api/admin/messages/{id} with {status?, notes?}.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ContactMessagePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	msg, err := h.contactService.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "message update")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// Delete handles DELETE /api/admin/messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "message delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
