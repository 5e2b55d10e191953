package handler

import (
	"net/http"

	"github.com/targetgroup/backend/internal/repository"
)

// Handler はヘルスチェックと CORS を担う共通ハンドラ
type Handler struct {
	db             repository.DB
	sessions       repository.DB
	sessionBackend string
	frontendURL    string
}

func New(db repository.DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// WithSessionStore adds the session backend to the health report.
func (h *Handler) WithSessionStore(backend string, store repository.DB) *Handler {
	h.sessionBackend = backend
	h.sessions = store
	return h
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-CSRF-Token, X-Request-Id")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Add("Vary", "Origin")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
