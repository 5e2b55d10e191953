package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/targetgroup/backend/internal/repository"
)

const healthTimeout = 2 * time.Second

type componentHealth struct {
	Backend string `json:"backend"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

type healthResponse struct {
	Status   string           `json:"status"`
	Database componentHealth  `json:"database"`
	Sessions *componentHealth `json:"sessions,omitempty"`
}

// Health handles GET /api/health.
// データベースとセッションストアに疎通確認し、どちらかが落ちていれば 503 を返す
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := healthResponse{
		Status:   "ok",
		Database: checkComponent(ctx, "postgres", h.db),
	}
	if h.sessions != nil {
		sessions := checkComponent(ctx, h.sessionBackend, h.sessions)
		resp.Sessions = &sessions
	}

	status := http.StatusOK
	if resp.Database.Status != "ok" || (resp.Sessions != nil && resp.Sessions.Status != "ok") {
		resp.Status = "unhealthy"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func checkComponent(ctx context.Context, backend string, db repository.DB) componentHealth {
	c := componentHealth{Backend: backend, Status: "ok"}
	if err := db.Ping(ctx); err != nil {
		slog.WarnContext(ctx, "health check failed", "backend", backend, "error", err)
		c.Status = "unhealthy"
		c.Error = err.Error()
	}
	return c
}
