package handler

import (
	"context"
	"net/http"

	"github.com/targetgroup/backend/internal/model"
)

// DashboardSource は管理ダッシュボードの件数を返す（service.PageService が実装）
type DashboardSource interface {
	Dashboard(ctx context.Context) (*model.DashboardStats, error)
}

type StatsHandler struct {
	source DashboardSource
}

func NewStatsHandler(source DashboardSource) *StatsHandler {
	return &StatsHandler{source: source}
}

// Stats handles GET /api/admin/stats (auth required).
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.source.Dashboard(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "dashboard stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
