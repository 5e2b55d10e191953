package handler

import (
	"net/http"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
)

// HeroSlideHandler はヒーロースライドの HTTP ハンドラ
type HeroSlideHandler struct {
	svc service.HeroSlideService
}

// NewHeroSlideHandler は HeroSlideHandler を生成する
func NewHeroSlideHandler(svc service.HeroSlideService) *HeroSlideHandler {
	return &HeroSlideHandler{svc: svc}
}

// PublicList handles GET /api/hero-slides (active slides only).
func (h *HeroSlideHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// List handles GET /api/admin/hero-slides.
func (h *HeroSlideHandler) List(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *HeroSlideHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	slides, err := h.svc.List(r.Context(), activeOnly)
	if err != nil {
		writeServiceError(w, r, err, "hero slide list")
		return
	}
	if slides == nil {
		slides = []*model.HeroSlide{}
	}
	writeJSON(w, http.StatusOK, slides)
}

// Get handles GET /api/admin/hero-slides/{id}.
func (h *HeroSlideHandler) Get(w http.ResponseWriter, r *http.Request) {
	slide, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "hero slide get")
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

// Create handles POST /api/admin/hero-slides (auth required).
func (h *HeroSlideHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.HeroSlidePatch
	if !decodeJSON(w, r, &in) {
		return
	}
	slide, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "hero slide create")
		return
	}
	writeJSON(w, http.StatusCreated, slide)
}

// Update handles PATCH /api/admin/hero-slides/{id} (auth required).
func (h *HeroSlideHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.HeroSlidePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	slide, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "hero slide update")
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

// Delete handles DELETE /api/admin/hero-slides/{id} (auth required).
func (h *HeroSlideHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "hero slide delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// Reorder handles PUT /api/admin/hero-slides/reorder (auth required).
func (h *HeroSlideHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.Reorder(r.Context(), req.IDs); err != nil {
		writeServiceError(w, r, err, "hero slide reorder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
