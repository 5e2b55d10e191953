package handler

import (
	"net/http"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
)

// TeamMemberHandler は経営メンバーの HTTP ハンドラ
type TeamMemberHandler struct {
	svc service.TeamMemberService
}

// NewTeamMemberHandler は TeamMemberHandler を生成する
func NewTeamMemberHandler(svc service.TeamMemberService) *TeamMemberHandler {
	return &TeamMemberHandler{svc: svc}
}

// publicTeamMember は公開 API で返すフィールド。電話番号は含めない
type publicTeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Image    string `json:"image,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Email    string `json:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// PublicList handles GET /api/team (active members only).
func (h *TeamMemberHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context(), true)
	if err != nil {
		writeServiceError(w, r, err, "team member list")
		return
	}
	out := make([]publicTeamMember, 0, len(members))
	for _, m := range members {
		out = append(out, publicTeamMember{
			ID:       m.ID,
			Name:     m.Name,
			Role:     m.Role,
			Image:    m.Image,
			Bio:      m.Bio,
			Email:    m.Email,
			LinkedIn: m.LinkedIn,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// List handles GET /api/admin/team-members.
func (h *TeamMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.List(r.Context(), false)
	if err != nil {
		writeServiceError(w, r, err, "team member list")
		return
	}
	if members == nil {
		members = []*model.TeamMember{}
	}
	writeJSON(w, http.StatusOK, members)
}

// Get handles GET /api/admin/team-members/{id}.
func (h *TeamMemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	member, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "team member get")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// Create handles POST /api/admin/team-members (auth required).
func (h *TeamMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.TeamMemberPatch
	if !decodeJSON(w, r, &in) {
		return
	}
	member, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "team member create")
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

// Update handles PATCH /api/admin/team-members/{id} (auth required).
func (h *TeamMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.TeamMemberPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	member, err := h.svc.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "team member update")
		return
	}
	writeJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /api/admin/team-members/{id} (auth required).
func (h *TeamMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "team member delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// Reorder handles PUT /api/admin/team-members/reorder (auth required).
func (h *TeamMemberHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.svc.Reorder(r.Context(), req.IDs); err != nil {
		writeServiceError(w, r, err, "team member reorder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
