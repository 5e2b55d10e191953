package handler

import (
	"net/http"

	"github.com/targetgroup/backend/internal/model"
	"github.com/targetgroup/backend/internal/service"
)

// ServiceHandler は事業サービスとその取扱品目・導入メリットの HTTP ハンドラ
type ServiceHandler struct {
	catalog service.CatalogService
}

// NewServiceHandler は ServiceHandler を生成する
func NewServiceHandler(catalog service.CatalogService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog}
}

// ---------------------------------------------------------------------------
// Public
// ---------------------------------------------------------------------------

// PublicList handles GET /api/services (active services without children).
func (h *ServiceHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context(), true)
	if err != nil {
		writeServiceError(w, r, err, "service list")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// PublicGet handles GET /api/services/{slug}. Inactive services are reported as 404.
func (h *ServiceHandler) PublicGet(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.GetPublishedService(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, err, "service get by slug")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// ---------------------------------------------------------------------------
// Admin: services
// ---------------------------------------------------------------------------

// List handles GET /api/admin/services.
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context(), false)
	if err != nil {
		writeServiceError(w, r, err, "service list")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// Get handles GET /api/admin/services/{id}; the response includes items and benefits.
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalog.GetService(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "service get")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Create handles POST /api/admin/services (auth required).
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in model.ServicePatch
	if !decodeJSON(w, r, &in) {
		return
	}
	svc, err := h.catalog.CreateService(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err, "service create")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// Update handles PATCH /api/admin/services/{id} (auth required).
func (h *ServiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch model.ServicePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	svc, err := h.catalog.UpdateService(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(w, r, err, "service update")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/admin/services/{id} (auth required). Items and benefits go with it.
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteService(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err, "service delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// Reorder handles PUT /api/admin/services/reorder (auth required).
func (h *ServiceHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.ReorderServices(r.Context(), req.IDs); err != nil {
		writeServiceError(w, r, err, "service reorder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// ---------------------------------------------------------------------------
// Admin: items (/api/admin/services/{id}/items)
// ---------------------------------------------------------------------------

func (h *ServiceHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListItems(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "service item list")
		return
	}
	if items == nil {
		items = []*model.ServiceItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ServiceHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetItem(r.Context(), r.PathValue("id"), r.PathValue("itemId"))
	if err != nil {
		writeServiceError(w, r, err, "service item get")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ServiceHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var in model.ServiceItemPatch
	if !decodeJSON(w, r, &in) {
		return
	}
	item, err := h.catalog.CreateItem(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "service item create")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ServiceHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var patch model.ServiceItemPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	item, err := h.catalog.UpdateItem(r.Context(), r.PathValue("id"), r.PathValue("itemId"), patch)
	if err != nil {
		writeServiceError(w, r, err, "service item update")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ServiceHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteItem(r.Context(), r.PathValue("id"), r.PathValue("itemId")); err != nil {
		writeServiceError(w, r, err, "service item delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

func (h *ServiceHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.ReorderItems(r.Context(), r.PathValue("id"), req.IDs); err != nil {
		writeServiceError(w, r, err, "service item reorder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

// ---------------------------------------------------------------------------
// Admin: benefits (/api/admin/services/{id}/benefits)
// ---------------------------------------------------------------------------

func (h *ServiceHandler) ListBenefits(w http.ResponseWriter, r *http.Request) {
	benefits, err := h.catalog.ListBenefits(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "service benefit list")
		return
	}
	if benefits == nil {
		benefits = []*model.ServiceBenefit{}
	}
	writeJSON(w, http.StatusOK, benefits)
}

func (h *ServiceHandler) GetBenefit(w http.ResponseWriter, r *http.Request) {
	b, err := h.catalog.GetBenefit(r.Context(), r.PathValue("id"), r.PathValue("benefitId"))
	if err != nil {
		writeServiceError(w, r, err, "service benefit get")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *ServiceHandler) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	var in model.ServiceBenefitPatch
	if !decodeJSON(w, r, &in) {
		return
	}
	b, err := h.catalog.CreateBenefit(r.Context(), r.PathValue("id"), in)
	if err != nil {
		writeServiceError(w, r, err, "service benefit create")
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *ServiceHandler) UpdateBenefit(w http.ResponseWriter, r *http.Request) {
	var patch model.ServiceBenefitPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	b, err := h.catalog.UpdateBenefit(r.Context(), r.PathValue("id"), r.PathValue("benefitId"), patch)
	if err != nil {
		writeServiceError(w, r, err, "service benefit update")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *ServiceHandler) DeleteBenefit(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.DeleteBenefit(r.Context(), r.PathValue("id"), r.PathValue("benefitId")); err != nil {
		writeServiceError(w, r, err, "service benefit delete")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}

func (h *ServiceHandler) ReorderBenefits(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.ReorderBenefits(r.Context(), r.PathValue("id"), req.IDs); err != nil {
		writeServiceError(w, r, err, "service benefit reorder")
		return
	}
	writeJSON(w, http.StatusOK, successResponse)
}
