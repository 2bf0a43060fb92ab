package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// InspectionHandler handles the inspection lifecycle endpoints.
type InspectionHandler struct {
	inspections *services.InspectionService
	errors      *apperrors.ErrorHandler
	logger      *zap.Logger
}

// NewInspectionHandler creates an InspectionHandler.
func NewInspectionHandler(inspections *services.InspectionService, errors *apperrors.ErrorHandler, logger *zap.Logger) *InspectionHandler {
	return &InspectionHandler{inspections: inspections, errors: errors, logger: logger}
}

// Create handles POST /inspections.
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateInspectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	insp, err := h.inspections.Create(r.Context(), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, insp)
}

// List handles GET /inspections with optional status, siteCode and
// pagination query parameters.
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := services.ListInspectionsFilter{
		Status:   r.URL.Query().Get("status"),
		SiteCode: r.URL.Query().Get("siteCode"),
	}

	list, err := h.inspections.List(r.Context(), filter)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	params := common.ExtractPaginationParams(r)
	start, end := params.Slice(len(list))
	common.RespondWithMeta(w, http.StatusOK, list[start:end], &common.MetaInfo{
		Pagination: common.BuildPaginationMeta(params.Page, params.PageSize, len(list)),
	})
}

// Get handles GET /inspections/{soNumber}.
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	insp, err := h.inspections.Get(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, insp)
}

// ListByUnit handles GET /units/{unitNumber}/inspections.
func (h *InspectionHandler) ListByUnit(w http.ResponseWriter, r *http.Request) {
	list, err := h.inspections.ListByUnit(r.Context(), chi.URLParam(r, "unitNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, list)
}

// ListByInspector handles GET /inspectors/{inspectorID}/inspections.
func (h *InspectionHandler) ListByInspector(w http.ResponseWriter, r *http.Request) {
	list, err := h.inspections.ListByInspector(r.Context(), chi.URLParam(r, "inspectorID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, list)
}

// Update handles PUT /inspections/{soNumber}.
func (h *InspectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateInspectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	insp, err := h.inspections.Update(r.Context(), chi.URLParam(r, "soNumber"), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, insp)
}

// Submit handles POST /inspections/{soNumber}/submit.
func (h *InspectionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	insp, err := h.inspections.Submit(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, insp)
}

// Delete handles DELETE /inspections/{soNumber}.
func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.inspections.Delete(r.Context(), chi.URLParam(r, "soNumber")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Purge handles DELETE /inspections/{soNumber}/purge, removing the
// inspection and all of its child records.
func (h *InspectionHandler) Purge(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.inspections.Purge(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]int{"itemsDeleted": deleted})
}
