package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// CatalogHandler serves the checklist and PMI reference data.
type CatalogHandler struct {
	catalog *services.CatalogService
	errors  *apperrors.ErrorHandler
	logger  *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService, errors *apperrors.ErrorHandler, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, errors: errors, logger: logger}
}

// ListAreas handles GET /areas.
func (h *CatalogHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.catalog.GetAllAreas(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, areas)
}

// ListAreaItems handles GET /areas/{areaName}/items.
func (h *CatalogHandler) ListAreaItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.GetItemsByArea(r.Context(), chi.URLParam(r, "areaName"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, items)
}

// ListPMICategories handles GET /pmi/categories.
func (h *CatalogHandler) ListPMICategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.catalog.GetAllPMICategories(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, cats)
}

// ListPMIItems handles GET /pmi/categories/{categoryID}/items.
func (h *CatalogHandler) ListPMIItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.GetPMIItemsByCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, items)
}
