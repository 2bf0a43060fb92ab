package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// PMIHandler handles preventive-maintenance response endpoints.
type PMIHandler struct {
	responses *services.PMIResponseService
	errors    *apperrors.ErrorHandler
	logger    *zap.Logger
}

// NewPMIHandler creates a PMIHandler.
func NewPMIHandler(responses *services.PMIResponseService, errors *apperrors.ErrorHandler, logger *zap.Logger) *PMIHandler {
	return &PMIHandler{responses: responses, errors: errors, logger: logger}
}

// Save handles POST /inspections/{soNumber}/pmi-responses.
func (h *PMIHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req services.SavePMIResponseRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	resp, err := h.responses.Save(r.Context(), chi.URLParam(r, "soNumber"), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, resp)
}

// List handles GET /inspections/{soNumber}/pmi-responses.
func (h *PMIHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.responses.List(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, list)
}

// Get handles GET /inspections/{soNumber}/pmi-responses/{itemID}.
func (h *PMIHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.responses.Get(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "itemID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /inspections/{soNumber}/pmi-responses/{itemID}.
func (h *PMIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.responses.Delete(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "itemID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
