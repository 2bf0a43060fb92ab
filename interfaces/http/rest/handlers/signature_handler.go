package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// SignatureHandler handles sign-off endpoints.
type SignatureHandler struct {
	signatures *services.SignatureService
	errors     *apperrors.ErrorHandler
	logger     *zap.Logger
}

// NewSignatureHandler creates a SignatureHandler.
func NewSignatureHandler(signatures *services.SignatureService, errors *apperrors.ErrorHandler, logger *zap.Logger) *SignatureHandler {
	return &SignatureHandler{signatures: signatures, errors: errors, logger: logger}
}

// Upload handles POST /inspections/{soNumber}/signatures.
func (h *SignatureHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req services.UploadSignatureRequest
	if err := common.ParseJSONBody(r, &req, maxUploadBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	sig, err := h.signatures.Upload(r.Context(), chi.URLParam(r, "soNumber"), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, sig)
}

// List handles GET /inspections/{soNumber}/signatures.
func (h *SignatureHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.signatures.List(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, list)
}

// Get handles GET /inspections/{soNumber}/signatures/{signatureID}.
func (h *SignatureHandler) Get(w http.ResponseWriter, r *http.Request) {
	sig, err := h.signatures.Get(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "signatureID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, sig)
}

// Delete handles DELETE /inspections/{soNumber}/signatures/{signatureID}.
func (h *SignatureHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.signatures.Delete(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "signatureID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
