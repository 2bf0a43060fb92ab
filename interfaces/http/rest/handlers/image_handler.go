package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// ImageHandler handles inspection photo endpoints.
type ImageHandler struct {
	images *services.ImageService
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewImageHandler creates an ImageHandler.
func NewImageHandler(images *services.ImageService, errors *apperrors.ErrorHandler, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{images: images, errors: errors, logger: logger}
}

// Upload handles POST /inspections/{soNumber}/images.
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req services.UploadImageRequest
	if err := common.ParseJSONBody(r, &req, maxUploadBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	img, err := h.images.Upload(r.Context(), chi.URLParam(r, "soNumber"), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, img)
}

// List handles GET /inspections/{soNumber}/images.
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.images.List(r.Context(), chi.URLParam(r, "soNumber"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, list)
}

// Get handles GET /inspections/{soNumber}/images/{imageID}.
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	img, err := h.images.Get(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "imageID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, img)
}

// Delete handles DELETE /inspections/{soNumber}/images/{imageID}.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.images.Delete(r.Context(), chi.URLParam(r, "soNumber"), chi.URLParam(r, "imageID")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
