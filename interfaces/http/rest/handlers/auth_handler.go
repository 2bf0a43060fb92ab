// Package handlers maps HTTP requests onto the application services. Every
// handler follows the same shape: decode, call the service, respond through
// the shared envelope, route failures through the error handler.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

const maxBodyBytes = 1 << 20

// maxUploadBytes bounds base64 image and signature payloads.
const maxUploadBytes = 10 << 20

// AuthHandler handles login and inspector management.
type AuthHandler struct {
	auth   *services.AuthService
	errors *apperrors.ErrorHandler
	logger *zap.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *services.AuthService, errors *apperrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, errors: errors, logger: logger}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	result, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// CreateInspector handles POST /inspectors.
func (h *AuthHandler) CreateInspector(w http.ResponseWriter, r *http.Request) {
	var req services.CreateInspectorRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		h.errors.Handle(w, r, apperrors.NewValidationError("invalid request body: "+err.Error()))
		return
	}

	inspector, err := h.auth.CreateInspector(r.Context(), &req)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, inspector)
}

// GetInspector handles GET /inspectors/{inspectorID}.
func (h *AuthHandler) GetInspector(w http.ResponseWriter, r *http.Request) {
	inspector, err := h.auth.GetInspector(r.Context(), chi.URLParam(r, "inspectorID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, inspector)
}

// ListInspectors handles GET /inspectors.
func (h *AuthHandler) ListInspectors(w http.ResponseWriter, r *http.Request) {
	inspectors, err := h.auth.ListInspectors(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, inspectors)
}
