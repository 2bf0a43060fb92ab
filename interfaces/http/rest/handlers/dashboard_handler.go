package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/common"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// DashboardHandler serves the aggregated inspection summary.
type DashboardHandler struct {
	dashboard *services.DashboardService
	errors    *apperrors.ErrorHandler
	logger    *zap.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard *services.DashboardService, errors *apperrors.ErrorHandler, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, errors: errors, logger: logger}
}

// Summary handles GET /dashboard/summary with optional area, year, month
// and siteCode query parameters.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := services.DashboardFilter{
		Area:     query.Get("area"),
		SiteCode: query.Get("siteCode"),
	}

	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			h.errors.Handle(w, r, apperrors.NewValidationError("year must be an integer"))
			return
		}
		filter.Year = year
	}
	if raw := query.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			h.errors.Handle(w, r, apperrors.NewValidationError("month must be an integer between 1 and 12"))
			return
		}
		filter.Month = month
	}

	summary, err := h.dashboard.GetSummary(r.Context(), filter)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, summary)
}
