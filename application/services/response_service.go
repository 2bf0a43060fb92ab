package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// ResponseService records checklist answers. A deficiency answer must carry
// the work-order fields the maintenance system needs downstream.
type ResponseService struct {
	responses   *repository.ResponseRepository
	inspections *repository.InspectionRepository
	logger      *zap.Logger
}

// NewResponseService creates a ResponseService.
func NewResponseService(responses *repository.ResponseRepository, inspections *repository.InspectionRepository, logger *zap.Logger) *ResponseService {
	return &ResponseService{responses: responses, inspections: inspections, logger: logger}
}

// SaveResponseRequest carries one checklist answer.
type SaveResponseRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Response string `json:"response" validate:"required"`

	ScopeOfWork         string `json:"scopeOfWork"`
	MaterialRequired    bool   `json:"materialRequired"`
	MaterialDescription string `json:"materialDescription"`
	ServiceID           string `json:"serviceId"`
	ActivityCode        string `json:"activityCode"`
	TenantCharge        bool   `json:"tenantCharge"`
	Urgent              bool   `json:"urgent"`
	RRP                 bool   `json:"rrp"`
}

// Save validates and stores a checklist answer for an inspection. Saving the
// same item again overwrites the previous answer.
func (s *ResponseService) Save(ctx context.Context, soNumber string, req *SaveResponseRequest) (*model.InspectionResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if !model.ValidResponseType(req.Response) {
		return nil, apperrors.NewValidationError("invalid response type. Must be 'OK', 'NA', or 'Def'")
	}
	if req.Response == model.ResponseDef {
		if err := validateDeficiencyFields(req); err != nil {
			return nil, err
		}
	}

	insp, err := s.inspections.FindBySONumber(ctx, soNumber)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, apperrors.NewNotFoundError("inspection " + soNumber)
	}

	resp := model.NewInspectionResponse(soNumber, req.ItemID, req.Response)
	resp.ScopeOfWork = req.ScopeOfWork
	resp.MaterialRequired = req.MaterialRequired
	resp.MaterialDescription = req.MaterialDescription
	resp.ServiceID = req.ServiceID
	resp.ActivityCode = req.ActivityCode
	resp.TenantCharge = req.TenantCharge
	resp.Urgent = req.Urgent
	resp.RRP = req.RRP
	resp.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.responses.Save(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns one checklist answer.
func (s *ResponseService) Get(ctx context.Context, soNumber, itemID string) (*model.InspectionResponse, error) {
	resp, err := s.responses.FindByInspectionAndItem(ctx, soNumber, itemID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, apperrors.NewNotFoundError("response for item " + itemID)
	}
	return resp, nil
}

// List returns every checklist answer of an inspection.
func (s *ResponseService) List(ctx context.Context, soNumber string) ([]*model.InspectionResponse, error) {
	return s.responses.FindByInspection(ctx, soNumber)
}

// Delete removes one checklist answer.
func (s *ResponseService) Delete(ctx context.Context, soNumber, itemID string) error {
	return s.responses.Delete(ctx, soNumber, itemID)
}

// validateDeficiencyFields enforces the extra fields a Def answer needs.
// Every missing field is reported in one error.
func validateDeficiencyFields(req *SaveResponseRequest) error {
	var missing []string
	if strings.TrimSpace(req.ScopeOfWork) == "" {
		missing = append(missing, "Scope of work is required for deficiency responses")
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		missing = append(missing, "Service ID is required for deficiency responses")
	}
	if strings.TrimSpace(req.ActivityCode) == "" {
		missing = append(missing, "Activity code is required for deficiency responses")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("Validation errors: " + strings.Join(missing, ", "))
	}
	return nil
}
