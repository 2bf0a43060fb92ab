package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// PMIResponseService records preventive-maintenance task completion per
// inspection.
type PMIResponseService struct {
	responses   *repository.PMIResponseRepository
	inspections *repository.InspectionRepository
	logger      *zap.Logger
}

// NewPMIResponseService creates a PMIResponseService.
func NewPMIResponseService(responses *repository.PMIResponseRepository, inspections *repository.InspectionRepository, logger *zap.Logger) *PMIResponseService {
	return &PMIResponseService{responses: responses, inspections: inspections, logger: logger}
}

// SavePMIResponseRequest carries one PMI task result.
type SavePMIResponseRequest struct {
	ItemID     string `json:"itemId" validate:"required"`
	CategoryID string `json:"categoryId" validate:"required"`
	Completed  bool   `json:"completed"`
	Notes      string `json:"notes"`
}

// Save stores a PMI task result for an inspection, overwriting any previous
// result for the same item.
func (s *PMIResponseService) Save(ctx context.Context, soNumber string, req *SavePMIResponseRequest) (*model.PMIResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	insp, err := s.inspections.FindBySONumber(ctx, soNumber)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, apperrors.NewNotFoundError("inspection " + soNumber)
	}

	resp := model.NewPMIResponse(soNumber, req.ItemID)
	resp.CategoryID = req.CategoryID
	resp.Completed = req.Completed
	resp.Notes = req.Notes
	resp.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.responses.Save(ctx, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get returns one PMI task result.
func (s *PMIResponseService) Get(ctx context.Context, soNumber, itemID string) (*model.PMIResponse, error) {
	resp, err := s.responses.FindByInspectionAndItem(ctx, soNumber, itemID)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, apperrors.NewNotFoundError("PMI response for item " + itemID)
	}
	return resp, nil
}

// List returns every PMI task result of an inspection.
func (s *PMIResponseService) List(ctx context.Context, soNumber string) ([]*model.PMIResponse, error) {
	return s.responses.FindByInspection(ctx, soNumber)
}

// Delete removes one PMI task result.
func (s *PMIResponseService) Delete(ctx context.Context, soNumber, itemID string) error {
	return s.responses.Delete(ctx, soNumber, itemID)
}
