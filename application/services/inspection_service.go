package services

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// soNumberSeed is the service-order counter's starting value. New SO numbers
// continue upward from here.
const soNumberSeed = 3184947

// InspectionService owns the inspection lifecycle: creation with a generated
// SO number, field-wise updates, submission and removal.
type InspectionService struct {
	repo      *repository.InspectionRepository
	soCounter atomic.Int64
	logger    *zap.Logger
}

// NewInspectionService creates an InspectionService.
func NewInspectionService(repo *repository.InspectionRepository, logger *zap.Logger) *InspectionService {
	s := &InspectionService{repo: repo, logger: logger}
	s.soCounter.Store(soNumberSeed)
	return s
}

// CreateInspectionRequest carries the fields settable at creation.
type CreateInspectionRequest struct {
	UnitNumber   string `json:"unitNumber" validate:"required"`
	SiteCode     string `json:"siteCode"`
	SiteName     string `json:"siteName"`
	Address      string `json:"address"`
	DivisionCode string `json:"divisionCode"`

	TenantName         string `json:"tenantName"`
	TenantPhone        string `json:"tenantPhone"`
	TenantAvailability *bool  `json:"tenantAvailability"`

	BRSize      int  `json:"brSize"`
	IsHardwired bool `json:"isHardwired"`

	InspectorID   string `json:"inspectorId" validate:"required"`
	InspectorName string `json:"inspectorName"`
	VehicleTagID  string `json:"vehicleTagId"`

	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime string `json:"startTime"`
}

// UpdateInspectionRequest is a field-wise patch: nil fields keep their
// stored value, set fields overwrite it.
type UpdateInspectionRequest struct {
	UnitNumber   *string `json:"unitNumber"`
	SiteCode     *string `json:"siteCode"`
	SiteName     *string `json:"siteName"`
	Address      *string `json:"address"`
	DivisionCode *string `json:"divisionCode"`

	TenantName         *string `json:"tenantName"`
	TenantPhone        *string `json:"tenantPhone"`
	TenantAvailability *bool   `json:"tenantAvailability"`

	BRSize      *int  `json:"brSize"`
	IsHardwired *bool `json:"isHardwired"`

	InspectorID   *string `json:"inspectorId"`
	InspectorName *string `json:"inspectorName"`
	VehicleTagID  *string `json:"vehicleTagId"`

	Status    *string `json:"status"`
	StartDate *string `json:"startDate"`
	StartTime *string `json:"startTime"`
	EndDate   *string `json:"endDate"`
	EndTime   *string `json:"endTime"`

	SmokeDetectorsCount *int `json:"smokeDetectorsCount"`
	CODetectorsCount    *int `json:"coDetectorsCount"`
}

// ListInspectionsFilter narrows List results. Empty fields match everything.
type ListInspectionsFilter struct {
	Status   string
	SiteCode string
}

// Create generates the next SO number and stores a new inspection.
func (s *InspectionService) Create(ctx context.Context, req *CreateInspectionRequest) (*model.Inspection, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	soNumber := strconv.FormatInt(s.soCounter.Add(1), 10)

	insp := model.NewInspection(soNumber)
	insp.UnitNumber = req.UnitNumber
	insp.SiteCode = req.SiteCode
	insp.SiteName = req.SiteName
	insp.Address = req.Address
	insp.DivisionCode = req.DivisionCode
	insp.TenantName = req.TenantName
	insp.TenantPhone = req.TenantPhone
	if req.TenantAvailability != nil {
		insp.TenantAvailability = *req.TenantAvailability
	}
	insp.BRSize = req.BRSize
	insp.IsHardwired = req.IsHardwired
	insp.InspectorID = req.InspectorID
	insp.InspectorName = req.InspectorName
	insp.VehicleTagID = req.VehicleTagID
	insp.StartDate = req.StartDate
	insp.StartTime = req.StartTime
	if insp.StartDate == "" {
		insp.StartDate = time.Now().UTC().Format("2006-01-02")
	}

	if err := s.repo.Save(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("inspection created",
		zap.String("soNumber", insp.SONumber),
		zap.String("unitNumber", insp.UnitNumber),
		zap.String("inspectorId", insp.InspectorID),
	)
	return insp, nil
}

// Get returns one inspection by SO number.
func (s *InspectionService) Get(ctx context.Context, soNumber string) (*model.Inspection, error) {
	insp, err := s.repo.FindBySONumber(ctx, soNumber)
	if err != nil {
		return nil, err
	}
	if insp == nil {
		return nil, apperrors.NewNotFoundError("inspection " + soNumber)
	}
	return insp, nil
}

// List returns inspections matching the filter, sorted by start date. A
// status filter rides the by-status index; anything else falls back to the
// full listing.
func (s *InspectionService) List(ctx context.Context, filter ListInspectionsFilter) ([]*model.Inspection, error) {
	var (
		list []*model.Inspection
		err  error
	)
	if filter.Status != "" {
		if !model.ValidStatus(filter.Status) {
			return nil, apperrors.NewValidationError("status must be one of: New, InProgress, Closed")
		}
		list, err = s.repo.FindByStatus(ctx, filter.Status)
	} else {
		list, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if filter.SiteCode == "" {
		return list, nil
	}
	out := make([]*model.Inspection, 0, len(list))
	for _, insp := range list {
		if insp.SiteCode == filter.SiteCode {
			out = append(out, insp)
		}
	}
	return out, nil
}

// ListByInspector returns an inspector's assigned inspections.
func (s *InspectionService) ListByInspector(ctx context.Context, inspectorID string) ([]*model.Inspection, error) {
	return s.repo.FindByInspectorID(ctx, inspectorID)
}

// ListByUnit returns a unit's inspection history.
func (s *InspectionService) ListByUnit(ctx context.Context, unitNumber string) ([]*model.Inspection, error) {
	return s.repo.FindByUnit(ctx, unitNumber)
}

// Update applies a field-wise patch and saves. Saving re-derives every key,
// so a status or inspector change moves the item to its new index partition
// in the same write.
func (s *InspectionService) Update(ctx context.Context, soNumber string, req *UpdateInspectionRequest) (*model.Inspection, error) {
	insp, err := s.Get(ctx, soNumber)
	if err != nil {
		return nil, err
	}

	if req.Status != nil && !model.ValidStatus(*req.Status) {
		return nil, apperrors.NewValidationError("status must be one of: New, InProgress, Closed")
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	applyString(&insp.UnitNumber, req.UnitNumber)
	applyString(&insp.SiteCode, req.SiteCode)
	applyString(&insp.SiteName, req.SiteName)
	applyString(&insp.Address, req.Address)
	applyString(&insp.DivisionCode, req.DivisionCode)
	applyString(&insp.TenantName, req.TenantName)
	applyString(&insp.TenantPhone, req.TenantPhone)
	if req.TenantAvailability != nil {
		insp.TenantAvailability = *req.TenantAvailability
	}
	applyInt(&insp.BRSize, req.BRSize)
	if req.IsHardwired != nil {
		insp.IsHardwired = *req.IsHardwired
	}
	applyString(&insp.InspectorID, req.InspectorID)
	applyString(&insp.InspectorName, req.InspectorName)
	applyString(&insp.VehicleTagID, req.VehicleTagID)
	applyString(&insp.Status, req.Status)
	applyString(&insp.StartDate, req.StartDate)
	applyString(&insp.StartTime, req.StartTime)
	applyString(&insp.EndDate, req.EndDate)
	applyString(&insp.EndTime, req.EndTime)
	applyInt(&insp.SmokeDetectorsCount, req.SmokeDetectorsCount)
	applyInt(&insp.CODetectorsCount, req.CODetectorsCount)
	insp.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.repo.Save(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("inspection updated",
		zap.String("soNumber", insp.SONumber),
		zap.String("status", insp.Status),
	)
	return insp, nil
}

// Submit closes an inspection: status moves to Closed and the completion
// timestamps are stamped. Submitting an already closed inspection just
// refreshes the timestamps.
func (s *InspectionService) Submit(ctx context.Context, soNumber string) (*model.Inspection, error) {
	insp, err := s.Get(ctx, soNumber)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	insp.Status = model.StatusClosed
	insp.SubmitTime = now.Format(time.RFC3339)
	insp.CompletionDate = now.Format("2006-01-02")
	if insp.EndDate == "" {
		insp.EndDate = now.Format("2006-01-02")
	}
	if insp.EndTime == "" {
		insp.EndTime = now.Format("15:04:05")
	}
	insp.UpdatedAt = now.Format(time.RFC3339)

	if err := s.repo.Save(ctx, insp); err != nil {
		return nil, err
	}

	s.logger.Info("inspection submitted", zap.String("soNumber", insp.SONumber))
	return insp, nil
}

// Delete removes the inspection metadata item. Child records survive until
// a Purge; a dangling partition only costs storage.
func (s *InspectionService) Delete(ctx context.Context, soNumber string) error {
	if _, err := s.Get(ctx, soNumber); err != nil {
		return err
	}
	return s.repo.Delete(ctx, soNumber)
}

// Purge removes the inspection and every record keyed under it, returning
// the number of items deleted.
func (s *InspectionService) Purge(ctx context.Context, soNumber string) (int, error) {
	if _, err := s.Get(ctx, soNumber); err != nil {
		return 0, err
	}
	return s.repo.Purge(ctx, soNumber)
}
