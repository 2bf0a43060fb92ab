package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
)

// CatalogService serves the inspection checklist reference data: areas with
// their items and PMI categories with theirs. Inactive entries are filtered
// out of every listing; they stay in the table for the history of old
// inspections that referenced them.
type CatalogService struct {
	repo   *repository.CatalogRepository
	logger *zap.Logger
}

// NewCatalogService creates a CatalogService.
func NewCatalogService(repo *repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

// EnsureDefaults seeds the built-in areas, items, PMI categories and PMI
// items when the catalog is empty. Idempotent; a populated catalog is left
// untouched, including any local edits to it.
func (s *CatalogService) EnsureDefaults(ctx context.Context) error {
	areas, err := s.repo.FindAllAreas(ctx)
	if err != nil {
		return err
	}
	if len(areas) > 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)

	for i, sa := range defaultAreas {
		area := &model.InspectionArea{
			EntityType: "InspectionArea",
			AreaName:   sa.name,
			SortOrder:  i + 1,
			IsActive:   true,
		}
		if err := s.repo.SaveArea(ctx, area); err != nil {
			return err
		}
		for j, si := range sa.items {
			item := &model.InspectionItem{
				EntityType:  "InspectionItem",
				ItemID:      si.id,
				AreaName:    sa.name,
				Description: si.description,
				SortOrder:   j + 1,
				IsActive:    true,
			}
			if err := s.repo.SaveItem(ctx, item); err != nil {
				return err
			}
		}
	}

	for i, sc := range defaultPMICategories {
		cat := &model.PMICategory{
			EntityType: "PMICategory",
			CategoryID: sc.id,
			Name:       sc.name,
			SortOrder:  i + 1,
			IsActive:   true,
			CreatedAt:  now,
		}
		if err := s.repo.SavePMICategory(ctx, cat); err != nil {
			return err
		}
		for j, si := range sc.items {
			item := &model.PMIItem{
				EntityType:  "PMIItem",
				CategoryID:  sc.id,
				ItemID:      si.id,
				Description: si.description,
				SortOrder:   j + 1,
				IsActive:    true,
				CreatedAt:   now,
			}
			if err := s.repo.SavePMIItem(ctx, item); err != nil {
				return err
			}
		}
	}

	s.logger.Info("catalog defaults seeded",
		zap.Int("areas", len(defaultAreas)),
		zap.Int("pmiCategories", len(defaultPMICategories)),
	)
	return nil
}

// GetAllAreas returns every active checklist area in sort order.
func (s *CatalogService) GetAllAreas(ctx context.Context) ([]*model.InspectionArea, error) {
	areas, err := s.repo.FindAllAreas(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.InspectionArea, 0, len(areas))
	for _, a := range areas {
		if a.IsActive {
			out = append(out, a)
		}
	}
	return out, nil
}

// GetItemsByArea returns the active checklist items of one area in sort
// order. An unknown area yields an empty list, not an error.
func (s *CatalogService) GetItemsByArea(ctx context.Context, areaName string) ([]*model.InspectionItem, error) {
	items, err := s.repo.FindItemsByArea(ctx, areaName)
	if err != nil {
		return nil, err
	}
	out := make([]*model.InspectionItem, 0, len(items))
	for _, it := range items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}

// GetAllPMICategories returns every active PMI category in sort order.
func (s *CatalogService) GetAllPMICategories(ctx context.Context) ([]*model.PMICategory, error) {
	cats, err := s.repo.FindAllPMICategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.PMICategory, 0, len(cats))
	for _, c := range cats {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetPMIItemsByCategory returns the active PMI items of one category in
// sort order. An unknown category yields an empty list, not an error.
func (s *CatalogService) GetPMIItemsByCategory(ctx context.Context, categoryID string) ([]*model.PMIItem, error) {
	items, err := s.repo.FindPMIItemsByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	out := make([]*model.PMIItem, 0, len(items))
	for _, it := range items {
		if it.IsActive {
			out = append(out, it)
		}
	}
	return out, nil
}
