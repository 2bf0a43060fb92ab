package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// CatalogRepository persists the reference data: checklist areas with their
// items, and PMI categories with theirs. Reference data is small and
// read-mostly; the enumerate-areas pattern is the one scan the catalog pays.
type CatalogRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewCatalogRepository creates a CatalogRepository.
func NewCatalogRepository(store table.Store, logger *zap.Logger) *CatalogRepository {
	return &CatalogRepository{store: store, logger: logger}
}

// SaveArea upserts a checklist area.
func (r *CatalogRepository) SaveArea(ctx context.Context, area *model.InspectionArea) error {
	area.DeriveKeys()

	item, err := table.MarshalItem(area)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal area").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save area", err)
	}
	return nil
}

// FindArea returns one area, or nil when absent.
func (r *CatalogRepository) FindArea(ctx context.Context, areaName string) (*model.InspectionArea, error) {
	item, err := r.store.Get(ctx, keys.AreaPK(areaName), keys.SKMetadata)
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get area", err)
	}

	var area model.InspectionArea
	if err := table.UnmarshalItem(item, &area); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal area").WithCause(err)
	}
	return &area, nil
}

// FindAllAreas returns every checklist area ordered by sort order.
func (r *CatalogRepository) FindAllAreas(ctx context.Context) ([]*model.InspectionArea, error) {
	items, err := r.store.Scan(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("scan areas", err)
	}

	var out []*model.InspectionArea
	for _, item := range items {
		if !strings.HasPrefix(table.StringAttr(item, "PK"), "INSPECTION_AREA#") ||
			table.StringAttr(item, "SK") != keys.SKMetadata {
			continue
		}
		var area model.InspectionArea
		if err := table.UnmarshalItem(item, &area); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal area").WithCause(err)
		}
		out = append(out, &area)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// SaveItem upserts a checklist item.
func (r *CatalogRepository) SaveItem(ctx context.Context, it *model.InspectionItem) error {
	it.DeriveKeys()

	item, err := table.MarshalItem(it)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal item").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save item", err)
	}
	return nil
}

// FindItemsByArea returns the checklist items of one area ordered by sort
// order.
func (r *CatalogRepository) FindItemsByArea(ctx context.Context, areaName string) ([]*model.InspectionItem, error) {
	items, err := r.store.QueryPrefix(ctx, keys.AreaPK(areaName), keys.SKPrefixItem)
	if err != nil {
		return nil, apperrors.NewStorageError("query area items", err)
	}

	out := make([]*model.InspectionItem, 0, len(items))
	for _, item := range items {
		var it model.InspectionItem
		if err := table.UnmarshalItem(item, &it); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal item").WithCause(err)
		}
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// SavePMICategory upserts a PMI category.
func (r *CatalogRepository) SavePMICategory(ctx context.Context, cat *model.PMICategory) error {
	cat.DeriveKeys()

	item, err := table.MarshalItem(cat)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal PMI category").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save PMI category", err)
	}
	return nil
}

// FindAllPMICategories returns every PMI category ordered by sort order.
// All categories live in one fixed partition, so this is a single query.
func (r *CatalogRepository) FindAllPMICategories(ctx context.Context) ([]*model.PMICategory, error) {
	items, err := r.store.QueryPrefix(ctx, keys.PMICategoryPK, keys.SKPrefixCategory)
	if err != nil {
		return nil, apperrors.NewStorageError("query PMI categories", err)
	}

	out := make([]*model.PMICategory, 0, len(items))
	for _, item := range items {
		var cat model.PMICategory
		if err := table.UnmarshalItem(item, &cat); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal PMI category").WithCause(err)
		}
		out = append(out, &cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// FindPMICategory returns one PMI category, or nil when absent.
func (r *CatalogRepository) FindPMICategory(ctx context.Context, categoryID string) (*model.PMICategory, error) {
	item, err := r.store.Get(ctx, keys.PMICategoryPK, keys.PMICategorySK(categoryID))
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get PMI category", err)
	}

	var cat model.PMICategory
	if err := table.UnmarshalItem(item, &cat); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal PMI category").WithCause(err)
	}
	return &cat, nil
}

// SavePMIItem upserts a PMI item.
func (r *CatalogRepository) SavePMIItem(ctx context.Context, it *model.PMIItem) error {
	it.DeriveKeys()

	item, err := table.MarshalItem(it)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal PMI item").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save PMI item", err)
	}
	return nil
}

// FindPMIItemsByCategory returns the PMI items of one category ordered by
// sort order.
func (r *CatalogRepository) FindPMIItemsByCategory(ctx context.Context, categoryID string) ([]*model.PMIItem, error) {
	items, err := r.store.QueryPrefix(ctx, keys.PMIItemPK(categoryID), keys.SKPrefixItem)
	if err != nil {
		return nil, apperrors.NewStorageError("query PMI items", err)
	}

	out := make([]*model.PMIItem, 0, len(items))
	for _, item := range items {
		var it model.PMIItem
		if err := table.UnmarshalItem(item, &it); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal PMI item").WithCause(err)
		}
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}
