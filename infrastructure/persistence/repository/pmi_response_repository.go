package repository

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/table"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// PMIResponseRepository persists preventive-maintenance responses under the
// PMI# prefix of their inspection's partition.
type PMIResponseRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewPMIResponseRepository creates a PMIResponseRepository.
func NewPMIResponseRepository(store table.Store, logger *zap.Logger) *PMIResponseRepository {
	return &PMIResponseRepository{store: store, logger: logger}
}

// Save upserts the PMI response.
func (r *PMIResponseRepository) Save(ctx context.Context, resp *model.PMIResponse) error {
	resp.DeriveKeys()

	item, err := table.MarshalItem(resp)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal PMI response").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save PMI response", err)
	}

	r.logger.Debug("PMI response saved",
		zap.String("soNumber", resp.SONumber),
		zap.String("itemId", resp.ItemID),
		zap.Bool("completed", resp.Completed),
	)
	return nil
}

// FindByInspectionAndItem returns one PMI response, or nil when absent.
func (r *PMIResponseRepository) FindByInspectionAndItem(ctx context.Context, soNumber, itemID string) (*model.PMIResponse, error) {
	item, err := r.store.Get(ctx, keys.InspectionPK(soNumber), keys.PMIResponseSK(itemID))
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get PMI response", err)
	}

	var resp model.PMIResponse
	if err := table.UnmarshalItem(item, &resp); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal PMI response").WithCause(err)
	}
	return &resp, nil
}

// FindByInspection returns all PMI responses of an inspection, sorted by
// item id.
func (r *PMIResponseRepository) FindByInspection(ctx context.Context, soNumber string) ([]*model.PMIResponse, error) {
	items, err := r.store.QueryPrefix(ctx, keys.InspectionPK(soNumber), keys.SKPrefixPMI)
	if err != nil {
		return nil, apperrors.NewStorageError("query PMI responses", err)
	}

	out := make([]*model.PMIResponse, 0, len(items))
	for _, item := range items {
		var resp model.PMIResponse
		if err := table.UnmarshalItem(item, &resp); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal PMI response").WithCause(err)
		}
		out = append(out, &resp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// Delete removes one PMI response. Deleting an absent item is a no-op.
func (r *PMIResponseRepository) Delete(ctx context.Context, soNumber, itemID string) error {
	if err := r.store.Delete(ctx, keys.InspectionPK(soNumber), keys.PMIResponseSK(itemID)); err != nil {
		return apperrors.NewStorageError("delete PMI response", err)
	}
	return nil
}
