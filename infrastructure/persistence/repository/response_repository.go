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

// ResponseRepository persists checklist responses inside their inspection's
// partition. The RESPONSE# sort-key prefix keeps them disjoint from the
// PMI, image and signature records sharing the partition.
type ResponseRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewResponseRepository creates a ResponseRepository.
func NewResponseRepository(store table.Store, logger *zap.Logger) *ResponseRepository {
	return &ResponseRepository{store: store, logger: logger}
}

// Save upserts the response. Saving the same (soNumber, itemId) twice
// overwrites; an inspector correcting an answer replaces the old one.
func (r *ResponseRepository) Save(ctx context.Context, resp *model.InspectionResponse) error {
	resp.DeriveKeys()

	item, err := table.MarshalItem(resp)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal response").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save response", err)
	}

	r.logger.Debug("response saved",
		zap.String("soNumber", resp.SONumber),
		zap.String("itemId", resp.ItemID),
		zap.String("response", resp.Response),
	)
	return nil
}

// FindByInspectionAndItem returns one response, or nil when absent.
func (r *ResponseRepository) FindByInspectionAndItem(ctx context.Context, soNumber, itemID string) (*model.InspectionResponse, error) {
	item, err := r.store.Get(ctx, keys.InspectionPK(soNumber), keys.ResponseSK(itemID))
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get response", err)
	}

	var resp model.InspectionResponse
	if err := table.UnmarshalItem(item, &resp); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal response").WithCause(err)
	}
	return &resp, nil
}

// FindByInspection returns all checklist responses of an inspection, sorted
// by item id.
func (r *ResponseRepository) FindByInspection(ctx context.Context, soNumber string) ([]*model.InspectionResponse, error) {
	items, err := r.store.QueryPrefix(ctx, keys.InspectionPK(soNumber), keys.SKPrefixResponse)
	if err != nil {
		return nil, apperrors.NewStorageError("query responses", err)
	}

	out := make([]*model.InspectionResponse, 0, len(items))
	for _, item := range items {
		var resp model.InspectionResponse
		if err := table.UnmarshalItem(item, &resp); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal response").WithCause(err)
		}
		out = append(out, &resp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

// Delete removes one response. Deleting an absent item is a no-op.
func (r *ResponseRepository) Delete(ctx context.Context, soNumber, itemID string) error {
	if err := r.store.Delete(ctx, keys.InspectionPK(soNumber), keys.ResponseSK(itemID)); err != nil {
		return apperrors.NewStorageError("delete response", err)
	}
	return nil
}
