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

// InspectorRepository persists inspectors. The enumerate-all lookup rides on
// the shared "INSPECTORS" index partition rather than a table scan.
type InspectorRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewInspectorRepository creates an InspectorRepository.
func NewInspectorRepository(store table.Store, logger *zap.Logger) *InspectorRepository {
	return &InspectorRepository{store: store, logger: logger}
}

// Save upserts the inspector.
func (r *InspectorRepository) Save(ctx context.Context, ins *model.Inspector) error {
	ins.DeriveKeys()

	item, err := table.MarshalItem(ins)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal inspector").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save inspector", err)
	}

	r.logger.Debug("inspector saved", zap.String("inspectorId", ins.InspectorID))
	return nil
}

// FindByID returns the inspector, or nil when absent.
func (r *InspectorRepository) FindByID(ctx context.Context, inspectorID string) (*model.Inspector, error) {
	item, err := r.store.Get(ctx, keys.InspectorPK(inspectorID), keys.SKMetadata)
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get inspector", err)
	}

	var ins model.Inspector
	if err := table.UnmarshalItem(item, &ins); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal inspector").WithCause(err)
	}
	return &ins, nil
}

// FindAll returns every inspector, sorted by id.
func (r *InspectorRepository) FindAll(ctx context.Context) ([]*model.Inspector, error) {
	items, err := r.store.QueryIndex(ctx, table.GSI1, keys.InspectorsGSI1PK)
	if err != nil {
		return nil, apperrors.NewStorageError("query inspectors", err)
	}

	out := make([]*model.Inspector, 0, len(items))
	for _, item := range items {
		var ins model.Inspector
		if err := table.UnmarshalItem(item, &ins); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal inspector").WithCause(err)
		}
		out = append(out, &ins)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InspectorID < out[j].InspectorID })
	return out, nil
}

// Delete removes the inspector. Deleting an absent id is a no-op.
func (r *InspectorRepository) Delete(ctx context.Context, inspectorID string) error {
	if err := r.store.Delete(ctx, keys.InspectorPK(inspectorID), keys.SKMetadata); err != nil {
		return apperrors.NewStorageError("delete inspector", err)
	}
	return nil
}
