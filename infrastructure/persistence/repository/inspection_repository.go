// Package repository maps domain entities onto the single-table store. Each
// repository owns one entity family and the fixed set of access patterns its
// keys support. Lookups for absent entities return (nil, nil); only storage
// failures surface as errors.
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

// InspectionRepository persists inspections and serves the by-status,
// by-inspector and by-unit index lookups behind the dashboard and the
// mobile client's work queue.
type InspectionRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewInspectionRepository creates an InspectionRepository.
func NewInspectionRepository(store table.Store, logger *zap.Logger) *InspectionRepository {
	return &InspectionRepository{store: store, logger: logger}
}

// Save upserts the inspection. Keys are re-derived from the current field
// values immediately before the write so that index attributes can never go
// stale after a status or inspector change.
func (r *InspectionRepository) Save(ctx context.Context, insp *model.Inspection) error {
	insp.DeriveKeys()

	item, err := table.MarshalItem(insp)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal inspection").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save inspection", err)
	}

	r.logger.Debug("inspection saved",
		zap.String("soNumber", insp.SONumber),
		zap.String("status", insp.Status),
	)
	return nil
}

// FindBySONumber returns the inspection, or nil when absent.
func (r *InspectionRepository) FindBySONumber(ctx context.Context, soNumber string) (*model.Inspection, error) {
	item, err := r.store.Get(ctx, keys.InspectionPK(soNumber), keys.InspectionSK())
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get inspection", err)
	}
	return unmarshalInspection(item)
}

// FindByStatus returns every inspection in the given status, sorted by start
// date ascending. Index reads are eventually consistent; a just-changed
// status may briefly appear under its previous value.
func (r *InspectionRepository) FindByStatus(ctx context.Context, status string) ([]*model.Inspection, error) {
	items, err := r.store.QueryIndex(ctx, table.GSI2, keys.InspectionGSI2PK(status))
	if err != nil {
		return nil, apperrors.NewStorageError("query inspections by status", err)
	}
	return unmarshalInspections(items)
}

// FindByInspectorID returns every inspection assigned to the inspector,
// sorted by start date ascending.
func (r *InspectionRepository) FindByInspectorID(ctx context.Context, inspectorID string) ([]*model.Inspection, error) {
	items, err := r.store.QueryIndex(ctx, table.GSI3, keys.InspectionGSI3PK(inspectorID))
	if err != nil {
		return nil, apperrors.NewStorageError("query inspections by inspector", err)
	}
	return unmarshalInspections(items)
}

// FindByUnit returns the inspection history of a unit, sorted by start date
// ascending.
func (r *InspectionRepository) FindByUnit(ctx context.Context, unitNumber string) ([]*model.Inspection, error) {
	items, err := r.store.QueryIndex(ctx, table.GSI1, keys.InspectionGSI1PK(unitNumber))
	if err != nil {
		return nil, apperrors.NewStorageError("query inspections by unit", err)
	}
	return unmarshalInspections(items)
}

// FindAll returns every inspection in the table, sorted by start date
// ascending. No index serves this pattern, so it scans; callers paginate at
// the service layer.
func (r *InspectionRepository) FindAll(ctx context.Context) ([]*model.Inspection, error) {
	items, err := r.store.Scan(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("scan inspections", err)
	}

	var out []*model.Inspection
	for _, item := range items {
		if !isInspectionMetadata(item) {
			continue
		}
		insp, err := unmarshalInspection(item)
		if err != nil {
			return nil, err
		}
		out = append(out, insp)
	}
	sortInspections(out)
	return out, nil
}

// Delete removes the inspection metadata item only; child records remain.
// Deleting an absent inspection is a no-op.
func (r *InspectionRepository) Delete(ctx context.Context, soNumber string) error {
	if err := r.store.Delete(ctx, keys.InspectionPK(soNumber), keys.InspectionSK()); err != nil {
		return apperrors.NewStorageError("delete inspection", err)
	}
	return nil
}

// Purge removes the whole inspection partition: metadata plus every
// response, PMI response, image and signature. Best effort, not atomic; a
// mid-purge failure can leave a partial partition behind, and rerunning the
// purge completes it.
func (r *InspectionRepository) Purge(ctx context.Context, soNumber string) (int, error) {
	pk := keys.InspectionPK(soNumber)
	items, err := r.store.QueryPartition(ctx, pk)
	if err != nil {
		return 0, apperrors.NewStorageError("query inspection partition", err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	sks := make([]string, 0, len(items))
	for _, item := range items {
		sks = append(sks, table.StringAttr(item, "SK"))
	}
	if err := r.store.BatchDelete(ctx, pk, sks); err != nil {
		return 0, apperrors.NewStorageError("purge inspection", err)
	}

	r.logger.Info("inspection purged",
		zap.String("soNumber", soNumber),
		zap.Int("itemsDeleted", len(sks)),
	)
	return len(sks), nil
}

func isInspectionMetadata(item table.Item) bool {
	return strings.HasPrefix(table.StringAttr(item, "PK"), "INSPECTION#") &&
		table.StringAttr(item, "SK") == keys.SKMetadata
}

func unmarshalInspection(item table.Item) (*model.Inspection, error) {
	var insp model.Inspection
	if err := table.UnmarshalItem(item, &insp); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal inspection").WithCause(err)
	}
	return &insp, nil
}

func unmarshalInspections(items []table.Item) ([]*model.Inspection, error) {
	out := make([]*model.Inspection, 0, len(items))
	for _, item := range items {
		insp, err := unmarshalInspection(item)
		if err != nil {
			return nil, err
		}
		out = append(out, insp)
	}
	sortInspections(out)
	return out, nil
}

// sortInspections orders by start date ascending, then SO number for a
// stable order among same-day inspections. Dates are ISO strings, so
// lexicographic comparison matches chronological order.
func sortInspections(list []*model.Inspection) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].StartDate != list[j].StartDate {
			return list[i].StartDate < list[j].StartDate
		}
		return list[i].SONumber < list[j].SONumber
	})
}
