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

// SignatureRepository persists signature metadata under the SIGNATURE#
// prefix of an inspection's partition.
type SignatureRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewSignatureRepository creates a SignatureRepository.
func NewSignatureRepository(store table.Store, logger *zap.Logger) *SignatureRepository {
	return &SignatureRepository{store: store, logger: logger}
}

// Save upserts the signature record.
func (r *SignatureRepository) Save(ctx context.Context, sig *model.InspectionSignature) error {
	sig.DeriveKeys()

	item, err := table.MarshalItem(sig)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal signature").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save signature", err)
	}

	r.logger.Debug("signature saved",
		zap.String("soNumber", sig.SONumber),
		zap.String("signatureId", sig.SignatureID),
		zap.String("type", sig.SignatureType),
	)
	return nil
}

// FindByID returns one signature record, or nil when absent.
func (r *SignatureRepository) FindByID(ctx context.Context, soNumber, signatureID string) (*model.InspectionSignature, error) {
	item, err := r.store.Get(ctx, keys.InspectionPK(soNumber), keys.SignatureSK(signatureID))
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get signature", err)
	}

	var sig model.InspectionSignature
	if err := table.UnmarshalItem(item, &sig); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal signature").WithCause(err)
	}
	return &sig, nil
}

// FindByInspection returns all signature records of an inspection, most
// recent first.
func (r *SignatureRepository) FindByInspection(ctx context.Context, soNumber string) ([]*model.InspectionSignature, error) {
	items, err := r.store.QueryPrefix(ctx, keys.InspectionPK(soNumber), keys.SKPrefixSignature)
	if err != nil {
		return nil, apperrors.NewStorageError("query signatures", err)
	}

	out := make([]*model.InspectionSignature, 0, len(items))
	for _, item := range items {
		var sig model.InspectionSignature
		if err := table.UnmarshalItem(item, &sig); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal signature").WithCause(err)
		}
		out = append(out, &sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SignedAt > out[j].SignedAt })
	return out, nil
}

// Delete removes one signature record. Deleting an absent id is a no-op.
func (r *SignatureRepository) Delete(ctx context.Context, soNumber, signatureID string) error {
	if err := r.store.Delete(ctx, keys.InspectionPK(soNumber), keys.SignatureSK(signatureID)); err != nil {
		return apperrors.NewStorageError("delete signature", err)
	}
	return nil
}
