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

// ImageRepository persists image metadata under the IMAGE# prefix of an
// inspection's partition. Image bytes never touch the table.
type ImageRepository struct {
	store  table.Store
	logger *zap.Logger
}

// NewImageRepository creates an ImageRepository.
func NewImageRepository(store table.Store, logger *zap.Logger) *ImageRepository {
	return &ImageRepository{store: store, logger: logger}
}

// Save upserts the image record.
func (r *ImageRepository) Save(ctx context.Context, img *model.InspectionImage) error {
	img.DeriveKeys()

	item, err := table.MarshalItem(img)
	if err != nil {
		return apperrors.NewInternalError("failed to marshal image").WithCause(err)
	}
	if err := r.store.Put(ctx, item); err != nil {
		return apperrors.NewStorageError("save image", err)
	}

	r.logger.Debug("image saved",
		zap.String("soNumber", img.SONumber),
		zap.String("imageId", img.ImageID),
	)
	return nil
}

// FindByID returns one image record, or nil when absent.
func (r *ImageRepository) FindByID(ctx context.Context, soNumber, imageID string) (*model.InspectionImage, error) {
	item, err := r.store.Get(ctx, keys.InspectionPK(soNumber), keys.ImageSK(imageID))
	if err != nil {
		if errors.Is(err, table.ErrItemNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError("get image", err)
	}

	var img model.InspectionImage
	if err := table.UnmarshalItem(item, &img); err != nil {
		return nil, apperrors.NewInternalError("failed to unmarshal image").WithCause(err)
	}
	return &img, nil
}

// FindByInspection returns all image records of an inspection, most recent
// upload first.
func (r *ImageRepository) FindByInspection(ctx context.Context, soNumber string) ([]*model.InspectionImage, error) {
	items, err := r.store.QueryPrefix(ctx, keys.InspectionPK(soNumber), keys.SKPrefixImage)
	if err != nil {
		return nil, apperrors.NewStorageError("query images", err)
	}

	out := make([]*model.InspectionImage, 0, len(items))
	for _, item := range items {
		var img model.InspectionImage
		if err := table.UnmarshalItem(item, &img); err != nil {
			return nil, apperrors.NewInternalError("failed to unmarshal image").WithCause(err)
		}
		out = append(out, &img)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt > out[j].UploadedAt })
	return out, nil
}

// Delete removes one image record. Deleting an absent id is a no-op.
func (r *ImageRepository) Delete(ctx context.Context, soNumber, imageID string) error {
	if err := r.store.Delete(ctx, keys.InspectionPK(soNumber), keys.ImageSK(imageID)); err != nil {
		return apperrors.NewStorageError("delete image", err)
	}
	return nil
}
