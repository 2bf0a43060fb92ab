package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/blob"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// ImageService handles photo uploads for inspections: bytes go to the blob
// store, the returned URLs and metadata go to the table.
type ImageService struct {
	images      *repository.ImageRepository
	inspections *repository.InspectionRepository
	blobs       blob.Store
	logger      *zap.Logger
}

// NewImageService creates an ImageService.
func NewImageService(images *repository.ImageRepository, inspections *repository.InspectionRepository, blobs blob.Store, logger *zap.Logger) *ImageService {
	return &ImageService{images: images, inspections: inspections, blobs: blobs, logger: logger}
}

// UploadImageRequest carries one photo upload.
type UploadImageRequest struct {
	ImageData string `json:"imageData" validate:"required"` // base64
	ItemID    string `json:"itemId"`
	Caption   string `json:"caption"`
	MimeType  string `json:"mimeType"`
}

// Upload stores a photo for an inspection and records its metadata.
func (s *ImageService) Upload(ctx context.Context, soNumber string, req *UploadImageRequest) (*model.InspectionImage, error) {
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

	imageID := "IMG" + shortID()
	stored, err := s.blobs.StoreImage(ctx, imageID, req.ImageData)
	if err != nil {
		return nil, apperrors.NewUnavailableError("image storage").WithCause(err)
	}

	img := model.NewInspectionImage(soNumber, imageID)
	img.ItemID = req.ItemID
	img.Caption = req.Caption
	img.MimeType = req.MimeType
	if img.MimeType == "" {
		img.MimeType = "image/jpeg"
	}
	img.ImageURL = stored.URL
	img.ThumbnailURL = stored.ThumbnailURL
	img.FileSize = stored.SizeBytes
	img.UploadedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.images.Save(ctx, img); err != nil {
		return nil, err
	}

	s.logger.Info("image uploaded",
		zap.String("soNumber", soNumber),
		zap.String("imageId", imageID),
		zap.Int("fileSize", img.FileSize),
	)
	return img, nil
}

// Get returns one image record.
func (s *ImageService) Get(ctx context.Context, soNumber, imageID string) (*model.InspectionImage, error) {
	img, err := s.images.FindByID(ctx, soNumber, imageID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, apperrors.NewNotFoundError("image " + imageID)
	}
	return img, nil
}

// List returns an inspection's images, most recent upload first.
func (s *ImageService) List(ctx context.Context, soNumber string) ([]*model.InspectionImage, error) {
	return s.images.FindByInspection(ctx, soNumber)
}

// Delete removes one image record. The blob itself is left to the store's
// retention policy.
func (s *ImageService) Delete(ctx context.Context, soNumber, imageID string) error {
	if _, err := s.Get(ctx, soNumber, imageID); err != nil {
		return err
	}
	return s.images.Delete(ctx, soNumber, imageID)
}

// shortID returns the first eight hex characters of a UUID, uppercased.
// Uniqueness is per inspection partition, where a few dozen records make
// collisions a non-concern.
func shortID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
