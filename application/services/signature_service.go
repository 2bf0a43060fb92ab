package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/domain/model"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/persistence/repository"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/blob"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/utils"
)

// SignatureService handles inspector and tenant sign-offs.
type SignatureService struct {
	signatures  *repository.SignatureRepository
	inspections *repository.InspectionRepository
	blobs       blob.Store
	logger      *zap.Logger
}

// NewSignatureService creates a SignatureService.
func NewSignatureService(signatures *repository.SignatureRepository, inspections *repository.InspectionRepository, blobs blob.Store, logger *zap.Logger) *SignatureService {
	return &SignatureService{signatures: signatures, inspections: inspections, blobs: blobs, logger: logger}
}

// UploadSignatureRequest carries one sign-off.
type UploadSignatureRequest struct {
	SignatureData string `json:"signatureData" validate:"required"` // base64
	SignatureType string `json:"signatureType" validate:"required,oneof=inspector tenant"`
	SignedBy      string `json:"signedBy"`
}

// Upload stores a sign-off for an inspection and records its metadata.
func (s *SignatureService) Upload(ctx context.Context, soNumber string, req *UploadSignatureRequest) (*model.InspectionSignature, error) {
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

	signatureID := "SIG" + shortID()
	stored, err := s.blobs.StoreSignature(ctx, signatureID, req.SignatureData)
	if err != nil {
		return nil, apperrors.NewUnavailableError("signature storage").WithCause(err)
	}

	sig := model.NewInspectionSignature(soNumber, signatureID)
	sig.SignatureType = req.SignatureType
	sig.SignedBy = req.SignedBy
	sig.SignatureURL = stored.URL
	sig.FileSize = stored.SizeBytes
	sig.SignedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.signatures.Save(ctx, sig); err != nil {
		return nil, err
	}

	s.logger.Info("signature uploaded",
		zap.String("soNumber", soNumber),
		zap.String("signatureId", signatureID),
		zap.String("type", sig.SignatureType),
	)
	return sig, nil
}

// Get returns one signature record.
func (s *SignatureService) Get(ctx context.Context, soNumber, signatureID string) (*model.InspectionSignature, error) {
	sig, err := s.signatures.FindByID(ctx, soNumber, signatureID)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, apperrors.NewNotFoundError("signature " + signatureID)
	}
	return sig, nil
}

// List returns an inspection's signatures, most recent first.
func (s *SignatureService) List(ctx context.Context, soNumber string) ([]*model.InspectionSignature, error) {
	return s.signatures.FindByInspection(ctx, soNumber)
}

// Delete removes one signature record.
func (s *SignatureService) Delete(ctx context.Context, soNumber, signatureID string) error {
	if _, err := s.Get(ctx, soNumber, signatureID); err != nil {
		return err
	}
	return s.signatures.Delete(ctx, soNumber, signatureID)
}
