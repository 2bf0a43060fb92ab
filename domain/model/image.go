package model

import (
	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// InspectionImage holds photo metadata for an inspection. The bytes live in
// the external blob store; only the returned URLs and size are persisted.
//
// PK: INSPECTION#{soNumber}  SK: IMAGE#{imageId}
type InspectionImage struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	ImageID  string `dynamodbav:"imageId" json:"imageId"`
	SONumber string `dynamodbav:"soNumber" json:"soNumber"`
	ItemID   string `dynamodbav:"itemId" json:"itemId"` // optional item association

	ImageURL     string `dynamodbav:"imageUrl" json:"imageUrl"`
	ThumbnailURL string `dynamodbav:"thumbnailUrl" json:"thumbnailUrl"`
	Caption      string `dynamodbav:"caption" json:"caption"`
	UploadedAt   string `dynamodbav:"uploadedAt" json:"uploadedAt"`
	FileSize     int    `dynamodbav:"fileSize" json:"fileSize"`
	MimeType     string `dynamodbav:"mimeType" json:"mimeType"`
}

// NewInspectionImage builds an image record keyed under its inspection.
func NewInspectionImage(soNumber, imageID string) *InspectionImage {
	img := &InspectionImage{
		EntityType: "InspectionImage",
		ImageID:    imageID,
		SONumber:   soNumber,
	}
	img.DeriveKeys()
	return img
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (img *InspectionImage) DeriveKeys() {
	img.PK = keys.InspectionPK(img.SONumber)
	img.SK = keys.ImageSK(img.ImageID)
}
