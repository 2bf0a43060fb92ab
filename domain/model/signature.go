package model

import (
	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// Signature types accepted on upload.
const (
	SignatureTypeInspector = "inspector"
	SignatureTypeTenant    = "tenant"
)

// InspectionSignature holds sign-off metadata for an inspection.
//
// PK: INSPECTION#{soNumber}  SK: SIGNATURE#{signatureId}
type InspectionSignature struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	SignatureID string `dynamodbav:"signatureId" json:"signatureId"`
	SONumber    string `dynamodbav:"soNumber" json:"soNumber"`

	SignatureURL  string `dynamodbav:"signatureUrl" json:"signatureUrl"`
	SignatureType string `dynamodbav:"signatureType" json:"signatureType"` // inspector or tenant
	SignedBy      string `dynamodbav:"signedBy" json:"signedBy"`
	SignedAt      string `dynamodbav:"signedAt" json:"signedAt"`
	FileSize      int    `dynamodbav:"fileSize" json:"fileSize"`
}

// NewInspectionSignature builds a signature record keyed under its inspection.
func NewInspectionSignature(soNumber, signatureID string) *InspectionSignature {
	sig := &InspectionSignature{
		EntityType:  "InspectionSignature",
		SignatureID: signatureID,
		SONumber:    soNumber,
	}
	sig.DeriveKeys()
	return sig
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (sig *InspectionSignature) DeriveKeys() {
	sig.PK = keys.InspectionPK(sig.SONumber)
	sig.SK = keys.SignatureSK(sig.SignatureID)
}
