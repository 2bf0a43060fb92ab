package model

import (
	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// Checklist response values. A Def (deficiency) response requires a scope of
// work, service id and activity code.
const (
	ResponseOK  = "OK"
	ResponseNA  = "NA"
	ResponseDef = "Def"
)

// InspectionResponse is a checklist answer for one inspection item, stored
// as a child of its inspection's partition.
//
// PK: INSPECTION#{soNumber}  SK: RESPONSE#{itemId}
type InspectionResponse struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	SONumber string `dynamodbav:"soNumber" json:"soNumber"`
	ItemID   string `dynamodbav:"itemId" json:"itemId"`
	Response string `dynamodbav:"response" json:"response"` // OK, NA or Def

	ScopeOfWork         string `dynamodbav:"scopeOfWork" json:"scopeOfWork"`
	MaterialRequired    bool   `dynamodbav:"materialRequired" json:"materialRequired"`
	MaterialDescription string `dynamodbav:"materialDescription" json:"materialDescription"`
	ServiceID           string `dynamodbav:"serviceId" json:"serviceId"`       // e.g. "100-PLUMBING"
	ActivityCode        string `dynamodbav:"activityCode" json:"activityCode"` // e.g. "703"
	TenantCharge        bool   `dynamodbav:"tenantCharge" json:"tenantCharge"`
	Urgent              bool   `dynamodbav:"urgent" json:"urgent"`
	RRP                 bool   `dynamodbav:"rrp" json:"rrp"` // lead-safe work practices required

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// NewInspectionResponse builds a response keyed under its inspection.
func NewInspectionResponse(soNumber, itemID, response string) *InspectionResponse {
	r := &InspectionResponse{
		EntityType: "InspectionResponse",
		SONumber:   soNumber,
		ItemID:     itemID,
		Response:   response,
	}
	r.DeriveKeys()
	return r
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (r *InspectionResponse) DeriveKeys() {
	r.PK = keys.InspectionPK(r.SONumber)
	r.SK = keys.ResponseSK(r.ItemID)
}

// ValidResponseType reports whether v is one of OK, NA or Def.
func ValidResponseType(v string) bool {
	return v == ResponseOK || v == ResponseNA || v == ResponseDef
}
