package model

import (
	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// PMIResponse records completion of one preventive-maintenance task for an
// inspection, stored in the inspection's partition alongside the checklist
// responses but under its own sort-key prefix.
//
// PK: INSPECTION#{soNumber}  SK: PMI#{itemId}
type PMIResponse struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	SONumber   string `dynamodbav:"soNumber" json:"soNumber"`
	ItemID     string `dynamodbav:"itemId" json:"itemId"`
	CategoryID string `dynamodbav:"categoryId" json:"categoryId"`
	Completed  bool   `dynamodbav:"completed" json:"completed"`
	Notes      string `dynamodbav:"notes" json:"notes"`

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// NewPMIResponse builds a PMI response keyed under its inspection.
func NewPMIResponse(soNumber, itemID string) *PMIResponse {
	r := &PMIResponse{
		EntityType: "PMIResponse",
		SONumber:   soNumber,
		ItemID:     itemID,
	}
	r.DeriveKeys()
	return r
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (r *PMIResponse) DeriveKeys() {
	r.PK = keys.InspectionPK(r.SONumber)
	r.SK = keys.PMIResponseSK(r.ItemID)
}

// PMICategory is reference data: one preventive-maintenance category. All
// categories share a fixed partition.
//
// PK: PMI_CATEGORY  SK: CATEGORY#{categoryId}
type PMICategory struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	CategoryID string `dynamodbav:"categoryId" json:"categoryId"`
	Name       string `dynamodbav:"name" json:"name"`
	SortOrder  int    `dynamodbav:"sortOrder" json:"sortOrder"`
	IsActive   bool   `dynamodbav:"isActive" json:"isActive"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// DeriveKeys recomputes PK/SK from the category id.
func (c *PMICategory) DeriveKeys() {
	c.PK = keys.PMICategoryPK
	c.SK = keys.PMICategorySK(c.CategoryID)
}

// PMIItem is reference data: one task within a PMI category.
//
// PK: PMI_CATEGORY#{categoryId}  SK: ITEM#{itemId}
type PMIItem struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	CategoryID  string `dynamodbav:"categoryId" json:"categoryId"`
	ItemID      string `dynamodbav:"itemId" json:"itemId"`
	Description string `dynamodbav:"description" json:"description"`
	SortOrder   int    `dynamodbav:"sortOrder" json:"sortOrder"`
	IsActive    bool   `dynamodbav:"isActive" json:"isActive"`
	CreatedAt   string `dynamodbav:"createdAt" json:"createdAt"`
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (it *PMIItem) DeriveKeys() {
	it.PK = keys.PMIItemPK(it.CategoryID)
	it.SK = keys.ItemSK(it.ItemID)
}
