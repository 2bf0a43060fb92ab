package model

import (
	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// InspectionArea is reference data: one checklist area (Kitchen, Bathroom...).
//
// PK: INSPECTION_AREA#{areaName}  SK: METADATA
type InspectionArea struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	AreaName  string `dynamodbav:"areaName" json:"areaName"`
	SortOrder int    `dynamodbav:"sortOrder" json:"sortOrder"`
	IsActive  bool   `dynamodbav:"isActive" json:"isActive"`
}

// DeriveKeys recomputes PK/SK from the area name.
func (a *InspectionArea) DeriveKeys() {
	a.PK = keys.AreaPK(a.AreaName)
	a.SK = keys.SKMetadata
}

// InspectionItem is reference data: one checklist item within an area.
//
// PK: INSPECTION_AREA#{areaName}  SK: ITEM#{itemId}
type InspectionItem struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	ItemID      string `dynamodbav:"itemId" json:"itemId"` // e.g. "K001", "B001"
	AreaName    string `dynamodbav:"areaName" json:"areaName"`
	Description string `dynamodbav:"description" json:"description"`
	SortOrder   int    `dynamodbav:"sortOrder" json:"sortOrder"`
	IsActive    bool   `dynamodbav:"isActive" json:"isActive"`
}

// DeriveKeys recomputes PK/SK from the natural ids.
func (it *InspectionItem) DeriveKeys() {
	it.PK = keys.AreaPK(it.AreaName)
	it.SK = keys.ItemSK(it.ItemID)
}
