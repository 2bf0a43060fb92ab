package model

import (
	"time"

	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// Inspection statuses. Transitions normally run New -> InProgress -> Closed,
// but the system does not enforce the order; any value can be set via update.
const (
	StatusNew        = "New"
	StatusInProgress = "InProgress"
	StatusClosed     = "Closed"
)

// Statuses lists every known inspection status. The dashboard fans out one
// index query per entry.
var Statuses = []string{StatusNew, StatusInProgress, StatusClosed}

// Inspection is the root entity of a service order, stored as the METADATA
// item of its partition.
//
// PK: INSPECTION#{soNumber}  SK: METADATA
// GSI1: UNIT#{unitNumber} -> INSPECTION#{soNumber}
// GSI2: STATUS#{status}   -> DATE#{startDate}
// GSI3: INSPECTOR#{id}    -> DATE#{startDate}
type Inspection struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	SONumber     string `dynamodbav:"soNumber" json:"soNumber"`
	UnitNumber   string `dynamodbav:"unitNumber" json:"unitNumber"`
	SiteCode     string `dynamodbav:"siteCode" json:"siteCode"`
	SiteName     string `dynamodbav:"siteName" json:"siteName"`
	Address      string `dynamodbav:"address" json:"address"`
	DivisionCode string `dynamodbav:"divisionCode" json:"divisionCode"`

	TenantName         string `dynamodbav:"tenantName" json:"tenantName"`
	TenantPhone        string `dynamodbav:"tenantPhone" json:"tenantPhone"`
	TenantAvailability bool   `dynamodbav:"tenantAvailability" json:"tenantAvailability"`

	BRSize      int  `dynamodbav:"brSize" json:"brSize"`
	IsHardwired bool `dynamodbav:"isHardwired" json:"isHardwired"`

	InspectorID   string `dynamodbav:"inspectorId" json:"inspectorId"`
	InspectorName string `dynamodbav:"inspectorName" json:"inspectorName"`
	VehicleTagID  string `dynamodbav:"vehicleTagId" json:"vehicleTagId"`

	Status         string `dynamodbav:"status" json:"status"`
	StartDate      string `dynamodbav:"startDate" json:"startDate"` // YYYY-MM-DD
	StartTime      string `dynamodbav:"startTime" json:"startTime"` // HH:mm:ss
	EndDate        string `dynamodbav:"endDate" json:"endDate"`
	EndTime        string `dynamodbav:"endTime" json:"endTime"`
	SubmitTime     string `dynamodbav:"submitTime" json:"submitTime"` // RFC 3339
	CompletionDate string `dynamodbav:"completionDate" json:"completionDate"`

	SmokeDetectorsCount int `dynamodbav:"smokeDetectorsCount" json:"smokeDetectorsCount"`
	CODetectorsCount    int `dynamodbav:"coDetectorsCount" json:"coDetectorsCount"`

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt string `dynamodbav:"updatedAt" json:"updatedAt"`

	GSI1PK string `dynamodbav:"GSI1PK,omitempty" json:"-"`
	GSI1SK string `dynamodbav:"GSI1SK,omitempty" json:"-"`
	GSI2PK string `dynamodbav:"GSI2PK,omitempty" json:"-"`
	GSI2SK string `dynamodbav:"GSI2SK,omitempty" json:"-"`
	GSI3PK string `dynamodbav:"GSI3PK,omitempty" json:"-"`
	GSI3SK string `dynamodbav:"GSI3SK,omitempty" json:"-"`
}

// NewInspection returns an inspection with default status and timestamps.
func NewInspection(soNumber string) *Inspection {
	now := time.Now().UTC().Format(time.RFC3339)
	insp := &Inspection{
		EntityType:         "Inspection",
		SONumber:           soNumber,
		Status:             StatusNew,
		TenantAvailability: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	insp.DeriveKeys()
	return insp
}

// DeriveKeys recomputes PK/SK and all GSI attributes from the current
// natural-id fields. Must be called before every save: a stale GSI2PK after
// a status change would leave the item queryable under the old status.
func (i *Inspection) DeriveKeys() {
	i.PK = keys.InspectionPK(i.SONumber)
	i.SK = keys.InspectionSK()
	i.GSI1PK = keys.InspectionGSI1PK(i.UnitNumber)
	i.GSI1SK = keys.InspectionGSI1SK(i.SONumber)
	i.GSI2PK = keys.InspectionGSI2PK(i.Status)
	i.GSI2SK = keys.InspectionGSI2SK(i.StartDate)
	i.GSI3PK = keys.InspectionGSI3PK(i.InspectorID)
	i.GSI3SK = keys.InspectionGSI3SK(i.StartDate)
}

// ValidStatus reports whether s is one of the known inspection statuses.
func ValidStatus(s string) bool {
	return s == StatusNew || s == StatusInProgress || s == StatusClosed
}
