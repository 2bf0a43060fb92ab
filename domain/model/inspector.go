package model

import (
	"time"

	"github.com/Pratham-mehta/pha-inspection-system/domain/keys"
)

// Inspector is a login-capable field user.
//
// PK: INSPECTOR#{inspectorId}  SK: METADATA
// GSI1: INSPECTORS -> INSPECTOR#{inspectorId} (enumerate-all pattern)
type Inspector struct {
	PK         string `dynamodbav:"PK" json:"-"`
	SK         string `dynamodbav:"SK" json:"-"`
	EntityType string `dynamodbav:"EntityType" json:"-"`

	InspectorID  string `dynamodbav:"inspectorId" json:"inspectorId"`
	Name         string `dynamodbav:"name" json:"name"`
	VehicleTagID string `dynamodbav:"vehicleTagId" json:"vehicleTagId"`
	Active       bool   `dynamodbav:"active" json:"active"`

	// bcrypt hash, stored inline; never serialized to clients
	Password string `dynamodbav:"password" json:"-"`

	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`

	GSI1PK string `dynamodbav:"GSI1PK,omitempty" json:"-"`
	GSI1SK string `dynamodbav:"GSI1SK,omitempty" json:"-"`
}

// NewInspector returns an active inspector with timestamps set.
func NewInspector(inspectorID string) *Inspector {
	ins := &Inspector{
		EntityType:  "Inspector",
		InspectorID: inspectorID,
		Active:      true,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	ins.DeriveKeys()
	return ins
}

// DeriveKeys recomputes PK/SK and GSI attributes from the inspector id.
func (i *Inspector) DeriveKeys() {
	i.PK = keys.InspectorPK(i.InspectorID)
	i.SK = keys.SKMetadata
	i.GSI1PK = keys.InspectorsGSI1PK
	i.GSI1SK = keys.InspectorGSI1SK(i.InspectorID)
}
