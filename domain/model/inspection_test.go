package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInspection_Defaults(t *testing.T) {
	insp := NewInspection("3184948")

	assert.Equal(t, StatusNew, insp.Status)
	assert.True(t, insp.TenantAvailability)
	assert.Equal(t, "Inspection", insp.EntityType)
	assert.Equal(t, "INSPECTION#3184948", insp.PK)
	assert.Equal(t, "METADATA", insp.SK)
	assert.NotEmpty(t, insp.CreatedAt)
}

// Key derivation is explicit: mutating fields leaves the keys untouched
// until DeriveKeys runs, and a rerun fully re-points every index attribute.
func TestInspection_DeriveKeys_FollowsFieldChanges(t *testing.T) {
	insp := NewInspection("3184948")
	insp.UnitNumber = "901-A12"
	insp.InspectorID = "INS001"
	insp.StartDate = "2025-05-02"

	assert.Empty(t, insp.GSI1PK)

	insp.DeriveKeys()
	assert.Equal(t, "UNIT#901-A12", insp.GSI1PK)
	assert.Equal(t, "STATUS#New", insp.GSI2PK)
	assert.Equal(t, "INSPECTOR#INS001", insp.GSI3PK)
	assert.Equal(t, "DATE#2025-05-02", insp.GSI2SK)

	insp.Status = StatusClosed
	assert.Equal(t, "STATUS#New", insp.GSI2PK)

	insp.DeriveKeys()
	assert.Equal(t, "STATUS#Closed", insp.GSI2PK)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusNew))
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusClosed))
	assert.False(t, ValidStatus("new"))
	assert.False(t, ValidStatus("Done"))
	assert.False(t, ValidStatus(""))
}

func TestValidResponseType(t *testing.T) {
	assert.True(t, ValidResponseType(ResponseOK))
	assert.True(t, ValidResponseType(ResponseNA))
	assert.True(t, ValidResponseType(ResponseDef))
	assert.False(t, ValidResponseType("ok"))
	assert.False(t, ValidResponseType("Deficiency"))
}
