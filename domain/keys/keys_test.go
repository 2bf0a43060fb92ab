package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectionKeys(t *testing.T) {
	assert.Equal(t, "INSPECTION#3184948", InspectionPK("3184948"))
	assert.Equal(t, "METADATA", InspectionSK())
	assert.Equal(t, "UNIT#901-A12", InspectionGSI1PK("901-A12"))
	assert.Equal(t, "INSPECTION#3184948", InspectionGSI1SK("3184948"))
	assert.Equal(t, "STATUS#New", InspectionGSI2PK("New"))
	assert.Equal(t, "DATE#2025-05-02", InspectionGSI2SK("2025-05-02"))
	assert.Equal(t, "INSPECTOR#INS001", InspectionGSI3PK("INS001"))
	assert.Equal(t, "DATE#2025-05-02", InspectionGSI3SK("2025-05-02"))
}

func TestInspectorKeys(t *testing.T) {
	assert.Equal(t, "INSPECTOR#INS001", InspectorPK("INS001"))
	assert.Equal(t, "INSPECTOR#INS001", InspectorGSI1SK("INS001"))
	assert.Equal(t, "INSPECTORS", InspectorsGSI1PK)
}

func TestItemCollectionKeys(t *testing.T) {
	assert.Equal(t, "RESPONSE#SB001", ResponseSK("SB001"))
	assert.Equal(t, "PMI#PMI001", PMIResponseSK("PMI001"))
	assert.Equal(t, "IMAGE#IMG1A2B3C4D", ImageSK("IMG1A2B3C4D"))
	assert.Equal(t, "SIGNATURE#SIG1A2B3C4D", SignatureSK("SIG1A2B3C4D"))
}

func TestCatalogKeys(t *testing.T) {
	assert.Equal(t, "INSPECTION_AREA#Kitchen", AreaPK("Kitchen"))
	assert.Equal(t, "ITEM#K001", ItemSK("K001"))
	assert.Equal(t, "CATEGORY#CAT001", PMICategorySK("CAT001"))
	assert.Equal(t, "PMI_CATEGORY#CAT001", PMIItemPK("CAT001"))
}

// Natural ids are opaque strings; a '#' inside one is carried through
// verbatim rather than treated as a delimiter.
func TestKeysPreserveHashInNaturalID(t *testing.T) {
	assert.Equal(t, "UNIT#BLDG#4-2", InspectionGSI1PK("BLDG#4-2"))
	assert.Equal(t, "RESPONSE#A#B", ResponseSK("A#B"))
}

func TestKeysEmptyIDYieldsEmptyKey(t *testing.T) {
	assert.Empty(t, InspectionPK(""))
	assert.Empty(t, InspectionGSI1PK(""))
	assert.Empty(t, InspectionGSI2PK(""))
	assert.Empty(t, InspectorPK(""))
	assert.Empty(t, ResponseSK(""))
	assert.Empty(t, AreaPK(""))
	assert.Empty(t, PMIItemPK(""))
}
