// Package keys derives the partition, sort and index key strings for every
// entity stored in the single inspections table.
//
// The whole table shares one key convention: "{ENTITY_TAG}#{naturalId}".
// Derivation is pure and deterministic so that re-deriving keys after a
// field change can never diverge from a freshly constructed entity built
// from the same fields. An empty natural id yields an empty key; callers
// are responsible for supplying natural ids before persisting.
package keys

// Sort key used by all single-item entities (inspection metadata,
// inspectors, areas).
const SKMetadata = "METADATA"

// Sort key prefixes partitioning an inspection's item collection into
// disjoint sub-types.
const (
	SKPrefixResponse  = "RESPONSE#"
	SKPrefixPMI       = "PMI#"
	SKPrefixImage     = "IMAGE#"
	SKPrefixSignature = "SIGNATURE#"
	SKPrefixItem      = "ITEM#"
	SKPrefixCategory  = "CATEGORY#"
)

// GSI1PK value shared by all inspectors, enabling the enumerate-all pattern.
const InspectorsGSI1PK = "INSPECTORS"

// Fixed partition holding every PMI category.
const PMICategoryPK = "PMI_CATEGORY"

func tagged(tag, id string) string {
	if id == "" {
		return ""
	}
	return tag + "#" + id
}

// InspectionPK returns "INSPECTION#{soNumber}".
func InspectionPK(soNumber string) string { return tagged("INSPECTION", soNumber) }

// InspectionSK returns the inspection metadata sort key.
func InspectionSK() string { return SKMetadata }

// InspectionGSI1PK returns "UNIT#{unitNumber}" for by-unit lookups.
func InspectionGSI1PK(unitNumber string) string { return tagged("UNIT", unitNumber) }

// InspectionGSI1SK returns "INSPECTION#{soNumber}".
func InspectionGSI1SK(soNumber string) string { return tagged("INSPECTION", soNumber) }

// InspectionGSI2PK returns "STATUS#{status}" for by-status lookups.
func InspectionGSI2PK(status string) string { return tagged("STATUS", status) }

// InspectionGSI2SK returns "DATE#{startDate}".
func InspectionGSI2SK(startDate string) string { return tagged("DATE", startDate) }

// InspectionGSI3PK returns "INSPECTOR#{inspectorId}" for by-inspector lookups.
func InspectionGSI3PK(inspectorID string) string { return tagged("INSPECTOR", inspectorID) }

// InspectionGSI3SK returns "DATE#{startDate}".
func InspectionGSI3SK(startDate string) string { return tagged("DATE", startDate) }

// InspectorPK returns "INSPECTOR#{inspectorId}".
func InspectorPK(inspectorID string) string { return tagged("INSPECTOR", inspectorID) }

// InspectorGSI1SK returns "INSPECTOR#{inspectorId}".
func InspectorGSI1SK(inspectorID string) string { return tagged("INSPECTOR", inspectorID) }

// ResponseSK returns "RESPONSE#{itemId}".
func ResponseSK(itemID string) string { return tagged("RESPONSE", itemID) }

// PMIResponseSK returns "PMI#{itemId}".
func PMIResponseSK(itemID string) string { return tagged("PMI", itemID) }

// ImageSK returns "IMAGE#{imageId}".
func ImageSK(imageID string) string { return tagged("IMAGE", imageID) }

// SignatureSK returns "SIGNATURE#{signatureId}".
func SignatureSK(signatureID string) string { return tagged("SIGNATURE", signatureID) }

// AreaPK returns "INSPECTION_AREA#{areaName}".
func AreaPK(areaName string) string { return tagged("INSPECTION_AREA", areaName) }

// ItemSK returns "ITEM#{itemId}" (checklist and PMI items share the shape).
func ItemSK(itemID string) string { return tagged("ITEM", itemID) }

// PMICategorySK returns "CATEGORY#{categoryId}".
func PMICategorySK(categoryID string) string { return tagged("CATEGORY", categoryID) }

// PMIItemPK returns "PMI_CATEGORY#{categoryId}".
func PMIItemPK(categoryID string) string { return tagged("PMI_CATEGORY", categoryID) }
