// Package table exposes the single inspections table through a fixed set of
// hand-written access patterns: point get, full-item upsert, delete,
// partition query, sort-key-prefix query, secondary-index query and scan.
// There is no query planner; every repository access pattern maps onto
// exactly one of these operations.
package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is the stored representation of an entity: a flat attribute map
// including the PK/SK and GSI attributes.
type Item = map[string]types.AttributeValue

// ErrItemNotFound is returned by Get for an absent key. It is distinct from
// storage failures: repositories translate it into an empty result where the
// contract allows, while storage failures always propagate.
var ErrItemNotFound = errors.New("item not found")

// Secondary index names. Each index is a (PK, SK) attribute pair
// materialized on the item itself.
const (
	GSI1 = "GSI1"
	GSI2 = "GSI2"
	GSI3 = "GSI3"
)

// IndexKeyAttrs maps an index name to the item attributes holding its
// partition and sort values. The write path of the in-memory store uses this
// to re-point index entries when indexed fields change; DynamoDB maintains
// its indexes itself.
var IndexKeyAttrs = map[string][2]string{
	GSI1: {"GSI1PK", "GSI1SK"},
	GSI2: {"GSI2PK", "GSI2SK"},
	GSI3: {"GSI3PK", "GSI3SK"},
}

// Store is the single logical table. Results carry no ordering guarantee;
// repositories sort where their contract requires it.
//
// Reads through a secondary index (QueryIndex) are eventually consistent on
// the real backend: a just-written item may lag in its index by a bounded
// but unspecified delay. Callers must not assume immediate index visibility.
type Store interface {
	// Get performs a point lookup. Returns ErrItemNotFound for an absent
	// key. Reflects the latest completed Put/Delete for that key.
	Get(ctx context.Context, pk, sk string) (Item, error)

	// Put upserts a full item, overwriting any existing item with the same
	// key. No partial update, no concurrency check: concurrent writers to
	// one key are last-write-wins.
	Put(ctx context.Context, item Item) error

	// Delete removes an item. Deleting an absent key is not an error.
	Delete(ctx context.Context, pk, sk string) error

	// BatchDelete removes several items of one partition.
	BatchDelete(ctx context.Context, pk string, sks []string) error

	// QueryPartition returns all items sharing pk across all sort keys.
	QueryPartition(ctx context.Context, pk string) ([]Item, error)

	// QueryPrefix returns the items of pk whose sort key starts with
	// skPrefix, isolating one sub-type of the partition's item collection.
	QueryPrefix(ctx context.Context, pk, skPrefix string) ([]Item, error)

	// QueryIndex returns all items whose named-index partition attribute
	// equals indexPK, across all index sort values.
	QueryIndex(ctx context.Context, indexName, indexPK string) ([]Item, error)

	// Scan returns every item in the table. O(table size); used only where
	// no index fits the access pattern.
	Scan(ctx context.Context) ([]Item, error)
}

// MarshalItem converts an entity into its stored attribute map.
//
// The codec is strict: the struct's dynamodbav tags define the full set of
// persisted attributes, and unknown attributes present in storage are
// dropped on a read-modify-write cycle.
func MarshalItem(entity interface{}) (Item, error) {
	return attributevalue.MarshalMap(entity)
}

// UnmarshalItem converts a stored attribute map back into an entity.
// Round-trips are lossless for all declared fields.
func UnmarshalItem(item Item, entity interface{}) error {
	return attributevalue.UnmarshalMap(item, entity)
}

// ErrUnknownIndex reports a query against an index the table does not
// define.
func ErrUnknownIndex(name string) error {
	return fmt.Errorf("unknown index %q", name)
}

// StringAttr extracts a string attribute from an item; missing or
// non-string attributes yield "".
func StringAttr(item Item, name string) string {
	if av, ok := item[name]; ok {
		if s, ok := av.(*types.AttributeValueMemberS); ok {
			return s.Value
		}
	}
	return ""
}
