package table

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem(pk, sk string, extra map[string]string) Item {
	item := Item{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
	for k, v := range extra {
		item[k] = &types.AttributeValueMemberS{Value: v}
	}
	return item
}

func TestMemoryStore_PutGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item := testItem("INSPECTION#1", "METADATA", map[string]string{"status": "New"})
	require.NoError(t, store.Put(ctx, item))

	got, err := store.Get(ctx, "INSPECTION#1", "METADATA")
	require.NoError(t, err)
	assert.Equal(t, "New", StringAttr(got, "status"))

	// Mutating the returned item must not leak into the store.
	got["status"] = &types.AttributeValueMemberS{Value: "Closed"}
	again, err := store.Get(ctx, "INSPECTION#1", "METADATA")
	require.NoError(t, err)
	assert.Equal(t, "New", StringAttr(again, "status"))
}

func TestMemoryStore_GetAbsentReturnsNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Get(ctx, "INSPECTION#1", "METADATA")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMemoryStore_PutTwiceOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, testItem("INSPECTION#1", "METADATA", map[string]string{"status": "New"})))
	require.NoError(t, store.Put(ctx, testItem("INSPECTION#1", "METADATA", map[string]string{"status": "Closed"})))

	assert.Equal(t, 1, store.Len())
	got, err := store.Get(ctx, "INSPECTION#1", "METADATA")
	require.NoError(t, err)
	assert.Equal(t, "Closed", StringAttr(got, "status"))
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, testItem("INSPECTION#1", "METADATA", nil)))
	require.NoError(t, store.Delete(ctx, "INSPECTION#1", "METADATA"))
	require.NoError(t, store.Delete(ctx, "INSPECTION#1", "METADATA"))

	_, err := store.Get(ctx, "INSPECTION#1", "METADATA")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestMemoryStore_QueryPrefixIsolatesSubTypes(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	pk := "INSPECTION#1"
	require.NoError(t, store.Put(ctx, testItem(pk, "METADATA", nil)))
	require.NoError(t, store.Put(ctx, testItem(pk, "RESPONSE#SB001", nil)))
	require.NoError(t, store.Put(ctx, testItem(pk, "RESPONSE#K001", nil)))
	require.NoError(t, store.Put(ctx, testItem(pk, "IMAGE#IMG1", nil)))

	responses, err := store.QueryPrefix(ctx, pk, "RESPONSE#")
	require.NoError(t, err)
	assert.Len(t, responses, 2)

	images, err := store.QueryPrefix(ctx, pk, "IMAGE#")
	require.NoError(t, err)
	assert.Len(t, images, 1)

	all, err := store.QueryPartition(ctx, pk)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	other, err := store.QueryPartition(ctx, "INSPECTION#2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStore_QueryIndexRepointsOnPut(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item := testItem("INSPECTION#1", "METADATA", map[string]string{
		"GSI2PK": "STATUS#New",
		"GSI2SK": "DATE#2025-05-02",
	})
	require.NoError(t, store.Put(ctx, item))

	fresh, err := store.QueryIndex(ctx, GSI2, "STATUS#New")
	require.NoError(t, err)
	require.Len(t, fresh, 1)

	// Rewriting the item under a new index partition must drop the old
	// entry, not leave the item queryable under both statuses.
	closed := testItem("INSPECTION#1", "METADATA", map[string]string{
		"GSI2PK": "STATUS#Closed",
		"GSI2SK": "DATE#2025-05-02",
	})
	require.NoError(t, store.Put(ctx, closed))

	stale, err := store.QueryIndex(ctx, GSI2, "STATUS#New")
	require.NoError(t, err)
	assert.Empty(t, stale)

	current, err := store.QueryIndex(ctx, GSI2, "STATUS#Closed")
	require.NoError(t, err)
	assert.Len(t, current, 1)
}

func TestMemoryStore_QueryIndexUnknownIndex(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.QueryIndex(ctx, "GSI9", "STATUS#New")
	assert.Error(t, err)
}

func TestMemoryStore_DeleteDropsIndexEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	item := testItem("INSPECTION#1", "METADATA", map[string]string{
		"GSI1PK": "UNIT#901-A12",
		"GSI1SK": "INSPECTION#1",
	})
	require.NoError(t, store.Put(ctx, item))
	require.NoError(t, store.Delete(ctx, "INSPECTION#1", "METADATA"))

	got, err := store.QueryIndex(ctx, GSI1, "UNIT#901-A12")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_BatchDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	pk := "INSPECTION#1"
	require.NoError(t, store.Put(ctx, testItem(pk, "METADATA", nil)))
	require.NoError(t, store.Put(ctx, testItem(pk, "RESPONSE#SB001", nil)))
	require.NoError(t, store.Put(ctx, testItem(pk, "IMAGE#IMG1", nil)))

	require.NoError(t, store.BatchDelete(ctx, pk, []string{"METADATA", "RESPONSE#SB001", "IMAGE#IMG1", "RESPONSE#ABSENT"}))
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_Scan(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, testItem("INSPECTION#1", "METADATA", nil)))
	require.NoError(t, store.Put(ctx, testItem("INSPECTION#2", "METADATA", nil)))
	require.NoError(t, store.Put(ctx, testItem("INSPECTOR#INS001", "METADATA", nil)))

	all, err := store.Scan(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryStore_ItemsWithoutIndexAttrsAreNotIndexed(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, testItem("INSPECTION#1", "RESPONSE#SB001", nil)))

	got, err := store.QueryIndex(ctx, GSI2, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
