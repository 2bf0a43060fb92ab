package table

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and local development
// mode. Items live in a two-level map keyed by (PK, SK); each secondary
// index is a separate map from index partition value to the set of primary
// keys, maintained explicitly on every write. Unlike DynamoDB's eventually
// consistent GSIs, index reads here observe writes immediately.
type MemoryStore struct {
	mu      sync.RWMutex
	items   map[string]map[string]Item        // pk -> sk -> item
	indexes map[string]map[string]map[pkSK]struct{} // index -> indexPK -> keys
}

type pkSK struct {
	pk string
	sk string
}

// NewMemoryStore returns an empty in-memory table.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		items:   make(map[string]map[string]Item),
		indexes: make(map[string]map[string]map[pkSK]struct{}),
	}
	for name := range IndexKeyAttrs {
		s.indexes[name] = make(map[string]map[pkSK]struct{})
	}
	return s
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, pk, sk string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	partition, ok := s.items[pk]
	if !ok {
		return nil, ErrItemNotFound
	}
	item, ok := partition[sk]
	if !ok {
		return nil, ErrItemNotFound
	}
	return copyItem(item), nil
}

// Put implements Store. Replacing an item re-points every index entry whose
// indexed attributes changed; a stale entry under the old index partition
// must not remain queryable.
func (s *MemoryStore) Put(ctx context.Context, item Item) error {
	pk := StringAttr(item, "PK")
	sk := StringAttr(item, "SK")

	s.mu.Lock()
	defer s.mu.Unlock()

	key := pkSK{pk: pk, sk: sk}
	if partition, ok := s.items[pk]; ok {
		if old, ok := partition[sk]; ok {
			s.dropIndexEntries(old, key)
		}
	}

	stored := copyItem(item)
	partition, ok := s.items[pk]
	if !ok {
		partition = make(map[string]Item)
		s.items[pk] = partition
	}
	partition[sk] = stored
	s.addIndexEntries(stored, key)
	return nil
}

// Delete implements Store; deleting an absent key is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, pk, sk string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	partition, ok := s.items[pk]
	if !ok {
		return nil
	}
	item, ok := partition[sk]
	if !ok {
		return nil
	}
	s.dropIndexEntries(item, pkSK{pk: pk, sk: sk})
	delete(partition, sk)
	if len(partition) == 0 {
		delete(s.items, pk)
	}
	return nil
}

// BatchDelete implements Store.
func (s *MemoryStore) BatchDelete(ctx context.Context, pk string, sks []string) error {
	for _, sk := range sks {
		if err := s.Delete(ctx, pk, sk); err != nil {
			return err
		}
	}
	return nil
}

// QueryPartition implements Store.
func (s *MemoryStore) QueryPartition(ctx context.Context, pk string) ([]Item, error) {
	return s.QueryPrefix(ctx, pk, "")
}

// QueryPrefix implements Store.
func (s *MemoryStore) QueryPrefix(ctx context.Context, pk, skPrefix string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Item
	for sk, item := range s.items[pk] {
		if strings.HasPrefix(sk, skPrefix) {
			out = append(out, copyItem(item))
		}
	}
	return out, nil
}

// QueryIndex implements Store.
func (s *MemoryStore) QueryIndex(ctx context.Context, indexName, indexPK string) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index, ok := s.indexes[indexName]
	if !ok {
		return nil, ErrUnknownIndex(indexName)
	}

	var out []Item
	for key := range index[indexPK] {
		if item, ok := s.items[key.pk][key.sk]; ok {
			out = append(out, copyItem(item))
		}
	}
	return out, nil
}

// Scan implements Store.
func (s *MemoryStore) Scan(ctx context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Item
	for _, partition := range s.items {
		for _, item := range partition {
			out = append(out, copyItem(item))
		}
	}
	return out, nil
}

// Len returns the total number of stored items.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, partition := range s.items {
		n += len(partition)
	}
	return n
}

func (s *MemoryStore) addIndexEntries(item Item, key pkSK) {
	for name, attrs := range IndexKeyAttrs {
		indexPK := StringAttr(item, attrs[0])
		if indexPK == "" {
			continue
		}
		bucket, ok := s.indexes[name][indexPK]
		if !ok {
			bucket = make(map[pkSK]struct{})
			s.indexes[name][indexPK] = bucket
		}
		bucket[key] = struct{}{}
	}
}

func (s *MemoryStore) dropIndexEntries(item Item, key pkSK) {
	for name, attrs := range IndexKeyAttrs {
		indexPK := StringAttr(item, attrs[0])
		if indexPK == "" {
			continue
		}
		if bucket, ok := s.indexes[name][indexPK]; ok {
			delete(bucket, key)
			if len(bucket) == 0 {
				delete(s.indexes[name], indexPK)
			}
		}
	}
}

func copyItem(item Item) Item {
	out := make(Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
