package ordering

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// memStore is an in-memory Store used to observe exactly which rows a call writes.
type memStore struct {
	mu    sync.Mutex
	items map[string][]Item

	singleWrites int
	bulkWrites   int
	created      int

	listErr error
	// bulkFailAt makes BulkWritePositions fail after applying that many rows
	// to its working copy. Negative disables the failure.
	bulkFailAt int
}

var errStoreDown = errors.New("store unavailable")

func newMemStore(owner string, items ...Item) *memStore {
	s := &memStore{items: map[string][]Item{}, bulkFailAt: -1}
	for _, it := range items {
		it.OwnerID = owner
		s.items[owner] = append(s.items[owner], it)
	}
	return s
}

func (s *memStore) ListItems(_ context.Context, ownerID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]Item, len(s.items[ownerID]))
	copy(out, s.items[ownerID])
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (s *memStore) UpdateItemPosition(_ context.Context, itemID, ownerID string, position float64) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.items[ownerID]
	for i := range list {
		if list[i].ID == itemID {
			list[i].Position = position
			s.singleWrites++
			it := list[i]
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) BulkWritePositions(_ context.Context, ownerID string, updates []PositionUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	working := make([]Item, len(s.items[ownerID]))
	copy(working, s.items[ownerID])

	for n, u := range updates {
		if s.bulkFailAt >= 0 && n == s.bulkFailAt {
			return errStoreDown
		}
		found := false
		for i := range working {
			if working[i].ID == u.ItemID {
				working[i].Position = u.Position
				found = true
			}
		}
		if !found {
			return ErrNotFound
		}
	}

	s.items[ownerID] = working
	s.bulkWrites++
	return nil
}

func (s *memStore) DeleteAllItems(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, ownerID)
	return nil
}

func (s *memStore) CreateItems(_ context.Context, ownerID string, seeds []Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seed := range seeds {
		s.created++
		s.items[ownerID] = append(s.items[ownerID], Item{
			ID:       seed.Label,
			OwnerID:  ownerID,
			Label:    seed.Label,
			Position: seed.Position,
			Color:    seed.Color,
			FgColor:  seed.FgColor,
		})
	}
	return nil
}

func (s *memStore) positions(ownerID string) map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := map[string]float64{}
	for _, it := range s.items[ownerID] {
		out[it.ID] = it.Position
	}
	return out
}

// txStore wraps memStore as a Transactor that commits only when fn succeeds.
type txStore struct {
	*memStore
	txCount int
}

func (s *txStore) InTx(ctx context.Context, fn func(Store) error) error {
	s.txCount++

	s.mu.Lock()
	snapshot := make(map[string][]Item, len(s.items))
	for k, v := range s.items {
		snapshot[k] = append([]Item(nil), v...)
	}
	s.mu.Unlock()

	if err := fn(s.memStore); err != nil {
		s.mu.Lock()
		s.items = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}
