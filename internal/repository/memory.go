package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"cartsense/internal/model"
)

// MemoryStore is the default in-memory Store implementation. It keeps list
// entries in insertion order and a per-name add-event counter for history.
type MemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	items   []model.ListItem
	byName  map[string]int // name -> index into items
	addEver map[string]int // name -> historical add-event count
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:  1,
		byName:  make(map[string]int),
		addEver: make(map[string]int),
	}
}

// AddOrIncrement adds a new entry or bumps the quantity of an existing one.
func (s *MemoryStore) AddOrIncrement(ctx context.Context, name string, qty int, category string) (model.ListItem, error) {
	name = normalizeName(name)
	if qty <= 0 {
		qty = 1
	}
	if category == "" {
		category = CategoryFor(name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.byName[name]; ok {
		s.items[idx].Quantity += qty
		return s.items[idx], nil
	}

	item := model.ListItem{
		ID:       s.nextID,
		Name:     name,
		Quantity: qty,
		Category: category,
		AddedAt:  time.Now(),
	}
	s.nextID++
	s.byName[name] = len(s.items)
	s.items = append(s.items, item)
	return item, nil
}

// Remove deletes an entry by name; nil result means it was not on the list.
func (s *MemoryStore) Remove(ctx context.Context, name string) (*model.ListItem, error) {
	name = normalizeName(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.byName[name]
	if !ok {
		return nil, nil
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.byName, name)
	for i := idx; i < len(s.items); i++ {
		s.byName[s.items[i].Name] = i
	}
	return &removed, nil
}

// Search returns entries matching by substring containment in either direction.
func (s *MemoryStore) Search(ctx context.Context, name string) ([]model.ListItem, error) {
	name = normalizeName(name)
	if name == "" {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []model.ListItem
	for _, item := range s.items {
		if strings.Contains(item.Name, name) || strings.Contains(name, item.Name) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// Snapshot returns a copy of the list.
func (s *MemoryStore) Snapshot(ctx context.Context) ([]model.ListItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.ListItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// RecordAdd notes a historical add event for name.
func (s *MemoryStore) RecordAdd(ctx context.Context, name string) error {
	name = normalizeName(name)
	if name == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.addEver[name]++
	return nil
}

// RunningLow returns names added at least twice historically that are not on
// the current list.
func (s *MemoryStore) RunningLow(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	for name, count := range s.addEver {
		if count < 2 {
			continue
		}
		if _, onList := s.byName[name]; onList {
			continue
		}
		out = append(out, name)
	}
	return out, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

var _ Store = (*MemoryStore)(nil)
