package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shenikar/ambulance_dispatch_system/internal/models"
)

var _ RecordStore = (*MemoryStore)(nil)

type memoryCollection struct {
	order   []string
	records map[string]json.RawMessage
}

// MemoryStore - RecordStore в памяти процесса, для тестов и одноразовых запусков
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memoryCollection)}
}

func (s *MemoryStore) List(_ context.Context, collection string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return []json.RawMessage{}, nil
	}
	out := make([]json.RawMessage, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, cloneRaw(c.records[id]))
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
	}
	raw, ok := c.records[id]
	if !ok {
		return nil, fmt.Errorf("%s/%s: %w", collection, id, models.ErrRecordNotFound)
	}
	return cloneRaw(raw), nil
}

func (s *MemoryStore) Upsert(_ context.Context, collection, id string, payload json.RawMessage) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%s/%s: invalid json payload: %w", collection, id, models.ErrStoreWriteFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[collection]
	if !ok {
		c = &memoryCollection{records: make(map[string]json.RawMessage)}
		s.collections[collection] = c
	}
	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = cloneRaw(payload)
	return nil
}

func (s *MemoryStore) Exists(_ context.Context, collection string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.collections[collection]
	return ok, nil
}

// Init заводит пустую коллекцию, если её ещё нет
func (s *MemoryStore) Init(collections ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range collections {
		if _, ok := s.collections[name]; !ok {
			s.collections[name] = &memoryCollection{records: make(map[string]json.RawMessage)}
		}
	}
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out
}
