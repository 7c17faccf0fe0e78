package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
)

// MemoryStore guarda las sesiones en un mapa. Pensado para tests;
// no expira entradas.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string][]byte)}
}

func (s *MemoryStore) Save(_ context.Context, w *booking.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[w.ID] = b
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*booking.Wizard, error) {
	s.mu.RLock()
	b, ok := s.m[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}

	var w booking.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
