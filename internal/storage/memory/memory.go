// Package memory provides an in-process implementation of storage.Store.
//
// Records are kept as JSON documents, the same way the web client kept them in
// local storage, so every read returns an independent copy.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mmynk/soltracker/internal/models"
	"github.com/mmynk/soltracker/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is a map-backed storage.Store.
type Store struct {
	mu    sync.RWMutex
	order []string
	docs  map[string][]byte
}

// New creates an empty Store.
func New() *Store {
	return &Store{docs: make(map[string][]byte)}
}

// ListSols returns the Sols in insertion order.
func (s *Store) ListSols(ctx context.Context) ([]*models.Sol, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sols := make([]*models.Sol, 0, len(s.order))
	for _, id := range s.order {
		sol, err := decode(s.docs[id])
		if err != nil {
			return nil, err
		}
		sols = append(sols, sol)
	}
	return sols, nil
}

// GetSol returns a copy of the stored Sol.
func (s *Store) GetSol(ctx context.Context, id string) (*models.Sol, error) {
	s.mu.RLock()
	doc, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return decode(doc)
}

// SaveSol upserts the Sol.
func (s *Store) SaveSol(ctx context.Context, sol *models.Sol) error {
	doc, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("failed to encode sol: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[sol.ID]; !exists {
		s.order = append(s.order, sol.ID)
	}
	s.docs[sol.ID] = doc
	return nil
}

// DeleteSol removes the Sol.
func (s *Store) DeleteSol(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

func decode(doc []byte) (*models.Sol, error) {
	var sol models.Sol
	if err := json.Unmarshal(doc, &sol); err != nil {
		return nil, fmt.Errorf("failed to decode sol: %w", err)
	}
	return &sol, nil
}
