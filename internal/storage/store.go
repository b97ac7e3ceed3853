// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/soltracker/internal/models"
)

// ErrNotFound is returned when no Sol has the requested ID.
var ErrNotFound = errors.New("sol not found")

// Store is the persistence gateway for Sol records.
// This abstraction allows swapping storage backends (SQLite, Redis, memory)
// without changing the service layer. Implementations replace a whole record
// per SaveSol call; the engine never sees partial writes.
type Store interface {
	// ListSols returns every stored Sol.
	ListSols(ctx context.Context) ([]*models.Sol, error)

	// GetSol retrieves a Sol by its ID.
	// Returns an error wrapping ErrNotFound if the Sol does not exist.
	GetSol(ctx context.Context, id string) (*models.Sol, error)

	// SaveSol inserts or replaces the Sol with the same ID.
	SaveSol(ctx context.Context, sol *models.Sol) error

	// DeleteSol removes a Sol.
	// Returns an error wrapping ErrNotFound if the Sol does not exist.
	DeleteSol(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
