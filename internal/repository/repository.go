// Package repository defines the storage interfaces the service layer
// depends on. Concrete backends live in subpackages (jsonfile, sqlite);
// services only ever see these interfaces, so tests swap in in-memory mocks
// and main.go picks the backend from configuration.
package repository

import (
	"context"

	"github.com/sakif/nusantara-stories/internal/model"
)

// UserStore persists the full user collection as a single snapshot.
//
// There is no per-record primitive: every mutation is a load of the whole
// collection, an in-memory change, and a rewrite of the whole collection.
// Update wraps that sequence so implementations can serialize concurrent
// mutations (the flat-file backend holds a lock for the duration).
type UserStore interface {
	// Load returns every user, in stored order.
	Load(ctx context.Context) ([]model.User, error)

	// Save replaces the entire stored collection with users.
	Save(ctx context.Context, users []model.User) error

	// Update runs fn against the current collection under the store's
	// write lock. fn returns the collection to persist and whether a
	// rewrite is needed at all; returning dirty=false skips the write
	// (used by idempotent operations that turn out to be no-ops).
	// Any error from fn aborts the update and is returned unchanged.
	Update(ctx context.Context, fn func(users []model.User) (updated []model.User, dirty bool, err error)) error
}

// StoryCatalog is the read-only story lookup. The catalog is maintained
// outside this service; we never write to it.
type StoryCatalog interface {
	// GetByID returns the story with the given ID, or apperror.ErrNotFound.
	GetByID(ctx context.Context, id string) (*model.Story, error)

	// ListByIDs returns the catalog entries whose ID appears in ids,
	// in catalog order. IDs with no matching entry are silently dropped.
	ListByIDs(ctx context.Context, ids []string) ([]model.Story, error)
}
