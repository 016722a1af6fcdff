// Package jsonfile implements the repository interfaces over flat JSON
// files — the service's original persistence model, kept on purpose.
//
// WHOLE-FILE REWRITE:
// The users store has no incremental update. Every mutation reads the whole
// collection, changes it in memory, and rewrites the whole file. That makes
// each write O(n) in the number of users and would make two concurrent
// writers race (the later writer's snapshot silently overwrites the
// earlier one's change — last-writer-wins). The store closes that hole by
// serializing every load-mutate-save sequence through a single mutex: at
// most one mutation is in flight at a time, so no snapshot can go stale
// between its load and its save. Cross-process writers are still unguarded;
// this service assumes it is the file's only writer.
//
// READ DEGRADATION:
// A missing or unparsable file loads as an empty collection rather than an
// error. This mirrors the original deployment, where a fresh install has no
// users.json yet and the first registration creates it. The flip side is
// that a corrupted file silently reads as "no users" — so Load logs a
// warning whenever it swallows a real error, to keep corruption visible.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// compile-time check that *UserStore implements repository.UserStore
var _ repository.UserStore = (*UserStore)(nil)

// UserStore reads and rewrites the users JSON file.
type UserStore struct {
	path   string
	logger *slog.Logger

	// mu serializes every mutation's load-mutate-save sequence.
	mu sync.Mutex
}

// NewUserStore creates a store backed by the file at path. The file does
// not need to exist yet; the first Save creates it (and its directory).
func NewUserStore(path string, logger *slog.Logger) *UserStore {
	return &UserStore{path: path, logger: logger}
}

// Load returns every stored user. A missing or unparsable file degrades to
// an empty collection — see the package comment.
func (s *UserStore) Load(_ context.Context) ([]model.User, error) {
	return s.read(), nil
}

// Save rewrites the entire backing file with users.
func (s *UserStore) Save(_ context.Context, users []model.User) error {
	return s.write(users)
}

// Update runs fn under the store's write lock: load, mutate via fn, and
// rewrite — unless fn reports dirty=false, in which case the file is left
// untouched.
func (s *UserStore) Update(_ context.Context, fn func([]model.User) ([]model.User, bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.read()

	updated, dirty, err := fn(users)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}

	return s.write(updated)
}

func (s *UserStore) read() []model.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("users file unreadable, treating as empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return []model.User{}
	}

	var users []model.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Warn("users file unparsable, treating as empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return []model.User{}
	}

	return users
}

func (s *UserStore) write(users []model.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: encoding users: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("jsonfile: creating data directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("jsonfile: writing users file: %w", err)
	}

	return nil
}
