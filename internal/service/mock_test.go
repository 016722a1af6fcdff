package service

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/model"
)

// Hand-written in-memory fakes for the repository interfaces. The services
// only see interfaces, so these drop in wherever the jsonfile or sqlite
// backends would — no files, no database, and a writeCount we can assert
// on to check which operations actually persist.

type mockUserStore struct {
	mu         sync.Mutex
	users      []model.User
	writeCount int // number of times a rewrite actually happened
}

func (m *mockUserStore) Load(_ context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *mockUserStore) Save(_ context.Context, users []model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = users
	m.writeCount++
	return nil
}

func (m *mockUserStore) Update(_ context.Context, fn func([]model.User) ([]model.User, bool, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := make([]model.User, len(m.users))
	copy(snapshot, m.users)

	updated, dirty, err := fn(snapshot)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	m.users = updated
	m.writeCount++
	return nil
}

// find returns the stored user with the given ID, for assertions.
func (m *mockUserStore) find(t *testing.T, id string) model.User {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("user %s not in mock store", id)
	return model.User{}
}

type mockCatalog struct {
	stories []model.Story
}

func (m *mockCatalog) GetByID(_ context.Context, id string) (*model.Story, error) {
	for _, s := range m.stories {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, apperror.NotFound("story", id)
}

func (m *mockCatalog) ListByIDs(_ context.Context, ids []string) ([]model.Story, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	out := []model.Story{}
	for _, s := range m.stories {
		if _, ok := wanted[s.ID]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// testPasswords uses bcrypt cost 4 (the minimum) so hashing doesn't
// dominate test runtime.
func testPasswords() *auth.PasswordService {
	return auth.NewPasswordServiceForTest(4)
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	ts, err := auth.NewTokenService("test-secret-at-least-16-chars!!")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return ts
}
