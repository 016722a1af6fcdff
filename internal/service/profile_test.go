package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/model"
)

func newTestProfileService(t *testing.T) (*ProfileService, *mockUserStore) {
	t.Helper()

	hash, err := testPasswords().Hash("old-password")
	if err != nil {
		t.Fatal(err)
	}

	store := &mockUserStore{users: []model.User{
		{
			ID:           "u1",
			Fullname:     "Ana Pertiwi",
			Email:        "ana@example.com",
			PasswordHash: hash,
			PhoneNumber:  "+62812345678",
			Favorites:    []string{},
		},
		{
			ID:        "u2",
			Fullname:  "Budi",
			Email:     "budi@example.com",
			Favorites: []string{},
		},
	}}

	return NewProfileService(store, testPasswords(), testLogger()), store
}

// =========================================================================
// GET TESTS
// =========================================================================

func TestGet(t *testing.T) {
	svc, _ := newTestProfileService(t)

	profile, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	want := model.Profile{
		Fullname:    "Ana Pertiwi",
		Email:       "ana@example.com",
		PhoneNumber: "+62812345678",
	}
	if *profile != want {
		t.Errorf("Get() = %+v, want %+v", *profile, want)
	}
}

func TestGet_UserGone(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Get(context.Background(), "vanished-user")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

// =========================================================================
// UPDATE TESTS
// =========================================================================

func TestUpdate_OverwritesAllFields(t *testing.T) {
	svc, store := newTestProfileService(t)
	ctx := context.Background()

	// Update is unconditional: every field takes the supplied value,
	// including empty ones. There is no partial update.
	profile, err := svc.Update(ctx, "u1", "Ana P.", "ana.p@example.com", "")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if profile.Fullname != "Ana P." || profile.Email != "ana.p@example.com" || profile.PhoneNumber != "" {
		t.Errorf("Update() returned %+v", *profile)
	}

	u := store.find(t, "u1")
	if u.Fullname != "Ana P." || u.Email != "ana.p@example.com" || u.PhoneNumber != "" {
		t.Errorf("stored user = %+v", u)
	}
}

func TestUpdate_DoesNotRecheckEmailUniqueness(t *testing.T) {
	svc, store := newTestProfileService(t)
	ctx := context.Background()

	// Updating to another user's email succeeds: only registration
	// enforces uniqueness. Known relaxation, kept on purpose.
	if _, err := svc.Update(ctx, "u1", "Ana", "budi@example.com", ""); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if store.find(t, "u1").Email != "budi@example.com" {
		t.Error("Update() should have written the colliding email")
	}
}

func TestUpdate_PreservesOtherFields(t *testing.T) {
	svc, store := newTestProfileService(t)
	ctx := context.Background()

	before := store.find(t, "u1")
	if _, err := svc.Update(ctx, "u1", "New Name", "new@example.com", "+628999"); err != nil {
		t.Fatal(err)
	}
	after := store.find(t, "u1")

	if after.ID != before.ID {
		t.Error("Update() must not change the user ID")
	}
	if after.PasswordHash != before.PasswordHash {
		t.Error("Update() must not touch the password hash")
	}
}

func TestUpdate_UserGone(t *testing.T) {
	svc, _ := newTestProfileService(t)

	_, err := svc.Update(context.Background(), "vanished-user", "X", "x@x.com", "")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

// =========================================================================
// CHANGE PASSWORD TESTS
// =========================================================================

func TestChangePassword_Success(t *testing.T) {
	svc, store := newTestProfileService(t)
	ctx := context.Background()

	oldHash := store.find(t, "u1").PasswordHash

	if err := svc.ChangePassword(ctx, "u1", "old-password", "new-password"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	u := store.find(t, "u1")
	if u.PasswordHash == oldHash {
		t.Error("ChangePassword() did not replace the stored hash")
	}

	// The new password verifies, the old one no longer does.
	ps := testPasswords()
	if !ps.Verify(u.PasswordHash, "new-password") {
		t.Error("new password should verify against the stored hash")
	}
	if ps.Verify(u.PasswordHash, "old-password") {
		t.Error("old password must no longer verify")
	}
}

func TestChangePassword_MissingFields(t *testing.T) {
	svc, _ := newTestProfileService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		old, new string
	}{
		{"missing old", "", "new-password"},
		{"missing new", "old-password", ""},
		{"missing both", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(ctx, "u1", tt.old, tt.new)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Errorf("ChangePassword() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, store := newTestProfileService(t)
	ctx := context.Background()

	hashBefore := store.find(t, "u1").PasswordHash

	err := svc.ChangePassword(ctx, "u1", "not-the-old-password", "new-password")
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Errorf("ChangePassword() error = %v, want ErrUnauthorized", err)
	}

	if store.find(t, "u1").PasswordHash != hashBefore {
		t.Error("failed change must leave the stored hash untouched")
	}
}

func TestChangePassword_UserGone(t *testing.T) {
	svc, _ := newTestProfileService(t)

	err := svc.ChangePassword(context.Background(), "vanished-user", "old", "new")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ChangePassword() error = %v, want ErrNotFound", err)
	}
}
