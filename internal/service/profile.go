package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// ProfileService reads and updates the caller's non-secret fields and
// handles credential rotation.
//
// Every method takes the userID from the verified session token, never from
// request input — a caller can only ever touch their own record.
type ProfileService struct {
	users     repository.UserStore
	passwords *auth.PasswordService
	logger    *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(
	users repository.UserStore,
	passwords *auth.PasswordService,
	logger *slog.Logger,
) *ProfileService {
	return &ProfileService{
		users:     users,
		passwords: passwords,
		logger:    logger,
	}
}

// Get returns the caller's profile fields.
//
// NotFound here means the user record vanished after the token was issued —
// tokens outlive store contents by up to an hour.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/profile: loading users: %w", err)
	}

	for i := range users {
		if users[i].ID == userID {
			p := users[i].Profile()
			return &p, nil
		}
	}
	return nil, apperror.NotFound("user", userID)
}

// Update overwrites the caller's fullname, email, and phone number with the
// supplied values. There is no partial update: all three fields are written
// as given, empty or not.
//
// Note that the email is NOT re-checked for uniqueness against other users.
// Only registration enforces that invariant; this endpoint has always
// allowed an update to collide, and changing that would alter observable
// behavior for existing clients.
func (s *ProfileService) Update(ctx context.Context, userID, fullname, email, phoneNumber string) (*model.Profile, error) {
	var updated model.Profile

	err := s.users.Update(ctx, func(users []model.User) ([]model.User, bool, error) {
		for i := range users {
			if users[i].ID == userID {
				users[i].Fullname = fullname
				users[i].Email = email
				users[i].PhoneNumber = phoneNumber
				updated = users[i].Profile()
				return users, true, nil
			}
		}
		return nil, false, apperror.NotFound("user", userID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("profile updated", slog.String("userID", userID))
	return &updated, nil
}

// ChangePassword rotates the caller's credential.
//
// Both fields are required. The old password must verify against the stored
// hash before the new one replaces it; a mismatch is Unauthorized, not
// Forbidden — the session token itself was fine, the extra secret wasn't.
// No strength policy is applied to the new password.
func (s *ProfileService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperror.ValidationFailed("password", "both old and new password are required")
	}

	err := s.users.Update(ctx, func(users []model.User) ([]model.User, bool, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}

			if !s.passwords.Verify(users[i].PasswordHash, oldPassword) {
				return nil, false, apperror.Unauthorized("wrong old password")
			}

			hash, err := s.passwords.Hash(newPassword)
			if err != nil {
				return nil, false, fmt.Errorf("service/profile: hashing new password: %w", err)
			}

			users[i].PasswordHash = hash
			return users, true, nil
		}
		return nil, false, apperror.NotFound("user", userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("password changed", slog.String("userID", userID))
	return nil
}
