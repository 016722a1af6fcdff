// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (business layer) → validates, enforces rules, orchestrates
//	Repository (data layer)  → reads/rewrites the backing stores
//
// Services accept primitives and context, never *http.Request, and return
// domain errors from internal/apperror, never HTTP status codes. The
// handler layer does the translation in writeError. Every service takes its
// stores as interfaces (repository.UserStore, repository.StoryCatalog) so
// tests inject in-memory mocks.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rs/xid"
	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// AuthService handles registration and login.
type AuthService struct {
	users     repository.UserStore
	passwords *auth.PasswordService
	tokens    *auth.TokenService
	logger    *slog.Logger
}

// NewAuthService creates an AuthService with all required dependencies.
func NewAuthService(
	users repository.UserStore,
	passwords *auth.PasswordService,
	tokens *auth.TokenService,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		logger:    logger,
	}
}

// LoginResult bundles what a successful login returns to the client: the
// signed session token and the public display name.
type LoginResult struct {
	Token    string
	Fullname string
}

// Register creates a new user account.
//
// All three fields are required. The email must not already be registered —
// the comparison is exact-match, case-sensitive, performed inside the
// store's update lock so two concurrent registrations of the same email
// can't both pass the check. Registration does not log the user in; the
// client calls Login afterwards.
func (s *AuthService) Register(ctx context.Context, fullname, email, password string) error {
	if fullname == "" {
		return apperror.ValidationFailed("fullname", "fullname is required")
	}
	if email == "" {
		return apperror.ValidationFailed("email", "email is required")
	}
	if password == "" {
		return apperror.ValidationFailed("password", "password is required")
	}

	// Hash before taking the store lock — bcrypt is deliberately slow and
	// shouldn't stall every other writer while it runs.
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return fmt.Errorf("service/auth: hashing password: %w", err)
	}

	user := model.User{
		ID:           xid.New().String(),
		Fullname:     fullname,
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  "",
		Favorites:    []string{},
	}

	err = s.users.Update(ctx, func(users []model.User) ([]model.User, bool, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, false, apperror.Conflict("email", "email already registered")
			}
		}
		return append(users, user), true, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("user registered",
		slog.String("userID", user.ID),
		slog.String("email", email),
	)
	return nil
}

// Login verifies credentials and issues a session token.
//
// Returns NotFound when no account has this email, and Unauthorized when
// the account exists but the password doesn't verify. The two cases are
// deliberately distinguishable — this API has always reported 404 vs 401
// for them, so collapsing them now would break existing clients.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/auth: loading users: %w", err)
	}

	var user *model.User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, apperror.NotFound("user", email)
	}

	if !s.passwords.Verify(user.PasswordHash, password) {
		return nil, apperror.Unauthorized("wrong password")
	}

	token, err := s.tokens.Issue(user.ID, user.Fullname)
	if err != nil {
		return nil, fmt.Errorf("service/auth: issuing token for user %s: %w", user.ID, err)
	}

	s.logger.Info("user logged in", slog.String("userID", user.ID))

	return &LoginResult{
		Token:    token,
		Fullname: user.Fullname,
	}, nil
}
