package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// FavoriteService mutates a user's favorite-story set and resolves it
// against the catalog.
//
// The favorite set has set semantics over a slice: membership is unique,
// insertion order is kept but carries no meaning. Story IDs are matched as
// exact strings — no trimming, no case folding — and nothing here checks
// that an ID actually exists in the catalog: favoriting an unknown ID is
// allowed and simply never resolves in List.
type FavoriteService struct {
	users   repository.UserStore
	catalog repository.StoryCatalog
	logger  *slog.Logger
}

// NewFavoriteService creates a FavoriteService.
func NewFavoriteService(
	users repository.UserStore,
	catalog repository.StoryCatalog,
	logger *slog.Logger,
) *FavoriteService {
	return &FavoriteService{
		users:   users,
		catalog: catalog,
		logger:  logger,
	}
}

// Status reports whether storyID is in the caller's favorite set.
func (s *FavoriteService) Status(ctx context.Context, userID, storyID string) (bool, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("service/favorites: loading users: %w", err)
	}

	for i := range users {
		if users[i].ID == userID {
			return users[i].HasFavorite(storyID), nil
		}
	}
	return false, apperror.NotFound("user", userID)
}

// Add inserts storyID into the caller's favorite set.
//
// Idempotent: adding an ID that's already present succeeds without touching
// the store — the rewrite only happens when the set actually changes.
func (s *FavoriteService) Add(ctx context.Context, userID, storyID string) error {
	err := s.users.Update(ctx, func(users []model.User) ([]model.User, bool, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}
			if users[i].HasFavorite(storyID) {
				// Already present: confirm without a redundant rewrite.
				return users, false, nil
			}
			users[i].Favorites = append(users[i].Favorites, storyID)
			return users, true, nil
		}
		return nil, false, apperror.NotFound("user", userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("favorite added",
		slog.String("userID", userID),
		slog.String("storyID", storyID),
	)
	return nil
}

// Remove deletes storyID from the caller's favorite set.
//
// Idempotent in outcome but write-through in behavior: the collection is
// rewritten even when the ID wasn't present. Removal has always persisted
// unconditionally, unlike Add's changed-only write.
func (s *FavoriteService) Remove(ctx context.Context, userID, storyID string) error {
	err := s.users.Update(ctx, func(users []model.User) ([]model.User, bool, error) {
		for i := range users {
			if users[i].ID != userID {
				continue
			}

			kept := make([]string, 0, len(users[i].Favorites))
			for _, id := range users[i].Favorites {
				if id != storyID {
					kept = append(kept, id)
				}
			}
			users[i].Favorites = kept
			return users, true, nil
		}
		return nil, false, apperror.NotFound("user", userID)
	})
	if err != nil {
		return err
	}

	s.logger.Info("favorite removed",
		slog.String("userID", userID),
		slog.String("storyID", storyID),
	)
	return nil
}

// List resolves the caller's favorite set against the catalog and returns
// the matching stories. Favorites that no longer have a catalog entry are
// dropped silently — the set itself is not cleaned up.
func (s *FavoriteService) List(ctx context.Context, userID string) ([]model.Story, error) {
	users, err := s.users.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service/favorites: loading users: %w", err)
	}

	var user *model.User
	for i := range users {
		if users[i].ID == userID {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return nil, apperror.NotFound("user", userID)
	}

	stories, err := s.catalog.ListByIDs(ctx, user.Favorites)
	if err != nil {
		return nil, fmt.Errorf("service/favorites: resolving favorites for user %s: %w", userID, err)
	}
	return stories, nil
}
