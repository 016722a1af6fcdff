package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/service"
)

// FavoritesHandler serves the favorite-story endpoints. All routes sit
// behind auth.RequireAuth and operate only on the verified caller's set.
type FavoritesHandler struct {
	favorites *service.FavoriteService
	logger    *slog.Logger
}

// NewFavoritesHandler creates a FavoritesHandler.
func NewFavoritesHandler(favorites *service.FavoriteService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, logger: logger}
}

// HandleStatus reports whether a story is in the caller's favorite set.
//
// HTTP: GET /api/favorites/status/{storyId}
// Response: {"isFavorited": true|false}
func (h *FavoritesHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	isFavorited, err := h.favorites.Status(r.Context(), identity.UserID, chi.URLParam(r, "storyId"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"isFavorited": isFavorited})
}

// HandleAdd inserts a story into the caller's favorite set.
//
// HTTP: POST /api/favorites/{storyId}
//
// Returns 200 with a confirmation whether or not the story was already
// favorited — the operation is idempotent.
func (h *FavoritesHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	if err := h.favorites.Add(r.Context(), identity.UserID, chi.URLParam(r, "storyId")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "added to favorites"})
}

// HandleRemove deletes a story from the caller's favorite set.
//
// HTTP: DELETE /api/favorites/{storyId}
//
// Succeeds whether or not the story was favorited.
func (h *FavoritesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	if err := h.favorites.Remove(r.Context(), identity.UserID, chi.URLParam(r, "storyId")); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "removed from favorites"})
}

// HandleList returns the full catalog entries for the caller's favorites.
//
// HTTP: GET /api/favorites
// Response: JSON array of stories. Favorite IDs with no catalog entry are
// omitted without error.
func (h *FavoritesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	stories, err := h.favorites.List(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stories)
}
