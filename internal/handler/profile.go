package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/nusantara-stories/internal/auth"
	"github.com/sakif/nusantara-stories/internal/service"
)

// ProfileHandler serves the caller's own profile and password change.
// All routes here sit behind auth.RequireAuth; the user ID always comes
// from the verified token in the request context.
type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, logger: logger}
}

// HandleGet returns the caller's profile fields.
//
// HTTP: GET /api/profile
// Auth: bearer token required
//
// 404 when the record behind a still-valid token is gone.
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		// Should never happen behind RequireAuth, but don't dereference nil.
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	profile, err := h.profiles.Get(r.Context(), identity.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	Fullname    string `json:"fullname"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// HandleUpdate overwrites the caller's profile fields with the body values.
//
// HTTP: PUT /api/profile
// Body: {"fullname": "...", "email": "...", "phoneNumber": "..."}
//
// All three fields are written as supplied — an omitted field arrives as
// the empty string and is stored as such.
func (h *ProfileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid profile JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	profile, err := h.profiles.Update(r.Context(), identity.UserID, req.Fullname, req.Email, req.PhoneNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "profile updated",
		"user":    profile,
	})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// HandleChangePassword rotates the caller's password.
//
// HTTP: PUT /api/password
// Body: {"oldPassword": "...", "newPassword": "..."}
//
// 400 when either field is missing, 401 when the old password doesn't
// verify, 404 when the record is gone.
func (h *ProfileHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"unauthenticated"}`, http.StatusUnauthorized)
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid password JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	if err := h.profiles.ChangePassword(r.Context(), identity.UserID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "password changed"})
}
