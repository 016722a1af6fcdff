// Package handler contains the HTTP layer: request parsing, response
// formatting, and nothing else. Business rules live in internal/service.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sakif/nusantara-stories/internal/service"
)

// AuthHandler serves the public entry points: registration and login.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler. All dependencies are injected;
// the handler has no knowledge of how they're constructed.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

type registerRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister creates a new account.
//
// HTTP: POST /register
// Body: {"fullname": "...", "email": "...", "password": "..."}
//
// 201 on success. Registration does not log the user in — no token is
// issued here; the client follows up with POST /login.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	if err := h.auth.Register(r.Context(), req.Fullname, req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "registration successful"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse mirrors what the frontend has always consumed: the token
// plus the public fullname nested under "user".
type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		Fullname string `json:"fullname"`
	} `json:"user"`
}

// HandleLogin verifies credentials and returns a session token.
//
// HTTP: POST /login
// Body: {"email": "...", "password": "..."}
//
// Failure codes are intentionally distinct: 404 when the email isn't
// registered, 401 when it is but the password is wrong.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: "invalid JSON body",
		})
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := loginResponse{
		Message: "login successful",
		Token:   result.Token,
	}
	resp.User.Fullname = result.Fullname

	writeJSON(w, http.StatusOK, resp)
}
