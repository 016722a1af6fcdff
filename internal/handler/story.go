package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sakif/nusantara-stories/internal/service"
)

// StoryHandler serves public story lookups — no authentication required.
type StoryHandler struct {
	stories *service.StoryService
	logger  *slog.Logger
}

// NewStoryHandler creates a StoryHandler.
func NewStoryHandler(stories *service.StoryService, logger *slog.Logger) *StoryHandler {
	return &StoryHandler{stories: stories, logger: logger}
}

// HandleGetByID returns a single catalog entry.
//
// HTTP: GET /api/stories/{id}
func (h *StoryHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	story, err := h.stories.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, story)
}

// HandleRoot is the unauthenticated landing endpoint — a cheap liveness
// check for load balancers and humans poking at the server.
//
// HTTP: GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "nusantara-stories",
		"status":  "ok",
	})
}
