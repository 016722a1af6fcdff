package jsonfile

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// compile-time check that *StoryCatalog implements repository.StoryCatalog
var _ repository.StoryCatalog = (*StoryCatalog)(nil)

// StoryCatalog serves read-only story lookups from a flat JSON file.
//
// The file is re-read on every call rather than cached: the catalog is
// small, and re-reading means an operator can swap stories.json under a
// running server without a restart — exactly how the original behaved.
// Like the users store, a missing or unparsable file degrades to an empty
// catalog with a warning.
type StoryCatalog struct {
	path   string
	logger *slog.Logger
}

// NewStoryCatalog creates a catalog backed by the JSON file at path.
func NewStoryCatalog(path string, logger *slog.Logger) *StoryCatalog {
	return &StoryCatalog{path: path, logger: logger}
}

// GetByID returns the story with the given ID.
// Matching is exact-string. Returns apperror.ErrNotFound when absent.
func (c *StoryCatalog) GetByID(_ context.Context, id string) (*model.Story, error) {
	for _, story := range c.read() {
		if story.ID == id {
			s := story
			return &s, nil
		}
	}
	return nil, apperror.NotFound("story", id)
}

// ListByIDs returns the catalog entries whose ID appears in ids, in catalog
// order. Unknown IDs are dropped without error — a favorite pointing at a
// story that has left the catalog simply stops appearing.
func (c *StoryCatalog) ListByIDs(_ context.Context, ids []string) ([]model.Story, error) {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	matched := []model.Story{}
	for _, story := range c.read() {
		if _, ok := wanted[story.ID]; ok {
			matched = append(matched, story)
		}
	}
	return matched, nil
}

func (c *StoryCatalog) read() []model.Story {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !os.IsNotExist(err) {
			c.logger.Warn("stories file unreadable, treating as empty",
				slog.String("path", c.path),
				slog.String("error", err.Error()),
			)
		}
		return nil
	}

	var stories []model.Story
	if err := json.Unmarshal(data, &stories); err != nil {
		c.logger.Warn("stories file unparsable, treating as empty",
			slog.String("path", c.path),
			slog.String("error", err.Error()),
		)
		return nil
	}

	return stories
}
