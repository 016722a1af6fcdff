package service

import (
	"context"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// StoryService serves public, unauthenticated story lookups.
type StoryService struct {
	catalog repository.StoryCatalog
}

// NewStoryService creates a StoryService.
func NewStoryService(catalog repository.StoryCatalog) *StoryService {
	return &StoryService{catalog: catalog}
}

// GetByID returns the catalog entry for id, or NotFound.
func (s *StoryService) GetByID(ctx context.Context, id string) (*model.Story, error) {
	if id == "" {
		return nil, apperror.ValidationFailed("id", "story ID is required")
	}
	return s.catalog.GetByID(ctx, id)
}
