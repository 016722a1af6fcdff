package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sakif/nusantara-stories/internal/apperror"
	"github.com/sakif/nusantara-stories/internal/model"
	"github.com/sakif/nusantara-stories/internal/repository"
)

// compile-time check that *DB implements repository.StoryCatalog
var _ repository.StoryCatalog = (*DB)(nil)

// GetByID returns the story with the given ID.
// Returns apperror.ErrNotFound if no such row exists.
func (db *DB) GetByID(ctx context.Context, id string) (*model.Story, error) {
	var s model.Story

	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, region, synopsis, content, image_url
		 FROM stories WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.Title, &s.Region, &s.Synopsis, &s.Content, &s.ImageURL)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperror.NotFound("story", id)
		}
		return nil, fmt.Errorf("sqlite: getting story %s: %w", id, err)
	}

	return &s, nil
}

// ListByIDs returns the stories whose ID appears in ids, in primary-key
// order. Unknown IDs simply produce no row — no error.
func (db *DB) ListByIDs(ctx context.Context, ids []string) ([]model.Story, error) {
	if len(ids) == 0 {
		return []model.Story{}, nil
	}

	// Build the IN (?, ?, ...) placeholder list. database/sql has no
	// slice-expansion, so we generate one placeholder per ID.
	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, region, synopsis, content, image_url
		 FROM stories WHERE id IN (`+placeholders+`) ORDER BY id`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing stories: %w", err)
	}
	defer rows.Close()

	stories := []model.Story{}
	for rows.Next() {
		var s model.Story
		if err := rows.Scan(&s.ID, &s.Title, &s.Region, &s.Synopsis, &s.Content, &s.ImageURL); err != nil {
			return nil, fmt.Errorf("sqlite: scanning story row: %w", err)
		}
		stories = append(stories, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating story rows: %w", err)
	}

	return stories, nil
}
