package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sakif/nusantara-stories/internal/apperror"
)

const catalogJSON = `[
  {"id": "timun-mas", "title": "Timun Mas", "region": "Jawa Tengah"},
  {"id": "malin-kundang", "title": "Malin Kundang", "region": "Sumatera Barat"},
  {"id": "sangkuriang", "title": "Sangkuriang", "region": "Jawa Barat"}
]`

func newTestCatalog(t *testing.T) *StoryCatalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stories.json")
	if err := os.WriteFile(path, []byte(catalogJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return NewStoryCatalog(path, testLogger())
}

func TestGetByID_Found(t *testing.T) {
	catalog := newTestCatalog(t)

	story, err := catalog.GetByID(context.Background(), "malin-kundang")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if story.Title != "Malin Kundang" {
		t.Errorf("Title = %q, want Malin Kundang", story.Title)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.GetByID(context.Background(), "no-such-story")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestGetByID_ExactMatchOnly(t *testing.T) {
	catalog := newTestCatalog(t)

	// No normalization: case and whitespace differences don't match.
	for _, id := range []string{"Timun-Mas", "timun-mas ", " timun-mas"} {
		if _, err := catalog.GetByID(context.Background(), id); err == nil {
			t.Errorf("GetByID(%q) should not match %q", id, "timun-mas")
		}
	}
}

func TestListByIDs_IntersectsAndDropsStale(t *testing.T) {
	catalog := newTestCatalog(t)

	// "vanished-story" is a stale favorite — dropped without error.
	stories, err := catalog.ListByIDs(context.Background(),
		[]string{"sangkuriang", "vanished-story", "timun-mas"})
	if err != nil {
		t.Fatalf("ListByIDs() error = %v", err)
	}

	if len(stories) != 2 {
		t.Fatalf("ListByIDs() = %d stories, want 2", len(stories))
	}
	// Results come back in catalog order, not request order.
	if stories[0].ID != "timun-mas" || stories[1].ID != "sangkuriang" {
		t.Errorf("ListByIDs() order = %q, %q", stories[0].ID, stories[1].ID)
	}
}

func TestListByIDs_EmptySet(t *testing.T) {
	catalog := newTestCatalog(t)

	stories, err := catalog.ListByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListByIDs() error = %v", err)
	}
	if len(stories) != 0 {
		t.Errorf("ListByIDs(nil) = %d stories, want 0", len(stories))
	}
}

func TestCatalog_MissingFile(t *testing.T) {
	catalog := NewStoryCatalog(filepath.Join(t.TempDir(), "absent.json"), testLogger())

	if _, err := catalog.GetByID(context.Background(), "timun-mas"); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID() on missing catalog should be NotFound, got %v", err)
	}

	stories, err := catalog.ListByIDs(context.Background(), []string{"timun-mas"})
	if err != nil {
		t.Fatalf("ListByIDs() error = %v", err)
	}
	if len(stories) != 0 {
		t.Errorf("ListByIDs() on missing catalog = %d stories, want 0", len(stories))
	}
}
