package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

func newTestStorage(t *testing.T) *BookmarkStorage {
	t.Helper()
	storage, err := NewBookmarkStorage(filepath.Join(t.TempDir(), "data", "bookmarks.json"))
	if err != nil {
		t.Fatalf("NewBookmarkStorage: %v", err)
	}
	return storage
}

func testBookmark(title string) domain.Bookmark {
	return domain.Bookmark{
		PropertyID:   uuid.New(),
		Title:        title,
		Location:     "Minsk",
		Price:        125000,
		Type:         domain.TypeSale,
		Image:        "https://cdn.example.com/img.jpg",
		BookmarkedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNewBookmarkStorageRequiresPath(t *testing.T) {
	if _, err := NewBookmarkStorage(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestGetMissingFileReturnsEmptyList(t *testing.T) {
	storage := newTestStorage(t)

	bookmarks, err := storage.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if bookmarks == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(bookmarks) != 0 {
		t.Errorf("expected no bookmarks, got %d", len(bookmarks))
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	storage := newTestStorage(t)
	saved := []domain.Bookmark{testBookmark("first"), testBookmark("second")}

	if err := storage.Set(context.Background(), saved); err != nil {
		t.Fatalf("Set: %v", err)
	}

	loaded, err := storage.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 bookmarks, got %d", len(loaded))
	}
	for i := range saved {
		if loaded[i].PropertyID != saved[i].PropertyID {
			t.Errorf("bookmark %d: PropertyID = %s, want %s", i, loaded[i].PropertyID, saved[i].PropertyID)
		}
		if loaded[i].Title != saved[i].Title {
			t.Errorf("bookmark %d: Title = %q, want %q", i, loaded[i].Title, saved[i].Title)
		}
		if !loaded[i].BookmarkedAt.Equal(saved[i].BookmarkedAt) {
			t.Errorf("bookmark %d: BookmarkedAt = %v, want %v", i, loaded[i].BookmarkedAt, saved[i].BookmarkedAt)
		}
	}
}

func TestSetOverwritesWholeList(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	if err := storage.Set(ctx, []domain.Bookmark{testBookmark("old")}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := storage.Set(ctx, []domain.Bookmark{}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	loaded, err := storage.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty list after overwrite, got %d bookmarks", len(loaded))
	}
}

func TestRemoveToleratesMissingFile(t *testing.T) {
	storage := newTestStorage(t)
	ctx := context.Background()

	if err := storage.Remove(ctx); err != nil {
		t.Fatalf("Remove on missing file: %v", err)
	}

	if err := storage.Set(ctx, []domain.Bookmark{testBookmark("x")}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := storage.Remove(ctx); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(storage.path); !os.IsNotExist(err) {
		t.Errorf("expected storage file to be gone, stat err = %v", err)
	}

	bookmarks, err := storage.Get(ctx)
	if err != nil {
		t.Fatalf("Get after Remove: %v", err)
	}
	if len(bookmarks) != 0 {
		t.Errorf("expected empty list after Remove, got %d", len(bookmarks))
	}
}

func TestGetRejectsCorruptedFile(t *testing.T) {
	storage := newTestStorage(t)

	if err := os.WriteFile(storage.path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupted file: %v", err)
	}
	if _, err := storage.Get(context.Background()); err == nil {
		t.Fatal("expected error for corrupted storage file")
	}
}
