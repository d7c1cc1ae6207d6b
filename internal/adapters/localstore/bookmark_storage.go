package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"listing-service/internal/core/domain"
)

// BookmarkStorage хранит закладки в одном JSON-файле. Мьютекс
// сериализует доступ: закладки - единый список, конкурентные
// read-modify-write без него теряли бы записи.
type BookmarkStorage struct {
	path string
	mu   sync.Mutex
}

func NewBookmarkStorage(path string) (*BookmarkStorage, error) {
	if path == "" {
		return nil, fmt.Errorf("bookmark storage path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bookmark storage dir: %w", err)
	}
	return &BookmarkStorage{path: path}, nil
}

// Get возвращает сохраненный список. Отсутствующий файл - пустой список.
func (s *BookmarkStorage) Get(ctx context.Context) ([]domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.Bookmark{}, nil
		}
		return nil, fmt.Errorf("failed to read bookmark storage: %w", err)
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(data, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to decode bookmark storage: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

// Set перезаписывает список целиком. Запись через временный файл и
// rename, чтобы читатели не видели недописанный JSON.
func (s *BookmarkStorage) Set(ctx context.Context, bookmarks []domain.Bookmark) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(bookmarks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bookmarks: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write bookmark storage: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace bookmark storage: %w", err)
	}
	return nil
}

// Remove удаляет файл хранилища. Отсутствие файла - не ошибка.
func (s *BookmarkStorage) Remove(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove bookmark storage: %w", err)
	}
	return nil
}
