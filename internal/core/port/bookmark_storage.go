package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// BookmarkStoragePort - инжектируемый порт локального хранилища закладок
// (get/set/remove над целым списком). Никакой серверной синхронизации:
// хранилище живет на стороне клиента.
type BookmarkStoragePort interface {
	// Get читает весь список закладок; отсутствие хранилища - пустой список.
	Get(ctx context.Context) ([]domain.Bookmark, error)

	// Set записывает весь список целиком (read-modify-write делает вызывающий).
	Set(ctx context.Context, bookmarks []domain.Bookmark) error

	// Remove стирает хранилище целиком.
	Remove(ctx context.Context) error
}
