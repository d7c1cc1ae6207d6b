package usecase

import (
	"context"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type AddBookmarkUseCase struct {
	storage port.BookmarkStoragePort
}

func NewAddBookmarkUseCase(storage port.BookmarkStoragePort) *AddBookmarkUseCase {
	return &AddBookmarkUseCase{storage: storage}
}

// Execute добавляет закладку со снимком объявления. Повторное добавление -
// идемпотентный no-op: возвращается false, не ошибка. Read-modify-write
// выполняется целиком: читаем весь список, меняем, пишем обратно.
func (uc *AddBookmarkUseCase) Execute(ctx context.Context, property domain.Property) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddBookmark",
		"property_id": property.ID.String(),
	})

	bookmarks, err := uc.storage.Get(ctx)
	if err != nil {
		ucLogger.Error("Failed to read bookmarks", err, nil)
		return false, err
	}

	for _, b := range bookmarks {
		if b.PropertyID == property.ID {
			ucLogger.Debug("Bookmark already exists, skipping", nil)
			return false, nil
		}
	}

	// Новая закладка встает в начало списка.
	updated := append([]domain.Bookmark{domain.NewBookmark(property, time.Now().UTC())}, bookmarks...)
	if err := uc.storage.Set(ctx, updated); err != nil {
		ucLogger.Error("Failed to persist bookmarks", err, nil)
		return false, err
	}

	ucLogger.Info("Bookmark added", nil)
	return true, nil
}
