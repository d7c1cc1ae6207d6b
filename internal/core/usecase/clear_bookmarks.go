package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
)

type ClearBookmarksUseCase struct {
	storage port.BookmarkStoragePort
}

func NewClearBookmarksUseCase(storage port.BookmarkStoragePort) *ClearBookmarksUseCase {
	return &ClearBookmarksUseCase{storage: storage}
}

// Execute стирает все закладки. Возвращает false только при сбое хранилища.
func (uc *ClearBookmarksUseCase) Execute(ctx context.Context) bool {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ClearBookmarks"})

	if err := uc.storage.Remove(ctx); err != nil {
		ucLogger.Error("Failed to clear bookmarks", err, nil)
		return false
	}

	ucLogger.Info("Bookmarks cleared", nil)
	return true
}
