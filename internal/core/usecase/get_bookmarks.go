package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetBookmarksUseCase struct {
	storage port.BookmarkStoragePort
}

func NewGetBookmarksUseCase(storage port.BookmarkStoragePort) *GetBookmarksUseCase {
	return &GetBookmarksUseCase{storage: storage}
}

func (uc *GetBookmarksUseCase) Execute(ctx context.Context) ([]domain.Bookmark, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetBookmarks"})

	bookmarks, err := uc.storage.Get(ctx)
	if err != nil {
		ucLogger.Error("Failed to read bookmarks", err, nil)
		return nil, err
	}
	return bookmarks, nil
}
