package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type HasBookmarkUseCase struct {
	storage port.BookmarkStoragePort
}

func NewHasBookmarkUseCase(storage port.BookmarkStoragePort) *HasBookmarkUseCase {
	return &HasBookmarkUseCase{storage: storage}
}

func (uc *HasBookmarkUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	bookmarks, err := uc.storage.Get(ctx)
	if err != nil {
		logger.Error("Failed to read bookmarks", err, port.Fields{"use_case": "HasBookmark"})
		return false, err
	}
	for _, b := range bookmarks {
		if b.PropertyID == propertyID {
			return true, nil
		}
	}
	return false, nil
}
