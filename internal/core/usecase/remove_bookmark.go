package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type RemoveBookmarkUseCase struct {
	storage port.BookmarkStoragePort
}

func NewRemoveBookmarkUseCase(storage port.BookmarkStoragePort) *RemoveBookmarkUseCase {
	return &RemoveBookmarkUseCase{storage: storage}
}

func (uc *RemoveBookmarkUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveBookmark",
		"property_id": propertyID.String(),
	})

	bookmarks, err := uc.storage.Get(ctx)
	if err != nil {
		ucLogger.Error("Failed to read bookmarks", err, nil)
		return false, err
	}

	updated := make([]domain.Bookmark, 0, len(bookmarks))
	removed := false
	for _, b := range bookmarks {
		if b.PropertyID == propertyID {
			removed = true
			continue
		}
		updated = append(updated, b)
	}
	if !removed {
		ucLogger.Debug("Bookmark not present, nothing to remove", nil)
		return false, nil
	}

	if err := uc.storage.Set(ctx, updated); err != nil {
		ucLogger.Error("Failed to persist bookmarks", err, nil)
		return false, err
	}

	ucLogger.Info("Bookmark removed", nil)
	return true, nil
}
