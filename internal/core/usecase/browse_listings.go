package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type BrowseListingsUseCase struct {
	repo      port.PropertyRepositoryPort
	bookmarks port.BookmarkStoragePort
}

func NewBrowseListingsUseCase(repo port.PropertyRepositoryPort, bookmarks port.BookmarkStoragePort) *BrowseListingsUseCase {
	return &BrowseListingsUseCase{
		repo:      repo,
		bookmarks: bookmarks,
	}
}

// Execute загружает полный список объявлений и прогоняет его через чистый
// движок фильтрации в памяти. При scope=bookmarked кандидаты заранее
// сужаются до текущего снимка закладок.
func (uc *BrowseListingsUseCase) Execute(ctx context.Context, filter domain.ListFilter) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseListings",
		"scope":    filter.Scope,
	})

	properties, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Repository failed to list properties", err, nil)
		return nil, err
	}

	var bookmarked map[uuid.UUID]struct{}
	if filter.Scope == domain.ScopeBookmarked {
		stored, err := uc.bookmarks.Get(ctx)
		if err != nil {
			ucLogger.Error("Failed to read bookmark snapshot", err, nil)
			return nil, err
		}
		bookmarked = make(map[uuid.UUID]struct{}, len(stored))
		for _, b := range stored {
			bookmarked[b.PropertyID] = struct{}{}
		}
	}

	filtered := domain.ApplyFilter(properties, filter, bookmarked)
	ucLogger.Info("Use case finished", port.Fields{
		"candidates": len(properties),
		"matched":    len(filtered),
	})
	return filtered, nil
}
