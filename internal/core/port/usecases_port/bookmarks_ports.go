package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type AddBookmarkUseCasePort interface {
	// Execute - false, если закладка уже существует (идемпотентный no-op).
	Execute(ctx context.Context, property domain.Property) (bool, error)
}

type RemoveBookmarkUseCasePort interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (bool, error)
}

type GetBookmarksUseCasePort interface {
	Execute(ctx context.Context) ([]domain.Bookmark, error)
}

type HasBookmarkUseCasePort interface {
	Execute(ctx context.Context, propertyID uuid.UUID) (bool, error)
}

type ClearBookmarksUseCasePort interface {
	Execute(ctx context.Context) bool
}
