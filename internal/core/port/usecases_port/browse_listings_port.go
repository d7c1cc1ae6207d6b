package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type BrowseListingsUseCasePort interface {
	// Execute применяет in-memory фильтры к списку объявлений; при
	// scope=bookmarked кандидаты предварительно сужаются до закладок.
	Execute(ctx context.Context, filter domain.ListFilter) ([]domain.Property, error)
}
