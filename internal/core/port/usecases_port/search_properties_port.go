package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

type SearchPropertiesUseCasePort interface {
	Execute(ctx context.Context, query domain.SearchQuery) ([]domain.Property, error)
}
