package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyUseCasePort interface {
	// Execute возвращает (nil, nil), если объявления нет.
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}
