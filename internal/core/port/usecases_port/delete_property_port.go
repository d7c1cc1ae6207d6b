package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

type DeletePropertyUseCasePort interface {
	// Execute возвращает (nil, nil), если объявления нет; иначе снимок до
	// удаления и сводку по очистке ассетов.
	Execute(ctx context.Context, id uuid.UUID) (*domain.DeletionResult, error)
}
