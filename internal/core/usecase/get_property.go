package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPropertyUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewGetPropertyUseCase(repo port.PropertyRepositoryPort) *GetPropertyUseCase {
	return &GetPropertyUseCase{repo: repo}
}

func (uc *GetPropertyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetProperty",
		"property_id": id.String(),
	})

	property, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to get property", err, nil)
		return nil, err
	}
	if property == nil {
		// "Не найдено" - нормальный исход, не ошибка.
		ucLogger.Info("Property not found", nil)
		return nil, nil
	}

	return property, nil
}
