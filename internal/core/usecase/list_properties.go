package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewListPropertiesUseCase(repo port.PropertyRepositoryPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{repo: repo}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ListProperties"})

	properties, err := uc.repo.List(ctx)
	if err != nil {
		ucLogger.Error("Repository failed to list properties", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished", port.Fields{"count": len(properties)})
	return properties, nil
}
