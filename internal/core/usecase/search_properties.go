package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type SearchPropertiesUseCase struct {
	repo port.PropertyRepositoryPort
}

func NewSearchPropertiesUseCase(repo port.PropertyRepositoryPort) *SearchPropertiesUseCase {
	return &SearchPropertiesUseCase{repo: repo}
}

func (uc *SearchPropertiesUseCase) Execute(ctx context.Context, query domain.SearchQuery) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SearchProperties"})

	// Пустой запрос эквивалентен полному списку; порядок путей совпадает.
	if query.IsEmpty() {
		return uc.repo.List(ctx)
	}

	properties, err := uc.repo.Search(ctx, query)
	if err != nil {
		ucLogger.Error("Repository failed to search properties", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished", port.Fields{"found": len(properties)})
	return properties, nil
}
