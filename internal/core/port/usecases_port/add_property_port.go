package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type AddPropertyUseCasePort interface {
	// Execute валидирует черновик, грузит изображения (или подставляет
	// плейсхолдеры в деградированном режиме) и сохраняет объявление.
	Execute(ctx context.Context, draft domain.PropertyDraft, images []port.AssetPayload) (*domain.Property, error)
}
