package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdatePropertyUseCasePort interface {
	// Execute накладывает патч; итоговый список изображений - это
	// existingImages (URL, которые вызывающий оставляет) плюс свежие
	// загрузки. (nil, nil), если объявления нет.
	Execute(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch, existingImages []string, newImages []port.AssetPayload) (*domain.Property, error)
}
