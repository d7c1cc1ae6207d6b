package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdatePropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	assets port.AssetStorePort
}

func NewUpdatePropertyUseCase(repo port.PropertyRepositoryPort, assets port.AssetStorePort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{
		repo:   repo,
		assets: assets,
	}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch, existingImages []string, newImages []port.AssetPayload) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id.String(),
		"new_images":  len(newImages),
	})
	ucLogger.Info("Use case started: updating property", nil)

	if err := patch.Validate(); err != nil {
		ucLogger.Warn("Patch validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	// Семантика замены: итоговый список = сохраненные вызывающим URL плюс
	// свежие загрузки. Изображение, не присланное повторно, выпадает из
	// списка (но ассет в хранилище не трогаем - его чистит только delete).
	images := append([]string{}, existingImages...)

	if len(newImages) > 0 && uc.assets.Configured() {
		uploaded, err := uc.assets.Upload(ctx, newImages)
		if err != nil {
			// Как и при создании, неудачная загрузка не блокирует мутацию.
			ucLogger.Error("Image upload failed during update, keeping existing images only", err, nil)
		} else {
			for _, asset := range uploaded {
				images = append(images, asset.URL)
			}
		}
	} else if len(newImages) > 0 {
		ucLogger.Warn("Asset store not configured, ignoring new image uploads", nil)
	}

	patch.Images = &images

	property, err := uc.repo.Update(ctx, id, patch)
	if err != nil {
		ucLogger.Error("Repository failed to update property", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Info("Property not found for update", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished: property updated", port.Fields{"images": len(property.Images)})
	return property, nil
}
