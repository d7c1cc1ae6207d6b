package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type AddPropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	assets port.AssetStorePort
}

func NewAddPropertyUseCase(repo port.PropertyRepositoryPort, assets port.AssetStorePort) *AddPropertyUseCase {
	return &AddPropertyUseCase{
		repo:   repo,
		assets: assets,
	}
}

func (uc *AddPropertyUseCase) Execute(ctx context.Context, draft domain.PropertyDraft, images []port.AssetPayload) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddProperty",
		"image_count": len(images),
	})
	ucLogger.Info("Use case started: adding property", nil)

	draft.Normalize()
	if err := draft.Validate(); err != nil {
		ucLogger.Warn("Draft validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	draft.Images = uc.resolveImages(ctx, ucLogger, images)

	property, err := uc.repo.Add(ctx, draft)
	if err != nil {
		ucLogger.Error("Repository failed to add property", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: property added", port.Fields{
		"property_id": property.ID.String(),
		"images":      len(property.Images),
	})
	return property, nil
}

// resolveImages грузит изображения в хранилище ассетов. Загрузка - это
// "best-effort enhancement": если хранилище не сконфигурировано или пакетная
// загрузка провалилась, объявление все равно создается с детерминированными
// плейсхолдерами. Без изображений вообще - ровно один плейсхолдер.
func (uc *AddPropertyUseCase) resolveImages(ctx context.Context, ucLogger port.LoggerPort, images []port.AssetPayload) []string {
	if len(images) == 0 {
		return uc.assets.PlaceholderURLs(1)
	}

	if !uc.assets.Configured() {
		ucLogger.Warn("Asset store not configured, using placeholder images", nil)
		return uc.assets.PlaceholderURLs(len(images))
	}

	uploaded, err := uc.assets.Upload(ctx, images)
	if err != nil {
		ucLogger.Error("Image upload failed, falling back to placeholders", err, nil)
		return uc.assets.PlaceholderURLs(len(images))
	}

	urls := make([]string, len(uploaded))
	for i, asset := range uploaded {
		urls[i] = asset.URL
	}
	return urls
}
