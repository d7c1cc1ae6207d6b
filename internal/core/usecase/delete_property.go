package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

type DeletePropertyUseCase struct {
	repo   port.PropertyRepositoryPort
	assets port.AssetStorePort
}

func NewDeletePropertyUseCase(repo port.PropertyRepositoryPort, assets port.AssetStorePort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		repo:   repo,
		assets: assets,
	}
}

// Execute удаляет объявление в два шага: сначала best-effort очистка ассетов,
// затем удаление документа. Транзакции между хранилищами нет - неудачи
// очистки логируются и попадают в сводку, но удаление документа не блокируют.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID) (*domain.DeletionResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id.String(),
	})
	ucLogger.Info("Use case started: deleting property", nil)

	property, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to load property before deletion", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Info("Property not found for deletion", nil)
		return nil, nil
	}

	// Шаг 1: очистка ассетов. URL неопознанной формы отфильтровываются.
	var summary domain.CleanupSummary
	assetIDs := make([]string, 0, len(property.Images))
	for _, url := range property.Images {
		if assetID, ok := uc.assets.AssetIDFromURL(url); ok {
			assetIDs = append(assetIDs, assetID)
		} else {
			ucLogger.Warn("Skipping image with unrecognized asset URL", port.Fields{"url": url})
		}
	}
	if len(assetIDs) > 0 {
		summary = uc.assets.DeleteMany(ctx, assetIDs)
		if summary.Failed > 0 {
			ucLogger.Warn("Asset cleanup partially failed, proceeding with document deletion", port.Fields{
				"total":     summary.Total,
				"succeeded": summary.Succeeded,
				"failed":    summary.Failed,
			})
		}
	}

	// Шаг 2: удаление документа.
	snapshot, err := uc.repo.Delete(ctx, id)
	if err != nil {
		ucLogger.Error("Repository failed to delete property", err, nil)
		return nil, err
	}
	if snapshot == nil {
		// Документ исчез между чтением и удалением.
		ucLogger.Warn("Property disappeared before deletion completed", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished: property deleted", port.Fields{
		"images_total":    summary.Total,
		"cleanup_failed":  summary.Failed,
		"cleanup_success": summary.Succeeded,
	})
	return &domain.DeletionResult{
		Property: *snapshot,
		Cleanup:  summary,
	}, nil
}
