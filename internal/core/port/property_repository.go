package port

import (
	"context"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyRepositoryPort - контракт хранилища объявлений. "Не найдено" -
// нормальный исход (nil, nil), а не ошибка; ошибки означают невалидный ввод
// или недоступность хранилища.
type PropertyRepositoryPort interface {
	// List возвращает все объявления, новые первыми.
	List(ctx context.Context) ([]domain.Property, error)

	// GetByID возвращает объявление или (nil, nil), если его нет.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)

	// Search выполняет конъюнктивный поиск; порядок результата совпадает
	// с List.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.Property, error)

	// Add сохраняет черновик, назначает ID и таймстемпы.
	Add(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)

	// Update накладывает патч и обновляет updated_at; (nil, nil), если ID
	// не существует.
	Update(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error)

	// Delete удаляет документ и возвращает снимок до удаления;
	// (nil, nil), если ID не существует.
	Delete(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}
