package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const propertyColumns = `id, title, description, price, location, type, bedrooms, bathrooms, area,
	amenities, images, contact_name, contact_phone, contact_email, latitude, longitude,
	created_at, updated_at`

// PostgresPropertyAdapter реализует PropertyRepositoryPort для PostgreSQL.
type PostgresPropertyAdapter struct {
	pool *pgxpool.Pool
}

// NewPostgresPropertyAdapter создает новый экземпляр адаптера.
func NewPostgresPropertyAdapter(pool *pgxpool.Pool) (*PostgresPropertyAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresPropertyAdapter{
		pool: pool,
	}, nil
}

// List возвращает все объявления, новые первыми. Порядок стабилен:
// при равном created_at разруливаем по id.
func (a *PostgresPropertyAdapter) List(ctx context.Context) ([]domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties ORDER BY created_at DESC, id DESC`, propertyColumns)

	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to query properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// GetByID возвращает (nil, nil), если объявления нет: отсутствие - не ошибка.
func (a *PostgresPropertyAdapter) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE id = $1`, propertyColumns)

	row := a.pool.QueryRow(ctx, query, id)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to get property with id %s: %w", id, err)
	}

	return property, nil
}

// Search выполняет фильтрацию на стороне БД. Пустой запрос эквивалентен List.
func (a *PostgresPropertyAdapter) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Property, error) {
	if q.IsEmpty() {
		return a.List(ctx)
	}

	query, args := buildSearchQuery(q)

	rows, err := a.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to search properties: %w", err)
	}
	defer rows.Close()

	return collectProperties(rows)
}

// Add вставляет новое объявление. Возможный дубликат (совпадающий
// fingerprint) только логируется: решение об удалении остается за
// администратором.
func (a *PostgresPropertyAdapter) Add(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyAdapter",
		"method":    "Add",
	})

	fingerprint := buildFingerprint(draft)
	a.warnOnDuplicate(ctx, logger, fingerprint)

	now := time.Now().UTC()
	property := domain.Property{
		ID:          uuid.New(),
		Title:       draft.Title,
		Description: draft.Description,
		Price:       draft.Price,
		Location:    draft.Location,
		Type:        draft.Type,
		Bedrooms:    draft.Bedrooms,
		Bathrooms:   draft.Bathrooms,
		Area:        draft.Area,
		Amenities:   draft.Amenities,
		Images:      draft.Images,
		Contact:     draft.Contact,
		Latitude:    draft.Latitude,
		Longitude:   draft.Longitude,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO properties (
			id, title, description, price, location, type, bedrooms, bathrooms, area,
			amenities, images, contact_name, contact_phone, contact_email,
			latitude, longitude, fingerprint, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19
		)`

	_, err := a.pool.Exec(ctx, query,
		property.ID, property.Title, property.Description, property.Price, property.Location,
		property.Type, property.Bedrooms, property.Bathrooms, property.Area,
		property.Amenities, property.Images,
		property.Contact.Name, property.Contact.Phone, property.Contact.Email,
		property.Latitude, property.Longitude, fingerprint,
		property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to insert property: %w", err)
	}

	logger.Info("Property inserted", port.Fields{"property_id": property.ID.String()})
	return &property, nil
}

// Update изменяет только присланные поля. (nil, nil), если объявления нет.
func (a *PostgresPropertyAdapter) Update(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error) {
	query, args := buildUpdateQuery(id, patch)

	row := a.pool.QueryRow(ctx, query, args...)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to update property with id %s: %w", id, err)
	}

	return property, nil
}

// Delete удаляет объявление и возвращает его последний снимок.
// (nil, nil), если объявления нет.
func (a *PostgresPropertyAdapter) Delete(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := fmt.Sprintf(`DELETE FROM properties WHERE id = $1 RETURNING %s`, propertyColumns)

	row := a.pool.QueryRow(ctx, query, id)
	property, err := scanProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("PostgresPropertyAdapter: failed to delete property with id %s: %w", id, err)
	}

	return property, nil
}

// warnOnDuplicate проверяет наличие объявления с тем же fingerprint.
// Ошибка проверки не блокирует вставку.
func (a *PostgresPropertyAdapter) warnOnDuplicate(ctx context.Context, logger port.LoggerPort, fingerprint string) {
	var count int
	err := a.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM properties WHERE fingerprint = $1`,
		fingerprint,
	).Scan(&count)
	if err != nil {
		logger.Warn("Duplicate check failed", port.Fields{"error": err.Error()})
		return
	}
	if count > 0 {
		logger.Warn("Possible duplicate listing detected", port.Fields{
			"fingerprint":    fingerprint,
			"existing_count": count,
		})
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Location, &p.Type,
		&p.Bedrooms, &p.Bathrooms, &p.Area,
		&p.Amenities, &p.Images,
		&p.Contact.Name, &p.Contact.Phone, &p.Contact.Email,
		&p.Latitude, &p.Longitude,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProperties(rows pgx.Rows) ([]domain.Property, error) {
	var properties []domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during property rows iteration: %w", err)
	}

	return properties, nil
}
