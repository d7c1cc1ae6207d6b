package postgres

import (
	"fmt"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

// buildSearchQuery собирает SQL для поиска по фильтрам. Условия добавляются
// только для заданных полей; нумерация аргументов сквозная через argID.
func buildSearchQuery(q domain.SearchQuery) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argID := 1

	if q.Search != "" {
		// Один аргумент переиспользуется во всех трех колонках.
		pattern := "%" + q.Search + "%"
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR location ILIKE $%d)",
			argID, argID, argID,
		))
		args = append(args, pattern)
		argID++
	}

	if q.Type != "" {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argID))
		args = append(args, string(q.Type))
		argID++
	}

	// Границы цены включительные.
	if q.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", argID))
		args = append(args, *q.MinPrice)
		argID++
	}
	if q.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argID))
		args = append(args, *q.MaxPrice)
		argID++
	}

	if q.Location != "" {
		conditions = append(conditions, fmt.Sprintf("location ILIKE $%d", argID))
		args = append(args, "%"+q.Location+"%")
		argID++
	}

	if q.Bedrooms != nil {
		conditions = append(conditions, fmt.Sprintf("bedrooms = $%d", argID))
		args = append(args, *q.Bedrooms)
		argID++
	}
	if q.Bathrooms != nil {
		conditions = append(conditions, fmt.Sprintf("bathrooms = $%d", argID))
		args = append(args, *q.Bathrooms)
		argID++
	}

	query := fmt.Sprintf(`SELECT %s FROM properties`, propertyColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	return query, args
}

// buildUpdateQuery собирает UPDATE только из присланных полей патча.
// updated_at обновляется всегда.
func buildUpdateQuery(id uuid.UUID, patch domain.PropertyPatch) (string, []interface{}) {
	var setClauses []string
	var args []interface{}
	argID := 1

	addSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Price != nil {
		addSet("price", *patch.Price)
	}
	if patch.Location != nil {
		addSet("location", *patch.Location)
	}
	if patch.Type != nil {
		addSet("type", string(*patch.Type))
	}
	if patch.Bedrooms != nil {
		addSet("bedrooms", *patch.Bedrooms)
	}
	if patch.Bathrooms != nil {
		addSet("bathrooms", *patch.Bathrooms)
	}
	if patch.Area != nil {
		addSet("area", *patch.Area)
	}
	if patch.Amenities != nil {
		addSet("amenities", *patch.Amenities)
	}
	if patch.Images != nil {
		addSet("images", *patch.Images)
	}
	if patch.Contact != nil {
		addSet("contact_name", patch.Contact.Name)
		addSet("contact_phone", patch.Contact.Phone)
		addSet("contact_email", patch.Contact.Email)
	}
	if patch.Latitude != nil {
		addSet("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		addSet("longitude", *patch.Longitude)
	}

	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(
		`UPDATE properties SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, propertyColumns,
	)
	args = append(args, id)

	return query, args
}
