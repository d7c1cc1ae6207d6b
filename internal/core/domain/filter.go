package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SearchQuery - серверный поисковый запрос к репозиторию. Каждое поле
// опционально, все заданные условия объединяются по "И".
type SearchQuery struct {
	Search    string
	Type      ListingType
	MinPrice  *float64
	MaxPrice  *float64
	Location  string
	Bedrooms  *int
	Bathrooms *int
}

// IsEmpty - true, если ни один фильтр не задан (запрос эквивалентен list).
func (q SearchQuery) IsEmpty() bool {
	return q.Search == "" && q.Type == "" && q.MinPrice == nil && q.MaxPrice == nil &&
		q.Location == "" && q.Bedrooms == nil && q.Bathrooms == nil
}

// Область выборки для in-memory фильтрации.
const (
	ScopeAll        = "all"
	ScopeBookmarked = "bookmarked"
)

// ListFilter - состояние фильтров для движка фильтрации в памяти.
// Пустое значение поля означает "предикат не применяется".
type ListFilter struct {
	Scope     string
	Search    string
	Type      ListingType
	MinPrice  *float64
	MaxPrice  *float64
	Location  string
	Bedrooms  *int
	Bathrooms *int
}

// ApplyFilter - чистая функция фильтрации списка объявлений. Детерминирована:
// порядок входного списка сохраняется. Дешевые предикаты (цена, тип, комнаты)
// проверяются раньше текстового поиска, он самый дорогой.
func ApplyFilter(list []Property, f ListFilter, bookmarked map[uuid.UUID]struct{}) []Property {
	out := make([]Property, 0, len(list))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	location := strings.ToLower(strings.TrimSpace(f.Location))

	for _, p := range list {
		if f.Scope == ScopeBookmarked {
			if _, ok := bookmarked[p.ID]; !ok {
				continue
			}
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		// Точное равенство, как и в серверном поиске.
		if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
			continue
		}
		if f.Bathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms != *f.Bathrooms) {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// matchesSearch - текстовый поиск по заголовку, описанию и локации.
func matchesSearch(p Property, loweredTerm string) bool {
	return strings.Contains(strings.ToLower(p.Title), loweredTerm) ||
		strings.Contains(strings.ToLower(p.Description), loweredTerm) ||
		strings.Contains(strings.ToLower(p.Location), loweredTerm)
}
