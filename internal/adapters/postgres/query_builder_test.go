package postgres

import (
	"strings"
	"testing"

	"listing-service/internal/core/domain"

	"github.com/google/uuid"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestBuildSearchQueryEmpty(t *testing.T) {
	query, args := buildSearchQuery(domain.SearchQuery{})

	if strings.Contains(query, "WHERE") {
		t.Errorf("empty query must not have a WHERE clause: %s", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC, id DESC") {
		t.Errorf("missing stable ordering: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildSearchQuerySearchTermReusesOneArg(t *testing.T) {
	query, args := buildSearchQuery(domain.SearchQuery{Search: "loft"})

	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d: %v", len(args), args)
	}
	if args[0] != "%loft%" {
		t.Errorf("args[0] = %v, want %%loft%%", args[0])
	}
	if strings.Count(query, "$1") != 3 {
		t.Errorf("search arg must cover title, description and location: %s", query)
	}
	for _, col := range []string{"title ILIKE", "description ILIKE", "location ILIKE"} {
		if !strings.Contains(query, col) {
			t.Errorf("missing %q in query: %s", col, query)
		}
	}
}

func TestBuildSearchQueryAllFilters(t *testing.T) {
	q := domain.SearchQuery{
		Search:    "loft",
		Type:      domain.TypeRent,
		MinPrice:  floatPtr(500),
		MaxPrice:  floatPtr(1500),
		Location:  "minsk",
		Bedrooms:  intPtr(2),
		Bathrooms: intPtr(1),
	}
	query, args := buildSearchQuery(q)

	want := []interface{}{"%loft%", "rent", 500.0, 1500.0, "%minsk%", 2, 1}
	if len(args) != len(want) {
		t.Fatalf("expected %d args, got %d: %v", len(want), len(args), args)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], want[i])
		}
	}

	// Границы цены включительные, спальни и ванные - точное равенство.
	for _, clause := range []string{"price >= $3", "price <= $4", "bedrooms = $6", "bathrooms = $7"} {
		if !strings.Contains(query, clause) {
			t.Errorf("missing clause %q in query: %s", clause, query)
		}
	}
}

func TestBuildUpdateQueryPartialPatch(t *testing.T) {
	id := uuid.New()
	patch := domain.PropertyPatch{
		Title: strPtr("Updated title"),
		Price: floatPtr(99000),
	}
	query, args := buildUpdateQuery(id, patch)

	if !strings.Contains(query, "title = $1") || !strings.Contains(query, "price = $2") {
		t.Errorf("patched columns missing: %s", query)
	}
	if strings.Contains(query, "description =") || strings.Contains(query, "bedrooms =") {
		t.Errorf("unset fields must not be updated: %s", query)
	}
	if !strings.Contains(query, "updated_at = NOW()") {
		t.Errorf("updated_at must always be refreshed: %s", query)
	}
	if !strings.Contains(query, "WHERE id = $3") {
		t.Errorf("id must be the last argument: %s", query)
	}
	if !strings.Contains(query, "RETURNING "+propertyColumns) {
		t.Errorf("update must return the full row: %s", query)
	}

	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d: %v", len(args), args)
	}
	if args[0] != "Updated title" || args[1] != 99000.0 || args[2] != id {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestBuildUpdateQueryContactExpandsToColumns(t *testing.T) {
	patch := domain.PropertyPatch{
		Contact: &domain.Contact{Name: "Ann", Phone: "+375291112233", Email: "ann@example.com"},
	}
	query, args := buildUpdateQuery(uuid.New(), patch)

	for _, clause := range []string{"contact_name = $1", "contact_phone = $2", "contact_email = $3"} {
		if !strings.Contains(query, clause) {
			t.Errorf("missing clause %q in query: %s", clause, query)
		}
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args (contact fields + id), got %d", len(args))
	}
}
