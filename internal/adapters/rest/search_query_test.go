package rest

import (
	"net/http/httptest"
	"testing"

	"listing-service/internal/core/domain"
)

func TestParseSearchQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/properties?search=loft&type=rent&minPrice=500&maxPrice=1500&location=minsk&bedrooms=2&bathrooms=1", nil)

	q, err := parseSearchQuery(r)
	if err != nil {
		t.Fatalf("parseSearchQuery: %v", err)
	}

	if q.Search != "loft" || q.Location != "minsk" || q.Type != domain.TypeRent {
		t.Errorf("unexpected query: %+v", q)
	}
	if q.MinPrice == nil || *q.MinPrice != 500 {
		t.Errorf("MinPrice = %v", q.MinPrice)
	}
	if q.MaxPrice == nil || *q.MaxPrice != 1500 {
		t.Errorf("MaxPrice = %v", q.MaxPrice)
	}
	if q.Bedrooms == nil || *q.Bedrooms != 2 {
		t.Errorf("Bedrooms = %v", q.Bedrooms)
	}
	if q.Bathrooms == nil || *q.Bathrooms != 1 {
		t.Errorf("Bathrooms = %v", q.Bathrooms)
	}
}

func TestParseSearchQueryEmpty(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/properties", nil)

	q, err := parseSearchQuery(r)
	if err != nil {
		t.Fatalf("parseSearchQuery: %v", err)
	}
	if !q.IsEmpty() {
		t.Errorf("expected empty query, got %+v", q)
	}
}

func TestParseSearchQueryRejectsGarbage(t *testing.T) {
	for _, target := range []string{
		"/api/v1/properties?type=mansion",
		"/api/v1/properties?minPrice=cheap",
		"/api/v1/properties?bedrooms=two",
	} {
		r := httptest.NewRequest("GET", target, nil)
		if _, err := parseSearchQuery(r); err == nil {
			t.Errorf("%s: expected error", target)
		}
	}
}
