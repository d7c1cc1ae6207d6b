package domain

import (
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleProperties() []Property {
	return []Property{
		{
			ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Title:    "Modern Apartment",
			Price:    250000,
			Location: "Mumbai, Maharashtra",
			Type:     TypeSale,
			Bedrooms: intPtr(3),
		},
		{
			ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Title:    "Cozy Studio",
			Price:    1200,
			Location: "Pune",
			Type:     TypeRent,
			Bedrooms: intPtr(1),
		},
		{
			ID:       uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Title:    "Beach House",
			Price:    900000,
			Location: "Goa",
			Type:     TypeSale,
		},
	}
}

func TestApplyFilterEmptyReturnsAll(t *testing.T) {
	list := sampleProperties()
	got := ApplyFilter(list, ListFilter{}, nil)
	if len(got) != len(list) {
		t.Fatalf("empty filter: got %d items, want %d", len(got), len(list))
	}
	// порядок входа сохраняется
	for i := range list {
		if got[i].ID != list[i].ID {
			t.Errorf("order changed at index %d", i)
		}
	}
}

func TestApplyFilterByTypeAndPrice(t *testing.T) {
	got := ApplyFilter(sampleProperties(), ListFilter{
		Type:     TypeSale,
		MaxPrice: floatPtr(500000),
	}, nil)

	if len(got) != 1 || got[0].Title != "Modern Apartment" {
		t.Fatalf("got %v, want only Modern Apartment", got)
	}
}

func TestApplyFilterPriceBoundsInclusive(t *testing.T) {
	got := ApplyFilter(sampleProperties(), ListFilter{
		MinPrice: floatPtr(250000),
		MaxPrice: floatPtr(250000),
	}, nil)
	if len(got) != 1 {
		t.Fatalf("inclusive bounds: got %d items, want 1", len(got))
	}
}

func TestApplyFilterBedroomsExactMatch(t *testing.T) {
	got := ApplyFilter(sampleProperties(), ListFilter{Bedrooms: intPtr(3)}, nil)
	if len(got) != 1 || got[0].Title != "Modern Apartment" {
		t.Fatalf("bedrooms=3: got %v", got)
	}

	// Объявления без указанных спален не попадают под фильтр по спальням
	got = ApplyFilter(sampleProperties(), ListFilter{Bedrooms: intPtr(0)}, nil)
	if len(got) != 0 {
		t.Fatalf("bedrooms=0: got %d items, want 0", len(got))
	}
}

func TestApplyFilterSearchIsCaseInsensitive(t *testing.T) {
	got := ApplyFilter(sampleProperties(), ListFilter{Search: "beach"}, nil)
	if len(got) != 1 || got[0].Title != "Beach House" {
		t.Fatalf("search=beach: got %v", got)
	}

	got = ApplyFilter(sampleProperties(), ListFilter{Search: "MUMBAI"}, nil)
	if len(got) != 1 || got[0].Title != "Modern Apartment" {
		t.Fatalf("search matches location too: got %v", got)
	}
}

func TestApplyFilterBookmarkedScope(t *testing.T) {
	list := sampleProperties()
	bookmarked := map[uuid.UUID]struct{}{
		list[1].ID: {},
	}

	got := ApplyFilter(list, ListFilter{Scope: ScopeBookmarked}, bookmarked)
	if len(got) != 1 || got[0].ID != list[1].ID {
		t.Fatalf("bookmarked scope: got %v", got)
	}

	// Пустой набор закладок дает пустой результат, а не все объявления
	got = ApplyFilter(list, ListFilter{Scope: ScopeBookmarked}, nil)
	if len(got) != 0 {
		t.Fatalf("bookmarked scope with no bookmarks: got %d items", len(got))
	}
}

func TestApplyFilterCombinesConditions(t *testing.T) {
	got := ApplyFilter(sampleProperties(), ListFilter{
		Type:   TypeSale,
		Search: "house",
	}, nil)
	if len(got) != 1 || got[0].Title != "Beach House" {
		t.Fatalf("combined filter: got %v", got)
	}
}
