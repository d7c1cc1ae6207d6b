package domain

import (
	"errors"
	"reflect"
	"testing"
)

func validDraft() PropertyDraft {
	return PropertyDraft{
		Title:       "Modern 3BHK Apartment",
		Description: "Spacious apartment with city view",
		Price:       250000,
		Location:    "Mumbai, Maharashtra",
		Type:        TypeSale,
		Contact: Contact{
			Name:  "Ravi Kumar",
			Phone: "+91 98765 43210",
			Email: "Ravi.Kumar@Example.com",
		},
	}
}

func TestNormalizeAmenities(t *testing.T) {
	got := NormalizeAmenities([]string{" Parking", "Security ", "  ", "Lift", ""})
	want := []string{"Parking", "Security", "Lift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAmenities: got %v, want %v", got, want)
	}
}

func TestSplitAmenities(t *testing.T) {
	got := SplitAmenities("Parking, Security,  Lift ,")
	want := []string{"Parking", "Security", "Lift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAmenities: got %v, want %v", got, want)
	}

	if got := SplitAmenities("   "); len(got) != 0 {
		t.Errorf("SplitAmenities of blank string: got %v, want empty", got)
	}
}

func TestDraftNormalizeLowersContactEmail(t *testing.T) {
	draft := validDraft()
	draft.Title = "  Modern 3BHK Apartment  "
	draft.Amenities = []string{" Parking ", ""}

	draft.Normalize()

	if draft.Title != "Modern 3BHK Apartment" {
		t.Errorf("title not trimmed: %q", draft.Title)
	}
	if draft.Contact.Email != "ravi.kumar@example.com" {
		t.Errorf("email not lowercased: %q", draft.Contact.Email)
	}
	if !reflect.DeepEqual(draft.Amenities, []string{"Parking"}) {
		t.Errorf("amenities not normalized: %v", draft.Amenities)
	}
}

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PropertyDraft)
		wantErr bool
	}{
		{"valid", func(d *PropertyDraft) {}, false},
		{"missing title", func(d *PropertyDraft) { d.Title = "" }, true},
		{"missing description", func(d *PropertyDraft) { d.Description = "" }, true},
		{"missing location", func(d *PropertyDraft) { d.Location = "" }, true},
		{"negative price", func(d *PropertyDraft) { d.Price = -1 }, true},
		{"zero price", func(d *PropertyDraft) { d.Price = 0 }, false},
		{"bad type", func(d *PropertyDraft) { d.Type = "lease" }, true},
		{"negative bedrooms", func(d *PropertyDraft) { v := -2; d.Bedrooms = &v }, true},
		{"missing contact email", func(d *PropertyDraft) { d.Contact.Email = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validDraft()
			tt.mutate(&draft)

			err := draft.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error does not wrap ErrValidation: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPatchValidateChecksOnlySetFields(t *testing.T) {
	empty := PropertyPatch{}
	if err := empty.Validate(); err != nil {
		t.Fatalf("empty patch must be valid: %v", err)
	}

	blankTitle := " "
	patch := PropertyPatch{Title: &blankTitle}
	if err := patch.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("blank title must fail validation, got %v", err)
	}

	badType := ListingType("lease")
	patch = PropertyPatch{Type: &badType}
	if err := patch.Validate(); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown type must fail validation, got %v", err)
	}
}

func TestPrimaryImage(t *testing.T) {
	p := Property{Images: []string{"https://example.com/a.jpg", "https://example.com/b.jpg"}}
	if got := p.PrimaryImage(); got != "https://example.com/a.jpg" {
		t.Errorf("PrimaryImage: got %q", got)
	}

	empty := Property{}
	if got := empty.PrimaryImage(); got != "" {
		t.Errorf("PrimaryImage of empty list: got %q, want empty", got)
	}
}
