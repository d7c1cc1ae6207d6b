package rest

import (
	"encoding/json"
	"reflect"
	"testing"

	"listing-service/internal/core/domain"
)

func TestParseAmenities(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"array", `["Parking","Security"]`, []string{"Parking", "Security"}, false},
		{"comma string", `"Parking, Security,  Lift ,"`, []string{"Parking", "Security", "Lift"}, false},
		{"empty string", `""`, nil, false},
		{"null", `null`, nil, false},
		{"missing", ``, nil, false},
		{"number", `42`, nil, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var raw json.RawMessage
			if tc.raw != "" {
				raw = json.RawMessage(tc.raw)
			}
			got, err := parseAmenities(raw)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("got %v, want %v", got, tc.want)
					break
				}
			}
		})
	}
}

func TestToPatchOnlySentFields(t *testing.T) {
	var payload propertyPayload
	if err := json.Unmarshal([]byte(`{"title":"New title","price":95000}`), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	patch, err := payload.toPatch()
	if err != nil {
		t.Fatalf("toPatch: %v", err)
	}

	if patch.Title == nil || *patch.Title != "New title" {
		t.Errorf("Title = %v", patch.Title)
	}
	if patch.Price == nil || *patch.Price != 95000 {
		t.Errorf("Price = %v", patch.Price)
	}
	// Неприсланные поля остаются nil и не попадают в обновление.
	if patch.Description != nil || patch.Type != nil || patch.Amenities != nil || patch.Contact != nil {
		t.Errorf("unsent fields must stay nil: %+v", patch)
	}
}

func TestToPatchAmenitiesAndContact(t *testing.T) {
	var payload propertyPayload
	body := `{"amenities":"Parking, Lift","contact":{"name":"Ann","phone":"+375291112233","email":"ann@example.com"}}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	patch, err := payload.toPatch()
	if err != nil {
		t.Fatalf("toPatch: %v", err)
	}

	if patch.Amenities == nil || !reflect.DeepEqual(*patch.Amenities, []string{"Parking", "Lift"}) {
		t.Errorf("Amenities = %v", patch.Amenities)
	}
	if patch.Contact == nil || patch.Contact.Name != "Ann" {
		t.Errorf("Contact = %+v", patch.Contact)
	}
}

func TestToDraftDefaultsAndAmenities(t *testing.T) {
	var payload propertyPayload
	body := `{
		"title": "Two bedroom flat",
		"price": 125000,
		"location": "Minsk",
		"type": "sale",
		"amenities": [" Parking ", "", "Lift"]
	}`
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	draft, err := payload.toDraft()
	if err != nil {
		t.Fatalf("toDraft: %v", err)
	}

	if draft.Title != "Two bedroom flat" || draft.Type != domain.TypeSale {
		t.Errorf("unexpected draft: %+v", draft)
	}
	if draft.Description != "" {
		t.Errorf("missing description must default to empty, got %q", draft.Description)
	}
	if !reflect.DeepEqual(draft.Amenities, []string{"Parking", "Lift"}) {
		t.Errorf("Amenities = %v, want trimmed [Parking Lift]", draft.Amenities)
	}
}

func TestToPropertyResponseNeverNullSlices(t *testing.T) {
	resp := toPropertyResponse(domain.Property{})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["amenities"] == nil {
		t.Error("amenities must serialize as [], not null")
	}
	if decoded["images"] == nil {
		t.Error("images must serialize as [], not null")
	}
}
