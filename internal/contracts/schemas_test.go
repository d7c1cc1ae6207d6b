package contracts

import (
	"strings"
	"testing"
)

func TestGenerateKeyFromPath(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{"schemas/events/inquiry-submitted/v1.json", "InquirySubmittedEvent/1.0.0"},
		{"schemas/payloads/property-payload/v1.json", "PropertyPayload/1.0.0"},
		{"schemas/events/garbage.json", ""},
	}
	for _, tc := range testCases {
		if got := generateKeyFromPath(tc.path); got != tc.want {
			t.Errorf("generateKeyFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestValidateInquirySubmittedEvent(t *testing.T) {
	valid := `{
		"name": "Ann",
		"email": "ann@example.com",
		"message": "Is this flat still available?",
		"submitted_at": "2025-11-01T10:00:00Z"
	}`
	if err := ValidateEvent("InquirySubmittedEvent", "1.0.0", []byte(valid)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	missingEmail := `{
		"name": "Ann",
		"message": "Is this flat still available?",
		"submitted_at": "2025-11-01T10:00:00Z"
	}`
	if err := ValidateEvent("InquirySubmittedEvent", "1.0.0", []byte(missingEmail)); err == nil {
		t.Error("payload without email must be rejected")
	}

	unknownField := `{
		"name": "Ann",
		"email": "ann@example.com",
		"message": "Hi",
		"submitted_at": "2025-11-01T10:00:00Z",
		"smuggled": true
	}`
	if err := ValidateEvent("InquirySubmittedEvent", "1.0.0", []byte(unknownField)); err == nil {
		t.Error("payload with unknown fields must be rejected")
	}
}

func TestValidatePropertyPayload(t *testing.T) {
	valid := `{
		"title": "Two bedroom flat",
		"price": 125000,
		"type": "sale",
		"amenities": "Parking, Lift",
		"contact": {"name": "Ann", "phone": "+375291112233", "email": "ann@example.com"}
	}`
	if err := ValidatePayload("PropertyPayload", "1.0.0", []byte(valid)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}

	// Частичный payload валиден: обязательность полей проверяет домен.
	if err := ValidatePayload("PropertyPayload", "1.0.0", []byte(`{"title":"Renamed"}`)); err != nil {
		t.Errorf("partial payload rejected: %v", err)
	}

	for name, body := range map[string]string{
		"negative price": `{"price": -1}`,
		"unknown type":   `{"type": "mansion"}`,
		"bad amenities":  `{"amenities": 42}`,
		"unknown field":  `{"smuggled": true}`,
	} {
		if err := ValidatePayload("PropertyPayload", "1.0.0", []byte(body)); err == nil {
			t.Errorf("%s: payload must be rejected", name)
		}
	}
}

func TestValidateEventUnknownSchema(t *testing.T) {
	err := ValidateEvent("NoSuchEvent", "1.0.0", []byte(`{}`))
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateEventRejectsBrokenJSON(t *testing.T) {
	if err := ValidateEvent("InquirySubmittedEvent", "1.0.0", []byte("{broken")); err == nil {
		t.Fatal("expected error for malformed JSON body")
	}
}
