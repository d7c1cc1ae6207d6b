package rest

import (
	"encoding/json"
	"fmt"
	"time"

	"listing-service/internal/core/domain"
)

// ContactDTO - контакт продавца в запросах и ответах.
type ContactDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PropertyResponse - представление объявления для фронта.
type PropertyResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Location    string     `json:"location"`
	Type        string     `json:"type"`
	Bedrooms    *int       `json:"bedrooms,omitempty"`
	Bathrooms   *int       `json:"bathrooms,omitempty"`
	Area        *float64   `json:"area,omitempty"`
	Amenities   []string   `json:"amenities"`
	Images      []string   `json:"images"`
	Contact     ContactDTO `json:"contact"`
	Latitude    *float64   `json:"latitude,omitempty"`
	Longitude   *float64   `json:"longitude,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// propertyPayload - JSON из поля "data" multipart-запроса на создание
// или обновление. Amenities принимаем и строкой с запятыми, и массивом,
// поэтому парсим отложенно.
type propertyPayload struct {
	Title          *string         `json:"title"`
	Description    *string         `json:"description"`
	Price          *float64        `json:"price"`
	Location       *string         `json:"location"`
	Type           *string         `json:"type"`
	Bedrooms       *int            `json:"bedrooms"`
	Bathrooms      *int            `json:"bathrooms"`
	Area           *float64        `json:"area"`
	Amenities      json.RawMessage `json:"amenities"`
	Contact        *ContactDTO     `json:"contact"`
	ExistingImages []string        `json:"existingImages"`
	Latitude       *float64        `json:"latitude"`
	Longitude      *float64        `json:"longitude"`
}

// parseAmenities разбирает поле amenities: JSON-массив или строка
// "Parking, Security, Lift".
func parseAmenities(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var asList []string
	if err := json.Unmarshal(raw, &asList); err == nil {
		return domain.NormalizeAmenities(asList), nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return domain.SplitAmenities(asString), nil
	}

	return nil, fmt.Errorf("amenities must be a string or an array of strings")
}

func deref[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}

// toDraft собирает черновик объявления для создания. Обязательность полей
// проверяет домен.
func (p propertyPayload) toDraft() (domain.PropertyDraft, error) {
	amenities, err := parseAmenities(p.Amenities)
	if err != nil {
		return domain.PropertyDraft{}, err
	}

	var contact domain.Contact
	if p.Contact != nil {
		contact = domain.Contact{
			Name:  p.Contact.Name,
			Phone: p.Contact.Phone,
			Email: p.Contact.Email,
		}
	}

	return domain.PropertyDraft{
		Title:       deref(p.Title),
		Description: deref(p.Description),
		Price:       deref(p.Price),
		Location:    deref(p.Location),
		Type:        domain.ListingType(deref(p.Type)),
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Amenities:   amenities,
		Contact:     contact,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}, nil
}

// toPatch собирает частичное обновление: в патч попадают только
// присланные поля.
func (p propertyPayload) toPatch() (domain.PropertyPatch, error) {
	patch := domain.PropertyPatch{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
	}

	if p.Type != nil {
		listingType := domain.ListingType(*p.Type)
		patch.Type = &listingType
	}

	if len(p.Amenities) > 0 && string(p.Amenities) != "null" {
		amenities, err := parseAmenities(p.Amenities)
		if err != nil {
			return domain.PropertyPatch{}, err
		}
		patch.Amenities = &amenities
	}

	if p.Contact != nil {
		patch.Contact = &domain.Contact{
			Name:  p.Contact.Name,
			Phone: p.Contact.Phone,
			Email: p.Contact.Email,
		}
	}

	return patch, nil
}

func toPropertyResponse(property domain.Property) PropertyResponse {
	amenities := property.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := property.Images
	if images == nil {
		images = []string{}
	}

	return PropertyResponse{
		ID:          property.ID.String(),
		Title:       property.Title,
		Description: property.Description,
		Price:       property.Price,
		Location:    property.Location,
		Type:        string(property.Type),
		Bedrooms:    property.Bedrooms,
		Bathrooms:   property.Bathrooms,
		Area:        property.Area,
		Amenities:   amenities,
		Images:      images,
		Contact: ContactDTO{
			Name:  property.Contact.Name,
			Phone: property.Contact.Phone,
			Email: property.Contact.Email,
		},
		Latitude:  property.Latitude,
		Longitude: property.Longitude,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

// CleanupSummaryDTO - итог удаления изображений удаленного объявления.
type CleanupSummaryDTO struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// DeletionResponse - ответ на удаление: снимок объявления до удаления
// плюс сводка по очистке ассетов.
type DeletionResponse struct {
	Success  bool              `json:"success"`
	Property PropertyResponse  `json:"property"`
	Cleanup  CleanupSummaryDTO `json:"cleanup"`
}

func toDeletionResponse(result domain.DeletionResult) DeletionResponse {
	return DeletionResponse{
		Success:  true,
		Property: toPropertyResponse(result.Property),
		Cleanup: CleanupSummaryDTO{
			Total:     result.Cleanup.Total,
			Succeeded: result.Cleanup.Succeeded,
			Failed:    result.Cleanup.Failed,
		},
	}
}

func toPropertyResponseList(properties []domain.Property) []PropertyResponse {
	responses := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		responses[i] = toPropertyResponse(property)
	}
	return responses
}
