package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListingType - тип сделки по объявлению.
type ListingType string

const (
	TypeSale ListingType = "sale"
	TypeRent ListingType = "rent"
)

// IsValid проверяет, что тип - одно из двух допустимых значений.
func (t ListingType) IsValid() bool {
	return t == TypeSale || t == TypeRent
}

// Contact - контактные данные владельца объявления. Все поля обязательны.
type Contact struct {
	Name  string
	Phone string
	Email string
}

// Property - центральная сущность: объявление о продаже или аренде.
// Порядок в Images стабилен, элемент с индексом 0 - главное изображение.
type Property struct {
	ID          uuid.UUID
	Title       string
	Description string
	Price       float64
	Location    string
	Type        ListingType
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Amenities   []string
	Images      []string
	Contact     Contact
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PrimaryImage возвращает главное изображение объявления (первое в списке).
func (p *Property) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// PropertyDraft - данные для создания объявления. ID и таймстемпы
// назначает хранилище.
type PropertyDraft struct {
	Title       string
	Description string
	Price       float64
	Location    string
	Type        ListingType
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Amenities   []string
	Images      []string
	Contact     Contact
	Latitude    *float64
	Longitude   *float64
}

// Normalize приводит черновик к каноническому виду перед сохранением:
// email контакта в нижнем регистре, обрезанные пробелы в текстовых полях.
func (d *PropertyDraft) Normalize() {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Location = strings.TrimSpace(d.Location)
	d.Contact.Name = strings.TrimSpace(d.Contact.Name)
	d.Contact.Phone = strings.TrimSpace(d.Contact.Phone)
	d.Contact.Email = strings.ToLower(strings.TrimSpace(d.Contact.Email))
	d.Amenities = NormalizeAmenities(d.Amenities)
}

// Validate проверяет инварианты модели. Нарушение - это ошибка валидации,
// а не "не найдено" и не сбой хранилища.
func (d *PropertyDraft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if d.Description == "" {
		return fmt.Errorf("%w: description is required", ErrValidation)
	}
	if d.Location == "" {
		return fmt.Errorf("%w: location is required", ErrValidation)
	}
	if d.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if !d.Type.IsValid() {
		return fmt.Errorf("%w: type must be %q or %q", ErrValidation, TypeSale, TypeRent)
	}
	if d.Bedrooms != nil && *d.Bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must be non-negative", ErrValidation)
	}
	if d.Bathrooms != nil && *d.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must be non-negative", ErrValidation)
	}
	if d.Area != nil && *d.Area < 0 {
		return fmt.Errorf("%w: area must be non-negative", ErrValidation)
	}
	if d.Contact.Name == "" || d.Contact.Phone == "" || d.Contact.Email == "" {
		return fmt.Errorf("%w: contact name, phone and email are required", ErrValidation)
	}
	return nil
}

// PropertyPatch - частичное обновление объявления. nil-поле означает
// "не менять". Список изображений заменяется целиком: вызывающая сторона
// обязана прислать все URL, которые хочет сохранить.
type PropertyPatch struct {
	Title       *string
	Description *string
	Price       *float64
	Location    *string
	Type        *ListingType
	Bedrooms    *int
	Bathrooms   *int
	Area        *float64
	Amenities   *[]string
	Images      *[]string
	Contact     *Contact
	Latitude    *float64
	Longitude   *float64
}

// Validate проверяет только заданные поля патча.
func (p *PropertyPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if p.Description != nil && strings.TrimSpace(*p.Description) == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrValidation)
	}
	if p.Location != nil && strings.TrimSpace(*p.Location) == "" {
		return fmt.Errorf("%w: location cannot be empty", ErrValidation)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	if p.Type != nil && !p.Type.IsValid() {
		return fmt.Errorf("%w: type must be %q or %q", ErrValidation, TypeSale, TypeRent)
	}
	if p.Bedrooms != nil && *p.Bedrooms < 0 {
		return fmt.Errorf("%w: bedrooms must be non-negative", ErrValidation)
	}
	if p.Bathrooms != nil && *p.Bathrooms < 0 {
		return fmt.Errorf("%w: bathrooms must be non-negative", ErrValidation)
	}
	if p.Area != nil && *p.Area < 0 {
		return fmt.Errorf("%w: area must be non-negative", ErrValidation)
	}
	if p.Contact != nil && (p.Contact.Name == "" || p.Contact.Phone == "" || p.Contact.Email == "") {
		return fmt.Errorf("%w: contact name, phone and email are required", ErrValidation)
	}
	return nil
}

// NormalizeAmenities чистит список удобств: обрезает пробелы и выбрасывает
// пустые элементы. Порядок сохраняется.
func NormalizeAmenities(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, a := range raw {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// SplitAmenities разбирает удобства, переданные одной строкой через запятую.
func SplitAmenities(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeAmenities(strings.Split(raw, ","))
}

// CleanupSummary - итог пакетного удаления ассетов. Отдельные неудачи не
// прерывают остальные удаления и не проваливают удаление документа.
type CleanupSummary struct {
	Total     int
	Succeeded int
	Failed    int
}

// DeletionResult - результат удаления объявления: снимок документа до
// удаления плюс сводка по очистке ассетов.
type DeletionResult struct {
	Property Property
	Cleanup  CleanupSummary
}
