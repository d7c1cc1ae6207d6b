package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark - локально сохраненная ссылка на объявление с денормализованным
// снимком. Снимок переживает удаление самого объявления и обратно не
// синхронизируется.
type Bookmark struct {
	PropertyID   uuid.UUID   `json:"propertyId"`
	Title        string      `json:"title"`
	Location     string      `json:"location"`
	Price        float64     `json:"price"`
	Type         ListingType `json:"type"`
	Image        string      `json:"image"`
	BookmarkedAt time.Time   `json:"bookmarkedAt"`
}

// NewBookmark делает снимок объявления для закладки.
func NewBookmark(p Property, now time.Time) Bookmark {
	return Bookmark{
		PropertyID:   p.ID,
		Title:        p.Title,
		Location:     p.Location,
		Price:        p.Price,
		Type:         p.Type,
		Image:        p.PrimaryImage(),
		BookmarkedAt: now,
	}
}
