package postgres

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"listing-service/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 6

// buildFingerprint строит стабильный отпечаток объявления для поиска
// дубликатов. Координаты (если есть) сворачиваются в geohash, иначе
// используется нормализованный адрес; числовые поля сводятся к бакетам,
// чтобы мелкие расхождения не ломали совпадение.
func buildFingerprint(draft domain.PropertyDraft) string {
	parts := []string{
		locationPart(draft),
		string(draft.Type),
		normalizeAreaToBucket(draft.Area, 2.0),
	}

	addInt := func(val *int) {
		if val != nil {
			parts = append(parts, fmt.Sprintf("%d", *val))
		} else {
			parts = append(parts, "null")
		}
	}

	addInt(draft.Bedrooms)
	addInt(draft.Bathrooms)

	payload := strings.Join(parts, "|")
	sum := sha256.Sum256([]byte(payload))
	return fmt.Sprintf("%x", sum)
}

func locationPart(draft domain.PropertyDraft) string {
	if draft.Latitude != nil && draft.Longitude != nil {
		geohsh := geohash.Encode(*draft.Latitude, *draft.Longitude)
		return geohsh[:geohashPrecision]
	}
	return strings.ToLower(strings.TrimSpace(draft.Location))
}

func normalizeAreaToBucket(area *float64, bucketSize float64) string {
	if area == nil {
		return "null"
	}
	if bucketSize <= 0 {
		bucketSize = 1.0
	}
	bucketIndex := int(*area / bucketSize)
	return fmt.Sprintf("%d", bucketIndex)
}
