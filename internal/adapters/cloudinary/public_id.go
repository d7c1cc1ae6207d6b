package cloudinary_adapter

import (
	"regexp"
	"strings"
)

var versionSegmentRe = regexp.MustCompile(`^v\d+$`)

// AssetIDFromURL извлекает public id ассета из URL доставки.
// Формат: .../upload/[v<версия>/]<public id с папками>.<расширение>.
// Для чужих URL (заглушки, внешние картинки) возвращает false.
func (s *AssetStore) AssetIDFromURL(rawURL string) (string, bool) {
	parts := strings.Split(rawURL, "/")

	uploadIdx := -1
	for i, part := range parts {
		if part == "upload" {
			uploadIdx = i
			break
		}
	}
	if uploadIdx == -1 || uploadIdx == len(parts)-1 {
		return "", false
	}

	rest := parts[uploadIdx+1:]
	// Сегмент версии опционален и в public id не входит.
	if versionSegmentRe.MatchString(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", false
	}

	publicID := strings.Join(rest, "/")
	if dot := strings.LastIndex(publicID, "."); dot > strings.LastIndex(publicID, "/") {
		publicID = publicID[:dot]
	}
	if publicID == "" {
		return "", false
	}
	return publicID, true
}
