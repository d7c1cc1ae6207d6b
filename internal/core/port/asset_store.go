package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// AssetPayload - закодированное изображение, пришедшее из multipart-формы.
type AssetPayload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// UploadedAsset - результат загрузки одного изображения.
type UploadedAsset struct {
	URL     string
	AssetID string
}

// AssetStorePort - контракт удаленного хранилища изображений.
type AssetStorePort interface {
	// Configured - false, если креды хранилища не заданы: вызывающая
	// сторона переходит в деградированный режим с плейсхолдерами.
	Configured() bool

	// Upload грузит пачку изображений параллельно. Пакет неделим: одна
	// неудача проваливает весь вызов, отката частично загруженных нет.
	Upload(ctx context.Context, payloads []AssetPayload) ([]UploadedAsset, error)

	// DeleteAsset удаляет один ассет; "not found" считается успехом.
	DeleteAsset(ctx context.Context, assetID string) error

	// DeleteMany удаляет ассеты независимо друг от друга и возвращает
	// сводку. Неудачи не прерывают остальные удаления.
	DeleteMany(ctx context.Context, assetIDs []string) domain.CleanupSummary

	// AssetIDFromURL восстанавливает идентификатор ассета из URL доставки.
	// ok == false для неопознанной формы URL.
	AssetIDFromURL(url string) (string, bool)

	// PlaceholderURLs возвращает детерминированные URL-заглушки для
	// деградированного режима.
	PlaceholderURLs(count int) []string
}
