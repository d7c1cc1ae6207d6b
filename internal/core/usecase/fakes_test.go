package usecase

import (
	"context"
	"fmt"
	"time"

	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/google/uuid"
)

// fakeRepo - репозиторий с подменяемыми функциями для тестов.
type fakeRepo struct {
	listFn   func(ctx context.Context) ([]domain.Property, error)
	getFn    func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	searchFn func(ctx context.Context, q domain.SearchQuery) ([]domain.Property, error)
	addFn    func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error)
	updateFn func(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error)
	deleteFn func(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

func (f *fakeRepo) List(ctx context.Context) ([]domain.Property, error) {
	return f.listFn(ctx)
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return f.getFn(ctx, id)
}

func (f *fakeRepo) Search(ctx context.Context, q domain.SearchQuery) ([]domain.Property, error) {
	return f.searchFn(ctx, q)
}

func (f *fakeRepo) Add(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	return f.addFn(ctx, draft)
}

func (f *fakeRepo) Update(ctx context.Context, id uuid.UUID, patch domain.PropertyPatch) (*domain.Property, error) {
	return f.updateFn(ctx, id, patch)
}

func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	return f.deleteFn(ctx, id)
}

// echoAdd возвращает Add-функцию, которая превращает черновик в объявление
// и запоминает его для проверок.
func echoAdd(saved **domain.Property) func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
	return func(ctx context.Context, draft domain.PropertyDraft) (*domain.Property, error) {
		now := time.Now().UTC()
		property := &domain.Property{
			ID:          uuid.New(),
			Title:       draft.Title,
			Description: draft.Description,
			Price:       draft.Price,
			Location:    draft.Location,
			Type:        draft.Type,
			Bedrooms:    draft.Bedrooms,
			Bathrooms:   draft.Bathrooms,
			Area:        draft.Area,
			Amenities:   draft.Amenities,
			Images:      draft.Images,
			Contact:     draft.Contact,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		*saved = property
		return property, nil
	}
}

// fakeAssetStore - хранилище ассетов для тестов.
type fakeAssetStore struct {
	configured bool
	uploadErr  error

	uploadedPayloads []port.AssetPayload
	deletedIDs       []string
	deleteManyFn     func(ids []string) domain.CleanupSummary
}

func (f *fakeAssetStore) Configured() bool { return f.configured }

func (f *fakeAssetStore) Upload(ctx context.Context, payloads []port.AssetPayload) ([]port.UploadedAsset, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploadedPayloads = append(f.uploadedPayloads, payloads...)
	assets := make([]port.UploadedAsset, len(payloads))
	for i, p := range payloads {
		assets[i] = port.UploadedAsset{
			URL:     fmt.Sprintf("https://cdn.example.com/upload/v1/test/%s", p.Filename),
			AssetID: "test/" + p.Filename,
		}
	}
	return assets, nil
}

func (f *fakeAssetStore) DeleteAsset(ctx context.Context, assetID string) error {
	f.deletedIDs = append(f.deletedIDs, assetID)
	return nil
}

func (f *fakeAssetStore) DeleteMany(ctx context.Context, assetIDs []string) domain.CleanupSummary {
	f.deletedIDs = append(f.deletedIDs, assetIDs...)
	if f.deleteManyFn != nil {
		return f.deleteManyFn(assetIDs)
	}
	return domain.CleanupSummary{Total: len(assetIDs), Succeeded: len(assetIDs)}
}

func (f *fakeAssetStore) AssetIDFromURL(rawURL string) (string, bool) {
	const prefix = "https://cdn.example.com/upload/v1/"
	if len(rawURL) > len(prefix) && rawURL[:len(prefix)] == prefix {
		return rawURL[len(prefix):], true
	}
	return "", false
}

func (f *fakeAssetStore) PlaceholderURLs(count int) []string {
	if count <= 0 {
		count = 1
	}
	urls := make([]string, count)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://placeholder.example.com/photo?sig=%d", i)
	}
	return urls
}

// fakeBookmarkStorage - in-memory хранилище закладок.
type fakeBookmarkStorage struct {
	bookmarks []domain.Bookmark
	getErr    error
	setErr    error
	removeErr error
}

func (f *fakeBookmarkStorage) Get(ctx context.Context) ([]domain.Bookmark, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return append([]domain.Bookmark{}, f.bookmarks...), nil
}

func (f *fakeBookmarkStorage) Set(ctx context.Context, bookmarks []domain.Bookmark) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.bookmarks = append([]domain.Bookmark{}, bookmarks...)
	return nil
}

func (f *fakeBookmarkStorage) Remove(ctx context.Context) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.bookmarks = nil
	return nil
}

// fakeInquiryQueue записывает отправленные заявки.
type fakeInquiryQueue struct {
	enqueueErr error
	enqueued   []domain.Inquiry
}

func (f *fakeInquiryQueue) Enqueue(ctx context.Context, inquiry domain.Inquiry) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.enqueued = append(f.enqueued, inquiry)
	return nil
}

// fakeTokenService выдает фиксированный токен.
type fakeTokenService struct {
	issueErr  error
	verifyErr error
	claims    *domain.SessionClaims
}

func (f *fakeTokenService) Issue(ctx context.Context, isAdmin bool) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "test-token", nil
}

func (f *fakeTokenService) Verify(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.claims, nil
}

// fakeVerifier сравнивает с эталонным секретом.
type fakeVerifier struct {
	secret string
}

func (f *fakeVerifier) Verify(secret string) bool {
	return secret != "" && secret == f.secret
}
