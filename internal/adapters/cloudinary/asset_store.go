package cloudinary_adapter

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"golang.org/x/sync/errgroup"
)

const defaultBaseURL = "https://api.cloudinary.com"

// Детерминированная заглушка для деградированного режима: загрузка
// изображений - best-effort, объявление создается и без хранилища ассетов.
const placeholderURL = "https://images.unsplash.com/photo-1560448204-e02f11c3d0e2?w=800&h=600&fit=crop&auto=format"

// Config - креды облачного хранилища. Пустые значения означают
// деградированный режим, а не ошибку конфигурации.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
	// BaseURL переопределяется в тестах; по умолчанию боевой API.
	BaseURL string
}

// AssetStore - адаптер удаленного хранилища изображений поверх
// Cloudinary-совместимого REST API.
type AssetStore struct {
	config     Config
	httpClient *http.Client
}

func NewAssetStore(cfg Config) *AssetStore {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Folder == "" {
		cfg.Folder = "listing-service-properties"
	}
	return &AssetStore{
		config:     cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured - false, если креды не заданы или остались шаблонными.
func (s *AssetStore) Configured() bool {
	c := s.config
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != "" &&
		c.CloudName != "your-cloud-name" && c.APIKey != "your-api-key"
}

// Upload грузит пакет изображений параллельно и ждет все загрузки разом.
// Отката нет: одна неудача проваливает весь вызов (вызывающий уходит в
// деградированный режим целиком).
func (s *AssetStore) Upload(ctx context.Context, payloads []port.AssetPayload) ([]port.UploadedAsset, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AssetStore",
		"method":    "Upload",
		"count":     len(payloads),
	})

	if len(payloads) == 0 {
		return []port.UploadedAsset{}, nil
	}

	results := make([]port.UploadedAsset, len(payloads))
	g, gctx := errgroup.WithContext(ctx)
	for i, payload := range payloads {
		g.Go(func() error {
			asset, err := s.uploadOne(gctx, payload)
			if err != nil {
				return err
			}
			results[i] = asset
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("Batch upload failed", err, nil)
		return nil, fmt.Errorf("failed to upload images: %w", err)
	}

	logger.Info("Batch upload finished", nil)
	return results, nil
}

// uploadOne выполняет один подписанный multipart-запрос загрузки.
func (s *AssetStore) uploadOne(ctx context.Context, payload port.AssetPayload) (port.UploadedAsset, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign("folder=" + s.config.Folder + "&timestamp=" + timestamp)

	fields := map[string]string{
		"api_key":   s.config.APIKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    s.config.Folder,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return port.UploadedAsset{}, fmt.Errorf("failed to build upload form: %w", err)
		}
	}

	filename := payload.Filename
	if filename == "" {
		filename = "image"
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return port.UploadedAsset{}, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(payload.Data); err != nil {
		return port.UploadedAsset{}, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return port.UploadedAsset{}, fmt.Errorf("failed to build upload form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/upload", s.config.BaseURL, s.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return port.UploadedAsset{}, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return port.UploadedAsset{}, fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return port.UploadedAsset{}, fmt.Errorf("asset store returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var uploadResp struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return port.UploadedAsset{}, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return port.UploadedAsset{
		URL:     uploadResp.SecureURL,
		AssetID: uploadResp.PublicID,
	}, nil
}

// DeleteAsset удаляет один ассет. "not found" - успех: ассет и так отсутствует.
func (s *AssetStore) DeleteAsset(ctx context.Context, assetID string) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AssetStore",
		"method":    "DeleteAsset",
		"asset_id":  assetID,
	})

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := s.sign("public_id=" + assetID + "&timestamp=" + timestamp)

	form := url.Values{}
	form.Set("public_id", assetID)
	form.Set("timestamp", timestamp)
	form.Set("api_key", s.config.APIKey)
	form.Set("signature", signature)

	endpoint := fmt.Sprintf("%s/v1_1/%s/image/destroy", s.config.BaseURL, s.config.CloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBufferString(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create destroy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Error("Destroy request failed", err, nil)
		return fmt.Errorf("destroy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		err := fmt.Errorf("asset store returned non-200 status: %d, body: %s", resp.StatusCode, string(bodyBytes))
		logger.Error("Destroy rejected by asset store", err, nil)
		return err
	}

	var destroyResp struct {
		Result string `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&destroyResp); err != nil {
		return fmt.Errorf("failed to decode destroy response: %w", err)
	}
	if destroyResp.Result != "ok" && destroyResp.Result != "not found" {
		err := fmt.Errorf("asset deletion failed: %s", destroyResp.Result)
		logger.Error("Destroy reported failure", err, nil)
		return err
	}

	logger.Debug("Asset deleted", port.Fields{"result": destroyResp.Result})
	return nil
}

// DeleteMany удаляет ассеты независимо друг от друга: одна неудача не
// прерывает остальные. Возвращает сводку для наблюдаемости; вызывающий
// никогда не проваливает удаление документа из-за нее.
func (s *AssetStore) DeleteMany(ctx context.Context, assetIDs []string) domain.CleanupSummary {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AssetStore",
		"method":    "DeleteMany",
		"count":     len(assetIDs),
	})

	summary := domain.CleanupSummary{Total: len(assetIDs)}
	if len(assetIDs) == 0 {
		return summary
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, assetID := range assetIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.DeleteAsset(ctx, assetID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
			} else {
				summary.Succeeded++
			}
		}()
	}
	wg.Wait()

	logger.Info("Batch deletion finished", port.Fields{
		"succeeded": summary.Succeeded,
		"failed":    summary.Failed,
	})
	return summary
}

// PlaceholderURLs выдает детерминированные URL-заглушки: одинаковый вход -
// одинаковый выход, параметр sig различает позиции в списке.
func (s *AssetStore) PlaceholderURLs(count int) []string {
	if count <= 0 {
		count = 1
	}
	urls := make([]string, count)
	for i := range urls {
		urls[i] = fmt.Sprintf("%s&sig=%d", placeholderURL, i)
	}
	return urls
}

// sign считает подпись запроса: SHA-1 от канонической строки параметров,
// сконкатенированной с секретом.
func (s *AssetStore) sign(params string) string {
	sum := sha1.Sum([]byte(params + s.config.APISecret))
	return hex.EncodeToString(sum[:])
}
