// Archive API implementation of [Archive]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/shared"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8000"

// ArchiveClient implements the [Archive] interface against the REST backend.
//
// Requests pass through a [rate.Limiter] so interactive refreshes can't
// hammer the backend. No timeout is applied: a hung request stays pending
// until the caller gives up.
type ArchiveClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewArchiveClient creates a new archive client. An empty baseURL falls back
// to the default local backend, a nil client to [http.DefaultClient].
func NewArchiveClient(baseURL string, client *http.Client, rps float64) *ArchiveClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	if rps <= 0 {
		rps = 4
	}

	return &ArchiveClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (a *ArchiveClient) Name() string {
	return "archive"
}

// AssetURL resolves a backend-relative asset path to an absolute URL.
func (a *ArchiveClient) AssetURL(assetPath string) string {
	if strings.HasPrefix(assetPath, "http://") || strings.HasPrefix(assetPath, "https://") {
		return assetPath
	}
	return a.baseURL + assetPath
}

// doRequest performs an HTTP request against the archive API and decodes a
// JSON response into result when provided.
func (a *ArchiveClient) doRequest(ctx context.Context, method, endpoint, contentType string, body io.Reader, result any) error {
	if err := a.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrFileNotFound, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// ListFiles retrieves the uploaded files for a category.
func (a *ArchiveClient) ListFiles(ctx context.Context, category models.Category) ([]models.MediaFile, error) {
	endpoint := fmt.Sprintf("/api/music-files?type=%s", url.QueryEscape(string(category)))

	var files []models.MediaFile
	if err := a.doRequest(ctx, http.MethodGet, endpoint, "", nil, &files); err != nil {
		return nil, err
	}

	return files, nil
}

// UploadFile submits a multipart create request with file, name and type
// fields.
func (a *ArchiveClient) UploadFile(ctx context.Context, upload UploadRequest) (*models.MediaFile, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create file part: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, fmt.Errorf("failed to write file part: %w", err)
	}

	if err := writer.WriteField("name", upload.Name); err != nil {
		return nil, fmt.Errorf("failed to write name field: %w", err)
	}
	if err := writer.WriteField("type", string(upload.Category)); err != nil {
		return nil, fmt.Errorf("failed to write type field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	var created models.MediaFile
	if err := a.doRequest(ctx, http.MethodPost, "/api/music-files", writer.FormDataContentType(), &buf, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

// DeleteFile removes an uploaded file by id.
func (a *ArchiveClient) DeleteFile(ctx context.Context, id string) error {
	endpoint := fmt.Sprintf("/api/music-files/%s", url.PathEscape(id))
	return a.doRequest(ctx, http.MethodDelete, endpoint, "", nil, nil)
}

// ListFavorites retrieves the curated favorites for a category.
func (a *ArchiveClient) ListFavorites(ctx context.Context, category models.Category) ([]models.FavoriteTrack, error) {
	var favorites []models.FavoriteTrack
	if err := a.doRequest(ctx, http.MethodGet, category.FavoritesPath(), "", nil, &favorites); err != nil {
		return nil, err
	}

	return favorites, nil
}
