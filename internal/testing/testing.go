// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/services"
	"github.com/bandolabs/bando/internal/shared"
)

// MockArchive is a configurable test double for [services.Archive].
//
// Call counters let tests assert that validation failures never issue a
// network request.
type MockArchive struct {
	Files     []models.MediaFile
	Favorites []models.FavoriteTrack
	Created   *models.MediaFile
	Err       error

	ListCalls      int
	UploadCalls    int
	DeleteCalls    int
	FavoritesCalls int

	LastUpload     services.UploadRequest
	LastUploadBody string
	LastDeleteID   string
}

func (m *MockArchive) ListFiles(ctx context.Context, category models.Category) ([]models.MediaFile, error) {
	m.ListCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	var files []models.MediaFile
	for _, f := range m.Files {
		if f.Category == category {
			files = append(files, f)
		}
	}
	return files, nil
}

func (m *MockArchive) UploadFile(ctx context.Context, req services.UploadRequest) (*models.MediaFile, error) {
	m.UploadCalls++
	m.LastUpload = req
	if req.Content != nil {
		// Drain the body the way a real transport would.
		body, _ := io.ReadAll(req.Content)
		m.LastUploadBody = string(body)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Created != nil {
		return m.Created, nil
	}
	created := models.MediaFile{
		ID:               shared.GenerateID(),
		Name:             req.Name,
		OriginalFilename: req.Filename,
		StoredFilename:   req.Filename,
		Category:         req.Category,
	}
	return &created, nil
}

func (m *MockArchive) DeleteFile(ctx context.Context, id string) error {
	m.DeleteCalls++
	m.LastDeleteID = id
	return m.Err
}

func (m *MockArchive) ListFavorites(ctx context.Context, category models.Category) ([]models.FavoriteTrack, error) {
	m.FavoritesCalls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Favorites, nil
}

func (m *MockArchive) AssetURL(assetPath string) string {
	return "http://mock" + assetPath
}

func (m *MockArchive) Name() string { return "mock" }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
