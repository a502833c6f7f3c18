// package services defines interface Archive for interacting with the media
// archive HTTP API
package services

import (
	"context"
	"io"

	"github.com/bandolabs/bando/internal/models"
)

// Archive defines the operations the media archive backend exposes to this
// client: list and mutate uploads, and read the curated favorites.
type Archive interface {
	// ListFiles retrieves the uploaded files for a category.
	ListFiles(ctx context.Context, category models.Category) ([]models.MediaFile, error)

	// UploadFile submits a new media file as a multipart request with
	// `file`, `name` and `type` fields. Returns the created record.
	UploadFile(ctx context.Context, req UploadRequest) (*models.MediaFile, error)

	// DeleteFile removes an uploaded file by id.
	DeleteFile(ctx context.Context, id string) error

	// ListFavorites retrieves the read-only curated favorites for a category.
	ListFavorites(ctx context.Context, category models.Category) ([]models.FavoriteTrack, error)

	// AssetURL resolves a backend-relative static asset path ("/uploads/…",
	// "/videos/…") to an absolute URL playable by the media handles.
	AssetURL(assetPath string) string

	// Name returns the name of the service
	Name() string
}

// UploadRequest carries the three multipart fields of a create request.
type UploadRequest struct {
	Name     string
	Category models.Category
	Filename string // original filename, sent as the file part's name
	Content  io.Reader
}
