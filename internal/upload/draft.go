// Package upload implements the transient upload draft: file selection
// constrained to the archive's media types, auto-derived display names, and
// submission as a multipart create request.
//
// A [Draft] is page-local state. It is created empty, mutated by selection
// and typing, cleared on successful upload, and never persisted. Rejected
// selections and failed submissions leave the draft exactly as it was so the
// user can retry.
package upload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/services"
	"github.com/bandolabs/bando/internal/shared"
)

// allowedTypes is the fixed MIME allow-set for uploads.
var allowedTypes = map[string]bool{
	"audio/mpeg": true,
	"audio/mp3":  true,
	"audio/mp4":  true,
	"video/mp4":  true,
}

// typeByExtension maps the accepted upload extensions to their MIME types.
var typeByExtension = map[string]string{
	".mp3": "audio/mpeg",
	".mp4": "video/mp4",
}

// AllowedType reports whether a MIME type is in the upload allow-set.
func AllowedType(mimeType string) bool {
	return allowedTypes[strings.ToLower(strings.TrimSpace(mimeType))]
}

// TypeForFile resolves a file's MIME type from its extension. Returns an
// empty string for extensions outside the accepted set.
func TypeForFile(path string) string {
	return typeByExtension[strings.ToLower(filepath.Ext(path))]
}

// Draft is the transient unsaved upload form state for one page.
type Draft struct {
	category models.Category
	path     string
	filename string
	name     string
}

// NewDraft creates an empty draft tagged with the page's category.
func NewDraft(category models.Category) *Draft {
	return &Draft{category: category}
}

// Select validates and accepts a file selection. Files outside the MIME
// allow-set are rejected without mutating the draft. On acceptance the draft
// name is auto-populated from the filename with its final extension stripped.
func (d *Draft) Select(path string) error {
	mimeType := TypeForFile(path)
	if mimeType == "" || !AllowedType(mimeType) {
		return fmt.Errorf("%w: %s", shared.ErrUnsupportedFileType, filepath.Base(path))
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %s", shared.ErrMissingFile, path)
	}

	d.path = path
	d.filename = filepath.Base(path)
	d.name = shared.DisplayName(path)
	return nil
}

// SetName replaces the draft's display name with user input.
func (d *Draft) SetName(name string) {
	d.name = name
}

// Name returns the draft's display name as typed.
func (d *Draft) Name() string { return d.name }

// Filename returns the original filename of the selected file, or empty.
func (d *Draft) Filename() string { return d.filename }

// Category returns the page category the draft is tagged with.
func (d *Draft) Category() models.Category { return d.category }

// HasFile reports whether a file has been selected.
func (d *Draft) HasFile() bool { return d.path != "" }

// Validate checks the submit preconditions: a selected file and a non-empty
// trimmed name. Violations surface before any request is sent.
func (d *Draft) Validate() error {
	if !d.HasFile() {
		return shared.ErrMissingFile
	}
	if strings.TrimSpace(d.name) == "" {
		return shared.ErrEmptyName
	}
	return nil
}

// Reset clears the draft back to its empty state.
func (d *Draft) Reset() {
	d.path = ""
	d.filename = ""
	d.name = ""
}

// Submit validates the draft and sends it to the archive as a multipart
// create request. On success the draft is cleared; on failure it is
// preserved so the user can retry.
func (d *Draft) Submit(ctx context.Context, archive services.Archive) (*models.MediaFile, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	f, err := os.Open(d.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMissingFile, err)
	}
	defer f.Close()

	created, err := archive.UploadFile(ctx, services.UploadRequest{
		Name:     strings.TrimSpace(d.name),
		Category: d.category,
		Filename: d.filename,
		Content:  f,
	})
	if err != nil {
		return nil, err
	}

	d.Reset()
	return created, nil
}
