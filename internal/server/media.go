package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/upload"
)

// MediaHandler serves the asset trees a deployed backend would expose:
// uploaded files under /uploads/ and curated category videos under
// /videos/marches/ and /videos/music/.
//
// Range requests are honored so browsers and audio players can seek, which
// [http.ServeContent] handles from the underlying file.
type MediaHandler struct {
	uploadsDir string
	videosDir  string
}

// NewMediaHandler creates a handler over the uploads directory and the
// videos directory containing the per-category subdirectories.
func NewMediaHandler(uploadsDir, videosDir string) *MediaHandler {
	return &MediaHandler{uploadsDir: uploadsDir, videosDir: videosDir}
}

// Routes returns the path prefixes this handler serves.
func (h *MediaHandler) Routes() []string {
	return []string{"/uploads/", "/videos/"}
}

// ServeHTTP resolves the request path to a file inside one of the asset
// trees and streams it with Range support.
func (h *MediaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	full, ok := h.resolve(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	file, err := os.Open(full)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	fi, err := file.Stat()
	if err != nil || fi.IsDir() {
		http.NotFound(w, r)
		return
	}

	if mimeType := upload.TypeForFile(full); mimeType != "" {
		w.Header().Set("Content-Type", mimeType)
	}
	w.Header().Set("Accept-Ranges", "bytes")

	http.ServeContent(w, r, fi.Name(), fi.ModTime(), file)
}

// resolve maps a URL path to a file path inside the matching asset tree.
// Paths escaping the tree or naming an unknown category are rejected.
func (h *MediaHandler) resolve(urlPath string) (string, bool) {
	clean := path.Clean(urlPath)

	if rel, ok := strings.CutPrefix(clean, "/uploads/"); ok {
		return insideDir(h.uploadsDir, rel)
	}

	if rel, ok := strings.CutPrefix(clean, "/videos/"); ok {
		dir, name, found := strings.Cut(rel, "/")
		if !found {
			return "", false
		}
		for _, category := range []models.Category{models.CategoryMarch, models.CategoryMusic} {
			if dir == category.AssetDir() {
				return insideDir(filepath.Join(h.videosDir, dir), name)
			}
		}
	}

	return "", false
}

// insideDir joins name onto dir, rejecting anything that would escape it.
func insideDir(dir, name string) (string, bool) {
	if name == "" || strings.Contains(name, "..") {
		return "", false
	}
	full := filepath.Join(dir, filepath.FromSlash(name))
	if !strings.HasPrefix(full, filepath.Clean(dir)+string(filepath.Separator)) {
		return "", false
	}
	return full, true
}
