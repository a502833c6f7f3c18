// package models defines the data model for the media archive client
package models

import (
	"fmt"
	"path"
	"strings"
)

// Category tags every media file and favorite as belonging to one of the two
// archive pages.
type Category string

const (
	CategoryMarch Category = "march"
	CategoryMusic Category = "music"
)

// Valid reports whether the category is one of the two known tags.
func (c Category) Valid() bool {
	return c == CategoryMarch || c == CategoryMusic
}

// AssetDir returns the directory segment used for favorite video assets
// ("/videos/marches/…" or "/videos/music/…").
func (c Category) AssetDir() string {
	if c == CategoryMarch {
		return "marches"
	}
	return "music"
}

// FavoritesPath returns the backend endpoint serving curated favorites for
// this category.
func (c Category) FavoritesPath() string {
	if c == CategoryMarch {
		return "/api/favorite-marches"
	}
	return "/api/favorite-musics"
}

// ParseCategory converts a string flag value into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q (expected march or music)", s)
	}
	return c, nil
}

// MediaFile is a persisted uploaded audio/video asset record. Created by the
// backend on upload and destroyed on delete; the client never mutates one
// directly, only via request and refetch.
type MediaFile struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OriginalFilename string   `json:"original_filename"`
	StoredFilename   string   `json:"stored_filename"`
	Category         Category `json:"type"`
}

// AssetPath returns the static path the backend serves this upload from.
func (f MediaFile) AssetPath() string {
	return path.Join("/uploads", f.StoredFilename)
}

// IsVideo reports whether the stored file is a video asset.
func (f MediaFile) IsVideo() bool {
	return strings.HasSuffix(strings.ToLower(f.StoredFilename), ".mp4")
}

// FavoriteTrack is a curated, backend-seeded track or video entry. Read-only:
// never created or deleted through this client.
type FavoriteTrack struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist,omitempty"`
	Description string `json:"description"`
	Filename    string `json:"filename,omitempty"`
}

// HasVideo reports whether the favorite has a playable video asset wired.
// Favorites without an .mp4 filename have no playable asset in this client.
func (t FavoriteTrack) HasVideo() bool {
	return strings.HasSuffix(strings.ToLower(t.Filename), ".mp4")
}

// VideoPath returns the static path of the favorite's video asset under the
// category-specific directory prefix.
func (t FavoriteTrack) VideoPath(c Category) string {
	return path.Join("/videos", c.AssetDir(), t.Filename)
}

// Page configures one archive page. Marches and Music share a single page
// implementation differing only in these fields.
type Page struct {
	Category Category
	Accent   string // lipgloss hex color for the page theme
	Title    string
}

// MarchesPage and MusicPage are the two page configurations the app ships.
var (
	MarchesPage = Page{Category: CategoryMarch, Accent: "#D94A38", Title: "Marches"}
	MusicPage   = Page{Category: CategoryMusic, Accent: "#3864D9", Title: "Music"}
)

// PageFor returns the page configuration for a category.
func PageFor(c Category) Page {
	if c == CategoryMarch {
		return MarchesPage
	}
	return MusicPage
}
