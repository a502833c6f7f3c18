package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/bandolabs/bando/internal/models"
)

// Listing kinds stored in the listings table.
const (
	kindFiles     = "files"
	kindFavorites = "favorites"
)

// ListingRepository caches fetched archive listings in SQLite.
//
// ReplaceFiles/ReplaceFavorites atomically swap a category's rows for the
// result of a successful fetch. Invalidate marks a listing stale without
// touching its rows, so reads keep returning the last known-good state.
type ListingRepository struct {
	db *sql.DB
}

// NewListingRepository creates a new ListingRepository with the given database connection
func NewListingRepository(db *sql.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// ReplaceFiles swaps the cached uploaded-files listing for a category and
// marks it fresh.
func (r *ListingRepository) ReplaceFiles(category models.Category, files []models.MediaFile) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM media_files WHERE category = ?", category); err != nil {
		return fmt.Errorf("failed to clear cached files: %w", err)
	}

	for i, f := range files {
		_, err := tx.Exec(`
			INSERT INTO media_files (id, category, name, original_filename, stored_filename, position)
			VALUES (?, ?, ?, ?, ?, ?)
		`, f.ID, category, f.Name, f.OriginalFilename, f.StoredFilename, i)
		if err != nil {
			return fmt.Errorf("failed to insert cached file: %w", err)
		}
	}

	if err := touchListing(tx, kindFiles, category); err != nil {
		return err
	}

	return tx.Commit()
}

// Files returns the cached uploaded-files listing for a category and whether
// the listing is fresh. A missing listing returns ok=false with no rows.
func (r *ListingRepository) Files(category models.Category) ([]models.MediaFile, bool, error) {
	fresh, ok, err := r.listingState(kindFiles, category)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	rows, err := r.db.Query(`
		SELECT id, name, original_filename, stored_filename
		FROM media_files
		WHERE category = ?
		ORDER BY position
	`, category)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cached files: %w", err)
	}
	defer rows.Close()

	var files []models.MediaFile
	for rows.Next() {
		f := models.MediaFile{Category: category}
		if err := rows.Scan(&f.ID, &f.Name, &f.OriginalFilename, &f.StoredFilename); err != nil {
			return nil, false, fmt.Errorf("failed to scan cached file: %w", err)
		}
		files = append(files, f)
	}

	return files, fresh, rows.Err()
}

// ReplaceFavorites swaps the cached favorites listing for a category and
// marks it fresh.
func (r *ListingRepository) ReplaceFavorites(category models.Category, favorites []models.FavoriteTrack) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM favorite_tracks WHERE category = ?", category); err != nil {
		return fmt.Errorf("failed to clear cached favorites: %w", err)
	}

	for i, fav := range favorites {
		_, err := tx.Exec(`
			INSERT INTO favorite_tracks (id, category, title, artist, description, filename, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, fav.ID, category, fav.Title, fav.Artist, fav.Description, fav.Filename, i)
		if err != nil {
			return fmt.Errorf("failed to insert cached favorite: %w", err)
		}
	}

	if err := touchListing(tx, kindFavorites, category); err != nil {
		return err
	}

	return tx.Commit()
}

// Favorites returns the cached favorites listing for a category and whether
// the listing is fresh.
func (r *ListingRepository) Favorites(category models.Category) ([]models.FavoriteTrack, bool, error) {
	fresh, ok, err := r.listingState(kindFavorites, category)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}

	rows, err := r.db.Query(`
		SELECT id, title, artist, description, filename
		FROM favorite_tracks
		WHERE category = ?
		ORDER BY position
	`, category)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query cached favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.FavoriteTrack
	for rows.Next() {
		var fav models.FavoriteTrack
		if err := rows.Scan(&fav.ID, &fav.Title, &fav.Artist, &fav.Description, &fav.Filename); err != nil {
			return nil, false, fmt.Errorf("failed to scan cached favorite: %w", err)
		}
		favorites = append(favorites, fav)
	}

	return favorites, fresh, rows.Err()
}

// Invalidate marks a category's uploaded-files listing stale. Rows are kept
// so the page can keep rendering them until the next refetch.
func (r *ListingRepository) Invalidate(category models.Category) error {
	_, err := r.db.Exec(`
		UPDATE listings SET stale = 1 WHERE kind = ? AND category = ?
	`, kindFiles, category)
	if err != nil {
		return fmt.Errorf("failed to invalidate listing: %w", err)
	}
	return nil
}

// listingState reports (fresh, exists) for a listing.
func (r *ListingRepository) listingState(kind string, category models.Category) (bool, bool, error) {
	var stale int
	err := r.db.QueryRow(`
		SELECT stale FROM listings WHERE kind = ? AND category = ?
	`, kind, category).Scan(&stale)
	if err == sql.ErrNoRows {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("failed to read listing state: %w", err)
	}
	return stale == 0, true, nil
}

func touchListing(tx *sql.Tx, kind string, category models.Category) error {
	_, err := tx.Exec(`
		INSERT INTO listings (kind, category, fetched_at, stale)
		VALUES (?, ?, ?, 0)
		ON CONFLICT (kind, category) DO UPDATE SET fetched_at = excluded.fetched_at, stale = 0
	`, kind, category, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record listing fetch: %w", err)
	}
	return nil
}
