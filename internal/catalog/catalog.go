// Package catalog coordinates the archive client and the local listing
// cache.
//
// A Catalog is the data source behind a page's lists: reads come from the
// cache while it is fresh, mutations invalidate the affected category, and
// the next read refetches from the backend. The displayed listing therefore
// always reflects the most recent completed fetch, never an optimistic
// local mutation.
package catalog

import (
	"context"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/repositories"
	"github.com/bandolabs/bando/internal/services"
	"github.com/bandolabs/bando/internal/upload"
	"github.com/charmbracelet/log"
)

// Catalog is the refreshable data source for a category's listings.
//
// The repo may be nil, in which case every read goes straight to the
// backend.
type Catalog struct {
	archive services.Archive
	repo    *repositories.ListingRepository
	logger  *log.Logger

	// favoritesSeen tracks categories whose favorites were fetched during
	// this catalog's lifetime. Favorites are fetched once per page session,
	// so cached rows from an earlier session never satisfy the first read.
	favoritesSeen map[models.Category]bool
}

// NewCatalog creates a catalog over the archive client and an optional
// listing cache.
func NewCatalog(archive services.Archive, repo *repositories.ListingRepository, logger *log.Logger) *Catalog {
	return &Catalog{
		archive:       archive,
		repo:          repo,
		logger:        logger,
		favoritesSeen: make(map[models.Category]bool),
	}
}

// Files returns the uploaded files for a category, refetching when the
// cached listing is missing or stale. On fetch failure the last known-good
// rows are returned alongside the error so the page can keep rendering them.
func (c *Catalog) Files(ctx context.Context, category models.Category) ([]models.MediaFile, error) {
	var cached []models.MediaFile
	if c.repo != nil {
		files, fresh, err := c.repo.Files(category)
		if err != nil {
			c.warn("listing cache read failed", "error", err)
		} else if fresh {
			return files, nil
		} else {
			cached = files
		}
	}

	files, err := c.archive.ListFiles(ctx, category)
	if err != nil {
		return cached, err
	}

	if c.repo != nil {
		if err := c.repo.ReplaceFiles(category, files); err != nil {
			c.warn("listing cache write failed", "error", err)
		}
	}

	return files, nil
}

// Refresh forces a refetch of a category's uploaded files.
func (c *Catalog) Refresh(ctx context.Context, category models.Category) ([]models.MediaFile, error) {
	c.Invalidate(category)
	return c.Files(ctx, category)
}

// Invalidate marks a category's uploaded-files listing stale so the next
// read refetches.
func (c *Catalog) Invalidate(category models.Category) {
	if c.repo == nil {
		return
	}
	if err := c.repo.Invalidate(category); err != nil {
		c.warn("listing invalidate failed", "error", err)
	}
}

// Favorites returns the curated favorites for a category. Favorites are
// read-only, fetched once per catalog lifetime: the first read always hits
// the backend so a new page session picks up reseeds, and repeat reads in
// the same session come from the cache.
func (c *Catalog) Favorites(ctx context.Context, category models.Category) ([]models.FavoriteTrack, error) {
	if c.repo != nil && c.favoritesSeen[category] {
		favorites, fresh, err := c.repo.Favorites(category)
		if err != nil {
			c.warn("favorites cache read failed", "error", err)
		} else if fresh {
			return favorites, nil
		}
	}

	favorites, err := c.archive.ListFavorites(ctx, category)
	if err != nil {
		return nil, err
	}

	c.favoritesSeen[category] = true
	if c.repo != nil {
		if err := c.repo.ReplaceFavorites(category, favorites); err != nil {
			c.warn("favorites cache write failed", "error", err)
		}
	}

	return favorites, nil
}

// Upload submits a draft and, on success, invalidates the category's
// listing so the next read shows the new entry. A failed upload leaves both
// the draft and the listing untouched.
func (c *Catalog) Upload(ctx context.Context, draft *upload.Draft) (*models.MediaFile, error) {
	created, err := draft.Submit(ctx, c.archive)
	if err != nil {
		return nil, err
	}

	c.Invalidate(draft.Category())
	return created, nil
}

// Delete removes an uploaded file and, on success, invalidates the
// category's listing. A failed delete leaves the listing unchanged: no
// optimistic removal.
func (c *Catalog) Delete(ctx context.Context, category models.Category, id string) error {
	if err := c.archive.DeleteFile(ctx, id); err != nil {
		return err
	}

	c.Invalidate(category)
	return nil
}

func (c *Catalog) warn(msg string, kv ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, kv...)
	}
}
