package main

import (
	"context"
	"fmt"

	"github.com/bandolabs/bando/internal/formatter"
	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/shared"
	"github.com/bandolabs/bando/internal/upload"
	"github.com/urfave/cli/v3"
)

// List prints a category's uploaded files.
func (r *Runner) List(ctx context.Context, cmd *cli.Command) error {
	category, err := models.ParseCategory(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	page := models.PageFor(category)

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	files, err := cat.Files(ctx, category)
	if err != nil {
		if len(files) == 0 {
			return fmt.Errorf("failed to fetch files: %w", err)
		}
		r.logger.Warn("showing cached listing, fetch failed", "error", err)
	}

	if base := cmd.String("save"); base != "" {
		result, err := formatter.WriteCSVExport(page, files, base)
		if err != nil {
			return fmt.Errorf("failed to save export: %w", err)
		}
		r.writePlain("✓ Export saved: %s, %s\n", result.FilesFile, result.MetadataFile)
		return nil
	}

	if cmd.Bool("json") {
		return r.writeJSON(files, cmd.Bool("pretty"))
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.FilesToCSV(files)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		return r.writePlain("%s", formatter.FilesToMarkdown(page, files))
	default:
		return r.writePlain("%s", formatter.FilesToText(page, files))
	}
}

// Favorites prints a category's curated favorites.
func (r *Runner) Favorites(ctx context.Context, cmd *cli.Command) error {
	category, err := models.ParseCategory(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	page := models.PageFor(category)

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	favorites, err := cat.Favorites(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to fetch favorites: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(favorites, cmd.Bool("pretty"))
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.FavoritesToCSV(favorites)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		return r.writePlain("%s", formatter.FavoritesToMarkdown(page, favorites))
	default:
		return r.writePlain("%s", formatter.FavoritesToText(page, favorites))
	}
}

// Upload sends a local mp3/mp4 file to the archive.
func (r *Runner) Upload(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("file")
	if path == "" {
		return fmt.Errorf("%w: file path is required", shared.ErrMissingArgument)
	}

	category, err := models.ParseCategory(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	draft := upload.NewDraft(category)
	if err := draft.Select(path); err != nil {
		return fmt.Errorf("cannot upload %s: %w", path, err)
	}
	if name := cmd.String("name"); name != "" {
		draft.SetName(name)
	}

	r.logger.Info("uploading", "file", path, "name", draft.Name(), "type", category)

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	created, err := cat.Upload(ctx, draft)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	r.writePlain("✓ Uploaded %q (id %s)\n", created.Name, created.ID)
	return nil
}

// Delete removes an uploaded file by id.
func (r *Runner) Delete(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: file id is required", shared.ErrMissingArgument)
	}

	category, err := models.ParseCategory(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	if err := cat.Delete(ctx, category, id); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	r.writePlain("✓ Deleted %s\n", id)
	return nil
}
