package repositories

import (
	"database/sql"
	"testing"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestListingRepository(t *testing.T) {
	marchFiles := []models.MediaFile{
		{ID: "1", Name: "march1", OriginalFilename: "march1.mp3", StoredFilename: "march1-a.mp3", Category: models.CategoryMarch},
		{ID: "2", Name: "march2", OriginalFilename: "march2.mp3", StoredFilename: "march2-b.mp3", Category: models.CategoryMarch},
	}

	t.Run("missing listing is not ok", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		files, fresh, err := repo.Files(models.CategoryMarch)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if fresh || files != nil {
			t.Errorf("expected empty unfetched listing, got fresh=%v files=%v", fresh, files)
		}
	})

	t.Run("replace and read back preserves order", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		if err := repo.ReplaceFiles(models.CategoryMarch, marchFiles); err != nil {
			t.Fatalf("ReplaceFiles() error = %v", err)
		}

		files, fresh, err := repo.Files(models.CategoryMarch)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if !fresh {
			t.Error("expected listing to be fresh after replace")
		}
		if len(files) != 2 || files[0].ID != "1" || files[1].ID != "2" {
			t.Errorf("unexpected files %+v", files)
		}
		if files[0].Category != models.CategoryMarch {
			t.Errorf("expected category to be restored, got %s", files[0].Category)
		}
	})

	t.Run("categories are isolated", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		if err := repo.ReplaceFiles(models.CategoryMarch, marchFiles); err != nil {
			t.Fatal(err)
		}

		files, fresh, err := repo.Files(models.CategoryMusic)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if fresh || len(files) != 0 {
			t.Errorf("music listing should be unfetched, got fresh=%v files=%v", fresh, files)
		}
	})

	t.Run("invalidate keeps rows but marks stale", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		if err := repo.ReplaceFiles(models.CategoryMarch, marchFiles); err != nil {
			t.Fatal(err)
		}
		if err := repo.Invalidate(models.CategoryMarch); err != nil {
			t.Fatalf("Invalidate() error = %v", err)
		}

		files, fresh, err := repo.Files(models.CategoryMarch)
		if err != nil {
			t.Fatalf("Files() error = %v", err)
		}
		if fresh {
			t.Error("expected listing to be stale after invalidate")
		}
		if len(files) != 2 {
			t.Errorf("stale listing should keep last known-good rows, got %d", len(files))
		}

		// A successful refetch replaces rows and clears the stale flag.
		if err := repo.ReplaceFiles(models.CategoryMarch, marchFiles[:1]); err != nil {
			t.Fatal(err)
		}
		files, fresh, err = repo.Files(models.CategoryMarch)
		if err != nil {
			t.Fatal(err)
		}
		if !fresh || len(files) != 1 {
			t.Errorf("expected fresh single-row listing, got fresh=%v len=%d", fresh, len(files))
		}
	})

	t.Run("favorites round trip", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		favorites := []models.FavoriteTrack{
			{ID: "7", Title: "Onuncu Yıl Marşı", Description: "1933", Filename: "onuncu_yil.mp4"},
			{ID: "8", Title: "Sessiz", Artist: "Bilinmiyor"},
		}

		if err := repo.ReplaceFavorites(models.CategoryMarch, favorites); err != nil {
			t.Fatalf("ReplaceFavorites() error = %v", err)
		}

		got, fresh, err := repo.Favorites(models.CategoryMarch)
		if err != nil {
			t.Fatalf("Favorites() error = %v", err)
		}
		if !fresh {
			t.Error("expected favorites to be fresh")
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 favorites, got %d", len(got))
		}
		if got[0].Filename != "onuncu_yil.mp4" {
			t.Errorf("unexpected filename %q", got[0].Filename)
		}
		if got[1].Filename != "" {
			t.Errorf("favorite without asset should have empty filename, got %q", got[1].Filename)
		}
	})

	t.Run("invalidate only touches files listing", func(t *testing.T) {
		repo := NewListingRepository(newTestDB(t))

		if err := repo.ReplaceFiles(models.CategoryMarch, marchFiles); err != nil {
			t.Fatal(err)
		}
		if err := repo.ReplaceFavorites(models.CategoryMarch, []models.FavoriteTrack{{ID: "7", Title: "x"}}); err != nil {
			t.Fatal(err)
		}

		if err := repo.Invalidate(models.CategoryMarch); err != nil {
			t.Fatal(err)
		}

		_, fresh, err := repo.Favorites(models.CategoryMarch)
		if err != nil {
			t.Fatal(err)
		}
		if !fresh {
			t.Error("favorites listing should remain fresh after a files invalidate")
		}
	})
}
