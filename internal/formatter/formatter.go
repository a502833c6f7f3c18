// package formatter provides functions to export archive listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bandolabs/bando/internal/models"
	"github.com/samber/lo"
)

// FilesToCSV converts an uploaded-files listing to CSV format with columns: ID, Name, Original Filename, Stored Filename
func FilesToCSV(files []models.MediaFile) ([]byte, error) {
	records := lo.Map(files, func(f models.MediaFile, _ int) []string {
		return []string{f.ID, f.Name, f.OriginalFilename, f.StoredFilename}
	})
	return writeCSV([]string{"ID", "Name", "Original Filename", "Stored Filename"}, records)
}

// FavoritesToCSV converts a favorites listing to CSV format with columns: ID, Title, Artist, Description, Filename
func FavoritesToCSV(favorites []models.FavoriteTrack) ([]byte, error) {
	records := lo.Map(favorites, func(fav models.FavoriteTrack, _ int) []string {
		return []string{fav.ID, fav.Title, fav.Artist, fav.Description, fav.Filename}
	})
	return writeCSV([]string{"ID", "Title", "Artist", "Description", "Filename"}, records)
}

func writeCSV(headers []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// FilesToMarkdown converts an uploaded-files listing to Markdown format under the page's title
func FilesToMarkdown(page models.Page, files []models.MediaFile) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", page.Title))
	buf.WriteString(fmt.Sprintf("**Files**: %d\n\n", len(files)))

	buf.WriteString("## Uploaded Files\n\n")
	for i, f := range files {
		buf.WriteString(fmt.Sprintf("%d. %s [%s](%s)\n", i+1, f.Name, f.OriginalFilename, f.AssetPath()))
	}

	return buf.Bytes()
}

// FavoritesToMarkdown converts a favorites listing to Markdown format under the page's title
func FavoritesToMarkdown(page models.Page, favorites []models.FavoriteTrack) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# Favorite %s\n\n", page.Title))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(favorites)))

	for i, fav := range favorites {
		line := fmt.Sprintf("%d. %s", i+1, fav.Title)
		if fav.Artist != "" {
			line += " - " + fav.Artist
		}
		if fav.Description != "" {
			line += fmt.Sprintf(" (%s)", fav.Description)
		}
		if fav.HasVideo() {
			line += fmt.Sprintf(" [video](%s)", fav.VideoPath(page.Category))
		}
		buf.WriteString(line + "\n")
	}

	return buf.Bytes()
}

// FilesToText converts an uploaded-files listing to plain text format
func FilesToText(page models.Page, files []models.MediaFile) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s\n", page.Title))
	buf.WriteString(fmt.Sprintf("Files: %d\n\n", len(files)))

	for i, f := range files {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, f.Name, f.OriginalFilename))
	}

	return buf.Bytes()
}

// FavoritesToText converts a favorites listing to plain text format
func FavoritesToText(page models.Page, favorites []models.FavoriteTrack) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Favorite %s\n", page.Title))
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(favorites)))

	playable := lo.CountBy(favorites, func(fav models.FavoriteTrack) bool { return fav.HasVideo() })

	for i, fav := range favorites {
		line := strconv.Itoa(i+1) + ". " + fav.Title
		if fav.Artist != "" {
			line += " - " + fav.Artist
		}
		buf.WriteString(line + "\n")
	}

	buf.WriteString(fmt.Sprintf("\nPlayable videos: %d\n", playable))

	return buf.Bytes()
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	FilesFile    string
	MetadataFile string
}

type exportMetadata struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Count    int    `json:"count"`
}

// WriteCSVExport exports an uploaded-files listing to CSV with an accompanying metadata JSON file.
//
// Defaults to the category name as the base filename & creates {base}_files.csv and {base}_metadata.json
func WriteCSVExport(page models.Page, files []models.MediaFile, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = string(page.Category)
	}

	csvData, err := FilesToCSV(files)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	filesFile := baseFilepath + "_files.csv"
	if err := os.WriteFile(filesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadata, err := json.MarshalIndent(exportMetadata{
		Category: string(page.Category),
		Title:    page.Title,
		Count:    len(files),
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadata, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		FilesFile:    filesFile,
		MetadataFile: metadataFile,
	}, nil
}
