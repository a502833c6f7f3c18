package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/shared"
)

func TestArchiveClient(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			client := NewArchiveClient("http://example.com", customClient, 4)

			if client.baseURL != "http://example.com" {
				t.Errorf("expected baseURL 'http://example.com', got %s", client.baseURL)
			}
			if client.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			client := NewArchiveClient("", nil, 0)

			if client.baseURL != "http://localhost:8000" {
				t.Errorf("expected default baseURL 'http://localhost:8000', got %s", client.baseURL)
			}
			if client.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})

		t.Run("Trailing Slash Trimmed", func(t *testing.T) {
			client := NewArchiveClient("http://example.com/", nil, 4)

			if client.baseURL != "http://example.com" {
				t.Errorf("expected trimmed baseURL, got %s", client.baseURL)
			}
		})
	})

	t.Run("ListFiles", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET method, got %s", r.Method)
			}
			if r.URL.Path != "/api/music-files" {
				t.Errorf("expected path '/api/music-files', got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("type"); got != "march" {
				t.Errorf("expected type=march, got %s", got)
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode([]models.MediaFile{
				{ID: "1", Name: "march1", OriginalFilename: "march1.mp3", StoredFilename: "march1-abc.mp3", Category: models.CategoryMarch},
			})
		}))
		defer server.Close()

		client := NewArchiveClient(server.URL, nil, 100)
		files, err := client.ListFiles(context.Background(), models.CategoryMarch)
		if err != nil {
			t.Fatalf("ListFiles() error = %v", err)
		}

		if len(files) != 1 {
			t.Fatalf("expected 1 file, got %d", len(files))
		}
		if files[0].Name != "march1" {
			t.Errorf("expected name march1, got %s", files[0].Name)
		}
	})

	t.Run("UploadFile", func(t *testing.T) {
		t.Run("Sends Multipart Fields", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/api/music-files" {
					t.Errorf("expected path '/api/music-files', got %s", r.URL.Path)
				}

				if err := r.ParseMultipartForm(1 << 20); err != nil {
					t.Fatalf("failed to parse multipart form: %v", err)
				}

				if got := r.FormValue("name"); got != "march1" {
					t.Errorf("expected name field 'march1', got %s", got)
				}
				if got := r.FormValue("type"); got != "march" {
					t.Errorf("expected type field 'march', got %s", got)
				}

				file, header, err := r.FormFile("file")
				if err != nil {
					t.Fatalf("expected file field: %v", err)
				}
				defer file.Close()

				if header.Filename != "march1.mp3" {
					t.Errorf("expected filename march1.mp3, got %s", header.Filename)
				}

				content, _ := io.ReadAll(file)
				if string(content) != "mp3-bytes" {
					t.Errorf("unexpected file content %q", content)
				}

				w.WriteHeader(http.StatusCreated)
				json.NewEncoder(w).Encode(models.MediaFile{
					ID: "42", Name: "march1", OriginalFilename: "march1.mp3",
					StoredFilename: "march1-42.mp3", Category: models.CategoryMarch,
				})
			}))
			defer server.Close()

			client := NewArchiveClient(server.URL, nil, 100)
			created, err := client.UploadFile(context.Background(), UploadRequest{
				Name:     "march1",
				Category: models.CategoryMarch,
				Filename: "march1.mp3",
				Content:  strings.NewReader("mp3-bytes"),
			})
			if err != nil {
				t.Fatalf("UploadFile() error = %v", err)
			}

			if created.ID != "42" {
				t.Errorf("expected created id 42, got %s", created.ID)
			}
		})

		t.Run("Non-2xx Is Upload Failure", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			client := NewArchiveClient(server.URL, nil, 100)
			_, err := client.UploadFile(context.Background(), UploadRequest{
				Name:     "march1",
				Category: models.CategoryMarch,
				Filename: "march1.mp3",
				Content:  strings.NewReader("mp3-bytes"),
			})
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})
	})

	t.Run("DeleteFile", func(t *testing.T) {
		t.Run("Issues DELETE By ID", func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodDelete {
					t.Errorf("expected DELETE method, got %s", r.Method)
				}
				gotPath = r.URL.Path
				w.WriteHeader(http.StatusNoContent)
			}))
			defer server.Close()

			client := NewArchiveClient(server.URL, nil, 100)
			if err := client.DeleteFile(context.Background(), "42"); err != nil {
				t.Fatalf("DeleteFile() error = %v", err)
			}

			if gotPath != "/api/music-files/42" {
				t.Errorf("expected path '/api/music-files/42', got %s", gotPath)
			}
		})

		t.Run("404 Maps To ErrFileNotFound", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			client := NewArchiveClient(server.URL, nil, 100)
			err := client.DeleteFile(context.Background(), "42")
			if !errors.Is(err, shared.ErrFileNotFound) {
				t.Errorf("expected ErrFileNotFound, got %v", err)
			}
		})
	})

	t.Run("ListFavorites", func(t *testing.T) {
		tc := []struct {
			category models.Category
			wantPath string
		}{
			{models.CategoryMarch, "/api/favorite-marches"},
			{models.CategoryMusic, "/api/favorite-musics"},
		}

		for _, tt := range tc {
			t.Run(string(tt.category), func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					if r.URL.Path != tt.wantPath {
						t.Errorf("expected path %s, got %s", tt.wantPath, r.URL.Path)
					}
					json.NewEncoder(w).Encode([]models.FavoriteTrack{
						{ID: "1", Title: "Onuncu Yıl Marşı", Filename: "onuncu_yil.mp4"},
					})
				}))
				defer server.Close()

				client := NewArchiveClient(server.URL, nil, 100)
				favorites, err := client.ListFavorites(context.Background(), tt.category)
				if err != nil {
					t.Fatalf("ListFavorites() error = %v", err)
				}

				if len(favorites) != 1 || favorites[0].Title != "Onuncu Yıl Marşı" {
					t.Errorf("unexpected favorites %+v", favorites)
				}
			})
		}
	})

	t.Run("AssetURL", func(t *testing.T) {
		client := NewArchiveClient("http://example.com", nil, 100)

		if got := client.AssetURL("/uploads/zeybek.mp3"); got != "http://example.com/uploads/zeybek.mp3" {
			t.Errorf("AssetURL() = %s", got)
		}

		if got := client.AssetURL("http://cdn.example.com/a.mp4"); got != "http://cdn.example.com/a.mp4" {
			t.Errorf("absolute URL should pass through, got %s", got)
		}
	})

	t.Run("Transport Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client := NewArchiveClient(server.URL, nil, 100)
		_, err := client.ListFiles(context.Background(), models.CategoryMusic)
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Errorf("expected ErrAPIRequest on transport failure, got %v", err)
		}
	})
}
