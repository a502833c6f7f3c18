package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newMediaDirs(t *testing.T) (string, string) {
	t.Helper()
	root := t.TempDir()
	uploads := filepath.Join(root, "uploads")
	videos := filepath.Join(root, "videos")

	for _, dir := range []string{uploads, filepath.Join(videos, "marches"), filepath.Join(videos, "music")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	writeFile := func(path, content string) {
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(filepath.Join(uploads, "march1-abc.mp3"), "mp3 audio bytes")
	writeFile(filepath.Join(videos, "marches", "onuncu_yil.mp4"), "mp4 video bytes")

	return uploads, videos
}

func TestMediaHandler(t *testing.T) {
	uploads, videos := newMediaDirs(t)
	srv := httptest.NewServer(NewMediaHandler(uploads, videos))
	defer srv.Close()

	t.Run("serves uploaded file", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/uploads/march1-abc.mp3")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Content-Type"); got != "audio/mpeg" {
			t.Errorf("expected audio/mpeg, got %q", got)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != "mp3 audio bytes" {
			t.Errorf("unexpected body %q", body)
		}
	})

	t.Run("serves category video", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/videos/marches/onuncu_yil.mp4")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Content-Type"); got != "video/mp4" {
			t.Errorf("expected video/mp4, got %q", got)
		}
	})

	t.Run("honors range requests", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, srv.URL+"/uploads/march1-abc.mp3", nil)
		req.Header.Set("Range", "bytes=4-8")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusPartialContent {
			t.Fatalf("expected 206, got %d", resp.StatusCode)
		}
		if got := resp.Header.Get("Content-Range"); got != "bytes 4-8/15" {
			t.Errorf("unexpected Content-Range %q", got)
		}
		body, _ := io.ReadAll(resp.Body)
		if string(body) != "audio" {
			t.Errorf("unexpected partial body %q", body)
		}
	})

	t.Run("unknown paths return 404", func(t *testing.T) {
		for _, path := range []string{
			"/uploads/missing.mp3",
			"/videos/onuncu_yil.mp4",
			"/videos/podcasts/onuncu_yil.mp4",
		} {
			resp, err := http.Get(srv.URL + path)
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()

			if resp.StatusCode != http.StatusNotFound {
				t.Errorf("%s: expected 404, got %d", path, resp.StatusCode)
			}
		}
	})
}

func TestMediaHandlerResolve(t *testing.T) {
	h := NewMediaHandler("/srv/uploads", "/srv/videos")

	tests := []struct {
		name    string
		path    string
		want    string
		allowed bool
	}{
		{"upload", "/uploads/a.mp3", filepath.Join("/srv/uploads", "a.mp3"), true},
		{"march video", "/videos/marches/b.mp4", filepath.Join("/srv/videos", "marches", "b.mp4"), true},
		{"music video", "/videos/music/c.mp4", filepath.Join("/srv/videos", "music", "c.mp4"), true},
		{"unknown category", "/videos/other/b.mp4", "", false},
		{"bare videos dir", "/videos/b.mp4", "", false},
		{"traversal", "/uploads/../../etc/passwd", "", false},
		{"empty name", "/uploads/", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.resolve(tt.path)
			if ok != tt.allowed {
				t.Fatalf("resolve(%q) allowed = %v, want %v", tt.path, ok, tt.allowed)
			}
			if ok && got != tt.want {
				t.Errorf("resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
