package playback

import (
	"errors"
	"testing"
)

// fakeHandle records Play/Stop calls for Toggle transition tests.
type fakeHandle struct {
	id      string
	lastURL string
	playErr error
	stops   int
}

func (f *fakeHandle) Play(url, id string) error {
	if f.playErr != nil {
		return f.playErr
	}
	f.lastURL = url
	f.id = id
	return nil
}

func (f *fakeHandle) Stop()             { f.stops++; f.id = "" }
func (f *fakeHandle) CurrentID() string { return f.id }

func TestToggle(t *testing.T) {
	t.Run("idle to playing", func(t *testing.T) {
		h := &fakeHandle{}

		playing, err := Toggle(h, "x", "/uploads/x.mp3")
		if err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}

		if !playing {
			t.Error("expected handle to be playing")
		}
		if h.CurrentID() != "x" {
			t.Errorf("expected current id x, got %q", h.CurrentID())
		}
		if h.lastURL != "/uploads/x.mp3" {
			t.Errorf("expected source /uploads/x.mp3, got %q", h.lastURL)
		}
	})

	t.Run("same id toggles to idle", func(t *testing.T) {
		h := &fakeHandle{}
		if _, err := Toggle(h, "x", "/uploads/x.mp3"); err != nil {
			t.Fatal(err)
		}

		playing, err := Toggle(h, "x", "/uploads/x.mp3")
		if err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}

		if playing {
			t.Error("expected handle to be idle after toggling the active id")
		}
		if h.CurrentID() != "" {
			t.Errorf("expected empty current id, got %q", h.CurrentID())
		}
		if h.stops != 1 {
			t.Errorf("expected one Stop call, got %d", h.stops)
		}
	})

	t.Run("different id retargets the sink", func(t *testing.T) {
		h := &fakeHandle{}
		if _, err := Toggle(h, "y", "/uploads/y.mp3"); err != nil {
			t.Fatal(err)
		}

		playing, err := Toggle(h, "x", "/uploads/x.mp3")
		if err != nil {
			t.Fatalf("Toggle() error = %v", err)
		}

		if !playing {
			t.Error("expected handle to be playing the new id")
		}
		if h.CurrentID() != "x" {
			t.Errorf("expected current id x, got %q", h.CurrentID())
		}
		if h.lastURL != "/uploads/x.mp3" {
			t.Errorf("expected source to become x's URL, got %q", h.lastURL)
		}
	})

	t.Run("play error leaves handle idle", func(t *testing.T) {
		h := &fakeHandle{playErr: errors.New("decode failed")}

		playing, err := Toggle(h, "x", "/uploads/x.mp3")
		if err == nil {
			t.Fatal("expected error")
		}
		if playing {
			t.Error("expected handle to stay idle")
		}
		if h.CurrentID() != "" {
			t.Errorf("expected empty current id, got %q", h.CurrentID())
		}
	})
}

func TestVideoHandle(t *testing.T) {
	t.Run("play routes URL to external opener", func(t *testing.T) {
		var opened []string
		h := NewVideoHandle(func(url string) error {
			opened = append(opened, url)
			return nil
		})

		if err := h.Play("http://localhost:8000/videos/marches/onuncu_yil.mp4", "7"); err != nil {
			t.Fatalf("Play() error = %v", err)
		}

		if len(opened) != 1 || opened[0] != "http://localhost:8000/videos/marches/onuncu_yil.mp4" {
			t.Errorf("unexpected opened URLs %v", opened)
		}
		if h.CurrentID() != "7" {
			t.Errorf("expected current id 7, got %q", h.CurrentID())
		}
	})

	t.Run("opener failure keeps marker idle", func(t *testing.T) {
		h := NewVideoHandle(func(url string) error {
			return errors.New("no handler")
		})

		if err := h.Play("http://x/videos/music/a.mp4", "1"); err == nil {
			t.Fatal("expected error")
		}
		if h.CurrentID() != "" {
			t.Errorf("expected idle marker, got %q", h.CurrentID())
		}
	})

	t.Run("stop releases the id", func(t *testing.T) {
		h := NewVideoHandle(func(url string) error { return nil })
		if err := h.Play("http://x/videos/music/a.mp4", "1"); err != nil {
			t.Fatal(err)
		}

		h.Stop()
		if h.CurrentID() != "" {
			t.Errorf("expected idle marker after Stop, got %q", h.CurrentID())
		}
	})

	t.Run("toggle through the shared transition", func(t *testing.T) {
		var opened []string
		h := NewVideoHandle(func(url string) error {
			opened = append(opened, url)
			return nil
		})

		// Y playing, then X requested: Y's marker clears, X becomes active.
		if _, err := Toggle(h, "y", "http://x/videos/marches/y.mp4"); err != nil {
			t.Fatal(err)
		}
		playing, err := Toggle(h, "x", "http://x/videos/marches/x.mp4")
		if err != nil {
			t.Fatal(err)
		}

		if !playing || h.CurrentID() != "x" {
			t.Errorf("expected x active, got playing=%v id=%q", playing, h.CurrentID())
		}
		if len(opened) != 2 {
			t.Errorf("expected two opens, got %d", len(opened))
		}
	})
}
