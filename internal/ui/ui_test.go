package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/bandolabs/bando/internal/catalog"
	"github.com/bandolabs/bando/internal/models"
	tu "github.com/bandolabs/bando/internal/testing"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeHandle struct {
	id        string
	playCalls int
	err       error
}

func (f *fakeHandle) Play(url, id string) error {
	f.playCalls++
	if f.err != nil {
		return f.err
	}
	f.id = id
	return nil
}

func (f *fakeHandle) Stop() { f.id = "" }

func (f *fakeHandle) CurrentID() string { return f.id }

func newTestModel(archive *tu.MockArchive) (*Model, *fakeHandle, *fakeHandle) {
	audio := &fakeHandle{}
	video := &fakeHandle{}
	cat := catalog.NewCatalog(archive, nil, nil)
	m := NewModel(context.Background(), models.MarchesPage, cat, archive, audio, video)
	return m, audio, video
}

func testFiles() []models.MediaFile {
	return []models.MediaFile{
		{ID: "1", Name: "hucum.marsi", OriginalFilename: "hucum.marsi.mp3", StoredFilename: "hucum.marsi-1a.mp3", Category: models.CategoryMarch},
		{ID: "2", Name: "zafer", OriginalFilename: "zafer.mp4", StoredFilename: "zafer-2b.mp4", Category: models.CategoryMarch},
	}
}

func TestWindowResize(t *testing.T) {
	m, _, _ := newTestModel(&tu.MockArchive{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(filesFetchedMsg{files: testFiles()})

	if m.fileList.Width() != 96 {
		t.Fatalf("expected initial width 96, got %d", m.fileList.Width())
	}

	// Later resizes must be honored, not just the first one.
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if m.fileList.Width() != 76 {
		t.Errorf("expected resized width 76, got %d", m.fileList.Width())
	}
	if m.fileList.Height() != 22 {
		t.Errorf("expected resized height 22, got %d", m.fileList.Height())
	}
}

func TestToggleKeepsListState(t *testing.T) {
	m, _, video := newTestModel(&tu.MockArchive{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(filesFetchedMsg{files: testFiles()})

	m.fileList.SetFilterText("zafer")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	// SetItems re-filters through a command, so run it and deliver the
	// matches before inspecting the list.
	if cmd != nil {
		m.Update(cmd())
	}

	if video.CurrentID() != "2" {
		t.Fatalf("expected the filtered selection to start playing, got %q", video.CurrentID())
	}
	if m.fileList.FilterState() != list.FilterApplied {
		t.Errorf("expected filter to survive a toggle, got state %v", m.fileList.FilterState())
	}

	item, ok := m.fileList.SelectedItem().(fileItem)
	if !ok {
		t.Fatalf("unexpected selected item %T", m.fileList.SelectedItem())
	}
	if item.file.ID != "2" || !item.playing {
		t.Errorf("expected playing marker on the filtered selection, got %+v", item)
	}
}

func TestFavoriteWithoutVideo(t *testing.T) {
	m, _, video := newTestModel(&tu.MockArchive{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(favoritesFetchedMsg{favorites: []models.FavoriteTrack{
		{ID: "8", Title: "Sessiz", Artist: "Bilinmiyor"},
	}})

	if m.view != FavoritesView {
		t.Fatalf("expected favorites view, got %v", m.view)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if video.playCalls != 0 {
		t.Errorf("favorite without an mp4 must not start playback, got %d calls", video.playCalls)
	}
	if !strings.Contains(m.status, "no playable asset") {
		t.Errorf("expected informational status, got %q", m.status)
	}
}
