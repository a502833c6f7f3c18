package ui

import (
	"context"
	"fmt"

	"github.com/bandolabs/bando/internal/catalog"
	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/playback"
	"github.com/bandolabs/bando/internal/services"
	"github.com/bandolabs/bando/internal/shared"
	"github.com/bandolabs/bando/internal/upload"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	FavoritesView
	UploadView
	ConfirmDeleteView
)

// Model represents the TUI state for one page (marches or music).
type Model struct {
	ctx     context.Context
	page    models.Page
	catalog *catalog.Catalog
	archive services.Archive
	audio   playback.Handle
	video   playback.Handle

	view   ViewState
	width  int
	height int

	fileList      list.Model
	fileListReady bool
	files         []models.MediaFile
	favList       list.Model
	favListReady  bool
	favorites     []models.FavoriteTrack

	draft     *upload.Draft
	pathInput textinput.Model
	nameInput textinput.Model

	deleteTarget *models.MediaFile

	status    string
	statusErr bool

	help   help.Model
	keys   keyMap
	styles *Palette
}

// NewModel creates the page model with the provided dependencies.
func NewModel(ctx context.Context, page models.Page, cat *catalog.Catalog, archive services.Archive, audio, video playback.Handle) *Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "path to .mp3 or .mp4 file"
	pathInput.CharLimit = 512

	nameInput := textinput.New()
	nameInput.Placeholder = "display name"
	nameInput.CharLimit = 256

	return &Model{
		ctx:       ctx,
		page:      page,
		catalog:   cat,
		archive:   archive,
		audio:     audio,
		video:     video,
		view:      LibraryView,
		draft:     upload.NewDraft(page.Category),
		pathInput: pathInput,
		nameInput: nameInput,
		help:      help.New(),
		keys:      newKeyMap(),
		styles:    NewPalette(page.Accent),
	}
}

// Init fetches the page's uploaded-files listing.
func (m *Model) Init() tea.Cmd {
	return m.fetchFiles()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.fileListReady {
			m.fileList.SetSize(msg.Width-4, msg.Height-8)
		}
		if m.favListReady {
			m.favList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case FavoritesView:
			return m.handleFavoritesKeys(msg)
		case UploadView:
			return m.handleUploadKeys(msg)
		case ConfirmDeleteView:
			return m.handleConfirmDeleteKeys(msg)
		}

	case filesFetchedMsg:
		m.files = msg.files
		cmd := m.rebuildFileList()
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("fetch failed: %v", msg.err), true)
		}
		return m, cmd

	case favoritesFetchedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("fetch failed: %v", msg.err), true)
			m.view = LibraryView
			return m, nil
		}
		m.favorites = msg.favorites
		cmd := m.rebuildFavList()
		m.view = FavoritesView
		return m, cmd

	case uploadDoneMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("upload failed: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("uploaded %q", msg.created.Name), false)
		m.resetUploadForm()
		m.view = LibraryView
		return m, m.fetchFiles()

	case deleteDoneMsg:
		m.view = LibraryView
		m.deleteTarget = nil
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("delete failed: %v", msg.err), true)
			return m, nil
		}
		m.setStatus(fmt.Sprintf("deleted %q", msg.file.Name), false)
		return m, m.fetchFiles()

	case audioIdleMsg:
		return m, m.rebuildFileList()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case LibraryView:
		return m.renderLibrary()
	case FavoritesView:
		return m.renderFavorites()
	case UploadView:
		return m.renderUpload()
	case ConfirmDeleteView:
		return m.renderConfirmDelete()
	default:
		return ""
	}
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.audio.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.enter):
		if f, ok := m.selectedFile(); ok {
			m.toggleFile(f)
			return m, m.rebuildFileList()
		}
		return m, nil

	case key.Matches(msg, m.keys.upload):
		m.view = UploadView
		m.pathInput.Focus()
		m.nameInput.Blur()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.delete):
		if f, ok := m.selectedFile(); ok {
			m.deleteTarget = &f
			m.view = ConfirmDeleteView
		}
		return m, nil

	case key.Matches(msg, m.keys.favorites):
		return m, m.fetchFavorites()

	case key.Matches(msg, m.keys.refresh):
		return m, m.refreshFiles()
	}

	var cmd tea.Cmd
	m.fileList, cmd = m.fileList.Update(msg)
	return m, cmd
}

func (m *Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.back):
		m.view = LibraryView
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if fav, ok := m.selectedFavorite(); ok {
			m.toggleFavorite(fav)
			return m, m.rebuildFavList()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.favList, cmd = m.favList.Update(msg)
	return m, cmd
}

func (m *Model) handleUploadKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.view = LibraryView
		return m, nil

	case "tab":
		if m.draft.HasFile() {
			m.swapUploadFocus()
		}
		return m, nil

	case "enter":
		if m.pathInput.Focused() {
			if err := m.draft.Select(m.pathInput.Value()); err != nil {
				m.setStatus(fmt.Sprintf("cannot use file: %v", err), true)
				return m, nil
			}
			m.nameInput.SetValue(m.draft.Name())
			m.swapUploadFocus()
			return m, nil
		}

		m.draft.SetName(m.nameInput.Value())
		if err := m.draft.Validate(); err != nil {
			m.setStatus(fmt.Sprintf("cannot submit: %v", err), true)
			return m, nil
		}
		return m, m.submitUpload()
	}

	var cmd tea.Cmd
	if m.pathInput.Focused() {
		m.pathInput, cmd = m.pathInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "n", "esc":
		m.view = LibraryView
		m.deleteTarget = nil
		return m, nil
	case "y":
		return m, m.submitDelete()
	}
	return m, nil
}

// toggleFile routes the shared toggle transition to the matching sink.
// Playback errors reset the sink to idle without a user-facing error.
func (m *Model) toggleFile(f models.MediaFile) {
	url := m.archive.AssetURL(f.AssetPath())
	if f.IsVideo() {
		playback.Toggle(m.video, f.ID, url)
		return
	}
	playback.Toggle(m.audio, f.ID, url)
}

// toggleFavorite plays a favorite's video when it has one. Favorites without
// an mp4 asset only get an informational message.
func (m *Model) toggleFavorite(fav models.FavoriteTrack) {
	if !fav.HasVideo() {
		m.setStatus(fmt.Sprintf("%v: %q", shared.ErrNothingToPlay, fav.Title), false)
		return
	}
	url := m.archive.AssetURL(fav.VideoPath(m.page.Category))
	playback.Toggle(m.video, fav.ID, url)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case LibraryView:
		m.fileList, cmd = m.fileList.Update(msg)
	case FavoritesView:
		m.favList, cmd = m.favList.Update(msg)
	}
	return m, cmd
}

func (m *Model) selectedFile() (models.MediaFile, bool) {
	if item, ok := m.fileList.SelectedItem().(fileItem); ok {
		return item.file, true
	}
	return models.MediaFile{}, false
}

func (m *Model) selectedFavorite() (models.FavoriteTrack, bool) {
	if item, ok := m.favList.SelectedItem().(favoriteItem); ok {
		return item.track, true
	}
	return models.FavoriteTrack{}, false
}

// rebuildFileList refreshes the list items in place so filter and cursor
// state survive playback toggles. The list.Model itself is only created on
// the first listing. The returned command carries the list's re-filtering
// work and must be dispatched.
func (m *Model) rebuildFileList() tea.Cmd {
	items := make([]list.Item, len(m.files))
	for i, f := range m.files {
		playing := m.audio.CurrentID() == f.ID || m.video.CurrentID() == f.ID
		items[i] = fileItem{file: f, playing: playing}
	}

	if !m.fileListReady {
		m.fileList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.fileList.Title = m.page.Title
		m.fileList.SetSize(m.width-4, m.height-8)
		m.fileListReady = true
		return nil
	}
	return m.fileList.SetItems(items)
}

func (m *Model) rebuildFavList() tea.Cmd {
	items := make([]list.Item, len(m.favorites))
	for i, fav := range m.favorites {
		items[i] = favoriteItem{track: fav, playing: m.video.CurrentID() == fav.ID}
	}

	if !m.favListReady {
		m.favList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.favList.Title = "Favorite " + m.page.Title
		m.favList.SetSize(m.width-4, m.height-8)
		m.favListReady = true
		return nil
	}
	return m.favList.SetItems(items)
}

func (m *Model) swapUploadFocus() {
	if m.pathInput.Focused() {
		m.pathInput.Blur()
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
		m.pathInput.Focus()
	}
}

func (m *Model) resetUploadForm() {
	m.pathInput.Reset()
	m.nameInput.Reset()
	m.pathInput.Blur()
	m.nameInput.Blur()
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) fetchFiles() tea.Cmd {
	return func() tea.Msg {
		files, err := m.catalog.Files(m.ctx, m.page.Category)
		return filesFetchedMsg{files: files, err: err}
	}
}

func (m *Model) refreshFiles() tea.Cmd {
	return func() tea.Msg {
		files, err := m.catalog.Refresh(m.ctx, m.page.Category)
		return filesFetchedMsg{files: files, err: err}
	}
}

func (m *Model) fetchFavorites() tea.Cmd {
	return func() tea.Msg {
		favorites, err := m.catalog.Favorites(m.ctx, m.page.Category)
		return favoritesFetchedMsg{favorites: favorites, err: err}
	}
}

func (m *Model) submitUpload() tea.Cmd {
	return func() tea.Msg {
		created, err := m.catalog.Upload(m.ctx, m.draft)
		return uploadDoneMsg{created: created, err: err}
	}
}

func (m *Model) submitDelete() tea.Cmd {
	target := *m.deleteTarget
	return func() tea.Msg {
		err := m.catalog.Delete(m.ctx, target.Category, target.ID)
		return deleteDoneMsg{file: target, err: err}
	}
}

func (m *Model) renderLibrary() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.upload, m.keys.delete, m.keys.favorites, m.keys.refresh, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n%s", m.fileList.View(), m.renderStatus(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderFavorites() string {
	playKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play video"))
	helpKeys := []key.Binding{playKey, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n%s", m.favList.View(), m.renderStatus(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderUpload() string {
	title := m.styles.title.Render(fmt.Sprintf("Upload to %s", m.page.Title))

	form := fmt.Sprintf("File\n%s\n\nName\n%s\n", m.pathInput.View(), m.nameInput.View())

	submitKey := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/submit"))
	tabKey := key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field"))
	helpKeys := []key.Binding{submitKey, tabKey, m.keys.back, m.keys.quit}

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, form, m.renderStatus(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderConfirmDelete() string {
	if m.deleteTarget == nil {
		return ""
	}
	title := m.styles.title.Render(fmt.Sprintf("Delete %q?", m.deleteTarget.Name))
	info := fmt.Sprintf("\nFile: %s\nThis removes it from the archive.\n", m.deleteTarget.OriginalFilename)

	helpKeys := []key.Binding{m.keys.yes, m.keys.no, m.keys.quit}
	return fmt.Sprintf("%s%s\n%s", title, info, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.err.Render(m.status)
	}
	return m.styles.ok.Render(m.status)
}
