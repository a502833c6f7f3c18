package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bandolabs/bando/internal/models"
)

// filesFetchedMsg carries a refreshed uploaded-files listing. files may hold
// the last known-good rows even when err is set.
type filesFetchedMsg struct {
	files []models.MediaFile
	err   error
}

// favoritesFetchedMsg carries the curated favorites listing.
type favoritesFetchedMsg struct {
	favorites []models.FavoriteTrack
	err       error
}

// uploadDoneMsg reports the outcome of a draft submission.
type uploadDoneMsg struct {
	created *models.MediaFile
	err     error
}

// deleteDoneMsg reports the outcome of a delete request.
type deleteDoneMsg struct {
	file models.MediaFile
	err  error
}

// audioIdleMsg signals that the audio sink returned to idle on its own,
// either at end of playback or after a decode failure.
type audioIdleMsg struct{}

// AudioIdle builds the message the audio handle's idle callback feeds back
// into the program via [tea.Program.Send].
func AudioIdle() tea.Msg {
	return audioIdleMsg{}
}
