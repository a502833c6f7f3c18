//go:build linux && !cgo

package playback

import (
	"net/http"

	"github.com/bandolabs/bando/internal/shared"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = false

// AudioHandle is a stub for builds without speaker support. Play always
// fails with [shared.ErrAudioUnavailable] and the handle stays Idle.
type AudioHandle struct{}

// NewAudioHandle creates the stub handle; the arguments are ignored.
func NewAudioHandle(client *http.Client, onIdle func()) *AudioHandle {
	return &AudioHandle{}
}

func (h *AudioHandle) Play(url, id string) error {
	return shared.ErrAudioUnavailable
}

func (h *AudioHandle) Stop() {}

func (h *AudioHandle) CurrentID() string { return "" }
