package playback

import (
	"sync"

	"github.com/bandolabs/bando/internal/shared"
)

// VideoHandle routes video sources to the platform's default player. The
// external player owns actual playback; the handle only tracks which id the
// sink was last pointed at.
type VideoHandle struct {
	mu     sync.Mutex
	opener func(url string) error
	id     string
}

// NewVideoHandle creates an idle video handle. A nil opener defaults to
// [shared.OpenExternal].
func NewVideoHandle(opener func(url string) error) *VideoHandle {
	if opener == nil {
		opener = shared.OpenExternal
	}
	return &VideoHandle{opener: opener}
}

// Play hands the URL to the external player and marks the id active.
// Pointing the sink at a new source supersedes the previous one.
func (h *VideoHandle) Play(url, id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.opener(url); err != nil {
		// Playback errors are benign: the marker stays Idle.
		h.id = ""
		return err
	}

	h.id = id
	return nil
}

// Stop clears the marker. The external player cannot be controlled from
// here, so stopping only releases the id.
func (h *VideoHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.id = ""
}

// CurrentID returns the id bound to the sink, or empty when Idle.
func (h *VideoHandle) CurrentID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id
}
