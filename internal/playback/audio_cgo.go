//go:build (linux && cgo) || windows || darwin

package playback

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

// AudioHandle plays MP3 sources through the system speaker. It is the one
// shared audio sink of a page.
type AudioHandle struct {
	mu sync.Mutex

	httpClient  *http.Client
	onIdle      func()
	initialized bool
	sampleRate  beep.SampleRate
	ctrl        *beep.Ctrl
	streamer    beep.StreamSeekCloser
	id          string
}

// NewAudioHandle creates an idle audio handle. onIdle, if set, is invoked
// after the handle resets to Idle on natural end of playback.
func NewAudioHandle(client *http.Client, onIdle func()) *AudioHandle {
	if client == nil {
		client = http.DefaultClient
	}
	return &AudioHandle{
		httpClient: client,
		onIdle:     onIdle,
		sampleRate: beep.SampleRate(44100),
	}
}

// Play fetches the source, decodes it and starts playback, stopping whatever
// was previously playing on this handle.
func (h *AudioHandle) Play(url, id string) error {
	data, err := h.fetch(url)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.stopLocked()

	streamer, format, err := mp3.Decode(nopCloser{bytes.NewReader(data)})
	if err != nil {
		return fmt.Errorf("failed to decode audio: %w", err)
	}

	if !h.initialized {
		if err := speaker.Init(h.sampleRate, h.sampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return fmt.Errorf("failed to init speaker: %w", err)
		}
		h.initialized = true
	}

	h.streamer = streamer
	h.id = id

	resampled := beep.Resample(4, format.SampleRate, h.sampleRate, streamer)
	h.ctrl = &beep.Ctrl{Streamer: resampled}

	playingID := id
	speaker.Play(beep.Seq(h.ctrl, beep.Callback(func() {
		// Natural end of playback: reset to Idle unless another Play
		// already retargeted the handle.
		go h.finished(playingID)
	})))

	return nil
}

// Stop halts playback and resets the handle to Idle.
func (h *AudioHandle) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stopLocked()
}

// CurrentID returns the id bound to the sink, or empty when Idle.
func (h *AudioHandle) CurrentID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.id
}

func (h *AudioHandle) stopLocked() {
	if h.ctrl != nil {
		speaker.Lock()
		h.ctrl.Paused = true
		speaker.Unlock()
	}
	if h.streamer != nil {
		h.streamer.Close()
		h.streamer = nil
	}
	h.ctrl = nil
	h.id = ""
}

func (h *AudioHandle) finished(id string) {
	h.mu.Lock()
	if h.id != id {
		h.mu.Unlock()
		return
	}
	h.stopLocked()
	onIdle := h.onIdle
	h.mu.Unlock()

	if onIdle != nil {
		onIdle()
	}
}

// fetch loads the source bytes from an HTTP URL or a local file path.
func (h *AudioHandle) fetch(url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		resp, err := h.httpClient.Get(url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch audio: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("failed to fetch audio: status %d", resp.StatusCode)
		}

		return io.ReadAll(resp.Body)
	}

	return os.ReadFile(url)
}

// nopCloser wraps a bytes.Reader to implement io.ReadCloser.
type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
