package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Upload draft validation errors, caught before any request is sent
	ErrUnsupportedFileType = fmt.Errorf("unsupported file type")
	ErrMissingFile         = fmt.Errorf("no file selected")
	ErrEmptyName           = fmt.Errorf("name must not be empty")

	// API and service errors
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrFileNotFound       = fmt.Errorf("media file not found")

	// Playback errors
	ErrAudioUnavailable = fmt.Errorf("audio playback not available in this build")
	ErrNothingToPlay    = fmt.Errorf("no playable asset for this track")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
