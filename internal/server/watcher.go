package server

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces bursts of filesystem events (an upload writes
// several times) into a single change notification.
const debounceInterval = 500 * time.Millisecond

// MediaWatcher watches the served asset directories and reports changes.
//
// The dev server uses it to log additions and removals so a developer
// dropping files into the media directories can see them picked up without
// restarting.
type MediaWatcher struct {
	watcher  *fsnotify.Watcher
	logger   *log.Logger
	onChange func(dir string)
	quit     chan struct{}
}

// NewMediaWatcher creates a watcher over the given directories. Directories
// that do not exist yet are created. The onChange callback may be nil.
func NewMediaWatcher(logger *log.Logger, onChange func(dir string), dirs ...string) (*MediaWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	return &MediaWatcher{
		watcher:  watcher,
		logger:   logger,
		onChange: onChange,
		quit:     make(chan struct{}),
	}, nil
}

// Start begins processing filesystem events until [MediaWatcher.Stop].
func (mw *MediaWatcher) Start() {
	go mw.run()
}

// Stop closes the watcher and ends event processing.
func (mw *MediaWatcher) Stop() {
	close(mw.quit)
	mw.watcher.Close()
}

func (mw *MediaWatcher) run() {
	debounce := time.NewTimer(0)
	<-debounce.C

	var changedDir string

	for {
		select {
		case event, ok := <-mw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			mw.logger.Debug("media event", "op", event.Op.String(), "path", event.Name)
			changedDir = filepath.Dir(event.Name)

			if !debounce.Stop() {
				select {
				case <-debounce.C:
				default:
				}
			}
			debounce.Reset(debounceInterval)

		case <-debounce.C:
			mw.logger.Info("media directory changed", "dir", changedDir)
			if mw.onChange != nil {
				mw.onChange(changedDir)
			}

		case err, ok := <-mw.watcher.Errors:
			if !ok {
				return
			}
			mw.logger.Error("watcher error", "error", err)

		case <-mw.quit:
			return
		}
	}
}
