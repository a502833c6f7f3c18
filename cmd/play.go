package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/playback"
	"github.com/bandolabs/bando/internal/shared"
	"github.com/urfave/cli/v3"
)

// Play plays an uploaded file: audio decodes inline and blocks until it
// drains, video opens in the platform's default player.
func (r *Runner) Play(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: file id is required", shared.ErrMissingArgument)
	}

	category, err := models.ParseCategory(cmd.String("type"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	files, err := cat.Files(ctx, category)
	if err != nil && len(files) == 0 {
		return fmt.Errorf("failed to fetch files: %w", err)
	}

	var target *models.MediaFile
	for i := range files {
		if files[i].ID == id {
			target = &files[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("%w: no file with id %s in %s", shared.ErrFileNotFound, id, category)
	}

	url := r.archive.AssetURL(target.AssetPath())

	if target.IsVideo() {
		video := playback.NewVideoHandle(nil)
		if err := video.Play(url, target.ID); err != nil {
			return fmt.Errorf("failed to open video: %w", err)
		}
		r.writePlain("✓ Opened %q in the system player\n", target.Name)
		return nil
	}

	if !playback.AudioAvailable {
		return fmt.Errorf("%w: rebuild with cgo for inline audio", shared.ErrAudioUnavailable)
	}

	done := make(chan struct{}, 1)
	audio := playback.NewAudioHandle(r.httpClient, func() {
		done <- struct{}{}
	})

	if err := audio.Play(url, target.ID); err != nil {
		return fmt.Errorf("playback failed: %w", err)
	}
	r.writePlain("♪ Playing %q (ctrl+c to stop)\n", target.Name)

	interrupt, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	select {
	case <-done:
	case <-interrupt.Done():
		audio.Stop()
	}

	return nil
}
