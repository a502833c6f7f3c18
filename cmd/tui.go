package main

import (
	"context"
	"fmt"

	"github.com/bandolabs/bando/internal/models"
	"github.com/bandolabs/bando/internal/playback"
	"github.com/bandolabs/bando/internal/shared"
	"github.com/bandolabs/bando/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
)

// Marches launches the interactive marches page.
func (r *Runner) Marches(ctx context.Context, cmd *cli.Command) error {
	return r.runPage(ctx, models.MarchesPage)
}

// Music launches the interactive music page.
func (r *Runner) Music(ctx context.Context, cmd *cli.Command) error {
	return r.runPage(ctx, models.MusicPage)
}

func (r *Runner) runPage(ctx context.Context, page models.Page) error {
	if r.archive == nil {
		return fmt.Errorf("%w: archive client not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/bando-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	cat, closeCatalog := r.openCatalog()
	defer closeCatalog()

	video := playback.NewVideoHandle(nil)

	var p *tea.Program
	audio := playback.NewAudioHandle(r.httpClient, func() {
		if p != nil {
			p.Send(ui.AudioIdle())
		}
	})

	model := ui.NewModel(ctx, page, cat, r.archive, audio, video)
	p = tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	audio.Stop()
	return nil
}
