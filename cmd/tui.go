package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive mood picker.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	moods := r.moods()
	if len(moods) == 0 {
		return fmt.Errorf("%w: no moods configured", shared.ErrInvalidConfig)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	logFile := r.config.Log.File
	if logFile == "" {
		logFile = "./tmp/moodx.log"
	}
	fileLogger, err := shared.NewFileLogger(logFile)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	ctl := r.controller(nil)
	defer ctl.Preview().Stop()

	model := ui.NewModel(ctx, ctl, moods)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	ctl.Preview().SetListener(ui.Forward(p))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
