package main

import (
	"context"

	"github.com/desertthunder/moodx/internal/controller"
	"github.com/desertthunder/moodx/internal/formatter"
	"github.com/desertthunder/moodx/internal/view"
	"github.com/urfave/cli/v3"
)

// Saved prints the saved playlists, summarized the way the TUI shows them.
//
// Unlike the TUI's saved view, a failed fetch is an error here.
func (r *Runner) Saved(ctx context.Context, cmd *cli.Command) error {
	records, err := r.store.List(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	summaries := make([]view.SavedSummary, 0, len(records))
	for _, record := range records {
		summaries = append(summaries, controller.Summarize(record))
	}
	return r.writePlain("%s", formatter.SavedToText(summaries))
}
