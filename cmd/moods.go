package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Moods lists the configured moods with their theme colors.
func (r *Runner) Moods(ctx context.Context, cmd *cli.Command) error {
	moods := r.moods()

	if cmd.Bool("json") {
		return r.writeJSON(moods, true)
	}

	for i, mood := range moods {
		if err := r.writePlain("%d. %-12s %s %s\n", i+1, mood.Name, mood.Color, mood.Label); err != nil {
			return err
		}
	}
	return nil
}
