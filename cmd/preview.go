package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/moodx/internal/preview"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
	"github.com/urfave/cli/v3"
)

// Preview generates a playlist and plays one song preview until it ends or the context is canceled.
func (r *Runner) Preview(ctx context.Context, cmd *cli.Command) error {
	if r.player == nil {
		return shared.ErrPlaybackDisabled
	}

	ctl, err := r.generate(ctx, cmd.StringArg("mood"), nil)
	if err != nil {
		return err
	}
	defer ctl.Preview().Stop()

	entry, err := pickPreview(ctl.Snapshot().Playlist, cmd.Int("song"))
	if err != nil {
		return err
	}

	done := make(chan preview.Event, 1)
	ctl.Preview().SetListener(func(ev preview.Event) {
		if ev.Control == entry.Preview.ID && !ev.Playing {
			select {
			case done <- ev:
			default:
			}
		}
	})

	if _, err := ctl.Activate(ctx, entry.Preview.ID); err != nil {
		return err
	}
	r.writePlain("▶ %s - %s\n", entry.Title, entry.Artist)

	select {
	case ev := <-done:
		return ev.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// pickPreview returns song n (1-based), or the first song with a preview when n is 0.
func pickPreview(region view.PlaylistRegion, n int) (view.SongEntry, error) {
	if n == 0 {
		for _, e := range region.Entries {
			if e.Preview != nil {
				return e, nil
			}
		}
		return view.SongEntry{}, fmt.Errorf("%w: no song in this playlist has one", shared.ErrNoPreview)
	}

	if n < 1 || n > len(region.Entries) {
		return view.SongEntry{}, fmt.Errorf("%w: song %d (playlist has %d)", shared.ErrInvalidFlag, n, len(region.Entries))
	}
	entry := region.Entries[n-1]
	if entry.Preview == nil {
		return view.SongEntry{}, fmt.Errorf("%w: %s", shared.ErrNoPreview, entry.Title)
	}
	return entry, nil
}
