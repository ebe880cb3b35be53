package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
)

const SaveControlID = "save"

// Render builds the region for playlist. A nil playlist yields an idle, hidden region.
func Render(playlist *models.Playlist) view.PlaylistRegion {
	if playlist == nil {
		return view.PlaylistRegion{State: view.Idle}
	}

	region := view.PlaylistRegion{
		State:   view.Success,
		Visible: true,
		Mood:    playlist.Mood,
		Heading: Heading(playlist.Mood),
		Entries: make([]view.SongEntry, 0, len(playlist.Songs)),
		Save:    &view.Control{ID: SaveControlID, Kind: view.SaveControl},
	}

	for i, song := range playlist.Songs {
		entry := view.SongEntry{
			Key:    fmt.Sprintf("song-%d", i),
			Title:  song.Title,
			Artist: song.Artist,
			Link:   view.Control{ID: fmt.Sprintf("link-%d", i), Kind: view.LinkControl, Target: song.Link},
		}
		if song.HasImage() {
			entry.Image = strings.TrimSpace(song.Image)
		}
		if song.HasPreview() {
			entry.Preview = &view.Control{
				ID:     fmt.Sprintf("preview-%d", i),
				Kind:   view.PreviewControl,
				Target: strings.TrimSpace(song.PreviewURL),
			}
		}
		region.Entries = append(region.Entries, entry)
	}

	return region
}

// Heading is the title shown above a playlist for mood.
func Heading(mood string) string {
	return fmt.Sprintf("Your %s Playlist", shared.Capitalize(mood))
}

// Action performs a control. Actions that need I/O return a [Task].
type Action func(ctx context.Context) (Task, error)

// Actions maps control IDs to their actions.
type Actions map[string]Action

// Bindings are the handlers [Wire] attaches to controls.
type Bindings struct {
	Preview func(song models.Song, control string) error
	Open    func(url string) Task
	Save    func(ctx context.Context) Task
}

// Wire builds a new action table for region. Handlers that are nil leave their controls unbound.
func Wire(region view.PlaylistRegion, b Bindings) Actions {
	actions := make(Actions)

	for _, entry := range region.Entries {
		if entry.Preview != nil && b.Preview != nil {
			control := entry.Preview.ID
			song := models.Song{
				Title:      entry.Title,
				Artist:     entry.Artist,
				Link:       entry.Link.Target,
				Image:      entry.Image,
				PreviewURL: entry.Preview.Target,
			}
			actions[control] = func(context.Context) (Task, error) {
				return nil, b.Preview(song, control)
			}
		}

		if b.Open != nil {
			url := entry.Link.Target
			actions[entry.Link.ID] = func(context.Context) (Task, error) {
				return b.Open(url), nil
			}
		}
	}

	if region.Save != nil && b.Save != nil {
		actions[region.Save.ID] = func(ctx context.Context) (Task, error) {
			return b.Save(ctx), nil
		}
	}

	return actions
}
