package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/moodx/internal/view"
)

var _ list.Item = songItem{}

// songItem wraps [view.SongEntry] to implement [list.Item].
type songItem struct {
	entry   view.SongEntry
	playing bool
}

func (i songItem) FilterValue() string { return i.entry.Title }
func (i songItem) Title() string {
	if i.playing {
		return "▶ " + i.entry.Title
	}
	return i.entry.Title
}
func (i songItem) Description() string {
	desc := i.entry.Artist
	if i.entry.Preview != nil {
		desc += " • preview"
	}
	return desc
}

// songItems builds the list items for region, marking the playing control.
func songItems(region view.PlaylistRegion, playing string) []list.Item {
	items := make([]list.Item, len(region.Entries))
	for i, e := range region.Entries {
		items[i] = songItem{entry: e, playing: e.Preview != nil && e.Preview.ID == playing}
	}
	return items
}
