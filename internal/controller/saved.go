package controller

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/services"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
)

const (
	// SummarySongs is how many songs a saved summary lists.
	SummarySongs = 3
	DateLayout   = "Jan 2, 2006"
)

// SavedView keeps the saved-playlists region.
type SavedView struct {
	store  services.Store
	logger *log.Logger
	region view.SavedRegion

	seq     int // last refresh started
	applied int // refresh the region comes from
}

// NewSavedView creates an empty view backed by store.
func NewSavedView(store services.Store, logger *log.Logger) *SavedView {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &SavedView{store: store, logger: shared.WithLogger(logger, "component", "saved")}
}

// Refresh returns the task fetching the whole collection.
func (v *SavedView) Refresh(ctx context.Context) Task {
	v.seq++
	store, seq := v.store, v.seq
	return func() Result {
		records, err := store.List(ctx)
		return Refreshed{Seq: seq, Records: records, Err: err}
	}
}

// Apply replaces the region with r. A failed fetch is logged and changes nothing, and so does a
// fetch started before the one the region already shows.
func (v *SavedView) Apply(r Refreshed) {
	if r.Err != nil {
		v.logger.Error("failed to load saved playlists", "error", r.Err)
		return
	}
	if r.Seq < v.applied {
		v.logger.Debug("dropping stale saved playlists", "seq", r.Seq, "shown", v.applied)
		return
	}
	v.applied = r.Seq

	summaries := make([]view.SavedSummary, 0, len(r.Records))
	for _, record := range r.Records {
		summaries = append(summaries, Summarize(record))
	}
	v.region = view.SavedRegion{Loaded: true, Summaries: summaries}

	v.logger.Debug("saved playlists loaded", "count", len(summaries))
}

// Region returns the current saved region.
func (v *SavedView) Region() view.SavedRegion {
	return v.region
}

// Summarize renders record with at most [SummarySongs] songs and an overflow line for the rest.
func Summarize(record models.SavedPlaylistRecord) view.SavedSummary {
	summary := view.SavedSummary{
		Title: shared.Capitalize(record.Mood) + " Playlist",
		URL:   record.SpotifyURL,
	}
	if !record.Timestamp.IsZero() {
		summary.Created = record.Timestamp.Format(DateLayout)
	}

	shown := min(len(record.Songs), SummarySongs)
	summary.Songs = make([]string, 0, shown)
	for _, song := range record.Songs[:shown] {
		summary.Songs = append(summary.Songs, fmt.Sprintf("%s - %s", song.Title, song.Artist))
	}

	if rest := len(record.Songs) - shown; rest > 0 {
		summary.Overflow = fmt.Sprintf("+ %d more songs", rest)
	}

	return summary
}
