package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/preview"
	"github.com/desertthunder/moodx/internal/services"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/desertthunder/moodx/internal/view"
)

const (
	GenerateFailedText = "Failed to generate playlist"
	GenerateHintText   = "Please try again or try a different mood."
	SaveSuccessText    = "Playlist saved successfully!"
	SaveFailedText     = "Failed to save playlist"
)

// Task performs I/O away from the event loop. Tasks only capture values that do not change afterwards.
type Task func() Result

// Result is the outcome of a [Task], handed back to [Controller.Apply].
type Result interface {
	result()
}

// Generated is the outcome of a generate request for the selection numbered Seq.
type Generated struct {
	Seq      int
	Mood     string
	Playlist *models.Playlist
	Err      error
}

// Saved is the outcome of a save request.
type Saved struct {
	Playlist *models.Playlist
	Receipt  *services.SaveReceipt
	Err      error
}

// Refreshed is the outcome of the saved-playlists fetch numbered Seq.
type Refreshed struct {
	Seq     int
	Records []models.SavedPlaylistRecord
	Err     error
}

// Opened is the outcome of opening an external link.
type Opened struct {
	URL string
	Err error
}

// PreviewChanged carries a [preview.Event] back onto the loop.
type PreviewChanged struct {
	preview.Event
}

func (Generated) result()      {}
func (Saved) result()          {}
func (Refreshed) result()      {}
func (Opened) result()         {}
func (PreviewChanged) result() {}

// Snapshot is everything a rendering adapter needs to draw the client.
type Snapshot struct {
	Theme    models.Mood
	Playlist view.PlaylistRegion
	Saved    view.SavedRegion
	Playing  string // control ID of the active preview, empty when silent
	Notice   *view.Notice
}

// Deps are the collaborators of a [Controller]. Preview and Opener are optional.
type Deps struct {
	Generator services.Generator
	Store     services.Store
	Preview   *preview.Controller
	Opener    func(url string) error
	Logger    *log.Logger
}

// Controller is the mood-selection controller. Its methods must be called from a single goroutine.
type Controller struct {
	generator services.Generator
	store     services.Store
	preview   *preview.Controller
	opener    func(url string) error
	logger    *log.Logger
	saved     *SavedView

	theme    models.Mood
	seq      int
	playlist *models.Playlist
	region   view.PlaylistRegion
	actions  Actions

	notice    *view.Notice
	noticeSeq int
}

// New creates an idle controller.
func New(deps Deps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	p := deps.Preview
	if p == nil {
		p = preview.NewController(nil, logger)
	}
	opener := deps.Opener
	if opener == nil {
		opener = shared.OpenLink
	}

	return &Controller{
		generator: deps.Generator,
		store:     deps.Store,
		preview:   p,
		opener:    opener,
		logger:    shared.WithLogger(logger, "component", "controller"),
		saved:     NewSavedView(deps.Store, logger),
		region:    view.PlaylistRegion{State: view.Idle},
		actions:   Actions{},
	}
}

// SelectMood themes the client for mood, clears the current playlist and enters the loading state.
// The returned task performs the generate request.
func (c *Controller) SelectMood(ctx context.Context, mood models.Mood) Task {
	c.theme = mood
	c.preview.Stop()
	c.playlist = nil
	c.actions = Actions{}
	c.region = view.PlaylistRegion{
		State:   view.Loading,
		Visible: true,
		Mood:    mood.Name,
		Heading: Heading(mood.Name),
		Message: fmt.Sprintf("Generating your %s playlist...", mood.Name),
	}

	c.seq++
	seq, name, generator := c.seq, mood.Name, c.generator

	c.logger.Debug("mood selected", "mood", name, "seq", seq)

	return func() Result {
		playlist, err := generator.Generate(ctx, name)
		return Generated{Seq: seq, Mood: name, Playlist: playlist, Err: err}
	}
}

// Save returns the task persisting the current playlist, or nil when there is none.
func (c *Controller) Save(ctx context.Context) Task {
	if c.playlist == nil {
		c.logger.Debug("save ignored, no playlist")
		return nil
	}
	playlist, store := c.playlist, c.store

	return func() Result {
		receipt, err := store.Save(ctx, playlist)
		return Saved{Playlist: playlist, Receipt: receipt, Err: err}
	}
}

// RefreshSaved returns the task reloading the saved playlists.
func (c *Controller) RefreshSaved(ctx context.Context) Task {
	return c.saved.Refresh(ctx)
}

// Activate performs the control id of the current playlist region.
func (c *Controller) Activate(ctx context.Context, id string) (Task, error) {
	action, ok := c.actions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", shared.ErrUnknownControl, id)
	}
	return action(ctx)
}

// Apply folds r into the controller state and returns the follow-up task, if any.
func (c *Controller) Apply(ctx context.Context, r Result) Task {
	switch r := r.(type) {
	case Generated:
		c.applyGenerated(r)
	case Saved:
		return c.applySaved(ctx, r)
	case Refreshed:
		c.saved.Apply(r)
	case Opened:
		if r.Err != nil {
			c.logger.Warn("failed to open link", "url", r.URL, "error", r.Err)
			c.notify(view.NoticeError, fmt.Sprintf("Could not open %s", r.URL))
		}
	case PreviewChanged:
		if r.Err != nil {
			c.notify(view.NoticeError, "Preview stopped: playback failed")
		}
	}
	return nil
}

func (c *Controller) applyGenerated(r Generated) {
	if r.Seq != c.seq {
		c.logger.Debug("dropping stale playlist", "mood", r.Mood, "seq", r.Seq, "latest", c.seq)
		return
	}

	if r.Err == nil && r.Playlist == nil {
		r.Err = fmt.Errorf("%w: %w", shared.ErrGeneration, shared.ErrMalformedResponse)
	}

	if r.Err != nil {
		msg := services.ServerMessage(r.Err)
		if msg == "" {
			msg = GenerateFailedText
		}
		c.logger.Warn("playlist generation failed", "mood", r.Mood, "error", r.Err)
		c.region = view.PlaylistRegion{
			State:   view.Failure,
			Visible: true,
			Mood:    r.Mood,
			Heading: Heading(r.Mood),
			Message: msg,
			Hint:    GenerateHintText,
		}
		return
	}

	c.playlist = r.Playlist
	c.show(Render(r.Playlist))
	c.logger.Info("playlist generated", "mood", r.Mood, "songs", len(r.Playlist.Songs))
}

// show replaces the region and its action table. Any running preview belongs to the old region.
func (c *Controller) show(region view.PlaylistRegion) {
	c.preview.Stop()
	c.region = region
	c.actions = Wire(region, Bindings{
		Preview: c.togglePreview,
		Open:    c.open,
		Save:    c.Save,
	})
}

func (c *Controller) applySaved(ctx context.Context, r Saved) Task {
	if r.Err != nil {
		msg := services.ServerMessage(r.Err)
		if msg == "" {
			msg = r.Err.Error()
		}
		c.logger.Error("failed to save playlist", "mood", r.Playlist.Mood, "error", r.Err)
		c.notify(view.NoticeError, fmt.Sprintf("%s: %s", SaveFailedText, msg))
		return nil
	}

	text := SaveSuccessText
	if r.Receipt != nil && r.Receipt.Message != "" {
		text = r.Receipt.Message
	}
	c.logger.Info("playlist saved", "mood", r.Playlist.Mood)
	c.notify(view.NoticeSuccess, text)

	return c.saved.Refresh(ctx)
}

func (c *Controller) togglePreview(song models.Song, control string) error {
	err := c.preview.Toggle(song, control)
	switch {
	case err == nil:
	case errors.Is(err, shared.ErrNoPreview):
		c.notify(view.NoticeError, "No preview available for this song")
	case errors.Is(err, shared.ErrPlaybackDisabled):
		c.notify(view.NoticeError, "Audio previews are disabled")
	default:
		c.notify(view.NoticeError, "Could not play preview")
	}
	return err
}

func (c *Controller) open(url string) Task {
	opener := c.opener
	return func() Result {
		return Opened{URL: url, Err: opener(url)}
	}
}

func (c *Controller) notify(kind view.NoticeKind, text string) {
	c.noticeSeq++
	c.notice = &view.Notice{Kind: kind, Text: text, Seq: c.noticeSeq}
}

// Run drives task and its follow-ups to completion on the calling goroutine.
func (c *Controller) Run(ctx context.Context, task Task) {
	for task != nil {
		task = c.Apply(ctx, task())
	}
}

// Current returns the current playlist, nil while loading or after a failure.
func (c *Controller) Current() *models.Playlist {
	return c.playlist
}

// Preview returns the preview controller.
func (c *Controller) Preview() *preview.Controller {
	return c.preview
}

// Snapshot returns the state to draw.
func (c *Controller) Snapshot() Snapshot {
	playing, _ := c.preview.Playing()
	return Snapshot{
		Theme:    c.theme,
		Playlist: c.region,
		Saved:    c.saved.Region(),
		Playing:  playing,
		Notice:   c.notice,
	}
}

// Close stops any preview and releases the player.
func (c *Controller) Close() error {
	return c.preview.Close()
}
