package preview

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/shared"
)

// Event reports a change of a control's playing indicator. Err is set when a running preview failed;
// failures to start are returned by [Controller.Toggle] instead.
type Event struct {
	Control string
	Playing bool
	Err     error
}

// Listener receives indicator changes.
type Listener func(Event)

// Session is the active preview.
type Session struct {
	Control string
	Song    models.Song
	stream  Stream
}

// Controller owns at most one [Session].
type Controller struct {
	mu       sync.Mutex
	player   Player
	session  *Session
	listener Listener
	logger   *log.Logger
}

// NewController creates a controller playing through player. A nil player disables previews.
func NewController(player Player, logger *log.Logger) *Controller {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Controller{player: player, logger: shared.WithLogger(logger, "component", "preview")}
}

// SetListener registers the indicator listener, replacing any previous one.
func (c *Controller) SetListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listener = l
}

// Toggle activates the preview control for song.
//
// An active session is always stopped first. If it belonged to control, nothing new starts.
func (c *Controller) Toggle(song models.Song, control string) error {
	if !song.HasPreview() {
		return fmt.Errorf("%w: %s", shared.ErrNoPreview, song.Title)
	}
	if c.player == nil {
		return shared.ErrPlaybackDisabled
	}

	c.mu.Lock()
	var events []Event

	if s := c.session; s != nil {
		events = append(events, c.teardownLocked(s))
		if s.Control == control {
			c.mu.Unlock()
			c.emit(events)
			return nil
		}
	}

	s := &Session{Control: control, Song: song}
	c.session = s
	events = append(events, Event{Control: control, Playing: true})

	stream, err := c.player.Play(song.PreviewURL, func(err error) { c.finish(s, err) })
	if err != nil {
		c.session = nil
		err = fmt.Errorf("%w: %v", shared.ErrPlayback, err)
		events = append(events, Event{Control: control, Playing: false})
		c.mu.Unlock()

		c.logger.Warn("preview failed to start", "control", control, "url", song.PreviewURL, "error", err)
		c.emit(events)
		return err
	}
	s.stream = stream
	c.mu.Unlock()

	c.logger.Debug("preview started", "control", control, "title", song.Title)
	c.emit(events)
	return nil
}

// Stop tears down the active session, if any.
func (c *Controller) Stop() {
	c.mu.Lock()
	s := c.session
	if s == nil {
		c.mu.Unlock()
		return
	}
	ev := c.teardownLocked(s)
	c.mu.Unlock()

	c.emit([]Event{ev})
}

// Playing returns the control of the active session.
func (c *Controller) Playing() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return "", false
	}
	return c.session.Control, true
}

// Close stops any preview and releases the player.
func (c *Controller) Close() error {
	c.Stop()
	if c.player == nil {
		return nil
	}
	return c.player.Close()
}

func (c *Controller) teardownLocked(s *Session) Event {
	c.session = nil
	if s.stream != nil {
		if err := s.stream.Stop(); err != nil {
			c.logger.Warn("failed to stop preview", "control", s.Control, "error", err)
		}
	}
	return Event{Control: s.Control, Playing: false}
}

// finish handles the end of s. Sessions that were already replaced are ignored.
func (c *Controller) finish(s *Session, err error) {
	c.mu.Lock()
	if c.session != s {
		c.mu.Unlock()
		return
	}
	c.session = nil
	c.mu.Unlock()

	ev := Event{Control: s.Control, Playing: false}
	if err != nil {
		ev.Err = fmt.Errorf("%w: %v", shared.ErrPlayback, err)
		c.logger.Warn("preview playback failed", "control", s.Control, "error", err)
	} else {
		c.logger.Debug("preview finished", "control", s.Control)
	}
	c.emit([]Event{ev})
}

func (c *Controller) emit(events []Event) {
	c.mu.Lock()
	l := c.listener
	c.mu.Unlock()
	if l == nil {
		return
	}
	for _, ev := range events {
		l(ev)
	}
}
