package preview_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/preview"
	"github.com/desertthunder/moodx/internal/shared"
	tu "github.com/desertthunder/moodx/internal/testing"
	"github.com/go-test/deep"
)

type recorder struct {
	mu     sync.Mutex
	events []preview.Event
}

func (r *recorder) listen(ev preview.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) indicators() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		state := "off"
		if ev.Playing {
			state = "on"
		}
		out = append(out, ev.Control+" "+state)
	}
	return out
}

func song(title, url string) models.Song {
	return models.Song{Title: title, Artist: "Artist", Link: "https://example.com/" + title, PreviewURL: url}
}

func setup() (*preview.Controller, *tu.FakePlayer, *recorder) {
	player := &tu.FakePlayer{}
	rec := &recorder{}
	c := preview.NewController(player, shared.NewLogger(&tu.FWriter{}))
	c.SetListener(rec.listen)
	return c, player, rec
}

func TestController(t *testing.T) {
	a := song("a", "https://cdn.example.com/a.mp3")
	b := song("b", "https://cdn.example.com/b.mp3")

	t.Run("Toggle", func(t *testing.T) {
		t.Run("starts playback and reports the control", func(t *testing.T) {
			c, player, rec := setup()

			if err := c.Toggle(a, "preview-0"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if control, ok := c.Playing(); !ok || control != "preview-0" {
				t.Errorf("expected preview-0 playing, got %q (%v)", control, ok)
			}
			if diff := deep.Equal(player.Log(), []string{"play " + a.PreviewURL}); diff != nil {
				t.Error(diff)
			}
			if diff := deep.Equal(rec.indicators(), []string{"preview-0 on"}); diff != nil {
				t.Error(diff)
			}
		})

		t.Run("same control stops without replaying", func(t *testing.T) {
			c, player, rec := setup()

			_ = c.Toggle(a, "preview-0")
			if err := c.Toggle(a, "preview-0"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if _, ok := c.Playing(); ok {
				t.Error("expected nothing playing")
			}
			if player.Plays() != 1 {
				t.Errorf("expected 1 play, got %d", player.Plays())
			}
			if diff := deep.Equal(rec.indicators(), []string{"preview-0 on", "preview-0 off"}); diff != nil {
				t.Error(diff)
			}
		})

		t.Run("other control stops the old session before starting", func(t *testing.T) {
			c, player, rec := setup()

			_ = c.Toggle(a, "preview-0")
			_ = c.Toggle(b, "preview-1")

			want := []string{"play " + a.PreviewURL, "stop " + a.PreviewURL, "play " + b.PreviewURL}
			if diff := deep.Equal(player.Log(), want); diff != nil {
				t.Error(diff)
			}
			if diff := deep.Equal(rec.indicators(), []string{"preview-0 on", "preview-0 off", "preview-1 on"}); diff != nil {
				t.Error(diff)
			}
			if control, _ := c.Playing(); control != "preview-1" {
				t.Errorf("expected preview-1 playing, got %q", control)
			}
		})

		t.Run("song without preview is rejected", func(t *testing.T) {
			c, player, _ := setup()

			err := c.Toggle(models.Song{Title: "silent", Link: "https://example.com"}, "preview-0")
			if !errors.Is(err, shared.ErrNoPreview) {
				t.Errorf("expected ErrNoPreview, got %v", err)
			}
			if player.Plays() != 0 {
				t.Error("expected no play")
			}
		})

		t.Run("start failure leaves nothing playing", func(t *testing.T) {
			c, player, rec := setup()
			player.StartErr = map[string]error{b.PreviewURL: errors.New("unsupported format")}

			_ = c.Toggle(a, "preview-0")
			err := c.Toggle(b, "preview-1")

			if !errors.Is(err, shared.ErrPlayback) {
				t.Errorf("expected ErrPlayback, got %v", err)
			}
			if _, ok := c.Playing(); ok {
				t.Error("expected nothing playing")
			}
			want := []string{"preview-0 on", "preview-0 off", "preview-1 on", "preview-1 off"}
			if diff := deep.Equal(rec.indicators(), want); diff != nil {
				t.Error(diff)
			}

			if err := c.Toggle(a, "preview-0"); err != nil {
				t.Errorf("expected later toggle to work, got %v", err)
			}
		})

		t.Run("disabled without a player", func(t *testing.T) {
			c := preview.NewController(nil, nil)
			if err := c.Toggle(a, "preview-0"); !errors.Is(err, shared.ErrPlaybackDisabled) {
				t.Errorf("expected ErrPlaybackDisabled, got %v", err)
			}
			if err := c.Close(); err != nil {
				t.Errorf("unexpected close error: %v", err)
			}
		})
	})

	t.Run("Finish", func(t *testing.T) {
		t.Run("natural end clears the session", func(t *testing.T) {
			c, player, rec := setup()

			_ = c.Toggle(a, "preview-0")
			player.Finish(a.PreviewURL, nil)

			if _, ok := c.Playing(); ok {
				t.Error("expected nothing playing")
			}
			if diff := deep.Equal(rec.indicators(), []string{"preview-0 on", "preview-0 off"}); diff != nil {
				t.Error(diff)
			}
		})

		t.Run("playback error is reported", func(t *testing.T) {
			c, player, rec := setup()

			_ = c.Toggle(a, "preview-0")
			player.Finish(a.PreviewURL, errors.New("decode error"))

			if _, ok := c.Playing(); ok {
				t.Error("expected nothing playing")
			}
			last := rec.events[len(rec.events)-1]
			if last.Playing || !errors.Is(last.Err, shared.ErrPlayback) {
				t.Errorf("expected failed stop event, got %+v", last)
			}
		})

		t.Run("replaced session is ignored", func(t *testing.T) {
			c, player, rec := setup()

			_ = c.Toggle(a, "preview-0")
			stale := player.Callback(a.PreviewURL)
			_ = c.Toggle(b, "preview-1")

			stale(nil)

			if control, ok := c.Playing(); !ok || control != "preview-1" {
				t.Errorf("expected preview-1 still playing, got %q (%v)", control, ok)
			}
			if len(rec.events) != 3 {
				t.Errorf("expected 3 events, got %v", rec.indicators())
			}
		})
	})

	t.Run("Stop", func(t *testing.T) {
		c, player, rec := setup()

		c.Stop()
		if len(rec.events) != 0 {
			t.Error("expected no events when idle")
		}

		_ = c.Toggle(a, "preview-0")
		c.Stop()

		if _, ok := c.Playing(); ok {
			t.Error("expected nothing playing")
		}
		if diff := deep.Equal(player.Log(), []string{"play " + a.PreviewURL, "stop " + a.PreviewURL}); diff != nil {
			t.Error(diff)
		}
	})
}
