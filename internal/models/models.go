// package models defines the data model for the moodx client
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/moodx/internal/shared"
)

// Song is one entry of a generated playlist.
type Song struct {
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Link       string `json:"link"`
	Image      string `json:"image,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}

func (s Song) HasImage() bool   { return strings.TrimSpace(s.Image) != "" }
func (s Song) HasPreview() bool { return strings.TrimSpace(s.PreviewURL) != "" }

// Validate reports whether the song carries the fields every rendering needs.
func (s Song) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("%w: song without title", shared.ErrMalformedResponse)
	}
	if strings.TrimSpace(s.Link) == "" {
		return fmt.Errorf("%w: song %q without link", shared.ErrMalformedResponse, s.Title)
	}
	return nil
}

// Playlist is the playlist generated for a mood.
type Playlist struct {
	Mood           string    `json:"mood"`
	Songs          []Song    `json:"songs"`
	Timestamp      Timestamp `json:"timestamp"`
	SuggestedMoods []string  `json:"suggested_moods,omitempty"`
}

// Validate checks a decoded playlist payload. An empty song list is valid.
func (p *Playlist) Validate() error {
	if p == nil {
		return fmt.Errorf("%w: empty playlist payload", shared.ErrMalformedResponse)
	}
	if p.Songs == nil {
		return fmt.Errorf("%w: playlist without songs field", shared.ErrMalformedResponse)
	}
	for _, s := range p.Songs {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SavedPlaylistRecord is a playlist as stored by the persistence service.
type SavedPlaylistRecord struct {
	Playlist
	SpotifyURL string `json:"spotify_url,omitempty"`
}

// Timestamp is a [time.Time] that tolerates the timestamp formats used by the playlist services.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses s using the first layout that accepts it.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("%w: unrecognized timestamp %q", shared.ErrMalformedResponse, s)
}

// MarshalJSON encodes the timestamp as RFC 3339, or null when unset.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

// UnmarshalJSON accepts null, empty strings and any of the supported layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = Timestamp{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: timestamp must be a string", shared.ErrMalformedResponse)
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
