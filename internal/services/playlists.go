package services

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/shared"
)

type generateRequest struct {
	Mood string `json:"mood"`
	City string `json:"city,omitempty"`
}

// PlaylistService implements [Generator] against the generate-playlist endpoint.
type PlaylistService struct {
	api  *APIService
	path string
	city string
	now  func() time.Time
}

// NewPlaylistService creates a generator posting to path. city is sent along when non-empty.
func NewPlaylistService(api *APIService, path, city string) *PlaylistService {
	if path == "" {
		path = "/api/generate-playlist"
	}
	return &PlaylistService{api: api, path: path, city: city, now: time.Now}
}

// Generate requests a playlist for mood and stamps it with the time it was received.
func (s *PlaylistService) Generate(ctx context.Context, mood string) (*models.Playlist, error) {
	resp, err := s.api.PostJSON(ctx, s.path, generateRequest{Mood: mood, City: s.city})
	if err != nil {
		return nil, &ServiceError{Kind: shared.ErrGeneration, Err: err}
	}

	if !resp.OK() {
		var body errorBody
		_ = resp.Decode(&body)
		return nil, &ServiceError{
			Kind:    shared.ErrGeneration,
			Status:  resp.StatusCode,
			Message: body.Error,
			Err:     fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode),
		}
	}

	var playlist models.Playlist
	err = resp.Decode(&playlist)
	if err == nil {
		err = playlist.Validate()
	}
	if err != nil {
		// Some failures arrive as 2xx with only an error field.
		var body errorBody
		_ = resp.Decode(&body)
		return nil, &ServiceError{Kind: shared.ErrGeneration, Status: resp.StatusCode, Message: body.Error, Err: err}
	}

	if playlist.Mood == "" {
		playlist.Mood = mood
	}
	playlist.Timestamp = models.NewTimestamp(s.now())

	return &playlist, nil
}
