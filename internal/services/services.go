package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/desertthunder/moodx/internal/models"
)

// Generator turns a mood into a playlist.
type Generator interface {
	// Generate requests a playlist for the mood name.
	// Failures are reported as [*ServiceError] wrapping [shared.ErrGeneration].
	Generate(ctx context.Context, mood string) (*models.Playlist, error)
}

// Store persists playlists and lists the saved ones.
type Store interface {
	// Save sends the playlist verbatim. It never retries.
	Save(ctx context.Context, playlist *models.Playlist) (*SaveReceipt, error)

	// List fetches the full saved-playlist collection.
	List(ctx context.Context) ([]models.SavedPlaylistRecord, error)
}

// SaveReceipt is the success body of a save request.
type SaveReceipt struct {
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	SpotifyURL string `json:"spotify_url,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ServiceError is a failed service call. Message holds the text the service reported, when it reported one.
type ServiceError struct {
	Kind    error // one of the shared.Err* sentinels
	Status  int   // HTTP status, 0 for transport failures
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%v (status %d): %s", e.Kind, e.Status, e.Message)
	case e.Message != "":
		return fmt.Sprintf("%v: %s", e.Kind, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%v (status %d)", e.Kind, e.Status)
	}
}

func (e *ServiceError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ServerMessage returns the service-supplied message carried by err, if any.
func ServerMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}

type errorBody struct {
	Error string `json:"error"`
}
