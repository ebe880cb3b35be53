package services

import (
	"context"
	"fmt"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/shared"
)

// PersistenceGateway implements [Store]: a thin wrapper around the save-playlist and saved-playlists endpoints.
type PersistenceGateway struct {
	api       *APIService
	savePath  string
	savedPath string
}

// NewPersistenceGateway creates a gateway using the given endpoint paths.
func NewPersistenceGateway(api *APIService, savePath, savedPath string) *PersistenceGateway {
	if savePath == "" {
		savePath = "/api/save-playlist"
	}
	if savedPath == "" {
		savedPath = "/api/saved-playlists"
	}
	return &PersistenceGateway{api: api, savePath: savePath, savedPath: savedPath}
}

// Save posts the playlist. Only a body with status "success" counts as saved.
func (g *PersistenceGateway) Save(ctx context.Context, playlist *models.Playlist) (*SaveReceipt, error) {
	if playlist == nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrSaveFailed, shared.ErrNoPlaylist)
	}

	resp, err := g.api.PostJSON(ctx, g.savePath, playlist)
	if err != nil {
		return nil, &ServiceError{Kind: shared.ErrSaveFailed, Err: err}
	}

	var receipt SaveReceipt
	decodeErr := resp.Decode(&receipt)

	if resp.OK() && decodeErr == nil && receipt.Status == "success" {
		return &receipt, nil
	}

	se := &ServiceError{Kind: shared.ErrSaveFailed, Status: resp.StatusCode, Message: receipt.Error}
	switch {
	case decodeErr != nil:
		se.Err = decodeErr
	case !resp.OK():
		se.Err = fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	default:
		se.Err = fmt.Errorf("service reported status %q", receipt.Status)
	}
	return nil, se
}

// List fetches every saved playlist.
func (g *PersistenceGateway) List(ctx context.Context) ([]models.SavedPlaylistRecord, error) {
	resp, err := g.api.Get(ctx, g.savedPath)
	if err != nil {
		return nil, &ServiceError{Kind: shared.ErrSavedFetch, Err: err}
	}

	if !resp.OK() {
		var body errorBody
		_ = resp.Decode(&body)
		return nil, &ServiceError{
			Kind:    shared.ErrSavedFetch,
			Status:  resp.StatusCode,
			Message: body.Error,
			Err:     fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode),
		}
	}

	var records []models.SavedPlaylistRecord
	if err := resp.Decode(&records); err != nil {
		return nil, &ServiceError{Kind: shared.ErrSavedFetch, Status: resp.StatusCode, Err: err}
	}
	if records == nil {
		records = []models.SavedPlaylistRecord{}
	}
	return records, nil
}
