package controller

import (
	"context"
	"sync"

	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/services"
)

// mockGenerator is a test double for [services.Generator]
type mockGenerator struct {
	mu       sync.Mutex
	Playlist *models.Playlist
	Err      error
	Calls    []string
}

func (m *mockGenerator) Generate(ctx context.Context, mood string) (*models.Playlist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, mood)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Playlist == nil {
		return &models.Playlist{Mood: mood, Songs: []models.Song{}}, nil
	}
	p := *m.Playlist
	return &p, nil
}

// mockStore is a test double for [services.Store]
type mockStore struct {
	mu        sync.Mutex
	Receipt   *services.SaveReceipt
	SaveErr   error
	Records   []models.SavedPlaylistRecord
	ListErr   error
	Saved     []models.Playlist
	ListCalls int
}

func (m *mockStore) Save(ctx context.Context, playlist *models.Playlist) (*services.SaveReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Saved = append(m.Saved, *playlist)
	if m.SaveErr != nil {
		return nil, m.SaveErr
	}
	if m.Receipt == nil {
		return &services.SaveReceipt{Status: "success"}, nil
	}
	return m.Receipt, nil
}

func (m *mockStore) List(ctx context.Context) ([]models.SavedPlaylistRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	return m.Records, m.ListErr
}
