package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/desertthunder/moodx/internal/shared"
	tu "github.com/desertthunder/moodx/internal/testing"
)

func newPlaylistService(t *testing.T, handler http.HandlerFunc) *PlaylistService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc := NewPlaylistService(NewAPIService(server.URL, nil), "", "Chicago")
	svc.now = func() time.Time { return time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestPlaylistService(t *testing.T) {
	ctx := context.Background()

	t.Run("Generate", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/generate-playlist" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				var body generateRequest
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode request: %v", err)
				}
				if body.Mood != "happy" || body.City != "Chicago" {
					t.Errorf("unexpected request body %+v", body)
				}

				w.Write([]byte(`{
					"mood": "happy",
					"songs": [
						{"title": "Walking on Sunshine", "artist": "Katrina", "link": "https://open.spotify.com/track/1", "preview_url": "https://p.scdn.co/1.mp3"},
						{"title": "Happy", "artist": "Pharrell", "link": "https://open.spotify.com/track/2", "image": "https://i.scdn.co/2.jpg"}
					],
					"suggested_moods": ["energetic"]
				}`))
			})

			playlist, err := svc.Generate(ctx, "happy")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlist.Songs) != 2 {
				t.Fatalf("expected 2 songs, got %d", len(playlist.Songs))
			}
			if !playlist.Songs[0].HasPreview() || playlist.Songs[1].HasPreview() {
				t.Error("expected only the first song to have a preview")
			}
			if !playlist.Songs[1].HasImage() {
				t.Error("expected the second song to have an image")
			}
			if playlist.Timestamp.Year() != 2024 {
				t.Errorf("expected client timestamp, got %v", playlist.Timestamp)
			}
			if len(playlist.SuggestedMoods) != 1 {
				t.Errorf("expected suggested moods, got %v", playlist.SuggestedMoods)
			}
		})

		t.Run("Mood Filled In", func(t *testing.T) {
			svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"songs": []}`))
			})

			playlist, err := svc.Generate(ctx, "calm")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if playlist.Mood != "calm" || len(playlist.Songs) != 0 {
				t.Errorf("unexpected playlist %+v", playlist)
			}
		})

		t.Run("Server Error Message", func(t *testing.T) {
			svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error": "rate limited"}`))
			})

			_, err := svc.Generate(ctx, "happy")
			if !errors.Is(err, shared.ErrGeneration) {
				t.Fatalf("expected ErrGeneration, got %v", err)
			}
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
			if msg := ServerMessage(err); msg != "rate limited" {
				t.Errorf("expected server message 'rate limited', got %q", msg)
			}
		})

		t.Run("Non-JSON Error Body", func(t *testing.T) {
			svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("<html>bad gateway</html>"))
			})

			_, err := svc.Generate(ctx, "happy")
			if !errors.Is(err, shared.ErrGeneration) {
				t.Fatalf("expected ErrGeneration, got %v", err)
			}
			if msg := ServerMessage(err); msg != "" {
				t.Errorf("expected no server message, got %q", msg)
			}
		})

		t.Run("Malformed Payloads", func(t *testing.T) {
			tests := []struct {
				name string
				body string
			}{
				{"not json", "oops"},
				{"missing songs", `{"mood": "happy"}`},
				{"song without title", `{"songs": [{"artist": "a", "link": "l"}]}`},
				{"song without link", `{"songs": [{"title": "t", "artist": "a"}]}`},
				{"songs not a list", `{"songs": "none"}`},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
						w.Write([]byte(tt.body))
					})

					_, err := svc.Generate(ctx, "happy")
					if !errors.Is(err, shared.ErrGeneration) || !errors.Is(err, shared.ErrMalformedResponse) {
						t.Errorf("expected malformed generation error, got %v", err)
					}
				})
			}
		})

		t.Run("Error Field With Success Status", func(t *testing.T) {
			svc := newPlaylistService(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error": "rate limited"}`))
			})

			_, err := svc.Generate(ctx, "happy")
			if !errors.Is(err, shared.ErrGeneration) || !errors.Is(err, shared.ErrMalformedResponse) {
				t.Fatalf("expected malformed generation error, got %v", err)
			}
			if msg := ServerMessage(err); msg != "rate limited" {
				t.Errorf("expected server message 'rate limited', got %q", msg)
			}
		})

		t.Run("Transport Failure", func(t *testing.T) {
			client := &http.Client{Transport: tu.NewMockRoundTripper(nil, errors.New("connection refused"))}
			svc := NewPlaylistService(NewAPIService("http://example.com", client), "", "")

			_, err := svc.Generate(ctx, "happy")
			if !errors.Is(err, shared.ErrGeneration) {
				t.Errorf("expected ErrGeneration, got %v", err)
			}
			var se *ServiceError
			if !errors.As(err, &se) || se.Status != 0 {
				t.Errorf("expected transport ServiceError, got %v", err)
			}
		})
	})
}
