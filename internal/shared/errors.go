package shared

import "fmt"

var (
	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API and service errors
	ErrAPIRequest        = fmt.Errorf("API request failed")
	ErrMalformedResponse = fmt.Errorf("malformed response")
	ErrGeneration        = fmt.Errorf("playlist generation failed")
	ErrSaveFailed        = fmt.Errorf("saving playlist failed")
	ErrSavedFetch        = fmt.Errorf("fetching saved playlists failed")

	// Session errors
	ErrNoPlaylist     = fmt.Errorf("no current playlist")
	ErrUnknownControl = fmt.Errorf("unknown control")
	ErrUnknownMood    = fmt.Errorf("unknown mood")

	// Playback errors
	ErrPlayback         = fmt.Errorf("playback failed")
	ErrNoPreview        = fmt.Errorf("song has no preview")
	ErrPlayerClosed     = fmt.Errorf("player closed")
	ErrPlaybackDisabled = fmt.Errorf("audio previews are disabled")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
