package preview

// Player is the platform playback primitive.
type Player interface {
	// Play starts playback of url. done is called at most once, with nil when the stream reaches its natural
	// end or with an error when playback fails after Play returned. It is never called for streams
	// stopped through [Stream.Stop], and never before Play returns.
	Play(url string, done func(error)) (Stream, error)

	// Close releases the player. Playing streams are stopped.
	Close() error
}

// Stream is a handle on one playing preview.
type Stream interface {
	Stop() error
}
