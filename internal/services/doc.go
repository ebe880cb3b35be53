// Package services implements the HTTP clients for the remote playlist services.
//
// # Raw API Client
//
// [APIService] performs JSON requests against the service root. Every request carries an X-Request-ID
// and passes through an optional [rate.Limiter] so a user hammering mood keys cannot flood the service.
//
// # Generation
//
// [PlaylistService] implements [Generator] on POST generate-playlist. A 2xx response must decode into a
// well-formed [models.Playlist]; anything else becomes a [*ServiceError] wrapping [shared.ErrGeneration],
// with the service's own error text in [ServiceError.Message] when it sent one.
//
// # Persistence
//
// [PersistenceGateway] implements [Store] on POST save-playlist and GET saved-playlists. It only reports
// outcomes: it never retries, and it never triggers a refresh of the saved view itself.
//
// # Error Handling
//
// Services use typed errors from the shared package:
//   - [shared.ErrGeneration] : generate request failed or returned a malformed playlist
//   - [shared.ErrSaveFailed] : save rejected or transport failure
//   - [shared.ErrSavedFetch] : saved-playlists fetch failed
//   - [shared.ErrMalformedResponse] : body could not be decoded
//
// [ServerMessage] extracts the service-supplied message from any of them.
package services
