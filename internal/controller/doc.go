// Package controller holds the client's interaction state.
//
// [Controller] owns the current mood, the current playlist and the playlist region. Everything it does
// happens on one event loop: methods either change state synchronously or hand back a [Task] that performs
// I/O elsewhere and returns a [Result]. Results go back through [Controller.Apply], which may return a
// follow-up task (a successful save returns the saved-view refresh).
//
// # Staleness
//
// Every mood selection bumps a sequence number. A generate result carrying an older number is dropped, so
// the last selection always wins even when responses arrive out of order.
//
// # Rendering
//
// [Render] turns a playlist into a [view.PlaylistRegion] and [Wire] builds the action table for it. The
// table is rebuilt from scratch after every render.
//
// # Saved Playlists
//
// [SavedView] keeps the saved-playlists region. Fetch failures are logged and leave the previous summaries
// in place.
package controller
