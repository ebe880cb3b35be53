// Package models defines the domain entities shared by the moodx client.
//
// The package contains the data received from and sent to the remote services:
//   - [Mood] : A configured emotional category with its theme color; [Moods] is the ordered registry
//   - [Song] : One track of a generated playlist, with optional cover image and preview URL
//   - [Playlist] : The current session playlist (mood, ordered songs, creation time)
//   - [SavedPlaylistRecord] : A persisted playlist as returned by the persistence service
//
// All entities are values and are treated as immutable once decoded.
// [Timestamp] accepts both RFC 3339 and the zone-less ISO 8601 timestamps the persistence service emits.
package models
