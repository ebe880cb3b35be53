// Package preview owns the single audio-preview session of the client.
//
// [Controller] guarantees that at most one preview is audible at a time: activating a control stops whatever
// is playing first, activating the playing control again stops it, and a stream that ends (naturally or
// with an error) releases the session and clears its playing indicator.
//
// Playback itself is delegated to a [Player]. [MPV] drives an mpv process over its JSON IPC socket;
// tests use a fake.
//
// Indicator changes are reported to a [Listener] in the order they happen, always outside the controller's
// lock, so a listener may call back into the controller.
package preview
