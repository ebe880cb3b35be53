// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI is a rendering adapter over [controller.Controller]:
//  1. [PlaylistView] : Pick a mood, watch it load, browse and preview the songs
//  2. [SavedView] : Summaries of the saved playlists
//
// Controller tasks run as [tea.Cmd]s and their results come back as [Msg] values, so the controller is only
// touched from Update. Preview indicator changes arrive from the player's goroutines through [Forward].
//
// Keys: digits pick a mood, space/p toggles a preview, o/enter opens the song link, s saves, tab switches
// views, r reloads saved playlists and q quits. Help is rendered with charmbracelet/bubbles/help.
package ui
