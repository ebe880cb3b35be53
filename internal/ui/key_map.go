package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	mood    key.Binding
	up      key.Binding
	down    key.Binding
	preview key.Binding
	open    key.Binding
	save    key.Binding
	tab     key.Binding
	refresh key.Binding
	quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		mood:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "mood")),
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		preview: key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space/p", "preview")),
		open:    key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "open")),
		save:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "saved")),
		refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.mood, k.preview, k.open, k.save, k.tab, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.mood, k.up, k.down},
		{k.preview, k.open, k.save},
		{k.tab, k.refresh, k.quit},
	}
}
