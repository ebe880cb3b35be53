package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodx/internal/controller"
	"github.com/desertthunder/moodx/internal/preview"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgResult MsgKind = iota
	MsgPreview
	MsgNoticeExpired
)

// resultMsg is the constructor for [MsgResult]
func resultMsg(r controller.Result) Msg {
	return Msg{kind: MsgResult, data: r}
}

// previewMsg is the constructor for [MsgPreview]
func previewMsg(ev preview.Event) Msg {
	return Msg{kind: MsgPreview, data: ev}
}

// noticeExpiredMsg is the constructor for [MsgNoticeExpired]
func noticeExpiredMsg(seq int) Msg {
	return Msg{kind: MsgNoticeExpired, data: seq}
}

// Forward returns a preview listener that hands events to p. Sending happens on its own goroutine since
// listeners may be called from inside Update.
func Forward(p *tea.Program) preview.Listener {
	return func(ev preview.Event) {
		go p.Send(previewMsg(ev))
	}
}
