package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/moodx/internal/controller"
	"github.com/desertthunder/moodx/internal/models"
	"github.com/desertthunder/moodx/internal/preview"
	"github.com/desertthunder/moodx/internal/view"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PlaylistView ViewState = iota
	SavedView
)

// NoticeTTL is how long a notice stays on screen.
const NoticeTTL = 4 * time.Second

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	view    ViewState
	ctl     *controller.Controller
	moods   models.Moods
	width   int
	height  int
	songs   list.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap
	status  string
	notice  *view.Notice
}

// NewModel creates a new TUI model driving ctl.
func NewModel(ctx context.Context, ctl *controller.Controller, moods models.Moods) *Model {
	songs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	songs.SetFilteringEnabled(false)
	songs.SetShowHelp(false)
	songs.SetShowStatusBar(false)

	return &Model{
		ctx:     ctx,
		view:    PlaylistView,
		ctl:     ctl,
		moods:   moods,
		songs:   songs,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init loads the saved playlists.
func (m *Model) Init() tea.Cmd {
	return m.run(m.ctl.RefreshSaved(m.ctx))
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.songs.SetSize(max(msg.Width-8, 0), max(msg.Height-12, 0))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case spinner.TickMsg:
		if m.ctl.Snapshot().Playlist.State != view.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		switch msg.kind {
		case MsgResult:
			task := m.ctl.Apply(m.ctx, msg.data.(controller.Result))
			return m, tea.Batch(m.sync(), m.run(task))
		case MsgPreview:
			m.ctl.Apply(m.ctx, controller.PreviewChanged{Event: msg.data.(preview.Event)})
			return m, m.sync()
		case MsgNoticeExpired:
			if m.notice != nil && m.notice.Seq == msg.data.(int) {
				m.notice = nil
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.songs, cmd = m.songs.Update(msg)
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.mood):
		i := int(msg.Runes[0] - '1')
		if i >= len(m.moods) {
			return m, nil
		}
		task := m.ctl.SelectMood(m.ctx, m.moods[i])
		m.view = PlaylistView
		return m, tea.Batch(m.sync(), m.spinner.Tick, m.run(task))

	case key.Matches(msg, m.keys.tab):
		if m.view == PlaylistView {
			m.view = SavedView
		} else {
			m.view = PlaylistView
		}
		return m, nil

	case key.Matches(msg, m.keys.refresh):
		return m, m.run(m.ctl.RefreshSaved(m.ctx))
	}

	if m.view != PlaylistView {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.preview):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if entry.Preview == nil {
			m.status = "No preview available for this song"
			return m, nil
		}
		return m, m.activate(entry.Preview.ID)

	case key.Matches(msg, m.keys.open):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.activate(entry.Link.ID)

	case key.Matches(msg, m.keys.save):
		return m, m.activate(controller.SaveControlID)
	}

	var cmd tea.Cmd
	m.songs, cmd = m.songs.Update(msg)
	return m, cmd
}

// activate performs control id. Unknown controls (nothing loaded yet) are ignored.
func (m *Model) activate(id string) tea.Cmd {
	task, _ := m.ctl.Activate(m.ctx, id)
	return tea.Batch(m.sync(), m.run(task))
}

func (m *Model) selected() (view.SongEntry, bool) {
	item, ok := m.songs.SelectedItem().(songItem)
	if !ok {
		return view.SongEntry{}, false
	}
	return item.entry, true
}

// sync copies the controller snapshot into the list and schedules the expiry of a new notice.
func (m *Model) sync() tea.Cmd {
	snap := m.ctl.Snapshot()
	m.songs.Title = snap.Playlist.Heading
	cmd := m.songs.SetItems(songItems(snap.Playlist, snap.Playing))

	if n := snap.Notice; n != nil && (m.notice == nil || n.Seq > m.notice.Seq) {
		m.notice = n
		seq := n.Seq
		cmd = tea.Batch(cmd, tea.Tick(NoticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg(seq) }))
	}
	return cmd
}

func (m *Model) run(task controller.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	return func() tea.Msg {
		return resultMsg(task())
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	snap := m.ctl.Snapshot()

	var body string
	switch m.view {
	case SavedView:
		body = m.renderSaved(snap.Saved)
	default:
		body = m.renderPlaylist(snap.Playlist)
	}

	sections := []string{
		m.renderMoods(snap.Theme),
		frame(snap.Theme.Color, m.width).Render(body),
	}
	if line := m.renderNotice(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderMoods(theme models.Mood) string {
	parts := make([]string, len(m.moods))
	for i, mood := range m.moods {
		label := fmt.Sprintf("%d %s", i+1, mood.Label)
		if mood.Name == theme.Name {
			parts[i] = styles.On(label, lipgloss.Color(mood.Color))
		} else {
			parts[i] = styles.As(label, lipgloss.Color(mood.Color))
		}
	}
	return styles.title.Render("How are you feeling?") + "\n" + strings.Join(parts, "  ")
}

func (m *Model) renderPlaylist(region view.PlaylistRegion) string {
	switch region.State {
	case view.Loading:
		return fmt.Sprintf("%s %s", m.spinner.View(), region.Message)
	case view.Failure:
		return fmt.Sprintf("%s\n\n%s", styles.err.Render(region.Message), styles.help.Render(region.Hint))
	case view.Success:
		if len(region.Entries) == 0 {
			return fmt.Sprintf("%s\n\n%s", styles.title.Render(region.Heading), styles.warn.Render("No songs found for this mood."))
		}
		return m.songs.View()
	default:
		return styles.help.Render("Pick a mood to get started.")
	}
}

func (m *Model) renderSaved(region view.SavedRegion) string {
	title := styles.title.Render("Saved Playlists")
	if !region.Loaded {
		return title + "\n" + styles.help.Render("Loading saved playlists...")
	}
	if len(region.Summaries) == 0 {
		return title + "\n" + styles.help.Render("No saved playlists yet.")
	}

	var b strings.Builder
	b.WriteString(title)
	for _, s := range region.Summaries {
		b.WriteString("\n")
		b.WriteString(styles.ok.Render(s.Title))
		if s.Created != "" {
			b.WriteString(styles.help.Render(" " + s.Created))
		}
		for _, song := range s.Songs {
			b.WriteString("\n  " + song)
		}
		if s.Overflow != "" {
			b.WriteString("\n  " + styles.help.Render(s.Overflow))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderNotice() string {
	if m.status != "" {
		return styles.warn.Render(m.status)
	}
	if m.notice == nil {
		return ""
	}
	if m.notice.Kind == view.NoticeError {
		return styles.err.Render("✗ " + m.notice.Text)
	}
	return styles.ok.Render("✓ " + m.notice.Text)
}
