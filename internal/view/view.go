// Package view holds the declarative description of what the client shows.
//
// The controller produces these values and rendering adapters (the terminal UI, the text formatter) consume them.
// Nothing in here knows how it is drawn.
package view

// DisplayState is the visual state of the playlist region.
type DisplayState int

const (
	Idle DisplayState = iota
	Loading
	Success
	Failure
)

func (s DisplayState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "error"
	default:
		return ""
	}
}

// ControlKind enumerates the interactive controls a region can carry.
type ControlKind int

const (
	PreviewControl ControlKind = iota
	LinkControl
	SaveControl
)

func (k ControlKind) String() string {
	switch k {
	case PreviewControl:
		return "preview"
	case LinkControl:
		return "link"
	case SaveControl:
		return "save"
	default:
		return ""
	}
}

// Control is an activatable element. ID is stable for a given playlist.
type Control struct {
	ID     string
	Kind   ControlKind
	Target string // preview or external URL; empty for save
}

// SongEntry is one rendered song. Image is empty when the song has none; Preview is nil when the song has no preview URL.
type SongEntry struct {
	Key     string
	Title   string
	Artist  string
	Image   string
	Preview *Control
	Link    Control
}

// PlaylistRegion is the playlist display region.
type PlaylistRegion struct {
	State   DisplayState
	Visible bool
	Mood    string
	Heading string
	Message string // loading text or error text
	Hint    string
	Entries []SongEntry
	Save    *Control
}

// Controls lists every control of the region in display order.
func (r PlaylistRegion) Controls() []Control {
	var controls []Control
	for _, e := range r.Entries {
		if e.Preview != nil {
			controls = append(controls, *e.Preview)
		}
		controls = append(controls, e.Link)
	}
	if r.Save != nil {
		controls = append(controls, *r.Save)
	}
	return controls
}

// CountControls returns how many controls of kind the region carries.
func (r PlaylistRegion) CountControls(kind ControlKind) int {
	n := 0
	for _, c := range r.Controls() {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// SavedSummary is the truncated rendering of one saved playlist.
type SavedSummary struct {
	Title    string   // "Happy Playlist"
	Created  string   // creation date
	Songs    []string // first songs as "title - artist"
	Overflow string   // "+ N more songs", empty when nothing is hidden
	URL      string
}

// SavedRegion is the saved-playlists display region.
type SavedRegion struct {
	Loaded    bool
	Summaries []SavedSummary
}

// NoticeKind distinguishes success and error notifications.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient notification (the terminal's toast).
type Notice struct {
	Kind NoticeKind
	Text string
	Seq  int
}
