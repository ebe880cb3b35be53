package preview

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/DexterLB/mpvipc"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/moodx/internal/shared"
	"github.com/pkg/errors"
)

// MPVOpts configures the mpv player.
type MPVOpts struct {
	Path      string // mpv binary, "mpv" when empty
	SocketDir string // directory for the IPC socket, a temp dir when empty
	Volume    int
	Logger    *log.Logger
}

// MPV plays previews through a single idle mpv process, started on first use.
type MPV struct {
	mu      sync.Mutex
	opts    MPVOpts
	logger  *log.Logger
	conn    *mpvipc.Connection
	cmd     *exec.Cmd
	sock    string
	events  chan struct{} // closing it detaches the event listener
	current *mpvStream
	closed  bool
}

var _ Player = (*MPV)(nil)

// NewMPV creates an mpv-backed player. No process is started until the first Play.
func NewMPV(opts MPVOpts) *MPV {
	if opts.Path == "" {
		opts.Path = "mpv"
	}
	if opts.SocketDir == "" {
		opts.SocketDir = filepath.Join(os.TempDir(), "moodx")
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &MPV{opts: opts, logger: shared.WithLogger(opts.Logger, "component", "mpv")}
}

// SetLogger replaces the logger.
func (p *MPV) SetLogger(l *log.Logger) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logger = shared.WithLogger(l, "component", "mpv")
}

type mpvStream struct {
	player  *MPV
	url     string
	done    func(error)
	started bool
	once    sync.Once
}

func (s *mpvStream) finish(err error) {
	s.once.Do(func() { s.done(err) })
}

// Stop stops the stream if it is still the one playing.
func (s *mpvStream) Stop() error {
	p := s.player
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != s || p.conn == nil {
		return nil
	}
	p.current = nil

	_, err := p.conn.Call("stop")
	return errors.Wrap(err, "failed to stop preview")
}

// Play replaces whatever mpv is playing with url and unpauses.
func (p *MPV) Play(url string, done func(error)) (Stream, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, shared.ErrPlayerClosed
	}
	if p.conn == nil {
		if err := p.startLocked(); err != nil {
			return nil, err
		}
	}

	s := &mpvStream{player: p, url: url, done: done}
	p.current = s

	if _, err := p.conn.Call("loadfile", url, "replace"); err != nil {
		p.current = nil
		return nil, errors.Wrapf(err, "failed to load %q", url)
	}
	if err := p.conn.Set("pause", false); err != nil {
		p.current = nil
		return nil, errors.Wrap(err, "failed to unpause")
	}

	return s, nil
}

// startLocked spawns mpv and connects to its IPC socket.
func (p *MPV) startLocked() error {
	sockPath := filepath.Join(p.opts.SocketDir, "mpv.sock")

	if err := os.MkdirAll(filepath.Dir(sockPath), os.ModePerm); err != nil {
		return errors.Wrap(err, "failed to make socket directory")
	}
	if err := os.RemoveAll(sockPath); err != nil {
		return errors.Wrap(err, "failed to clean up socket")
	}

	args := []string{
		"--idle",
		"--quiet",
		"--no-video",
		"--no-terminal",
		"--keep-open=no",
		"--input-ipc-server=" + sockPath,
	}

	cmd := exec.Command(p.opts.Path, args...)
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "failed to start mpv")
	}

	conn := mpvipc.NewConnection(sockPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	for {
		if err = conn.Open(); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return errors.Wrap(err, "failed to open connection")
		case <-time.After(20 * time.Millisecond):
		}
	}

	for _, event := range []string{"start-file", "end-file"} {
		if _, err := conn.Call("enable_event", event); err != nil {
			conn.Close()
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
			return errors.Wrapf(err, "failed to enable event %q", event)
		}
	}

	if err := conn.Set("volume", p.opts.Volume); err != nil {
		p.logger.Warn("failed to set volume", "volume", p.opts.Volume, "error", err)
	}

	events, stop := conn.NewEventListener()
	go func() {
		for event := range events {
			p.handleEvent(event)
		}
	}()

	p.conn = conn
	p.events = stop
	p.cmd = cmd
	p.sock = sockPath

	p.logger.Debug("mpv started", "socket", sockPath, "pid", cmd.Process.Pid)
	return nil
}

// handleEvent maps mpv file events onto the current stream. end-file events with reason "stop" come from
// our own stop or replace calls and are not reported. An eof only counts once the current file started,
// so a late eof of the replaced file is ignored.
func (p *MPV) handleEvent(event *mpvipc.Event) {
	switch event.Name {
	case "start-file":
		p.mu.Lock()
		if cur := p.current; cur != nil && !cur.started {
			cur.started = true
		}
		p.mu.Unlock()

	case "end-file":
		p.mu.Lock()
		cur := p.current
		switch {
		case cur == nil:
			p.mu.Unlock()
		case event.Reason == "eof" && cur.started:
			p.current = nil
			p.mu.Unlock()
			cur.finish(nil)
		case event.Reason == "error":
			p.current = nil
			p.mu.Unlock()
			cur.finish(errors.Errorf("mpv could not play %s", cur.url))
		default:
			p.mu.Unlock()
		}
	}
}

// Close stops mpv. It does nothing if it's called more than once. A closed player cannot be reused.
func (p *MPV) Close() error {
	p.mu.Lock()
	stop, err := p.shutdownLocked()
	p.mu.Unlock()

	// The listener goroutine may be waiting on p.mu, so it is detached only after unlocking.
	if stop != nil {
		close(stop)
	}
	return err
}

func (p *MPV) shutdownLocked() (chan struct{}, error) {
	if p.closed {
		return nil, nil
	}
	p.closed = true
	p.current = nil

	if p.conn == nil {
		return nil, nil
	}
	stop := p.events
	p.events = nil

	p.conn.Close()

	if err := p.cmd.Process.Signal(os.Interrupt); err != nil {
		p.logger.Warn("failed to interrupt mpv, killing", "error", err)
		if err := p.cmd.Process.Kill(); err != nil {
			return stop, errors.Wrap(err, "failed to kill mpv")
		}
	}
	_ = p.cmd.Wait()

	if err := os.Remove(p.sock); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to clean up socket", "error", err)
	}
	return stop, nil
}
