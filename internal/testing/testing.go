// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/desertthunder/moodx/internal/preview"
)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// FakePlayer is a test double for [preview.Player] that records every call in order.
type FakePlayer struct {
	mu       sync.Mutex
	Events   []string         // "play <url>" and "stop <url>" in call order
	StartErr map[string]error // per-URL errors returned by Play
	done     map[string]func(error)
}

var _ preview.Player = (*FakePlayer)(nil)

func (p *FakePlayer) Play(url string, done func(error)) (preview.Stream, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, "play "+url)
	if err := p.StartErr[url]; err != nil {
		return nil, err
	}
	if p.done == nil {
		p.done = make(map[string]func(error))
	}
	p.done[url] = done
	return &fakeStream{player: p, url: url}, nil
}

func (p *FakePlayer) Close() error { return nil }

// Finish simulates the stream for url ending, naturally when err is nil.
func (p *FakePlayer) Finish(url string, err error) {
	p.mu.Lock()
	done := p.done[url]
	delete(p.done, url)
	p.mu.Unlock()
	if done != nil {
		done(err)
	}
}

// Callback returns the completion callback registered for url, or nil once the stream stopped or finished.
func (p *FakePlayer) Callback(url string) func(error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done[url]
}

// Plays counts Play calls.
func (p *FakePlayer) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.Events {
		if strings.HasPrefix(e, "play ") {
			n++
		}
	}
	return n
}

// Log returns a copy of the recorded events.
func (p *FakePlayer) Log() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.Events...)
}

type fakeStream struct {
	player *FakePlayer
	url    string
}

func (s *fakeStream) Stop() error {
	s.player.mu.Lock()
	defer s.player.mu.Unlock()
	s.player.Events = append(s.player.Events, "stop "+s.url)
	delete(s.player.done, s.url)
	return nil
}
