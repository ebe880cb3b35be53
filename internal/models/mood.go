package models

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/desertthunder/moodx/internal/shared"
)

// resolveThreshold is the minimum Jaro-Winkler similarity for a fuzzy mood match.
const resolveThreshold = 0.8

// Mood is a selectable emotional category and the color the interface takes on when it is selected.
type Mood struct {
	Name  string // request value, lowercase
	Label string // display name
	Color string // hex theme color
}

// NewMood normalizes name and derives a label when none is given.
func NewMood(name, label, color string) Mood {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.TrimSpace(label) == "" {
		label = shared.Capitalize(name)
	}
	return Mood{Name: name, Label: label, Color: color}
}

func (m Mood) String() string { return m.Name }

// Moods is the ordered set of configured moods.
type Moods []Mood

// Lookup finds a mood by exact (case-insensitive) name.
func (ms Moods) Lookup(name string) (Mood, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, m := range ms {
		if m.Name == name {
			return m, true
		}
	}
	return Mood{}, false
}

// Resolve finds a mood by name, falling back to the most similar configured name.
func (ms Moods) Resolve(input string) (Mood, error) {
	if m, ok := ms.Lookup(input); ok {
		return m, nil
	}

	query := strings.ToLower(strings.TrimSpace(input))
	if query == "" {
		return Mood{}, fmt.Errorf("%w: empty mood", shared.ErrUnknownMood)
	}

	var (
		best      Mood
		bestScore float64
	)
	metric := metrics.NewJaroWinkler()
	for _, m := range ms {
		score := strutil.Similarity(query, m.Name, metric)
		if score > bestScore {
			best, bestScore = m, score
		}
	}

	if bestScore < resolveThreshold {
		return Mood{}, fmt.Errorf("%w: %q (choose one of %s)", shared.ErrUnknownMood, input, strings.Join(ms.Names(), ", "))
	}
	return best, nil
}

// Names returns the mood names in order.
func (ms Moods) Names() []string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.Name
	}
	return names
}

// MoodsFromConfig builds the registry from the [[moods]] configuration entries.
func MoodsFromConfig(entries []shared.MoodConfig) Moods {
	ms := make(Moods, 0, len(entries))
	for _, e := range entries {
		ms = append(ms, NewMood(e.Name, e.Label, e.Color))
	}
	return ms
}
