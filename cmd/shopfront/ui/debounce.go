package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debounce coalesces rapid events like window resizes inside a Bubble Tea
// update loop. Each Trigger supersedes any pending one: the returned command
// delivers a message carrying a token, and only the latest token is live, so
// a burst of events settles into a single accepted message. All methods must
// be called from the update loop.
type Debounce struct {
	token    int
	duration time.Duration
}

// NewDebounce creates a debouncer with the given settle duration.
func NewDebounce(duration time.Duration) *Debounce {
	return &Debounce{duration: duration}
}

// Trigger schedules the message built by mk after the settle duration,
// superseding any pending trigger.
func (d *Debounce) Trigger(mk func(token int) tea.Msg) tea.Cmd {
	d.token++
	token := d.token
	return tea.Tick(d.duration, func(time.Time) tea.Msg {
		return mk(token)
	})
}

// Stale reports whether a delivered token was superseded and must be ignored.
func (d *Debounce) Stale(token int) bool {
	return token != d.token
}

// Cancel invalidates any pending trigger.
func (d *Debounce) Cancel() {
	d.token++
}

// DefaultResizeDuration is the recommended debounce duration for resize events.
const DefaultResizeDuration = 150 * time.Millisecond
