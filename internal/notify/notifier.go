// Package notify queues auto-dismissing toast messages. One toast is active
// at a time; pushes while one is showing wait their turn.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level colors the toast.
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

// Toast is one transient message.
type Toast struct {
	Message string
	Level   Level
}

// DismissMsg retires the active toast. Stale tokens are ignored.
type DismissMsg struct {
	Token int
}

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 2500 * time.Millisecond

// Notifier is the toast queue. All access happens on the UI loop.
type Notifier struct {
	queue    []Toast
	active   *Toast
	token    int
	duration time.Duration
}

// NewNotifier creates a notifier with the given display duration.
func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

// Push shows the toast now if nothing is active, otherwise enqueues it.
// Returns the dismiss timer command when a toast was activated.
func (n *Notifier) Push(message string, level Level) tea.Cmd {
	t := Toast{Message: message, Level: level}
	if n.active != nil {
		n.queue = append(n.queue, t)
		return nil
	}
	return n.activate(t)
}

// HandleDismiss retires the active toast and activates the next queued one.
func (n *Notifier) HandleDismiss(msg DismissMsg) tea.Cmd {
	if msg.Token != n.token || n.active == nil {
		return nil
	}
	n.active = nil
	if len(n.queue) == 0 {
		return nil
	}
	next := n.queue[0]
	n.queue = n.queue[1:]
	return n.activate(next)
}

// Active returns the toast currently showing, or nil.
func (n *Notifier) Active() *Toast { return n.active }

// Pending returns how many toasts are waiting behind the active one.
func (n *Notifier) Pending() int { return len(n.queue) }

func (n *Notifier) activate(t Toast) tea.Cmd {
	n.active = &t
	n.token++
	token := n.token
	return tea.Tick(n.duration, func(time.Time) tea.Msg {
		return DismissMsg{Token: token}
	})
}
