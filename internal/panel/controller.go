// Package panel implements the hoverable/clickable trigger + panel state
// machine shared by the account, cart, and facet panels. A controller owns
// its own state; timers are modeled as superseding token ticks so a stale
// timer can never fire against newer state.
package panel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Status is the controller's logical state. StatusClosing exists only for
// the exit-transition window and counts as closed for every functional
// purpose.
type Status int

const (
	StatusClosed Status = iota
	StatusOpen
	StatusClosing
)

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusClosing:
		return "closing"
	default:
		return "closed"
	}
}

// Host is where the panel is mounted: nested under its trigger as a desktop
// flyout, or re-parented to the shared full-page container as a mobile sheet.
type Host int

const (
	HostInline Host = iota
	HostSheet
)

// Viewport is the behavioral mode derived from the layout breakpoint.
type Viewport int

const (
	ViewportDesktop Viewport = iota
	ViewportMobile
)

// Cause records what opened the panel. A hover-opened panel is not pinned:
// it closes when a resize crosses into mobile.
type Cause int

const (
	CauseNone Cause = iota
	CauseHover
	CauseClick
	CauseProgrammatic
)

// CloseTimerMsg fires a scheduled hover-close. Stale tokens are ignored.
type CloseTimerMsg struct {
	Panel string
	Token int
}

// ClosingDoneMsg ends the cosmetic closing window. Stale tokens are ignored.
type ClosingDoneMsg struct {
	Panel string
	Token int
}

const (
	// DefaultHoverCloseDelay is the debounce between hover-leave and close,
	// long enough for the pointer to transit the trigger/panel gap.
	DefaultHoverCloseDelay = 200 * time.Millisecond
	// DefaultClosingDelay is the exit-transition window.
	DefaultClosingDelay = 200 * time.Millisecond
)

// Controller is the per-panel state machine instance.
type Controller struct {
	name    string
	content func() string

	status      Status
	host        Host
	cause       Cause
	viewport    Viewport
	overlayHeld bool

	closeToken   int
	closingToken int

	hoverCloseDelay time.Duration
	closingDelay    time.Duration

	family *Family
}

// Option configures a controller.
type Option func(*Controller)

// WithHoverCloseDelay overrides the hover-leave debounce.
func WithHoverCloseDelay(d time.Duration) Option {
	return func(c *Controller) { c.hoverCloseDelay = d }
}

// WithClosingDelay overrides the cosmetic closing window.
func WithClosingDelay(d time.Duration) Option {
	return func(c *Controller) { c.closingDelay = d }
}

// New creates a controller. A controller with no content callback has no
// panel to show; every event on it is a silent no-op, mirroring a view that
// simply does not render that panel.
func New(name string, content func() string, opts ...Option) *Controller {
	c := &Controller{
		name:            name,
		content:         content,
		hoverCloseDelay: DefaultHoverCloseDelay,
		closingDelay:    DefaultClosingDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the controller's panel name.
func (c *Controller) Name() string { return c.name }

// Enabled reports whether the controller has anchors to act on.
func (c *Controller) Enabled() bool { return c != nil && c.content != nil }

// IsOpen reports whether the panel is logically open. Closing counts as
// closed.
func (c *Controller) IsOpen() bool { return c != nil && c.status == StatusOpen }

// Status returns the current state, including the cosmetic closing window.
func (c *Controller) Status() Status {
	if c == nil {
		return StatusClosed
	}
	return c.status
}

// Host returns where the panel is currently mounted.
func (c *Controller) Host() Host {
	if c == nil {
		return HostInline
	}
	return c.host
}

// Pinned reports whether the panel was opened by an explicit user action.
func (c *Controller) Pinned() bool {
	return c.IsOpen() && c.cause != CauseHover
}

// Content renders the panel body, or "" when disabled.
func (c *Controller) Content() string {
	if !c.Enabled() {
		return ""
	}
	return c.content()
}

// HoverEnter handles the pointer entering the trigger or the panel itself.
// Desktop only: it opens a closed panel and cancels a pending hover-close,
// which is what lets the pointer cross the gap between trigger and panel.
func (c *Controller) HoverEnter() tea.Cmd {
	if !c.Enabled() || c.viewport != ViewportDesktop {
		return nil
	}
	c.closeToken++ // cancel any pending close
	if c.status == StatusOpen {
		return nil
	}
	return c.open(CauseHover, false)
}

// HoverLeave schedules a close after the debounce delay. Desktop only. A new
// schedule always supersedes the previous one.
func (c *Controller) HoverLeave() tea.Cmd {
	if !c.Enabled() || c.viewport != ViewportDesktop || c.status != StatusOpen {
		return nil
	}
	c.closeToken++
	token := c.closeToken
	name := c.name
	return tea.Tick(c.hoverCloseDelay, func(time.Time) tea.Msg {
		return CloseTimerMsg{Panel: name, Token: token}
	})
}

// ToggleClick handles a trigger click: open when closed, close when open.
func (c *Controller) ToggleClick() tea.Cmd {
	if !c.Enabled() {
		return nil
	}
	if c.status == StatusOpen {
		return c.Close()
	}
	return c.open(CauseClick, false)
}

// OpenProgrammatic opens the panel without user interaction, e.g. the
// "please log in" prompt raised by the cart. A soft open skips the overlay
// side effect.
func (c *Controller) OpenProgrammatic(soft bool) tea.Cmd {
	if !c.Enabled() || c.status == StatusOpen {
		return nil
	}
	return c.open(CauseProgrammatic, soft)
}

// Close begins an orderly close: the panel enters the cosmetic closing
// window and the overlay hold is released immediately.
func (c *Controller) Close() tea.Cmd {
	if !c.Enabled() || c.status != StatusOpen {
		return nil
	}
	c.status = StatusClosing
	c.cause = CauseNone
	c.closeToken++
	c.releaseOverlay()

	c.closingToken++
	token := c.closingToken
	name := c.name
	return tea.Tick(c.closingDelay, func(time.Time) tea.Msg {
		return ClosingDoneMsg{Panel: name, Token: token}
	})
}

// CloseImmediate skips the cosmetic window. Used for sibling mutual
// exclusion and resize reconciliation, where two panels must never be
// visible in the same frame.
func (c *Controller) CloseImmediate() {
	if !c.Enabled() || c.status == StatusClosed {
		return
	}
	c.status = StatusClosed
	c.cause = CauseNone
	c.closeToken++
	c.closingToken++
	c.releaseOverlay()
}

// HandleCloseTimer applies a fired hover-close. Timers superseded by a
// re-enter or any later transition carry a stale token and are ignored.
func (c *Controller) HandleCloseTimer(msg CloseTimerMsg) tea.Cmd {
	if !c.Enabled() || msg.Panel != c.name || msg.Token != c.closeToken {
		return nil
	}
	return c.Close()
}

// HandleClosingDone ends the cosmetic closing window.
func (c *Controller) HandleClosingDone(msg ClosingDoneMsg) {
	if !c.Enabled() || msg.Panel != c.name || msg.Token != c.closingToken {
		return
	}
	if c.status == StatusClosing {
		c.status = StatusClosed
	}
}

// Reconcile re-homes the panel for a new viewport mode. Crossing from
// desktop to mobile closes a panel that nothing pins open, since the mobile
// layout cannot keep a hover-opened panel alive without explicit action.
// The overlay hold is recomputed for the new mode.
func (c *Controller) Reconcile(v Viewport) {
	if !c.Enabled() {
		return
	}
	prev := c.viewport
	c.viewport = v

	if v == ViewportMobile {
		c.host = HostSheet
	} else {
		c.host = HostInline
	}

	if prev == v {
		return
	}

	if c.status == StatusOpen {
		if v == ViewportMobile && c.cause == CauseHover {
			c.CloseImmediate()
			return
		}
		// Overlay belongs to mobile sheets only.
		if v == ViewportMobile {
			c.acquireOverlay()
		} else {
			c.releaseOverlay()
		}
	}
}

// Viewport returns the mode the controller last reconciled to.
func (c *Controller) Viewport() Viewport {
	if c == nil {
		return ViewportDesktop
	}
	return c.viewport
}

// open applies the open transition. Siblings are closed synchronously first,
// so at most one panel in the family is ever visually open.
func (c *Controller) open(cause Cause, soft bool) tea.Cmd {
	if c.family != nil {
		c.family.closeSiblings(c)
	}
	c.closeToken++
	c.status = StatusOpen
	c.cause = cause
	if !soft && c.viewport == ViewportMobile {
		c.acquireOverlay()
	}
	return nil
}

func (c *Controller) acquireOverlay() {
	if c.family == nil || c.family.overlay == nil || c.overlayHeld {
		return
	}
	c.family.overlay.Acquire(c.name)
	c.overlayHeld = true
}

func (c *Controller) releaseOverlay() {
	if !c.overlayHeld {
		return
	}
	if c.family != nil && c.family.overlay != nil {
		c.family.overlay.Release(c.name)
	}
	c.overlayHeld = false
}
