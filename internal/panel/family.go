package panel

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/overlay"
)

// Family groups the sibling controllers that are mutually exclusive and
// share one overlay. Opening any member closes the rest synchronously.
type Family struct {
	overlay *overlay.Manager
	members []*Controller
}

// NewFamily creates a family around a shared overlay manager.
func NewFamily(ov *overlay.Manager) *Family {
	return &Family{overlay: ov}
}

// Register adds a controller. Nil or disabled controllers are accepted and
// ignored, mirroring views that do not render a given panel.
func (f *Family) Register(c *Controller) *Controller {
	if c == nil || !c.Enabled() {
		return c
	}
	c.family = f
	f.members = append(f.members, c)
	return c
}

// Controller finds a member by name, or nil.
func (f *Family) Controller(name string) *Controller {
	for _, c := range f.members {
		if c.name == name {
			return c
		}
	}
	return nil
}

// Members returns the registered controllers in registration order.
func (f *Family) Members() []*Controller { return f.members }

// AnyOpen reports whether any member is logically open.
func (f *Family) AnyOpen() bool {
	for _, c := range f.members {
		if c.IsOpen() {
			return true
		}
	}
	return false
}

// OpenController returns the member that is open, or nil.
func (f *Family) OpenController() *Controller {
	for _, c := range f.members {
		if c.IsOpen() {
			return c
		}
	}
	return nil
}

// CloseAll force-closes every member immediately.
func (f *Family) CloseAll() {
	for _, c := range f.members {
		c.CloseImmediate()
	}
}

// Reconcile re-homes every member for a new viewport mode.
func (f *Family) Reconcile(v Viewport) {
	for _, c := range f.members {
		c.Reconcile(v)
	}
}

// HandleCloseTimer routes a fired hover-close to its controller.
func (f *Family) HandleCloseTimer(msg CloseTimerMsg) tea.Cmd {
	if c := f.Controller(msg.Panel); c != nil {
		return c.HandleCloseTimer(msg)
	}
	return nil
}

// HandleClosingDone routes a closing-window end to its controller.
func (f *Family) HandleClosingDone(msg ClosingDoneMsg) {
	if c := f.Controller(msg.Panel); c != nil {
		c.HandleClosingDone(msg)
	}
}

// closeSiblings closes every member except the one about to open. Immediate,
// not animated: the invariant is that no frame ever shows two panels.
func (f *Family) closeSiblings(except *Controller) {
	for _, c := range f.members {
		if c != except {
			c.CloseImmediate()
		}
	}
}
