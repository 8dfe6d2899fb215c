package routes

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// FragmentChangedMsg is delivered whenever the navigation fragment changes,
// the terminal analogue of a hashchange event.
type FragmentChangedMsg struct {
	Fragment string
}

// ChangeFragment returns a command that announces a fragment change.
func ChangeFragment(fragment string) tea.Cmd {
	return func() tea.Msg {
		return FragmentChangedMsg{Fragment: fragment}
	}
}

// Router owns the current-route lifecycle: it resolves fragments against the
// table, swaps the whole content body, and re-runs the page's Init.
type Router struct {
	table   *Table
	caps    Capabilities
	current Descriptor
	body    string
	logger  *zap.Logger
}

// NewRouter creates a router over a built table. The capabilities are handed
// to each page's Init on navigation.
func NewRouter(table *Table, caps Capabilities, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{table: table, caps: caps, logger: logger}
}

// Start performs the first navigation using the given fragment so a deep
// link works on first load.
func (r *Router) Start(fragment string) tea.Cmd {
	return r.Navigate(fragment)
}

// Navigate resolves the fragment, replaces the mounted body with the route's
// rendered output, then invokes Init if the route declares one. The entire
// body is replaced before Init runs, so Init always rebinds from scratch.
func (r *Router) Navigate(fragment string) tea.Cmd {
	d := r.table.Resolve(fragment)
	r.logger.Debug("navigate",
		zap.String("fragment", fragment),
		zap.String("route", d.ID))

	r.current = d
	r.body = ""
	if d.Render != nil {
		r.body = d.Render()
	}
	if d.Init != nil {
		return d.Init(r.caps)
	}
	return nil
}

// Current returns the descriptor of the mounted route.
func (r *Router) Current() Descriptor { return r.current }

// Body returns the mounted route's rendered content.
func (r *Router) Body() string { return r.body }

// SetBody replaces the mounted content in place. Pages use this through the
// shell when async data (the catalog) arrives after Init.
func (r *Router) SetBody(body string) { r.body = body }

// Table exposes the route table for nav rendering.
func (r *Router) Table() *Table { return r.table }
