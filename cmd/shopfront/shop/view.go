package shop

import (
	"fmt"
	"strings"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/notify"
)

// View assembles the cached frame pieces. All layout decisions were made in
// relayout, so this stays a pure join.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  starting shopfront..."
	}
	if m.layout.Width < ui.MinimumTerminalWidth || m.layout.Height < ui.MinimumTerminalHeight {
		return fmt.Sprintf("\n  terminal too small (need at least %dx%d)",
			ui.MinimumTerminalWidth, ui.MinimumTerminalHeight)
	}

	var b strings.Builder
	b.WriteString(m.frame.header)
	b.WriteString("\n")
	if m.frame.filterBar != "" {
		b.WriteString(m.frame.filterBar)
		b.WriteString("\n")
	}
	if m.frame.panelView != "" {
		b.WriteString(m.frame.panelView)
		b.WriteString("\n")
	}
	b.WriteString(m.frame.content)
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

// statusBar renders session, status message, and the active toast.
func (m *Model) statusBar() string {
	st := m.styles

	who := "guest"
	if u := m.session.Current(); u != nil {
		who = u.Email
	}
	left := fmt.Sprintf("#%s | %s | %s", m.router.Current().ID, who, m.layout.Mode)

	middle := ""
	if m.status != "" {
		middle = m.status
	}

	right := ""
	if t := m.notifier.Active(); t != nil {
		style := st.Toast
		if t.Level == notify.LevelError {
			style = st.ToastError
		}
		right = style.Render(t.Message)
	}

	line := st.StatusBar.Render(left)
	if middle != "" {
		line += "  " + st.StatusError.Render(middle)
	}
	if right != "" {
		line += "  " + right
	}
	return line
}
