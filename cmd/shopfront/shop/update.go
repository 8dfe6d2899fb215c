package shop

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/cart"
	"shopfront/internal/catalog"
	"shopfront/internal/notify"
	"shopfront/internal/pages"
	"shopfront/internal/panel"
	"shopfront/internal/routes"
)

// Update is the single writer for all shell state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, m.handleResize(msg))

	case resizeSettledMsg:
		if !m.resize.Stale(msg.token) {
			m.applySize(m.pendingSize.x, m.pendingSize.y)
		}

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case tea.KeyMsg:
		model, cmd := m.handleKey(msg)
		if model != nil {
			return model, cmd
		}
		cmds = append(cmds, cmd)

	case routes.FragmentChangedMsg:
		cmds = append(cmds, m.navigate(msg.Fragment))

	case panel.CloseTimerMsg:
		cmds = append(cmds, m.family.HandleCloseTimer(msg))

	case panel.ClosingDoneMsg:
		m.family.HandleClosingDone(msg)

	case notify.DismissMsg:
		cmds = append(cmds, m.notifier.HandleDismiss(msg))

	case pages.CatalogLoadedMsg:
		cmds = append(cmds, m.handleCatalog(msg))

	case sessionChangedMsg:
		cmds = append(cmds, m.handleSessionChange(msg))
		cmds = append(cmds, m.waitForSession())

	case cartChangedMsg:
		// The store already notified; rebuilding the frame below is the
		// re-render. Just re-arm the bridge.
		cmds = append(cmds, m.waitForCart())

	case authResultMsg:
		cmds = append(cmds, m.handleAuthResult(msg))

	case spinner.TickMsg:
		if m.authBusy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, m.spinner.Tick)
		}
	}

	cmds = m.drainPending(cmds)
	m.relayout()
	return m, tea.Batch(cmds...)
}

// handleResize coalesces resize bursts; the first size applies immediately
// so the UI is usable before the debounce settles.
func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	if msg.Width <= 0 || msg.Height <= 0 {
		return nil
	}
	m.pendingSize = point{x: msg.Width, y: msg.Height}
	if !m.ready {
		m.ready = true
		m.applySize(msg.Width, msg.Height)
		return nil
	}
	return m.resize.Trigger(func(token int) tea.Msg {
		return resizeSettledMsg{token: token}
	})
}

// applySize installs a new layout and reconciles every panel with it. A
// crossing of the breakpoint re-homes the panels and may close them.
func (m *Model) applySize(w, h int) {
	prev := m.layout
	m.layout = ui.NewLayoutWith(w, h, m.cfg.UI.MobileBreakpoint)
	if prev.Mode != m.layout.Mode {
		m.logger.Debug("viewport mode changed",
			zap.String("mode", m.layout.Mode.String()))
		m.hoverCtrl = nil
	}
	m.family.Reconcile(m.viewport())
}

// navigate performs a full content replacement for a fragment change.
// Open panels do not survive navigation: the content under them is gone.
func (m *Model) navigate(fragment string) tea.Cmd {
	m.fragment = routes.NormalizeFragment(fragment)
	m.family.CloseAll()
	m.overlay.ForceClear()
	m.hoverCtrl = nil
	return m.router.Navigate(fragment)
}

// handleCatalog lands the products fetch: either the grid data or the
// degraded inline placeholder.
func (m *Model) handleCatalog(msg pages.CatalogLoadedMsg) tea.Cmd {
	if m.router.Current().ID != "products" {
		return nil // navigated away before the fetch landed
	}
	if msg.Err != nil {
		m.catalog = nil
		m.catalogErr = true
		m.router.SetBody(pages.CatalogErrorBody())
		return m.notifier.Push("Could not load the catalog.", notify.LevelError)
	}
	m.catalogErr = false
	m.catalog = msg.Products
	m.selectedColors = make(map[int]string)
	return nil
}

// handleSessionChange applies a provider notification. For a sign-out the
// cart was already cleared synchronously inside the subscription callback;
// reaching this handler is the re-render that reflects the empty state.
func (m *Model) handleSessionChange(sessionChangedMsg) tea.Cmd {
	m.status = ""
	return nil
}

// handleAuthResult re-enables the submit control exactly once and surfaces
// the outcome.
func (m *Model) handleAuthResult(msg authResultMsg) tea.Cmd {
	m.authBusy = false

	if msg.err != nil {
		// Provider message verbatim; only the password is cleared so the
		// user can correct it without retyping the email.
		m.form.status = msg.err.Error()
		m.form.clearPassword()
		return m.notifier.Push(msg.err.Error(), notify.LevelError)
	}

	switch msg.op {
	case opSignOut:
		m.status = ""
		return m.notifier.Push("Signed out.", notify.LevelInfo)
	default:
		m.form.reset()
		cmd := m.accountPanel.Close()
		who := ""
		if msg.user != nil {
			who = " " + msg.user.Email
		}
		return tea.Batch(cmd, m.notifier.Push("Welcome"+who+"!", notify.LevelSuccess))
	}
}

// handleKey routes keyboard input. Returns a non-nil model to short-circuit.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case tea.KeyEsc:
		if open := m.family.OpenController(); open != nil {
			return nil, open.Close()
		}
		return nil, nil
	}

	// The account form captures typing while its panel is open and shows
	// the sign-in fields.
	if m.accountPanel.IsOpen() && m.session.Current() == nil {
		return nil, m.handleFormKey(msg)
	}
	if m.accountPanel.IsOpen() && m.session.Current() != nil {
		if msg.Type == tea.KeyEnter {
			return nil, m.signOut()
		}
		return nil, nil
	}

	switch msg.String() {
	case "a":
		return nil, m.accountPanel.ToggleClick()
	case "c":
		return nil, m.cartPanel.ToggleClick()
	case "1", "2", "3", "4", "5":
		list := m.addressableRoutes()
		idx := int(msg.String()[0] - '1')
		if idx < len(list) {
			return nil, routes.ChangeFragment(list[idx])
		}
	}
	return nil, nil
}

// handleFormKey drives the account form.
func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyTab:
		return m.form.focusField(m.form.focused + 1)
	case tea.KeyShiftTab:
		return m.form.focusField(m.form.focused - 1)
	case tea.KeyEnter:
		return m.submitAuth()
	case tea.KeyCtrlT:
		return m.form.toggleMode()
	}
	if m.authBusy {
		return nil // control disabled for the duration of the round-trip
	}
	return m.form.update(msg)
}

// handleMouse performs hover tracking and click dispatch.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionMotion:
		return m.handleHover(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return m.handleClick(msg.X, msg.Y)
		}
	}
	return nil
}

// handleHover opens/keeps panels under the pointer on desktop. Moving off a
// trigger or panel schedules the debounced close; moving back cancels it.
func (m *Model) handleHover(x, y int) tea.Cmd {
	if m.layout.IsMobile() {
		return nil
	}

	target := m.hoverTarget(x, y)
	if target == m.hoverCtrl {
		return nil
	}

	var cmds []tea.Cmd
	if m.hoverCtrl != nil {
		cmds = append(cmds, m.hoverCtrl.HoverLeave())
	}
	if target != nil {
		cmds = append(cmds, target.HoverEnter())
	}
	m.hoverCtrl = target
	return tea.Batch(cmds...)
}

// hoverTarget maps a point to the panel controller it belongs to: its
// trigger or its open panel body.
func (m *Model) hoverTarget(x, y int) *panel.Controller {
	z := m.zoneAt(x, y)
	if z == nil {
		return nil
	}
	switch {
	case strings.HasPrefix(z.id, "trigger:"):
		return m.family.Controller(strings.TrimPrefix(z.id, "trigger:"))
	case strings.HasPrefix(z.id, "panel-close:"):
		return m.family.Controller(strings.TrimPrefix(z.id, "panel-close:"))
	case strings.HasPrefix(z.id, "panel:"):
		return m.family.Controller(strings.TrimPrefix(z.id, "panel:"))
	default:
		return nil
	}
}

// handleClick dispatches a left click through the zone layers: panel
// controls, chrome, grid, then outside-click dismissal.
func (m *Model) handleClick(x, y int) tea.Cmd {
	if z := m.zoneAt(x, y); z != nil {
		return m.clickZone(z)
	}
	if gz := m.gridZoneAt(x, y); gz != nil {
		return m.clickGrid(gz)
	}
	// Outside click: dismiss whatever is open (overlay click on mobile).
	if open := m.family.OpenController(); open != nil {
		return open.Close()
	}
	return nil
}

func (m *Model) clickZone(z *hitZone) tea.Cmd {
	id := z.id
	switch {
	case strings.HasPrefix(id, "nav:"):
		return routes.ChangeFragment(strings.TrimPrefix(id, "nav:"))

	case strings.HasPrefix(id, "trigger:"):
		c := m.family.Controller(strings.TrimPrefix(id, "trigger:"))
		if c == nil {
			return nil
		}
		return c.ToggleClick()

	case strings.HasPrefix(id, "panel-close:"):
		c := m.family.Controller(strings.TrimPrefix(id, "panel-close:"))
		if c == nil {
			return nil
		}
		return c.Close()

	case id == "cart-clear":
		m.cartStore.Clear()
		return m.notifier.Push("Cart cleared.", notify.LevelInfo)

	case id == "acct-signout":
		return m.signOut()

	case id == "filters-clear":
		m.filters = pages.Filters{}
		return nil

	case strings.HasPrefix(id, "facet-color:"):
		color := strings.TrimPrefix(id, "facet-color:")
		if m.filters.Colors == nil {
			m.filters.Colors = make(map[string]bool)
		}
		if m.filters.Colors[color] {
			delete(m.filters.Colors, color)
		} else {
			m.filters.Colors[color] = true
		}
		return nil

	case strings.HasPrefix(id, "facet-price:"):
		m.filters.PriceBand = strings.TrimPrefix(id, "facet-price:")
		return nil

	case strings.HasPrefix(id, "panel:"):
		return nil // clicks inside a panel that miss a control do nothing
	}
	return nil
}

func (m *Model) clickGrid(z *pages.Zone) tea.Cmd {
	switch z.Kind {
	case pages.ZoneColor:
		m.selectedColors[z.Index] = z.Color
		return nil
	case pages.ZoneAdd:
		color := m.selectedColors[z.Index]
		if color == "" {
			color = z.Color
		}
		m.addToCart(z.Index, color)
		return nil
	}
	return nil
}

// addToCart resolves a catalog index and applies the cart policy. Shared by
// grid clicks and the page capability.
func (m *Model) addToCart(index int, color string) {
	var p *catalog.Product
	if index >= 0 && index < len(m.catalog) {
		p = &m.catalog[index]
		if color == "" {
			color = p.DefaultColor()
		}
	}

	err := m.cartStore.Add(p, color)
	switch {
	case err == nil:
		name := p.Name
		m.status = ""
		m.queue(m.notifier.Push("Added "+name+" to cart.", notify.LevelSuccess))
		if m.cfg.Panels.AutoOpenCartOnAdd {
			m.queue(m.cartPanel.OpenProgrammatic(false))
		}
	case errors.Is(err, cart.ErrSignInRequired):
		// Soft prompt: surface the account panel without the modal overlay.
		m.status = err.Error()
		m.queue(m.notifier.Push(err.Error(), notify.LevelError))
		m.queue(m.accountPanel.OpenProgrammatic(true))
	case errors.Is(err, cart.ErrNotFound):
		m.status = err.Error()
		m.queue(m.notifier.Push(err.Error(), notify.LevelError))
	}
}

// addressableRoutes lists route ids in nav order for the number shortcuts.
func (m *Model) addressableRoutes() []string {
	var ids []string
	for _, d := range m.router.Table().List {
		if d.Addressable() {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
