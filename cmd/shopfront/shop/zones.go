package shop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shopfront/internal/pages"
	"shopfront/internal/panel"
)

// hitZone is a clickable/hoverable screen region, inclusive coordinates.
type hitZone struct {
	id string
	x1 int
	y1 int
	x2 int
	y2 int
}

func (z hitZone) contains(x, y int) bool {
	return x >= z.x1 && x <= z.x2 && y >= z.y1 && y <= z.y2
}

// Cached frame pieces. relayout rebuilds them at the end of every Update so
// the hit zones always describe the frame the user is looking at.
type frame struct {
	header     string
	filterBar  string
	panelView  string
	panelRows  int
	content    string
	contentTop int
}

// relayout recomputes the frame and every hit zone from current state.
func (m *Model) relayout() {
	m.zones = nil
	m.frame = frame{}
	if m.layout.Width <= 0 {
		return
	}

	m.buildHeader()
	m.buildFilterBar()
	m.buildPanel()
	m.buildContent()
}

// buildHeader lays out the nav links and the account/cart triggers, tracking
// x offsets so each segment gets a zone.
func (m *Model) buildHeader() {
	st := m.styles
	current := m.router.Current().ID

	var left strings.Builder
	x := 1
	left.WriteString(" ")

	first := true
	for _, d := range m.router.Table().List {
		if !d.Addressable() {
			continue
		}
		if !first {
			left.WriteString("  ")
			x += 2
		}
		first = false

		label := d.Label
		w := len([]rune(label))
		m.zones = append(m.zones, hitZone{id: "nav:" + d.ID, x1: x, y1: 0, x2: x + w - 1, y2: 0})
		if d.ID == current {
			left.WriteString(st.NavLinkActive.Render(label))
		} else if d.Parent != "" {
			left.WriteString(st.NavLink.Render(label))
		} else {
			left.WriteString(st.NavTrigger.Render(label))
		}
		x += w
	}

	account := "Account"
	if u := m.session.Current(); u != nil {
		name := u.DisplayName
		if name == "" {
			name = u.Email
		}
		account = clamp("Hi, "+name, 20)
	}
	cartLabel := fmt.Sprintf("Cart (%d)", m.cartStore.Count())

	rightPlain := account + "   " + cartLabel + " "
	rightW := len([]rune(rightPlain))
	pad := m.layout.Width - x - rightW
	if pad < 1 {
		pad = 1
	}

	ax := x + pad
	m.zones = append(m.zones, hitZone{
		id: "trigger:" + PanelAccount,
		x1: ax, y1: 0, x2: ax + len([]rune(account)) - 1, y2: 0,
	})
	cx := ax + len([]rune(account)) + 3
	m.zones = append(m.zones, hitZone{
		id: "trigger:" + PanelCart,
		x1: cx, y1: 0, x2: cx + len([]rune(cartLabel)) - 1, y2: 0,
	})

	header := left.String() + strings.Repeat(" ", pad) +
		st.NavTrigger.Render(account) + "   " + st.NavTrigger.Render(cartLabel) + " "
	m.frame.header = header
}

// buildFilterBar renders the facet triggers on the products route.
func (m *Model) buildFilterBar() {
	if m.router.Current().ID != "products" || len(m.catalog) == 0 {
		return
	}
	st := m.styles

	var bar strings.Builder
	bar.WriteString(" ")
	x := 1

	colorLabel := "Color v"
	m.zones = append(m.zones, hitZone{
		id: "trigger:" + PanelFacetColor,
		x1: x, y1: 1, x2: x + len(colorLabel) - 1, y2: 1,
	})
	bar.WriteString(st.NavTrigger.Render(colorLabel))
	x += len(colorLabel)

	bar.WriteString("   ")
	x += 3

	priceLabel := "Price v"
	m.zones = append(m.zones, hitZone{
		id: "trigger:" + PanelFacetPrice,
		x1: x, y1: 1, x2: x + len(priceLabel) - 1, y2: 1,
	})
	bar.WriteString(st.NavTrigger.Render(priceLabel))
	x += len(priceLabel)

	if m.filters.Active() {
		bar.WriteString("   ")
		x += 3
		clear := "[ Clear filters ]"
		m.zones = append(m.zones, hitZone{
			id: "filters-clear",
			x1: x, y1: 1, x2: x + len(clear) - 1, y2: 1,
		})
		bar.WriteString(st.NavLink.Render(clear))
	}

	m.frame.filterBar = bar.String()
}

// buildPanel renders the single non-closed panel, if any, and derives its
// zones: the body rect (hover), the close control, and the line-indexed
// controls inside.
func (m *Model) buildPanel() {
	var c *panel.Controller
	for _, member := range m.family.Members() {
		if member.Status() != panel.StatusClosed {
			c = member
			break
		}
	}
	if c == nil {
		return
	}

	var boxW int
	if c.Host() == panel.HostSheet {
		boxW = m.layout.SheetWidth()
	} else {
		boxW = m.layout.FlyoutWidth()
	}
	innerW := boxW - 4

	title := panelTitle(c.Name())
	titleLine := clamp(title, innerW-2)
	gap := innerW - len([]rune(titleLine)) - 1
	if gap < 1 {
		gap = 1
	}
	titleLine += strings.Repeat(" ", gap) + "x"

	body := clampLines(c.Content(), innerW)
	content := titleLine + "\n" + body

	style := m.styles.PanelFlyout
	if c.Host() == panel.HostSheet {
		style = m.styles.PanelSheet
	}
	if c.Status() == panel.StatusClosing {
		style = m.styles.PanelClosing
	}
	box := style.Width(boxW - 2).Render(content)
	boxH := lipgloss.Height(box)

	boxX, boxY := m.panelOrigin(c, boxW)

	m.frame.panelView = strings.Repeat(" ", boxX) + indentBlock(box, boxX)
	m.frame.panelRows = boxH

	// Zones only apply to a logically open panel; a closing one is inert.
	if c.Status() != panel.StatusOpen {
		return
	}

	name := c.Name()
	m.zones = append(m.zones,
		hitZone{id: "panel:" + name, x1: boxX, y1: boxY, x2: boxX + boxW - 1, y2: boxY + boxH - 1},
		hitZone{id: "panel-close:" + name, x1: boxX + 2 + innerW - 1, y1: boxY + 1, x2: boxX + 2 + innerW - 1, y2: boxY + 1},
	)

	bodyZone := func(id string, line, width int) {
		m.zones = append(m.zones, hitZone{
			id: id,
			x1: boxX + 2,
			y1: boxY + 2 + line,
			x2: boxX + 2 + width - 1,
			y2: boxY + 2 + line,
		})
	}

	switch name {
	case PanelCart:
		if line := m.cartClearLine(); line >= 0 {
			bodyZone("cart-clear", line, len(btnClearCart))
		}
	case PanelAccount:
		if m.session.Current() != nil && !m.authBusy {
			bodyZone("acct-signout", 2, len(btnSignOut))
		}
	case PanelFacetColor:
		for i, color := range pages.FacetColors(m.catalog) {
			bodyZone("facet-color:"+color, i, innerW)
		}
	case PanelFacetPrice:
		for i, band := range priceOptionBands() {
			bodyZone("facet-price:"+band, i, innerW)
		}
	}
}

// panelOrigin anchors a flyout near its trigger and a sheet at the margin.
func (m *Model) panelOrigin(c *panel.Controller, boxW int) (int, int) {
	// Panels hang below the chrome: nav bar, plus the filter bar when the
	// products route shows one.
	y := 1
	if m.frame.filterBar != "" {
		y = 2
	}
	if c.Host() == panel.HostSheet {
		return 2, y
	}

	x := 1
	if z := m.zone("trigger:" + c.Name()); z != nil {
		x = z.x1
	}
	if x+boxW > m.layout.Width-1 {
		x = m.layout.Width - 1 - boxW
	}
	if x < 0 {
		x = 0
	}
	return x, y
}

// buildContent assembles the content region and the grid zones.
func (m *Model) buildContent() {
	top := 1 // nav bar
	if m.frame.filterBar != "" {
		top++
	}
	top += m.frame.panelRows

	contentW := m.layout.Width - 4
	m.gridZones = nil

	body := m.router.Body()
	if m.router.Current().ID == "products" && !m.catalogErr && m.catalog != nil {
		grid, zones := pages.RenderGrid(contentW, m.catalog, m.selectedColors, m.filters)
		title := m.styles.PageTitle.Render("Products")
		body = title + "\n\n" + grid
		m.gridZones = zones
		// title + margin + blank line put the grid 2 rows into the body;
		// content padding shifts everything by (2, 1).
		m.gridOrigin = point{x: 2, y: top + 1 + 2}
	}

	style := m.styles.Content
	if m.overlay.Visible() {
		style = m.styles.ContentDim
	}
	m.frame.content = style.Render(body)
	m.frame.contentTop = top
}

// zone finds a built zone by id.
func (m *Model) zone(id string) *hitZone {
	for i := range m.zones {
		if m.zones[i].id == id {
			return &m.zones[i]
		}
	}
	return nil
}

// zoneAt returns the topmost zone containing the point. Panel zones are
// built after the chrome but must win hits, so scan back to front.
func (m *Model) zoneAt(x, y int) *hitZone {
	for i := len(m.zones) - 1; i >= 0; i-- {
		if m.zones[i].contains(x, y) {
			return &m.zones[i]
		}
	}
	return nil
}

// gridZoneAt maps a screen point into the product grid.
func (m *Model) gridZoneAt(x, y int) *pages.Zone {
	gx := x - m.gridOrigin.x
	gy := y - m.gridOrigin.y
	for i := range m.gridZones {
		if m.gridZones[i].Contains(gx, gy) {
			return &m.gridZones[i]
		}
	}
	return nil
}

func panelTitle(name string) string {
	switch name {
	case PanelAccount:
		return "Account"
	case PanelCart:
		return "Your Cart"
	case PanelFacetColor:
		return "Filter: Color"
	case PanelFacetPrice:
		return "Filter: Price"
	default:
		return name
	}
}

// indentBlock prefixes every line after the first with n spaces so a
// multi-line box sits at a horizontal offset.
func indentBlock(block string, n int) string {
	pad := strings.Repeat(" ", n)
	return strings.ReplaceAll(block, "\n", "\n"+pad)
}
