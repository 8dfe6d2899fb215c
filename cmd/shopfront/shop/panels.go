package shop

import (
	"fmt"
	"strings"

	"shopfront/internal/pages"
	"shopfront/internal/panel"
)

// Button markers rendered inside panel bodies. Zones are derived from the
// body line structure, so these stay single-line plain text.
const (
	btnSignOut   = "[ Sign out ]"
	btnClearCart = "[ Clear cart ]"
)

// panelInnerWidth is the text width inside a panel box (border + padding).
func (m *Model) panelInnerWidth(c *panel.Controller) int {
	var w int
	if c.Host() == panel.HostSheet {
		w = m.layout.SheetWidth()
	} else {
		w = m.layout.FlyoutWidth()
	}
	w -= 4
	if w < 10 {
		w = 10
	}
	return w
}

// clamp hard-truncates a body line so lipgloss never wraps it, which would
// break the line-indexed hit zones.
func clamp(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 3 {
		return string(r[:w])
	}
	return string(r[:w-3]) + "..."
}

func clampLines(body string, w int) string {
	lines := strings.Split(body, "\n")
	for i := range lines {
		lines[i] = clamp(lines[i], w)
	}
	return strings.Join(lines, "\n")
}

// accountPanelBody renders the sign-in form, or the signed-in summary.
func (m *Model) accountPanelBody() string {
	w := m.panelInnerWidth(m.accountPanel)
	if u := m.session.Current(); u != nil {
		who := u.Email
		if u.DisplayName != "" {
			who = fmt.Sprintf("%s <%s>", u.DisplayName, u.Email)
		}
		lines := []string{
			clamp("Signed in as "+who, w),
			"",
		}
		if m.authBusy {
			lines = append(lines, m.styles.FormBusy.Render("signing out "+m.spinner.View()))
		} else {
			lines = append(lines, btnSignOut)
		}
		return strings.Join(lines, "\n")
	}

	f := &m.form
	header := "Sign in"
	if f.mode == modeSignUp {
		header = "Create account"
	}
	lines := []string{
		clamp(header+"  (ctrl+t switches)", w),
		"",
		clamp(f.email.View(), w),
		clamp(f.pass.View(), w),
	}
	if f.mode == modeSignUp {
		lines = append(lines, clamp(f.name.View(), w))
	}
	lines = append(lines, "")
	if f.status != "" {
		lines = append(lines, m.styles.FormStatus.Render(clamp(f.status, w)))
	} else {
		lines = append(lines, "")
	}
	if m.authBusy {
		lines = append(lines, m.styles.FormBusy.Render("working "+m.spinner.View()))
	} else {
		lines = append(lines, clamp("enter: submit   esc: close", w))
	}
	return strings.Join(lines, "\n")
}

// cartPanelBody lists the cart lines in insertion order, with the clear
// control on the line indexed by cartClearLine.
func (m *Model) cartPanelBody() string {
	w := m.panelInnerWidth(m.cartPanel)
	body := clampLines(m.cartStore.Render(), w)
	if m.cartStore.Empty() {
		return body
	}
	return body + "\n\n" + btnClearCart
}

// cartClearLine returns the body line index of the clear control, or -1.
func (m *Model) cartClearLine() int {
	if m.cartStore.Empty() {
		return -1
	}
	return len(m.cartStore.Lines()) + 1
}

// colorPanelBody lists the color facet options, one per line.
func (m *Model) colorPanelBody() string {
	w := m.panelInnerWidth(m.colorPanel)
	colors := pages.FacetColors(m.catalog)
	if len(colors) == 0 {
		return clamp("No colors to filter by.", w)
	}
	var lines []string
	for _, c := range colors {
		mark := "[ ]"
		if m.filters.Colors[c] {
			mark = "[x]"
		}
		lines = append(lines, clamp(mark+" "+c, w))
	}
	return strings.Join(lines, "\n")
}

// pricePanelBody lists the price bands, one per line, "any" first.
func (m *Model) pricePanelBody() string {
	w := m.panelInnerWidth(m.pricePanel)
	options := append([]string{""}, pages.PriceBands()...)
	var lines []string
	for _, band := range options {
		mark := "( )"
		if m.filters.PriceBand == band {
			mark = "(o)"
		}
		lines = append(lines, clamp(mark+" "+pages.PriceBandLabel(band), w))
	}
	return strings.Join(lines, "\n")
}

// priceOptionBands mirrors pricePanelBody's line order for zone building.
func priceOptionBands() []string {
	return append([]string{""}, pages.PriceBands()...)
}
