package pages

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/cmd/shopfront/ui"
	"shopfront/internal/catalog"
	"shopfront/internal/routes"
)

// CatalogLoadedMsg delivers the products page's fetch result to the shell.
type CatalogLoadedMsg struct {
	Products []catalog.Product
	Err      error
}

// Products is the catalog page. Init kicks off the catalog fetch; the grid
// is rendered once the data lands.
func Products(client *catalog.Client) routes.Descriptor {
	return routes.Descriptor{
		ID:    "products",
		Label: "Products",
		Order: 4,
		Render: func() string {
			return titleStyle.Render("Products") + "\n\n" +
				mutedStyle.Render("Loading catalog...")
		},
		Init: func(caps routes.Capabilities) tea.Cmd {
			// Replace any stale snapshot; cards rebind when the fetch lands.
			caps.SetCatalog(nil)
			if client == nil {
				return func() tea.Msg {
					return CatalogLoadedMsg{Err: errors.New("no catalog source configured")}
				}
			}
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
				defer cancel()
				products, err := client.Fetch(ctx)
				return CatalogLoadedMsg{Products: products, Err: err}
			}
		},
	}
}

// CatalogErrorBody is the inline placeholder shown when the fetch degrades.
func CatalogErrorBody() string {
	return titleStyle.Render("Products") + "\n\n" +
		mutedStyle.Render("The catalog could not be loaded. Please try again later.")
}

// ZoneKind tags what a grid hit zone does.
type ZoneKind int

const (
	// ZoneAdd is an add-to-cart button.
	ZoneAdd ZoneKind = iota
	// ZoneColor selects a color chip on a card.
	ZoneColor
)

// Zone is a clickable region, in cells relative to the grid origin.
// Coordinates are inclusive.
type Zone struct {
	Kind  ZoneKind
	Index int // catalog index, not grid position
	Color string
	X1    int
	Y1    int
	X2    int
	Y2    int
}

// Contains reports whether the point is inside the zone.
func (z Zone) Contains(x, y int) bool {
	return x >= z.X1 && x <= z.X2 && y >= z.Y1 && y <= z.Y2
}

// Price band ids for the price facet.
const (
	BandUnder25 = "under25"
	Band25to50  = "25to50"
	BandOver50  = "over50"
)

// PriceBands returns the facet options in display order.
func PriceBands() []string {
	return []string{BandUnder25, Band25to50, BandOver50}
}

// PriceBandLabel returns the display label for a band id.
func PriceBandLabel(band string) string {
	switch band {
	case BandUnder25:
		return "Under $25"
	case Band25to50:
		return "$25 - $50"
	case BandOver50:
		return "Over $50"
	default:
		return "Any price"
	}
}

// Filters is the facet selection applied to the grid.
type Filters struct {
	// Colors is the selected color set; empty means all.
	Colors map[string]bool
	// PriceBand is one of the band ids, or "" for any.
	PriceBand string
}

// Active reports whether any facet narrows the grid.
func (f Filters) Active() bool {
	return len(f.Colors) > 0 || f.PriceBand != ""
}

// Match reports whether a product passes the facets.
func (f Filters) Match(p catalog.Product) bool {
	if len(f.Colors) > 0 {
		ok := false
		for _, c := range p.Colors {
			if f.Colors[c] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.PriceBand != "" {
		price, err := strconv.ParseFloat(p.EffectiveUnitPrice(), 64)
		if err != nil {
			return false
		}
		switch f.PriceBand {
		case BandUnder25:
			if price >= 25 {
				return false
			}
		case Band25to50:
			if price < 25 || price > 50 {
				return false
			}
		case BandOver50:
			if price <= 50 {
				return false
			}
		}
	}
	return true
}

// FacetColors returns the distinct colors across the catalog, sorted.
func FacetColors(products []catalog.Product) []string {
	seen := map[string]bool{}
	for _, p := range products {
		for _, c := range p.Colors {
			seen[c] = true
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Card geometry. Cards are fixed-size ASCII boxes so hit zones stay exact.
const (
	cardInnerWidth = ui.CardWidth - 2 // between the side borders
	cardTextWidth  = ui.CardWidth - 4 // "| " + text + " |"
	cardLines      = 6
	cardHeight     = cardLines + 2 // content plus borders
	addButton      = "[ Add to Cart ]"
	colorPrefix    = "color: "
)

// RenderGrid renders the visible cards and their hit zones. Zones are
// relative to the grid's top-left cell; the shell offsets them into screen
// space. Selected maps catalog index to the chosen color (default first).
func RenderGrid(width int, products []catalog.Product, selected map[int]string, f Filters) (string, []Zone) {
	perRow := ui.CardsPerRow(width)

	var zones []Zone
	var rowBlocks []string
	var row []string
	col := 0
	top := 0

	flushRow := func() {
		if len(row) == 0 {
			return
		}
		joined := joinCards(row)
		rowBlocks = append(rowBlocks, joined)
		row = nil
		col = 0
		top += cardHeight
	}

	visible := 0
	for i, p := range products {
		if !f.Match(p) {
			continue
		}
		visible++
		lines, cardZones := renderCard(i, p, selected[i])
		left := col * (ui.CardWidth + ui.CardGap)
		for _, z := range cardZones {
			z.X1 += left
			z.X2 += left
			z.Y1 += top
			z.Y2 += top
			zones = append(zones, z)
		}
		row = append(row, strings.Join(lines, "\n"))
		col++
		if col == perRow {
			flushRow()
		}
	}
	flushRow()

	if visible == 0 {
		if len(products) == 0 {
			return mutedStyle.Render("No products available."), nil
		}
		return mutedStyle.Render("No products match the selected filters."), nil
	}

	return strings.Join(rowBlocks, "\n"), zones
}

// joinCards lines up a row of equal-height card blocks with the gap.
func joinCards(cards []string) string {
	split := make([][]string, len(cards))
	for i, c := range cards {
		split[i] = strings.Split(c, "\n")
	}
	gap := strings.Repeat(" ", ui.CardGap)
	var out []string
	for line := 0; line < cardHeight; line++ {
		parts := make([]string, len(cards))
		for i := range cards {
			parts[i] = split[i][line]
		}
		out = append(out, strings.Join(parts, gap))
	}
	return strings.Join(out, "\n")
}

// renderCard draws one fixed-size card and its zones relative to the card's
// own top-left corner.
func renderCard(index int, p catalog.Product, selectedColor string) ([]string, []Zone) {
	if selectedColor == "" {
		selectedColor = p.DefaultColor()
	}

	border := "+" + strings.Repeat("-", cardInnerWidth) + "+"
	content := make([]string, 0, cardLines)

	content = append(content, fit(p.Name, cardTextWidth))
	content = append(content, fit(cardMeta(p), cardTextWidth))
	content = append(content, fit(cardPrice(p), cardTextWidth))

	colorLine, colorZones := cardColors(index, p, selectedColor)
	content = append(content, fit(colorLine, cardTextWidth))

	content = append(content, fit(addButton, cardTextWidth))
	content = append(content, fit(cardFooter(p), cardTextWidth))

	lines := make([]string, 0, cardHeight)
	lines = append(lines, border)
	for _, c := range content {
		lines = append(lines, "| "+c+" |")
	}
	lines = append(lines, border)

	zones := []Zone{{
		Kind:  ZoneAdd,
		Index: index,
		Color: selectedColor,
		X1:    2,
		Y1:    1 + 4,
		X2:    2 + len(addButton) - 1,
		Y2:    1 + 4,
	}}
	zones = append(zones, colorZones...)
	return lines, zones
}

func cardMeta(p catalog.Product) string {
	parts := []string{}
	if p.Badge != "" {
		parts = append(parts, p.Badge)
	}
	if p.Rating != nil {
		parts = append(parts, fmt.Sprintf("* %.1f (%d)", p.Rating.Value, p.Rating.Count))
	}
	return strings.Join(parts, "  ")
}

func cardPrice(p catalog.Product) string {
	if p.Prices.Discounted != "" {
		return fmt.Sprintf("$%s  was $%s", p.Prices.Discounted, p.Prices.Original)
	}
	if p.Prices.StarterKitPrice != "" {
		return fmt.Sprintf("$%s  kit $%s", p.Prices.Original, p.Prices.StarterKitPrice)
	}
	return "$" + p.Prices.Original
}

// cardColors builds the color line and a zone per chip. The selected chip is
// bracketed; zone coordinates account for that.
func cardColors(index int, p catalog.Product, selectedColor string) (string, []Zone) {
	if len(p.Colors) == 0 {
		return "", nil
	}
	line := colorPrefix
	var zones []Zone
	// "| " shifts card content right by two cells.
	x := 2 + len(colorPrefix)
	for i, c := range p.Colors {
		if i > 0 {
			line += " "
			x++
		}
		chip := c
		if c == selectedColor {
			chip = "[" + c + "]"
		}
		if len(line)+len(chip) > cardTextWidth {
			break // chips that do not fit are not clickable
		}
		line += chip
		zones = append(zones, Zone{
			Kind:  ZoneColor,
			Index: index,
			Color: c,
			X1:    x,
			Y1:    1 + 3,
			X2:    x + len(chip) - 1,
			Y2:    1 + 3,
		})
		x += len(chip)
	}
	return line, zones
}

func cardFooter(p catalog.Product) string {
	if p.Coupon != nil {
		if p.Coupon.Note != "" {
			return fmt.Sprintf("code %s - %s", p.Coupon.Code, p.Coupon.Note)
		}
		return "code " + p.Coupon.Code
	}
	if p.FreeShipping {
		return "free shipping"
	}
	return ""
}

// fit pads or truncates a string to exactly w cells.
func fit(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		if w <= 3 {
			return string(r[:w])
		}
		return string(r[:w-3]) + "..."
	}
	return s + strings.Repeat(" ", w-len(r))
}
