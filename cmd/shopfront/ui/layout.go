package ui

// Layout constants for viewport and panel sizing.
const (
	// Chrome heights
	NavBarHeight    = 1
	FilterBarHeight = 1
	StatusBarHeight = 1

	// Panel dimensions
	PanelBorderWidth = 2
	FlyoutMinWidth   = 30
	FlyoutMaxWidth   = 44
	SheetMargin      = 2

	// Product grid
	CardWidth    = 26
	CardGap      = 1
	CardRows     = 6
	GridPaddingH = 2

	// Responsive breakpoint: below this width the storefront renders in
	// mobile mode (panels become full-width sheets, hover is disabled).
	MobileBreakpoint = 96

	MinimumTerminalWidth  = 40
	MinimumTerminalHeight = 12
)

// Mode is the viewport mode derived from terminal width.
type Mode int

const (
	ModeDesktop Mode = iota
	ModeMobile
)

func (m Mode) String() string {
	if m == ModeMobile {
		return "mobile"
	}
	return "desktop"
}

// Layout provides computed dimensions based on terminal size.
type Layout struct {
	Width  int
	Height int
	Mode   Mode
}

// NewLayout creates a layout for the given terminal size.
func NewLayout(width, height int) Layout {
	return NewLayoutWith(width, height, MobileBreakpoint)
}

// NewLayoutWith creates a layout with a configured breakpoint.
func NewLayoutWith(width, height, breakpoint int) Layout {
	mode := ModeDesktop
	if width < breakpoint {
		mode = ModeMobile
	}
	return Layout{Width: width, Height: height, Mode: mode}
}

// IsMobile reports whether the layout is below the responsive breakpoint.
func (l Layout) IsMobile() bool { return l.Mode == ModeMobile }

// ContentHeight returns the rows available to the content region.
func (l Layout) ContentHeight() int {
	h := l.Height - NavBarHeight - StatusBarHeight
	if h < 0 {
		h = 0
	}
	return h
}

// FlyoutWidth returns the width of a desktop flyout panel.
func (l Layout) FlyoutWidth() int {
	w := l.Width / 3
	if w < FlyoutMinWidth {
		w = FlyoutMinWidth
	}
	if w > FlyoutMaxWidth {
		w = FlyoutMaxWidth
	}
	if w > l.Width {
		w = l.Width
	}
	return w
}

// SheetWidth returns the width of a mobile sheet panel.
func (l Layout) SheetWidth() int {
	w := l.Width - SheetMargin*2
	if w < 0 {
		w = 0
	}
	return w
}

// CardsPerRow returns how many product cards fit on one grid row.
func CardsPerRow(width int) int {
	n := (width - GridPaddingH*2) / (CardWidth + CardGap)
	if n < 1 {
		n = 1
	}
	return n
}
