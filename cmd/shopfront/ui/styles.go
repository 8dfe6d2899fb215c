// Package ui provides the styling, layout math, and event debouncing shared
// by the shopfront terminal views.
// Uses a small storefront palette with light/dark mode support.
package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the storefront chrome.
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f7f6f3")
	LightForeground = lipgloss.Color("#1f2430")
	LightPrimary    = lipgloss.Color("#1f2430")
	LightAccent     = lipgloss.Color("#e07b39") // storefront orange
	LightMuted      = lipgloss.Color("#9aa0ad")
	LightBorder     = lipgloss.Color("#d8d5cd")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#171a21")
	DarkForeground = lipgloss.Color("#e8e6e1")
	DarkPrimary    = lipgloss.Color("#e07b39")
	DarkAccent     = lipgloss.Color("#e07b39")
	DarkMuted      = lipgloss.Color("#5c6370")
	DarkBorder     = lipgloss.Color("#3a4050")
	DarkCard       = lipgloss.Color("#1f2430")

	// Semantic colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#7cb342")
	Warning     = lipgloss.Color("#ffb300")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
	}
}

// DetectTheme picks light or dark based on the terminal environment.
// COLORFGBG is the closest thing terminals give us to a mode hint.
func DetectTheme() Theme {
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "7", "15":
				return LightTheme()
			}
		}
	}
	return DarkTheme()
}

// Styles bundles every lipgloss style the shell renders with.
type Styles struct {
	Theme Theme

	NavBar        lipgloss.Style
	NavLink       lipgloss.Style
	NavLinkActive lipgloss.Style
	NavTrigger    lipgloss.Style
	NavBadge      lipgloss.Style

	Content     lipgloss.Style
	ContentDim  lipgloss.Style
	PageTitle   lipgloss.Style
	PageBody    lipgloss.Style
	Placeholder lipgloss.Style

	PanelFlyout  lipgloss.Style
	PanelSheet   lipgloss.Style
	PanelClosing lipgloss.Style
	PanelTitle   lipgloss.Style
	PanelClose   lipgloss.Style

	Card       lipgloss.Style
	CardName   lipgloss.Style
	CardPrice  lipgloss.Style
	CardStrike lipgloss.Style
	CardBadge  lipgloss.Style
	CardButton lipgloss.Style
	ColorChip  lipgloss.Style
	ColorPick  lipgloss.Style

	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	Toast       lipgloss.Style
	ToastError  lipgloss.Style

	FormLabel  lipgloss.Style
	FormStatus lipgloss.Style
	FormSubmit lipgloss.Style
	FormBusy   lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	s := Styles{Theme: theme}

	s.NavBar = lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Bold(true).
		Padding(0, 1)
	s.NavLink = lipgloss.NewStyle().Foreground(theme.Muted)
	s.NavLinkActive = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Underline(true)
	s.NavTrigger = lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true)
	s.NavBadge = lipgloss.NewStyle().Foreground(theme.Background).Background(theme.Accent).Padding(0, 1)

	s.Content = lipgloss.NewStyle().Padding(1, 2)
	s.ContentDim = lipgloss.NewStyle().Padding(1, 2).Foreground(theme.Muted).Faint(true)
	s.PageTitle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).MarginBottom(1)
	s.PageBody = lipgloss.NewStyle().Foreground(theme.Foreground)
	s.Placeholder = lipgloss.NewStyle().Foreground(theme.Muted).Italic(true)

	s.PanelFlyout = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	s.PanelSheet = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(theme.Accent).
		Padding(0, 1)
	s.PanelClosing = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Faint(true).
		Padding(0, 1)
	s.PanelTitle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	s.PanelClose = lipgloss.NewStyle().Foreground(theme.Muted)

	s.Card = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		MarginRight(1)
	s.CardName = lipgloss.NewStyle().Foreground(theme.Foreground).Bold(true)
	s.CardPrice = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	s.CardStrike = lipgloss.NewStyle().Foreground(theme.Muted).Strikethrough(true)
	s.CardBadge = lipgloss.NewStyle().Foreground(theme.Background).Background(Warning).Padding(0, 1)
	s.CardButton = lipgloss.NewStyle().Foreground(theme.Background).Background(theme.Accent).Padding(0, 1)
	s.ColorChip = lipgloss.NewStyle().Foreground(theme.Muted)
	s.ColorPick = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	s.StatusBar = lipgloss.NewStyle().Foreground(theme.Muted).Padding(0, 1)
	s.StatusError = lipgloss.NewStyle().Foreground(Destructive).Padding(0, 1)
	s.Toast = lipgloss.NewStyle().
		Foreground(theme.Background).
		Background(Success).
		Padding(0, 1)
	s.ToastError = lipgloss.NewStyle().
		Foreground(theme.Background).
		Background(Destructive).
		Padding(0, 1)

	s.FormLabel = lipgloss.NewStyle().Foreground(theme.Muted)
	s.FormStatus = lipgloss.NewStyle().Foreground(Warning)
	s.FormSubmit = lipgloss.NewStyle().Foreground(theme.Background).Background(theme.Accent).Padding(0, 1)
	s.FormBusy = lipgloss.NewStyle().Foreground(theme.Muted).Faint(true).Padding(0, 1)

	return s
}
