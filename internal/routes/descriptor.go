// Package routes builds the storefront's route table from the statically
// registered page modules and resolves navigation fragments against it.
package routes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/catalog"
)

// DefaultOrder is the sort key assigned to modules that declare none.
const DefaultOrder = 9999

// HomeID is the sentinel route every unresolvable fragment falls back to.
const HomeID = "home"

// Capabilities is the entire contract a page's Init may rely on. The shell
// hands each page these callbacks instead of sharing ambient globals.
type Capabilities struct {
	// SetCatalog registers or replaces the current catalog snapshot.
	SetCatalog func(products []catalog.Product)
	// AddToCart adds a catalog item by index with the selected color.
	AddToCart func(index int, color string)
	// CloseAllPanels force-closes every open panel.
	CloseAllPanels func()
	// SetScrollLock sets the shared scroll-lock flag.
	SetScrollLock func(locked bool)
	// RefreshCart re-renders the currently displayed cart contents.
	RefreshCart func()
}

// Descriptor is the static metadata plus render/init capability for one
// navigable view. Render must be pure; Init runs after the rendered body is
// mounted and is re-invoked on every navigation, so it rebinds from scratch.
type Descriptor struct {
	ID    string
	Label string
	// Order is the ascending nav sort key. Zero is reserved to mean
	// "unspecified" and is rewritten to DefaultOrder by Build; a module
	// that needs to sort ahead of every explicit order uses a negative
	// value instead.
	Order  int
	Parent string
	Render func() string
	Init   func(caps Capabilities) tea.Cmd
}

// Addressable reports whether the descriptor can be reached by fragment.
func (d Descriptor) Addressable() bool { return d.ID != "" }
