package shop

import (
	"shopfront/internal/catalog"
	"shopfront/internal/pages"
	"shopfront/internal/routes"
)

// capabilities builds the entire contract page modules may rely on. Pages
// never see the model; they get these five callbacks.
func (m *Model) capabilities() routes.Capabilities {
	return routes.Capabilities{
		SetCatalog: func(products []catalog.Product) {
			m.catalog = products
			m.catalogErr = false
			m.selectedColors = make(map[int]string)
			m.filters = pages.Filters{}
		},
		AddToCart: func(index int, color string) {
			m.addToCart(index, color)
		},
		CloseAllPanels: func() {
			m.family.CloseAll()
		},
		SetScrollLock: func(locked bool) {
			m.overlay.SetScrollLock(locked)
		},
		RefreshCart: func() {
			select {
			case m.cartCh <- struct{}{}:
			default:
			}
		},
	}
}
