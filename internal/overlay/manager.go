// Package overlay owns the single shared dimming layer and the page
// scroll-lock flag used by every panel. Visibility is recomputed from the
// set of panels currently holding the overlay, never from whichever panel
// happened to transition last.
package overlay

import "sync"

// Manager tracks which panels want the overlay shown. The overlay is visible
// while at least one holder remains, and scrolling is locked while the
// overlay is visible or an explicit lock is set.
type Manager struct {
	mu           sync.Mutex
	holders      map[string]struct{}
	explicitLock bool
}

// NewManager creates an empty overlay manager.
func NewManager() *Manager {
	return &Manager{holders: make(map[string]struct{})}
}

// Acquire registers a panel as requiring the overlay. Idempotent per name.
func (m *Manager) Acquire(name string) {
	if name == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holders[name] = struct{}{}
}

// Release drops a panel's interest in the overlay. Releasing a name that
// never acquired is a no-op.
func (m *Manager) Release(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.holders, name)
}

// Visible reports whether any panel currently holds the overlay.
func (m *Manager) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holders) > 0
}

// ScrollLocked reports whether page scrolling is disabled.
func (m *Manager) ScrollLocked() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holders) > 0 || m.explicitLock
}

// SetScrollLock sets or removes the explicit scroll lock. Idempotent.
func (m *Manager) SetScrollLock(locked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.explicitLock = locked
}

// ForceClear drops every holder and the explicit lock. Used when navigation
// replaces the content region out from under open panels.
func (m *Manager) ForceClear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holders = make(map[string]struct{})
	m.explicitLock = false
}

// Holders returns the number of panels holding the overlay.
func (m *Manager) Holders() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.holders)
}
