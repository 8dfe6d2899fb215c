// Package cart holds the in-memory shopping cart. The cart is a per-session
// artifact: it is never persisted and is cleared the moment the session
// becomes unauthenticated.
package cart

import (
	"errors"
	"fmt"
	"sync"

	"shopfront/internal/catalog"
)

// Sentinel conditions Add reports instead of mutating.
var (
	// ErrSignInRequired means the add was refused because no session is
	// active. The shell maps this to a soft account-panel prompt.
	ErrSignInRequired = errors.New("Please log in to add items.")
	// ErrNotFound means the product reference did not resolve.
	ErrNotFound = errors.New("Product not found.")
)

// Line is one cart entry. Lines are unique by (Name, UnitPrice, Color).
type Line struct {
	Name      string
	UnitPrice string
	Color     string
	Qty       int
}

func (l Line) key() string {
	return l.Name + "\x00" + l.UnitPrice + "\x00" + l.Color
}

// SessionCheck is the slice of the session snapshot the cart needs.
type SessionCheck interface {
	SignedIn() bool
}

// Store is the process-wide cart. The mutex matters: the session callback
// that clears the cart runs on whatever goroutine delivered the provider
// event, concurrently with render reads on the UI loop.
type Store struct {
	mu       sync.Mutex
	session  SessionCheck
	lines    []Line
	onChange func()
}

// NewStore creates an empty cart gated by the given session.
func NewStore(session SessionCheck) *Store {
	return &Store{session: session}
}

// OnChange registers the re-render notification for whichever panel is
// currently displaying the cart. Replaces any prior subscription.
func (s *Store) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Add puts one unit of the product in the cart. Repeat adds with the same
// (name, price, color) merge into a single line with an incremented
// quantity. Requires an authenticated session; refusals mutate nothing.
func (s *Store) Add(p *catalog.Product, color string) error {
	if s.session == nil || !s.session.SignedIn() {
		return ErrSignInRequired
	}
	if p == nil {
		return ErrNotFound
	}

	line := Line{
		Name:      p.Name,
		UnitPrice: p.EffectiveUnitPrice(),
		Color:     color,
		Qty:       1,
	}

	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].key() == line.key() {
			s.lines[i].Qty++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, line)
	}
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
	return nil
}

// Clear empties the cart unconditionally and notifies the renderer. Safe to
// call from the provider callback goroutine.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	fn := s.onChange
	s.mu.Unlock()

	notify(fn)
}

// Lines returns a copy of the cart in insertion (display) order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Count returns the total quantity across lines, for the trigger badge.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Qty
	}
	return total
}

// Empty reports whether the cart has no lines.
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines) == 0
}

// Render produces the deterministic cart listing in insertion order, or the
// explicit empty placeholder.
func (s *Store) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return "Your cart is empty."
	}
	out := ""
	for _, l := range s.lines {
		if out != "" {
			out += "\n"
		}
		color := l.Color
		if color == "" {
			color = "-"
		}
		out += fmt.Sprintf("%d x %s (%s)  $%s", l.Qty, l.Name, color, l.UnitPrice)
	}
	return out
}

// notify runs the change callback outside the store lock so it may call
// back into the store.
func notify(fn func()) {
	if fn != nil {
		fn()
	}
}
