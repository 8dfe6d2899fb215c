// Package identity defines the opaque identity capability the storefront
// depends on. The provider is the source of truth for the session; the core
// only caches the current user snapshot delivered through Subscribe.
package identity

import (
	"context"
	"errors"
	"sync"
)

// User is the externally-owned account record. The storefront reads only
// Email (and DisplayName for greeting); everything else stays opaque.
type User struct {
	ID          string
	Email       string
	DisplayName string
}

// Local validation errors. Provider failures carry their own messages and
// are surfaced verbatim.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Provider is the identity capability contract. All three mutating calls are
// asynchronous from the UI's point of view; the caller is responsible for
// keeping its triggering control single-flight for the duration.
type Provider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignOut(ctx context.Context) error
	// Subscribe registers a session-change callback. The callback fires
	// immediately with the current user-or-nil, then on every change.
	// The returned cancel unregisters it.
	Subscribe(fn func(*User)) (cancel func())
}

// Snapshot is the core's cached view of the session, refreshed only through
// the provider subscription.
type Snapshot struct {
	mu   sync.RWMutex
	user *User
}

// Set replaces the cached user. Called from the provider callback only.
func (s *Snapshot) Set(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Current returns the cached user, or nil when signed out.
func (s *Snapshot) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SignedIn reports whether a user is cached.
func (s *Snapshot) SignedIn() bool {
	return s.Current() != nil
}
