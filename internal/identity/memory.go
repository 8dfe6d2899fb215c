package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type account struct {
	user     User
	password string
}

// Memory is an in-memory Provider used as a stand-in identity service. It is
// a collaborator, not a product: accounts live for the process only.
type Memory struct {
	mu       sync.Mutex
	accounts map[string]account
	current  *User
	subs     map[int]func(*User)
	nextSub  int
}

// NewMemory creates an empty in-memory provider.
func NewMemory() *Memory {
	return &Memory{
		accounts: make(map[string]account),
		subs:     make(map[int]func(*User)),
	}
}

// SignUp registers a new account and signs it in.
func (m *Memory) SignUp(ctx context.Context, email, password, displayName string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	m.mu.Lock()
	if _, exists := m.accounts[email]; exists {
		m.mu.Unlock()
		return nil, ErrEmailTaken
	}
	u := User{ID: uuid.NewString(), Email: email, DisplayName: displayName}
	m.accounts[email] = account{user: u, password: password}
	m.current = &u
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, &u)
	return &u, nil
}

// SignIn authenticates an existing account.
func (m *Memory) SignIn(ctx context.Context, email, password string) (*User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	m.mu.Lock()
	acct, ok := m.accounts[email]
	if !ok || acct.password != password {
		m.mu.Unlock()
		return nil, ErrInvalidCredentials
	}
	u := acct.user
	m.current = &u
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, &u)
	return &u, nil
}

// SignOut ends the current session. Signing out while signed out is allowed.
func (m *Memory) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	m.current = nil
	subs := m.subscribers()
	m.mu.Unlock()

	notify(subs, nil)
	return nil
}

// Subscribe registers a session-change callback, firing it immediately with
// the current state.
func (m *Memory) Subscribe(fn func(*User)) (cancel func()) {
	m.mu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	current := m.current
	m.mu.Unlock()

	fn(current)
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// subscribers snapshots the callback list; callers must hold m.mu.
func (m *Memory) subscribers() []func(*User) {
	out := make([]func(*User), 0, len(m.subs))
	for _, fn := range m.subs {
		out = append(out, fn)
	}
	return out
}

// notify runs callbacks outside the provider lock so a callback may call
// back into the provider.
func notify(subs []func(*User), u *User) {
	for _, fn := range subs {
		fn(u)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
