package shop

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/identity"
)

// formMode selects between the sign-in and sign-up variants of the account
// form.
type formMode int

const (
	modeSignIn formMode = iota
	modeSignUp
)

// accountForm is the account panel's input state. The submit control is
// single-flight: while a round-trip is in progress the shell's authBusy flag
// disables it and swallows further submits.
type accountForm struct {
	mode    formMode
	email   textinput.Model
	pass    textinput.Model
	name    textinput.Model
	focused int
	status  string
}

func newAccountForm() accountForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 64
	email.Width = 28
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 64
	pass.Width = 28
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	name := textinput.New()
	name.Placeholder = "display name (optional)"
	name.CharLimit = 64
	name.Width = 28

	return accountForm{mode: modeSignIn, email: email, pass: pass, name: name}
}

// fieldCount is how many inputs the current mode shows.
func (f *accountForm) fieldCount() int {
	if f.mode == modeSignUp {
		return 3
	}
	return 2
}

func (f *accountForm) fields() []*textinput.Model {
	if f.mode == modeSignUp {
		return []*textinput.Model{&f.email, &f.pass, &f.name}
	}
	return []*textinput.Model{&f.email, &f.pass}
}

// focusField moves input focus to one field.
func (f *accountForm) focusField(i int) tea.Cmd {
	fields := f.fields()
	if i < 0 {
		i = len(fields) - 1
	}
	if i >= len(fields) {
		i = 0
	}
	f.focused = i
	var cmd tea.Cmd
	for j, in := range fields {
		if j == i {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

// toggleMode flips between sign-in and sign-up, keeping typed values.
func (f *accountForm) toggleMode() tea.Cmd {
	if f.mode == modeSignIn {
		f.mode = modeSignUp
	} else {
		f.mode = modeSignIn
	}
	f.status = ""
	return f.focusField(0)
}

// update routes key input to the focused field.
func (f *accountForm) update(msg tea.Msg) tea.Cmd {
	fields := f.fields()
	if f.focused >= len(fields) {
		f.focused = 0
	}
	var cmd tea.Cmd
	*fields[f.focused], cmd = fields[f.focused].Update(msg)
	return cmd
}

// clearPassword wipes only the password so a failed attempt can be corrected
// without retyping the email.
func (f *accountForm) clearPassword() {
	f.pass.SetValue("")
}

// reset clears everything after a successful round-trip.
func (f *accountForm) reset() {
	f.email.SetValue("")
	f.pass.SetValue("")
	f.name.SetValue("")
	f.status = ""
	f.focused = 0
}

// submitAuth validates locally, flips the single-flight guard, and starts
// the provider round-trip. The guard is released exactly once, in the
// authResultMsg handler, regardless of outcome.
func (m *Model) submitAuth() tea.Cmd {
	if m.authBusy || m.provider == nil {
		return nil
	}

	email := strings.TrimSpace(m.form.email.Value())
	pass := m.form.pass.Value()
	name := strings.TrimSpace(m.form.name.Value())

	if email == "" || pass == "" {
		m.form.status = identity.ErrMissingCredentials.Error()
		return nil
	}

	op := opSignIn
	if m.form.mode == modeSignUp {
		op = opSignUp
	}

	m.authBusy = true
	m.form.status = ""
	return m.authCmd(op, email, pass, name)
}

// signOut starts the sign-out round-trip under the same guard.
func (m *Model) signOut() tea.Cmd {
	if m.authBusy || m.provider == nil {
		return nil
	}
	m.authBusy = true
	return m.authCmd(opSignOut, "", "", "")
}

// authCmd runs one identity operation off-loop. singleflight keys the
// operation so a duplicate submit that slips past the disabled control
// cannot start a second in-flight call.
func (m *Model) authCmd(op authOp, email, pass, name string) tea.Cmd {
	provider := m.provider
	group := m.authGroup
	return func() tea.Msg {
		v, err, _ := group.Do(string(op), func() (interface{}, error) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			switch op {
			case opSignUp:
				return provider.SignUp(ctx, email, pass, name)
			case opSignIn:
				return provider.SignIn(ctx, email, pass)
			default:
				return nil, provider.SignOut(ctx)
			}
		})
		user, _ := v.(*identity.User)
		return authResultMsg{op: op, user: user, err: err}
	}
}
