package shop

import "shopfront/internal/identity"

// sessionChangedMsg carries a provider session notification onto the loop.
type sessionChangedMsg struct {
	user *identity.User
}

// cartChangedMsg is the cart's re-render request.
type cartChangedMsg struct{}

// authOp names the identity operation a submit control runs.
type authOp string

const (
	opSignIn  authOp = "signin"
	opSignUp  authOp = "signup"
	opSignOut authOp = "signout"
)

// authResultMsg delivers the outcome of an identity round-trip. Receiving it
// is the single place the triggering control is re-enabled.
type authResultMsg struct {
	op   authOp
	user *identity.User
	err  error
}

// resizeSettledMsg applies a debounced window resize.
type resizeSettledMsg struct {
	token int
}
