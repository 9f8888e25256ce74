package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/client/services"
	"github.com/dmitrijs2005/hotelhub/internal/client/session"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/dmitrijs2005/hotelhub/internal/events"
)

// MsgLoginFallback is shown when a failed login carries no message.
const MsgLoginFallback = "An error occurred during login"

// FormState is the submission state of a form view.
type FormState int

const (
	StateIdle FormState = iota
	StateSubmitting
	StateSuccess
)

func (s FormState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

// LoginView is the sign-in form.
type LoginView struct {
	auth    services.AuthService
	bus     *events.Bus[events.Loading]
	nav     services.Navigator
	loading loadingState

	email string
	state FormState
	err   string
}

func NewLoginView(auth services.AuthService, bus *events.Bus[events.Loading], nav services.Navigator) *LoginView {
	return &LoginView{auth: auth, bus: bus, nav: nav}
}

func (v *LoginView) Route() string { return common.RouteLogin }

func (v *LoginView) Mount(context.Context) { v.loading.mount(v.bus) }

func (v *LoginView) Unmount() { v.loading.unmount() }

func (v *LoginView) State() FormState { return v.state }

// Email is the address of the last submission, kept to refill the form.
func (v *LoginView) Email() string { return v.email }

// Error is the message currently shown under the form, "" if none.
func (v *LoginView) Error() string { return v.err }

// Submit validates creds, logs in, loads the user into the session store
// found in ctx and navigates home. Empty fields fail before any network
// call. On failure the view returns to idle with the error message set.
func (v *LoginView) Submit(ctx context.Context, creds models.LoginCredentials) error {
	if v.loading.isLoading() {
		return ErrBusy
	}
	v.err = ""
	v.email = creds.Email

	if err := creds.Validate(); err != nil {
		v.err = err.Error()
		return err
	}

	store, err := session.FromContext(ctx)
	if err != nil {
		v.err = err.Error()
		return err
	}

	v.state = StateSubmitting
	if err := v.login(ctx, store, creds); err != nil {
		v.state = StateIdle
		v.err = err.Error()
		if v.err == "" {
			v.err = MsgLoginFallback
		}
		store.SetError(v.err)
		return err
	}

	v.state = StateSuccess
	store.SetError("")
	if v.nav != nil {
		v.nav.Navigate(common.RouteHome)
	}
	return nil
}

func (v *LoginView) login(ctx context.Context, store *session.Store, creds models.LoginCredentials) error {
	if _, err := v.auth.Login(ctx, creds); err != nil {
		return err
	}
	u, err := v.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	store.SetUser(u)
	return nil
}

func (v *LoginView) Render(_ context.Context, w io.Writer) {
	fmt.Fprintln(w, "== Sign in to your account ==")
	if v.email != "" {
		fmt.Fprintln(w, "Email address: "+v.email)
	}
	if v.err != "" {
		fmt.Fprintln(w, "! "+v.err)
	}
	if v.loading.isLoading() {
		fmt.Fprintln(w, "[ Signing in... ]")
	} else {
		fmt.Fprintln(w, "[ Sign in ]")
	}
	fmt.Fprintln(w, "Don't have an account? Sign up ("+common.RouteSignup+")")
}
