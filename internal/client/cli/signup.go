package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/client/services"
	"github.com/dmitrijs2005/hotelhub/internal/common"
)

const MsgSignupSuccess = "Account created. Please sign in."

// SignupView is the account creation form. On success it sends the user
// to the login view.
type SignupView struct {
	auth services.AuthService
	nav  services.Navigator

	state   FormState
	err     string
	message string
}

func NewSignupView(auth services.AuthService, nav services.Navigator) *SignupView {
	return &SignupView{auth: auth, nav: nav}
}

func (v *SignupView) Route() string         { return common.RouteSignup }
func (v *SignupView) Mount(context.Context) {}
func (v *SignupView) Unmount()              {}

func (v *SignupView) State() FormState { return v.state }
func (v *SignupView) Error() string    { return v.err }

// Message is the server message of the last successful signup.
func (v *SignupView) Message() string { return v.message }

func (v *SignupView) Submit(ctx context.Context, creds models.SignupCredentials) error {
	v.err = ""
	v.message = ""
	if err := creds.ValidateForSignup(); err != nil {
		v.err = err.Error()
		return err
	}

	v.state = StateSubmitting
	resp, err := v.auth.Signup(ctx, creds)
	if err != nil {
		v.state = StateIdle
		v.err = err.Error()
		return err
	}

	v.state = StateSuccess
	v.message = resp.Message
	if v.message == "" {
		v.message = MsgSignupSuccess
	}
	if v.nav != nil {
		v.nav.Navigate(common.RouteLogin)
	}
	return nil
}

func (v *SignupView) Render(_ context.Context, w io.Writer) {
	fmt.Fprintln(w, "== Create your account ==")
	if v.err != "" {
		fmt.Fprintln(w, "! "+v.err)
	}
	if v.state == StateSubmitting {
		fmt.Fprintln(w, "[ Creating account... ]")
	} else {
		fmt.Fprintln(w, "[ Sign up ]")
	}
	fmt.Fprintln(w, "Already have an account? Sign in ("+common.RouteLogin+")")
}
