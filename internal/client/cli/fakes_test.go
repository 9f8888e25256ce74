package cli

import (
	"context"
	"io"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/client/session"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/dmitrijs2005/hotelhub/internal/events"
)

// fakeAuth mimics the loading contract of the real service without storage.
type fakeAuth struct {
	bus *events.Bus[events.Loading]
	nav *fakeNav

	loginErr    error
	loginCalls  int
	loginCreds  models.LoginCredentials
	user        *models.User
	userErr     error
	signupResp  *models.AuthResponse
	signupErr   error
	signupCalls int
	logoutErr   error
	logoutCalls int

	// userAtLogout is the session user seen when Logout starts.
	userAtLogout *models.User
	closed       bool
}

func newFakeAuth(bus *events.Bus[events.Loading]) *fakeAuth {
	return &fakeAuth{
		bus:  bus,
		nav:  &fakeNav{},
		user: &models.User{UserID: 7, Email: "guest@example.com"},
	}
}

func (f *fakeAuth) publish(v bool) {
	if f.bus != nil {
		f.bus.Publish(events.Loading{Loading: v})
	}
}

func (f *fakeAuth) Signup(ctx context.Context, creds models.SignupCredentials) (*models.AuthResponse, error) {
	f.signupCalls++
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	if f.signupResp != nil {
		return f.signupResp, nil
	}
	return &models.AuthResponse{Message: "User created"}, nil
}

func (f *fakeAuth) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	f.publish(true)
	defer f.publish(false)
	f.loginCalls++
	f.loginCreds = creds
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.LoginResponse{UserID: 7, AccessToken: "at", RefreshToken: "rt"}, nil
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*models.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.publish(true)
	defer f.publish(false)
	f.logoutCalls++
	if s, err := session.FromContext(ctx); err == nil {
		f.userAtLogout = s.User()
	}
	if f.logoutErr != nil {
		return f.logoutErr
	}
	if f.nav != nil {
		f.nav.Navigate(common.RouteLogin)
	}
	return nil
}

func (f *fakeAuth) Close(ctx context.Context) error {
	f.closed = true
	return nil
}

type fakeNav struct {
	routes []string
}

func (n *fakeNav) Navigate(route string) { n.routes = append(n.routes, route) }

// recordingView logs its lifecycle calls into a shared slice.
type recordingView struct {
	route string
	log   *[]string
}

func (v *recordingView) Route() string { return v.route }

func (v *recordingView) Mount(context.Context) { *v.log = append(*v.log, "mount "+v.route) }

func (v *recordingView) Unmount() { *v.log = append(*v.log, "unmount "+v.route) }

func (v *recordingView) Render(_ context.Context, w io.Writer) {
	*v.log = append(*v.log, "render "+v.route)
}
