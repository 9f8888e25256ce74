package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hotelhub/internal/client/services"
	"github.com/dmitrijs2005/hotelhub/internal/client/session"
	"github.com/dmitrijs2005/hotelhub/internal/events"
)

const Brand = "HotelHub"

// Navbar is rendered above every view and owns the logout control.
type Navbar struct {
	auth    services.AuthService
	bus     *events.Bus[events.Loading]
	loading loadingState
}

func NewNavbar(auth services.AuthService, bus *events.Bus[events.Loading]) *Navbar {
	return &Navbar{auth: auth, bus: bus}
}

func (n *Navbar) Mount(context.Context) { n.loading.mount(n.bus) }

func (n *Navbar) Unmount() { n.loading.unmount() }

// Logout clears the session user first so the navbar drops the user
// controls immediately, then runs the service logout.
func (n *Navbar) Logout(ctx context.Context) error {
	if n.loading.isLoading() {
		return ErrBusy
	}
	store, err := session.FromContext(ctx)
	if err != nil {
		return err
	}
	store.SetUser(nil)
	return n.auth.Logout(ctx)
}

// Status is the one-line summary used as the REPL prompt.
func (n *Navbar) Status(ctx context.Context) string {
	parts := []string{Brand}
	if store, err := session.FromContext(ctx); err == nil {
		if u := store.User(); u != nil {
			parts = append(parts, u.Email)
		}
	}
	if n.loading.isLoading() {
		parts = append(parts, "...")
	}
	return strings.Join(parts, " ")
}

func (n *Navbar) Render(ctx context.Context, w io.Writer) {
	links := []string{"Home", "Properties", "My Bookings"}

	store, err := session.FromContext(ctx)
	if err == nil && store.User() != nil {
		logout := "Logout"
		if n.loading.isLoading() {
			logout = "Signing out..."
		}
		links = append(links, store.User().Email, "Profile", "["+logout+"]")
	} else {
		links = append(links, "Login", "Sign up")
	}

	fmt.Fprintf(w, "%s | %s\n", Brand, strings.Join(links, " | "))
}
