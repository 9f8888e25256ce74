package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/client/session"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/dmitrijs2005/hotelhub/internal/events"
)

// ErrBusy is returned when a control is used while an auth operation is
// still in flight.
var ErrBusy = errors.New("operation in progress")

// View is one screen of the client.
//
// Mount is called when the router makes the view active and Unmount when it
// is replaced; a view holds subscriptions only between the two. Render
// writes the current state of the view to w.
type View interface {
	Route() string
	Mount(ctx context.Context)
	Unmount()
	Render(ctx context.Context, w io.Writer)
}

// loadingState tracks the last Loading notification seen while mounted.
type loadingState struct {
	mu      sync.Mutex
	loading bool
	unsub   func()
}

func (l *loadingState) mount(bus *events.Bus[events.Loading]) {
	if bus == nil {
		return
	}
	l.unmount()
	unsub := bus.Subscribe(func(ev events.Loading) {
		l.mu.Lock()
		l.loading = ev.Loading
		l.mu.Unlock()
	})
	l.mu.Lock()
	l.unsub = unsub
	l.mu.Unlock()
}

func (l *loadingState) unmount() {
	l.mu.Lock()
	unsub := l.unsub
	l.unsub = nil
	l.loading = false
	l.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (l *loadingState) isLoading() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loading
}

func (l *loadingState) mounted() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.unsub != nil
}

// page is a static screen: a title and a body. It does not observe the bus.
type page struct {
	route string
	title string
	body  string
}

func (p *page) Route() string         { return p.route }
func (p *page) Mount(context.Context) {}
func (p *page) Unmount()              {}
func (p *page) Render(_ context.Context, w io.Writer) {
	fmt.Fprintf(w, "== %s ==\n%s\n", p.title, p.body)
}

func NewHomeView() View {
	return &page{
		route: common.RouteHome,
		title: "Welcome to HotelHub",
		body:  "Find and book your next stay. Try 'properties' or 'bookings'.",
	}
}

func NewPropertiesView() View {
	return &page{
		route: common.RouteProperties,
		title: "Properties",
		body:  "No properties to show yet.",
	}
}

func NewBookingsView() View {
	return &page{
		route: common.RouteBookings,
		title: "My Bookings",
		body:  "You have no bookings.",
	}
}

// ProfileView renders the profile of the session user.
type ProfileView struct{}

func NewProfileView() *ProfileView { return &ProfileView{} }

func (v *ProfileView) Route() string         { return common.RouteProfile }
func (v *ProfileView) Mount(context.Context) {}
func (v *ProfileView) Unmount()              {}

func (v *ProfileView) Render(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "== Profile ==")
	store, err := session.FromContext(ctx)
	if err != nil {
		fmt.Fprintln(w, err.Error())
		return
	}
	u := store.User()
	if u == nil {
		fmt.Fprintln(w, "You are not logged in. Use 'login' to sign in.")
		return
	}
	renderProfile(w, u)
}

func renderProfile(w io.Writer, u *models.User) {
	p := u.Profile
	rows := []struct {
		label, value string
	}{
		{"Name", u.DisplayName()},
		{"Email", u.Email},
		{"Phone", models.StringOrDash(p.PhoneNumber)},
		{"Gender", models.StringOrDash(p.Gender)},
		{"Birth date", models.StringOrDash(p.BirthDate)},
		{"Nationality", models.StringOrDash(p.Nationality)},
		{"Language", models.StringOrDash(&p.PreferredLanguage)},
		{"Bio", models.StringOrDash(p.Bio)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %s\n", r.label+":", r.value)
	}
	if u.IsAdmin {
		fmt.Fprintln(w, "Role:        admin")
	} else if u.IsStaff {
		fmt.Fprintln(w, "Role:        staff")
	}
}
