package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/hotelhub/internal/client/client"
	"github.com/dmitrijs2005/hotelhub/internal/client/config"
	"github.com/dmitrijs2005/hotelhub/internal/client/services"
	"github.com/dmitrijs2005/hotelhub/internal/client/session"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/dmitrijs2005/hotelhub/internal/events"
	"github.com/dmitrijs2005/hotelhub/internal/filex"
	"github.com/dmitrijs2005/hotelhub/internal/logging"
)

var ErrUnknownRoute = errors.New("unknown route")

type App struct {
	config      *config.Config
	authService services.AuthService
	loading     *events.Bus[events.Loading]
	router      *Router
	navbar      *Navbar
	store       *session.Store
	reader      *bufio.Reader
	out         io.Writer
	logger      logging.Logger
	db          *sql.DB
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		logger.Error(ctx, "error preparing database directory", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.APIBaseURL)
	bus := events.NewLoadingBus()

	a := newApp(c, bus, os.Stdin, os.Stdout, logger)
	a.db = db
	a.setAuthService(services.NewAuthService(apiClient, db, bus, a,
		services.WithLogger(logger),
		services.WithLogoutDelay(c.LogoutDelay),
	))
	return a, nil
}

// newApp builds an App with its routes registered. The auth service is set
// separately because it needs the App as its Navigator.
func newApp(c *config.Config, bus *events.Bus[events.Loading], in io.Reader, out io.Writer, logger logging.Logger) *App {
	a := &App{
		config:  c,
		loading: bus,
		router:  NewRouter(out),
		reader:  bufio.NewReader(in),
		out:     out,
		logger:  logger,
	}

	a.router.Handle(common.RouteHome, NewHomeView)
	a.router.Handle(common.RouteProperties, NewPropertiesView)
	a.router.Handle(common.RouteBookings, NewBookingsView)
	a.router.Handle(common.RouteProfile, func() View { return NewProfileView() })
	a.router.Handle(common.RouteLogin, func() View { return NewLoginView(a.authService, a.loading, a) })
	a.router.Handle(common.RouteSignup, func() View { return NewSignupView(a.authService, a) })

	return a
}

func (a *App) setAuthService(as services.AuthService) {
	a.authService = as
	a.navbar = NewNavbar(as, a.loading)
	a.router.SetHeader(a.navbar.Render)
}

// Run installs the session store, restores a stored session if the token is
// still accepted and blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	ctx, store := session.Provide(ctx)
	a.store = store
	defer a.close(ctx)

	stop := a.loading.Subscribe(func(ev events.Loading) {
		store.SetLoading(ev.Loading)
	})
	defer stop()

	a.navbar.Mount(ctx)
	defer a.navbar.Unmount()

	a.router.Start(ctx)
	defer a.router.Stop()

	a.restoreSession(ctx)

	printlnFn("Welcome to HotelHub CLI (type 'help' for commands)")
	a.router.Navigate(common.RouteHome)

	runREPL(ctx, a, func() string { return a.navbar.Status(ctx) }, a.reader)
}

func (a *App) restoreSession(ctx context.Context) {
	u, err := a.authService.CurrentUser(ctx)
	if err != nil {
		var authErr *client.AuthError
		if !errors.As(err, &authErr) {
			a.logger.Warn(ctx, "stored session could not be restored", "error", err)
		}
		return
	}
	a.store.SetUser(u)
	a.logger.Debug(ctx, "session restored", "user_id", u.UserID)
}

func (a *App) close(ctx context.Context) {
	a.store.Close()
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing api client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
}

// Navigate satisfies services.Navigator.
func (a *App) Navigate(route string) {
	a.router.Navigate(route)
}

func (a *App) Goto(ctx context.Context, route string) error {
	if !a.router.Has(route) {
		printlnFn("No such page:", route)
		return fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	a.router.Navigate(route)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.store != nil && a.store.User() != nil
}
