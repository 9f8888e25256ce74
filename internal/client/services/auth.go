// Package services contains the application services of the HotelHub client.
// This file defines the authentication service: signup, login, current user
// and logout, together with the durable session tokens they maintain.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hotelhub/internal/client/client"
	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/hotelhub/internal/common"
	"github.com/dmitrijs2005/hotelhub/internal/dbx"
	"github.com/dmitrijs2005/hotelhub/internal/events"
	"github.com/dmitrijs2005/hotelhub/internal/logging"
)

const DefaultLogoutDelay = 500 * time.Millisecond

// Navigator switches the active view.
type Navigator interface {
	Navigate(route string)
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Signup: create an account on the server.
//   - Login: authenticate and persist access token, refresh token and user id.
//   - CurrentUser: fetch the profile of the user owning the stored token.
//   - Logout: forget the stored tokens and return to the login view.
//   - Close: release underlying client resources.
//
// Login and Logout publish Loading{true} before doing any work and
// Loading{false} after it, whatever the outcome. Errors are returned
// unchanged from the transport so views can show them verbatim.
type AuthService interface {
	Signup(ctx context.Context, creds models.SignupCredentials) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client      client.Client
	db          *sql.DB
	loading     *events.Bus[events.Loading]
	nav         Navigator
	logger      logging.Logger
	logoutDelay time.Duration
}

type Option func(*authService)

func WithLogger(l logging.Logger) Option {
	return func(a *authService) { a.logger = l.With("component", "auth") }
}

func WithLogoutDelay(d time.Duration) Option {
	return func(a *authService) { a.logoutDelay = d }
}

// NewAuthService wires the service to the API client, the session database,
// the loading bus and the navigator used by Logout.
func NewAuthService(c client.Client, db *sql.DB, loading *events.Bus[events.Loading], nav Navigator, opts ...Option) AuthService {
	a := &authService{
		client:      c,
		db:          db,
		loading:     loading,
		nav:         nav,
		logger:      logging.NewDiscard(),
		logoutDelay: DefaultLogoutDelay,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// statusOf returns the HTTP status carried by err, 0 when there is none.
func statusOf(err error) int {
	var re *client.RequestError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}

func (a *authService) setLoading(v bool) {
	a.loading.Publish(events.Loading{Loading: v})
}

func (a *authService) Signup(ctx context.Context, creds models.SignupCredentials) (*models.AuthResponse, error) {
	resp, err := a.client.Signup(ctx, creds)
	if err != nil {
		a.logger.Warn(ctx, "signup failed", "status", statusOf(err), "error", err)
		return nil, err
	}
	a.logger.Info(ctx, "signup succeeded")
	return resp, nil
}

func (a *authService) Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error) {
	a.setLoading(true)
	defer a.setLoading(false)

	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "status", statusOf(err), "error", err)
		return nil, err
	}

	if err := a.saveTokens(ctx, resp); err != nil {
		a.logger.Error(ctx, "saving session tokens failed", "error", err)
		return nil, fmt.Errorf("token saving error: %w", err)
	}

	a.logger.Info(ctx, "login succeeded", "user_id", resp.UserID)
	return resp, nil
}

// saveTokens writes the three session keys in a single transaction.
func (a *authService) saveTokens(ctx context.Context, resp *models.LoginResponse) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, resp.AccessToken); err != nil {
			return err
		}
		if err := repo.Set(ctx, common.RefreshTokenKey, resp.RefreshToken); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserIDKey, strconv.FormatInt(resp.UserID, 10))
	})
}

// CurrentUser never reaches the network when no access token is stored.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	token, ok, err := a.getMetadataRepo().Get(ctx, common.AccessTokenKey)
	if err != nil {
		return nil, fmt.Errorf("access token read error: %w", err)
	}
	if !ok || token == "" {
		return nil, &client.AuthError{Message: client.MsgNoAccessToken}
	}

	user, err := a.client.CurrentUser(ctx, token)
	if err != nil {
		a.logger.Warn(ctx, "fetching current user failed", "status", statusOf(err), "error", err)
		return nil, err
	}
	a.logger.Debug(ctx, "current user fetched", "user_id", user.UserID)
	return user, nil
}

// Logout removes the session keys, holds for the logout delay and navigates
// to the login view. The keys are removed even when ctx is already done; a
// cancelled delay skips the navigation and returns ctx.Err().
func (a *authService) Logout(ctx context.Context) error {
	a.setLoading(true)
	defer a.setLoading(false)

	err := dbx.WithTx(context.WithoutCancel(ctx), a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.SessionKeys...)
	})
	if err != nil {
		a.logger.Error(ctx, "clearing session tokens failed", "error", err)
		return fmt.Errorf("token clearing error: %w", err)
	}

	timer := time.NewTimer(a.logoutDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		a.logger.Warn(ctx, "logout interrupted", "error", ctx.Err())
		return ctx.Err()
	case <-timer.C:
	}

	if a.nav != nil {
		a.nav.Navigate(common.RouteLogin)
	}
	a.logger.Info(ctx, "logout succeeded")
	return nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
