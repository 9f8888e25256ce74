package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
	"github.com/dmitrijs2005/hotelhub/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errViewNotMounted = errors.New("form view is not mounted")

// readCredentials prompts for an email and a password. Only the terminal
// read buffer is wiped; the returned Credentials holds its own string copy
// of the password for the request body.
func (a *App) readCredentials() (models.Credentials, error) {
	email, err := getSimpleText(a.reader, "Email address", a.out)
	if err != nil {
		return models.Credentials{}, err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return models.Credentials{}, err
	}
	defer common.WipeByteArray(password)

	return models.Credentials{Email: email, Password: string(password)}, nil
}

// Signup opens the signup view and submits the credentials typed by the
// user. On success the server message is printed and the login view is
// shown.
func (a *App) Signup(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in as", a.store.User().Email)
		return nil
	}

	a.router.Navigate(common.RouteSignup)
	v, ok := a.router.Current().(*SignupView)
	if !ok {
		return errViewNotMounted
	}

	creds, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := v.Submit(ctx, creds); err != nil {
		a.logger.Debug(ctx, "signup rejected", "error", err)
		a.router.Render()
		return err
	}

	printlnFn(v.Message())
	return nil
}

// Login opens the login view and submits the credentials typed by the user.
// A failed attempt redraws the form with the error.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in as", a.store.User().Email)
		return nil
	}

	a.router.Navigate(common.RouteLogin)
	v, ok := a.router.Current().(*LoginView)
	if !ok {
		return errViewNotMounted
	}

	creds, err := a.readCredentials()
	if err != nil {
		return err
	}

	if err := v.Submit(ctx, creds); err != nil {
		a.logger.Debug(ctx, "login rejected", "error", err)
		a.router.Render()
		return err
	}
	return nil
}

// Logout runs the navbar logout control.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You are not signed in")
		return nil
	}

	if err := a.navbar.Logout(ctx); err != nil {
		printlnFn("Logout failed:", err.Error())
		return err
	}
	return nil
}
