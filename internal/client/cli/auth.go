package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/salesdesk/internal/client/api"
	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
	"github.com/dmitrijs2005/salesdesk/internal/client/router"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password, starts a session and opens the
// dashboard. Failures are printed with the server's message.
func (a *App) Login(ctx context.Context) error {
	defer a.enter()()
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	form := forms.LoginForm{Email: email, Password: string(password)}
	if err := form.Validate(); err != nil {
		renderError(a.out, err)
		return err
	}
	u, err := a.session.Login(ctx, form.Email, form.Password)
	if err != nil {
		renderError(a.out, errors.New(api.Message(err, "Login failed. Please check your credentials.")))
		return err
	}
	a.log.Info(ctx, "logged in", "user", u.ID)
	printlnFn("Welcome, " + u.Name + "!")
	return a.Open(ctx, router.PathDashboard)
}

// Signup registers an account with the fields asked one by one and
// signs it in.
func (a *App) Signup(ctx context.Context) error {
	defer a.enter()()
	form := forms.NewSignupForm()
	if err := fillForm(a.reader, a.out, &form, forms.SignupFields(), nil); err != nil {
		renderError(a.out, err)
		return err
	}
	if err := form.Validate(); err != nil {
		renderError(a.out, err)
		return err
	}
	u, err := a.session.Signup(ctx, form.Payload())
	if err != nil {
		renderError(a.out, errors.New(api.Message(err, "Signup failed. Please try again.")))
		return err
	}
	printlnFn("Welcome, " + u.Name + "!")
	return a.Open(ctx, router.PathDashboard)
}

// Logout ends the session locally even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	defer a.enter()()
	err := a.session.Logout(ctx)
	if err != nil {
		a.log.Warn(ctx, "server logout failed", "error", err)
	}
	a.route = router.PathLogin
	printlnFn("Logged out.")
	return err
}
