package cli

import (
	"context"
	"time"

	"github.com/joanaapp/joana-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the account fields, validates them locally, and
// creates the account. A successful registration leaves the user logged in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	birthday, err := getSimpleText(a.reader, "Enter birthday (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}

	if err := validateRegister(name, email, birthday, password, confirm); err != nil {
		return err
	}

	sess, err := a.auth.Register(ctx, services.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Birthday: birthday,
	})
	if err != nil {
		return opError("register", err)
	}

	a.printf("Account created. Welcome, %s!\n", sess.User.Name)
	return nil
}

// Login prompts for credentials, validates them locally, and authenticates.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	if err := validateLogin(email, password); err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return opError("login", err)
	}

	a.printf("Logged in as %s.\n", sess.User.Email)
	return nil
}

// Logout asks for confirmation and clears the local session. The token stays
// valid server-side until it expires.
func (a *App) Logout(ctx context.Context) error {
	if !Confirm(a.reader, "Log out?", a.out) {
		a.printf("Cancelled.\n")
		return nil
	}

	if err := a.auth.Logout(ctx); err != nil {
		return opError("logout", err)
	}
	a.printf("Logged out.\n")
	return nil
}

// WhoAmI prints the cached identity and, when the token carries an expiry,
// how long the session is still honored by the server.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.State()
	if !s.Authenticated {
		a.printf("Not logged in.\n")
		return nil
	}

	a.printf("%s <%s>\n", s.User.Name, s.User.Email)
	if exp := a.sessions.TokenExpiry(ctx); !exp.IsZero() {
		if remaining := time.Until(exp); remaining > 0 {
			a.printf("Token valid for another %s.\n", remaining.Round(time.Minute))
		} else {
			a.printf("Token expired; the next request will require a new login.\n")
		}
	}
	return nil
}
