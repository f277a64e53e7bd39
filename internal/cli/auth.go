package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarquez/tiendita/internal/api"
)

// Login prompts for credentials and signs in against the identity endpoint.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return err
		}
		fmt.Fprintln(a.out, "Login failed:", err)
		return err
	}

	a.setSession(sess)
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.Email)
	return nil
}

// Register prompts for credentials and creates a new account.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.SignUp(ctx, email, string(password))
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return err
	}

	a.setSession(sess)
	fmt.Fprintf(a.out, "Account created, signed in as %s\n", sess.Email)
	return nil
}

// Logout drops the persisted session and resets the cart.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.setSession(nil)
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}
