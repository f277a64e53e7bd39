// Package services contains the application services of the storefront
// client: authentication, catalog/orders, and profile management.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmarquez/tiendita/internal/api"
	"github.com/dmarquez/tiendita/internal/logging"
	"github.com/dmarquez/tiendita/internal/session"
)

// AuthService defines authentication operations for the client.
//
// Contract:
//   - SignIn / SignUp: authenticate against the identity endpoint and
//     persist the resulting session locally.
//   - Restore: load the persisted session at startup; stale or unreadable
//     sessions come back as nil, never as a hard failure.
//   - SignOut: drop the persisted session.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*session.Session, error)
	SignUp(ctx context.Context, email, password string) (*session.Session, error)
	Restore(ctx context.Context) (*session.Session, error)
	SignOut(ctx context.Context) error
}

type authService struct {
	client api.AuthClient
	store  session.Store
	log    logging.Logger
}

// NewAuthService constructs an AuthService bound to the identity client and
// the local session store.
func NewAuthService(client api.AuthClient, store session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// SignIn authenticates and persists the session. A persistence failure does
// not fail the sign-in: the session stays usable in memory and the error is
// only logged, so a broken local store never locks the user out.
func (a *authService) SignIn(ctx context.Context, email, password string) (*session.Session, error) {
	creds, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return a.persist(ctx, creds.LocalID, creds.Email, creds.Token), nil
}

// SignUp creates the account and persists the session like SignIn.
func (a *authService) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	creds, err := a.client.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign up: %w", err)
	}
	return a.persist(ctx, creds.LocalID, creds.Email, creds.Token), nil
}

func (a *authService) persist(ctx context.Context, localID, email, token string) *session.Session {
	sess := session.Session{LocalID: localID, Email: email, Token: token}
	if err := a.store.Save(ctx, sess); err != nil {
		a.log.Warn(ctx, "session not persisted", "error", err)
	}
	return &sess
}

// Restore returns the persisted session, if any. Expired tokens clear the
// store and report no session; load failures are logged and also report no
// session, so startup never breaks on a bad local store.
func (a *authService) Restore(ctx context.Context) (*session.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		a.log.Warn(ctx, "stored session unreadable", "error", err)
		return nil, nil
	}
	if sess == nil {
		return nil, nil
	}
	if tokenExpired(sess.Token) {
		a.log.Info(ctx, "stored session expired", "user", sess.LocalID)
		if err := a.store.Clear(ctx); err != nil {
			a.log.Error(ctx, "failed to clear expired session", "error", err)
		}
		return nil, nil
	}
	return sess, nil
}

// SignOut removes the persisted session.
func (a *authService) SignOut(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification belongs to the identity endpoint. Tokens that do
// not parse as JWTs or carry no exp are treated as opaque, never-expiring
// strings.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(nowFn())
}
