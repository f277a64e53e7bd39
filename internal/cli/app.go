// Package cli implements the interactive storefront client: a line-oriented
// shell for browsing the catalog, managing the cart and placing orders.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmarquez/tiendita/internal/api"
	"github.com/dmarquez/tiendita/internal/cart"
	"github.com/dmarquez/tiendita/internal/config"
	"github.com/dmarquez/tiendita/internal/filex"
	"github.com/dmarquez/tiendita/internal/logging"
	"github.com/dmarquez/tiendita/internal/services"
	"github.com/dmarquez/tiendita/internal/session"
)

// App wires the services together and holds the per-process UI state: the
// current session and the cart.
type App struct {
	config  *config.Config
	auth    services.AuthService
	shop    services.ShopService
	profile services.ProfileService

	cart *cart.State
	sess *session.Session

	reader *bufio.Reader
	out    io.Writer
	log    logging.Logger
}

// NewApp builds the application from configuration: session store (backend
// chosen here, once), HTTP client, services. The persisted session, if any,
// is restored so the user stays signed in across restarts.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewTextLogger(os.Stderr)

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(c.SessionBackend, c.DatabaseDSN, dataDir)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		return nil, err
	}

	client := api.NewHTTPClient(c.ShopBaseURL, c.AuthBaseURL, c.APIKey, c.RequestTimeout)

	app := &App{
		config:  c,
		auth:    services.NewAuthService(client, store, log.With("component", "auth")),
		shop:    services.NewShopService(client),
		profile: services.NewProfileService(client),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}

	sess, err := app.auth.Restore(ctx)
	if err != nil {
		return nil, err
	}
	app.setSession(sess)

	return app, nil
}

// setSession swaps the active session and rebinds the cart owner. The cart
// itself is ephemeral and starts empty.
func (a *App) setSession(sess *session.Session) {
	a.sess = sess
	user := ""
	if sess != nil {
		user = sess.LocalID
	}
	a.cart = cart.New(user)
}

func (a *App) isLoggedIn() bool {
	return a.sess != nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
