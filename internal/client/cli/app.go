package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/config"
	"github.com/dmikhr/stylecart/internal/client/repositories/settings"
	"github.com/dmikhr/stylecart/internal/client/services"
	"github.com/dmikhr/stylecart/internal/client/store"
	"github.com/dmikhr/stylecart/internal/common"
	"github.com/dmikhr/stylecart/internal/logging"
	"github.com/dmikhr/stylecart/internal/urlx"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	db        *sql.DB
	settings  settings.Repository
	apiClient *api.HTTPClient
	session   services.SessionManager
	cart      *services.Cart
	catalog   *services.Catalog
	checkout  *services.Checkout
	reader    *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	db, err := store.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	repo := settings.NewSQLiteRepository(db)

	// A previously stored endpoint wins over the configured default.
	baseURL := urlx.NormalizeBaseURL(c.BaseURL)
	if stored, err := repo.Get(ctx, settings.KeyBaseURL); err == nil && len(stored) > 0 {
		baseURL = urlx.NormalizeBaseURL(string(stored))
	}

	apiClient := api.NewHTTPClient(baseURL, c.RequestTimeout)
	session := services.NewSessionManager(apiClient, repo, log)
	cart := services.NewCart()
	catalog := services.NewCatalog(apiClient, session, log)
	checkout := services.NewCheckout(apiClient, session, cart, catalog, log)

	if err := session.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore session", "error", err)
	}

	return &App{
		config:    c,
		log:       log,
		db:        db,
		settings:  repo,
		apiClient: apiClient,
		session:   session,
		cart:      cart,
		catalog:   catalog,
		checkout:  checkout,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// tearDownSession clears everything that depends on the session: cart
// contents and the local order history. Used on logout and on any detected
// auth expiry.
func (a *App) tearDownSession() {
	a.cart.Clear()
	a.checkout.ClearHistory()
}

// report turns an action error into a transient status line for the user.
// All sentinel conditions get a short, friendly wording; anything else is
// printed verbatim.
func (a *App) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, common.ErrNotAuthenticated):
		fmt.Println("Please login first.")
	case errors.Is(err, common.ErrEmptyCart):
		fmt.Println("Cart is empty, nothing to checkout.")
	case errors.Is(err, common.ErrAdminRequired):
		fmt.Println("Admin role required.")
	case errors.Is(err, common.ErrAuthExpired):
		fmt.Printf("Auth expired? %v\n", err)
	case errors.Is(err, api.ErrUnavailable):
		fmt.Printf("Server unavailable: %v\n", err)
	default:
		fmt.Printf("Error: %v\n", err)
	}
}
