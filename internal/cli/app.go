// Package cli wires the RealtyDesk terminal application: it owns the slot
// store, the services, the router, and the interactive loop on top of them.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/realtydesk/internal/config"
	"github.com/dmitrijs2005/realtydesk/internal/logging"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/credentials"
	"github.com/dmitrijs2005/realtydesk/internal/repositories/sessions"
	"github.com/dmitrijs2005/realtydesk/internal/router"
	"github.com/dmitrijs2005/realtydesk/internal/services"
	"github.com/dmitrijs2005/realtydesk/internal/storage"
	"github.com/dmitrijs2005/realtydesk/internal/ui"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    storage.SlotStore
	auth     *services.AuthService
	accounts *services.AccountsService
	router   *router.Router
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp opens the configured slot store and assembles the application on
// top of it. The caller must Close the returned App.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	store, err := storage.Open(ctx, cfg.StorageDriver, cfg.StateDir)
	if err != nil {
		logger.Error(ctx, "opening storage", "driver", cfg.StorageDriver, "error", err)
		return nil, err
	}

	userRepo := credentials.NewSlotRepository(store, logger)
	sessRepo := sessions.NewSlotRepository(store, logger)

	a := &App{
		config:   cfg,
		logger:   logger,
		store:    store,
		auth:     services.NewAuthService(userRepo, sessRepo, logger),
		accounts: services.NewAccountsService(userRepo, logger),
		router:   router.New(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.registerRoutes()
	return a, nil
}

func (a *App) registerRoutes() {
	a.router.Handle(router.PathHome, a.homePage)
	a.router.Handle(router.PathLogin, func(*router.Ctx) (string, error) { return ui.LoginPage(), nil })
	a.router.Handle(router.PathRegister, func(*router.Ctx) (string, error) { return ui.RegisterPage(), nil })
	a.router.Handle(router.PathResetPassword, func(*router.Ctx) (string, error) { return ui.ResetPasswordPage(), nil })
	a.router.Handle(router.PathAccount, router.RequireAuth(a.auth, a.accountPage))
	a.router.Handle(router.PathAdmin, router.RequireAdmin(a.auth, a.adminPage))
}

func (a *App) homePage(c *router.Ctx) (string, error) {
	sess, err := a.auth.CurrentUser(c.Context())
	if err != nil {
		return "", err
	}
	return ui.HomePage(sess), nil
}

func (a *App) accountPage(c *router.Ctx) (string, error) {
	sess, err := a.auth.CurrentUser(c.Context())
	if err != nil {
		return "", err
	}
	return ui.AccountPage(sess), nil
}

func (a *App) adminPage(c *router.Ctx) (string, error) {
	users, err := a.accounts.List(c.Context(), services.AccountFilter{})
	if err != nil {
		return "", err
	}
	return ui.AdminDashboardPage(users), nil
}

// Open navigates to path and prints the rendered page.
func (a *App) Open(ctx context.Context, path string) error {
	out, err := a.router.Navigate(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, out)
	return nil
}

// Back returns to the previous page in history.
func (a *App) Back(ctx context.Context) error {
	out, err := a.router.Back(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, out)
	return nil
}

// Run shows the home page and hands control to the interactive loop.
func (a *App) Run(ctx context.Context) {
	if err := a.Open(ctx, router.PathHome); err != nil {
		a.logger.Error(ctx, "rendering home page", "error", err)
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// status labels the prompt with the current route and identity.
func (a *App) status(ctx context.Context) string {
	s := a.router.Current()
	sess, err := a.auth.CurrentUser(ctx)
	if err == nil && sess != nil {
		s += " " + sess.User.Email
	}
	return s
}

func (a *App) Close() error {
	return a.store.Close()
}
