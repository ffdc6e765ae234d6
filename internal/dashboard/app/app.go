package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/farmops/farmboard/internal/dashboard/http"
	"github.com/farmops/farmboard/internal/dashboard/service"
	"github.com/farmops/farmboard/internal/dashboard/store"
	"github.com/farmops/farmboard/internal/dashboard/store/drivers/sqlite"
	"github.com/farmops/farmboard/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the dashboard service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db          store.Store
	projections *service.Projections

	refreshService   *service.RefreshService
	accountsService  *service.AccountsService
	cardsService     *service.CardsService
	proxiesService   *service.ProxiesService
	campaignsService *service.CampaignsService
	expensesService  *service.ExpensesService
	workspaceService *service.WorkspaceService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "dashboard-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("dashboard service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down dashboard service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("dashboard service stopped")
	return nil
}

// initDatabase opens the document store and applies migrations.
func (app *Application) initDatabase() error {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn, app.logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initServices initializes the entity repositories around a single shared
// projection cache.
func (app *Application) initServices() {
	app.projections = service.NewProjections()

	app.refreshService = &service.RefreshService{Store: app.db, Projections: app.projections}
	app.accountsService = &service.AccountsService{Store: app.db, Projections: app.projections}
	app.cardsService = &service.CardsService{Store: app.db, Projections: app.projections}
	app.proxiesService = &service.ProxiesService{Store: app.db, Projections: app.projections}
	app.campaignsService = &service.CampaignsService{Store: app.db, Projections: app.projections}
	app.expensesService = &service.ExpensesService{Store: app.db, Projections: app.projections}
	app.workspaceService = &service.WorkspaceService{Store: app.db, Projections: app.projections}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		[]byte(app.cfg.JWTSecret),
		app.cfg.Issuer,
		BuildVersion,
		app.cfg.CORSAllowedOrigins,
		app.db,
		app.logger,
	)

	router.Projections = app.projections
	router.RefreshService = app.refreshService
	router.AccountsService = app.accountsService
	router.CardsService = app.cardsService
	router.ProxiesService = app.proxiesService
	router.CampaignsService = app.campaignsService
	router.ExpensesService = app.expensesService
	router.WorkspaceService = app.workspaceService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
