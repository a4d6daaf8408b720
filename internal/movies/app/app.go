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

	httpapi "github.com/aussiebroadwan/movies/internal/movies/http"
	"github.com/aussiebroadwan/movies/internal/movies/metrics"
	"github.com/aussiebroadwan/movies/internal/movies/service"
	"github.com/aussiebroadwan/movies/internal/movies/store"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/postgres"
	"github.com/aussiebroadwan/movies/internal/movies/store/drivers/sqlite"
	"github.com/aussiebroadwan/movies/pkg/slogx"
	"github.com/aussiebroadwan/movies/pkg/tmdb"
)

// BuildVersion is overridden at build time via -ldflags "-X ...app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application owns the store, services and HTTP server of the movies service.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db   store.Store
	tmdb *tmdb.Client

	credentialService   *service.CredentialService
	accountService      *service.AccountService
	movieService        *service.MovieService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New opens the database, applies migrations and wires every dependency.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg:    cfg,
		logger: NewLogger(cfg),
	}

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// NewLogger builds the process logger from cfg and installs it as default.
func NewLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service:    "movies",
		Version:    BuildVersion,
		Env:        cfg.Env,
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
	})
}

// Handler exposes the router, mainly for in-process tests.
func (app *Application) Handler() http.Handler { return app.router }

func (app *Application) Accounts() *service.AccountService { return app.accountService }

// Run starts the server and blocks until SIGINT/SIGTERM or a server error.
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("movies service starting",
		slog.Int("port", app.cfg.Port),
		slog.String("driver", app.cfg.DatabaseDriver),
		slog.Bool("tmdb_configured", app.tmdb.Configured()))
	if !app.tmdb.Configured() {
		app.logger.Warn("TMDB_API_KEY is not set; movie lookups will fail")
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops housekeeping and closes the store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down movies service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slogx.Err(err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slogx.Err(err))
		}
	}

	app.housekeepingService.Stop()

	return app.Close()
}

// Close releases the store without touching the server. CLI commands that
// never call Run use it.
func (app *Application) Close() error {
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slogx.Err(err))
		return err
	}
	app.logger.Info("movies service stopped")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	db, err := OpenStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", slog.String("driver", app.cfg.DatabaseDriver))
	return nil
}

// OpenStore opens the configured driver without applying migrations.
func OpenStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		st, err := postgres.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return st, nil
	case DriverSQLite, "":
		st, err := sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.DatabaseDriver)
	}
}

// Migrate applies pending migrations and reports the resulting schema
// version.
func Migrate(ctx context.Context, cfg Config) (uint, error) {
	st, err := OpenStore(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		return 0, err
	}

	v, ok := st.(interface {
		MigrationVersion() (uint, bool, error)
	})
	if !ok {
		return 0, nil
	}
	version, dirty, err := v.MigrationVersion()
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}

func (app *Application) initServices() {
	app.tmdb = tmdb.New(app.cfg.TMDBBaseURL, app.cfg.TMDBAPIKey,
		tmdb.WithHTTPClient(&http.Client{Timeout: app.cfg.TMDBTimeout}),
		tmdb.WithRateLimit(app.cfg.TMDBRequestsPerSecond, max(1, int(app.cfg.TMDBRequestsPerSecond))),
		tmdb.WithRequestHook(func(endpoint string, err error) {
			outcome := "ok"
			if err != nil {
				outcome = "error"
			}
			metrics.TMDBRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		}),
	)

	app.credentialService = &service.CredentialService{
		Store:      app.db,
		RotateSalt: app.cfg.RotateSalt,
	}
	app.accountService = &service.AccountService{Credentials: app.credentialService}
	app.movieService = &service.MovieService{
		Store: app.db,
		TMDB:  app.tmdb,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
		app.cfg.PurgeAfter,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.logger)
	router.AccountService = app.accountService
	router.MovieService = app.movieService
	router.TMDBConfigured = app.tmdb.Configured()
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
