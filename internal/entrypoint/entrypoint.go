package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/logging"
	"github.com/mrlokans/bookshelf/internal/representations"
	"github.com/mrlokans/bookshelf/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then shuts it down
// within the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill -2 is SIGINT, plain kill is SIGTERM; SIGKILL cannot be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Dur("timeout", timeout).Msg("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("Server exiting")
}

// Setup validates the configuration, initializes logging and opens the
// database. The returned cleanup closes the database and the log file.
func Setup(cfg *config.Config) (*database.Database, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	_, logCloser := logging.Init(cfg.Log)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		logCloser.Close()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
		logCloser.Close()
	}
	return db, cleanup, nil
}

// NewRouter wires the library service and the HTTP layer on top of db.
func NewRouter(cfg *config.Config, db *database.Database, version string) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *http_controllers.Metrics
	if cfg.Metrics.Enabled {
		metrics = http_controllers.NewMetrics()
	}

	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Library:   services.NewLibraryService(db.Authors, db.Books),
		Presenter: representations.NewPresenter(),
		Database:  db,
		Metrics:   metrics,
		Version:   version,
	})
}

// Run starts the service and blocks until it is shut down.
func Run(cfg *config.Config, version string) {
	db, cleanup, err := Setup(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start")
	}

	log.Info().
		Str("version", version).
		Str("environment", cfg.Global.Environment).
		Str("database_driver", string(cfg.Database.Driver)).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Starting bookshelf")

	router := NewRouter(cfg, db, version)

	Serve(router, cfg, func(ctx context.Context) {
		cleanup()
	})
}

// Migrate applies the schema and exits.
func Migrate(cfg *config.Config) error {
	_, cleanup, err := Setup(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	log.Info().Str("driver", string(cfg.Database.Driver)).Msg("Database schema is up to date")
	return nil
}
