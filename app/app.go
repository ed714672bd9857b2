// file: app/app.go

package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"scoring-api/config"
	"scoring-api/db"
	"scoring-api/handler"
	"scoring-api/logger"
	"scoring-api/repository"
	"scoring-api/router"
	"scoring-api/service"
	"scoring-api/validation"
	"syscall"
	"time"

	"go.uber.org/multierr"
)

const (
	maxBodyBytes   = 1 << 20
	migrationsPath = "file://db/migrations"
)

// NewRouter wires the validation, auth and dispatch layers on top of the
// given cache and store.
func NewRouter(cfg config.Config, cache, store repository.Store) http.Handler {
	validator := validation.NewValidator(nil)
	authService := service.NewAuthService(cfg.Auth.Salt, cfg.Auth.AdminLogin, cfg.Auth.AdminSalt, nil)
	scoringService := service.NewScoringService(cache, store)
	dispatcher := service.NewDispatcher(validator, authService, scoringService)
	methodHandler := handler.NewMethodHandler(dispatcher, maxBodyBytes)

	return router.NewRouter(methodHandler)
}

// openStores connects the score cache and the interest store. The returned
// closers must be closed on shutdown.
func openStores(ctx context.Context, cfg config.Config) (cache, store repository.Store, closers []io.Closer, err error) {
	rdb, err := db.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	closers = append(closers, rdb)

	redisStore := repository.NewRedisStore(rdb)
	cache = repository.NewRetryStore(redisStore, cfg.Store.Timeout, 0, 0)

	switch cfg.Store.Backend {
	case "postgres":
		var database *sql.DB
		database, err = db.Connect(cfg)
		if err != nil {
			return nil, nil, closers, err
		}
		closers = append(closers, database)

		if err = db.Migrate(database, migrationsPath); err != nil {
			return nil, nil, closers, err
		}
		store = repository.NewRetryStore(repository.NewPostgresStore(database), cfg.Store.Timeout, cfg.Store.Retries, cfg.Store.Backoff)
	default:
		store = repository.NewRetryStore(redisStore, cfg.Store.Timeout, cfg.Store.Retries, cfg.Store.Backoff)
	}

	return cache, store, closers, nil
}

func closeAll(closers []io.Closer) error {
	var err error
	for i := len(closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, closers[i].Close())
	}
	return err
}

// Run serves the API until SIGINT or SIGTERM.
func Run(cfg config.Config) error {
	logger.Init(cfg.Log.Level, cfg.Log.Format)
	logger.Log.Info("Logger initialized")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache, store, closers, err := openStores(ctx, cfg)
	if err != nil {
		return multierr.Append(fmt.Errorf("failed to open stores: %w", err), closeAll(closers))
	}
	defer func() {
		if err := closeAll(closers); err != nil {
			logger.Log.WithError(err).Error("Failed to close stores")
		}
	}()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      NewRouter(cfg, cache, store),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Infof("Server starting on port :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
		logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Log.Info("Server exited properly")
	return nil
}
