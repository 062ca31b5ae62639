package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"route-resolver-service/internal/adapters/repositories"
	"route-resolver-service/internal/adapters/routeapi"
	"route-resolver-service/internal/api"
	"route-resolver-service/internal/config"
	"route-resolver-service/internal/platform/db"
	"route-resolver-service/internal/platform/obs"
	"route-resolver-service/internal/ports"
	"route-resolver-service/internal/services"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (HTTP fetcher, resolution log) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	foundEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	history, conn, err := openHistory(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if conn != nil {
		defer conn.Close()
	}

	endpoints, err := services.NewEndpointResolver(cfg.EndpointTemplates())
	if err != nil {
		return err
	}
	fetcher, err := routeapi.NewHTTPFetcher(cfg.ProxyBaseURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}
	resolver, err := services.NewRouteResolver(endpoints, fetcher, history, logger)
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Dependencies{
		Resolver:       resolver,
		History:        history,
		HistoryLimit:   cfg.HistoryLimit,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	})

	// Write timeout covers two sequential upstream attempts.
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openHistory picks the resolution log backend: PostgreSQL when DATABASE_URL
// is set, SQLite when DB_PATH is set, none otherwise. The schema is created
// on startup.
func openHistory(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.ResolutionLog, *sql.DB, error) {
	switch {
	case cfg.DatabaseURL != "":
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitPostgresSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Info("resolution log enabled", zap.String("backend", "postgres"))
		return repositories.NewSQLResolutionLog(conn, logger), conn, nil

	case cfg.DBPath != "":
		conn, err := db.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		if err := repositories.InitSchema(ctx, conn); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
		logger.Info("resolution log enabled", zap.String("backend", "sqlite"), zap.String("path", cfg.DBPath))
		return repositories.NewSqliteResolutionLog(conn, logger), conn, nil

	default:
		logger.Info("resolution log disabled (set DATABASE_URL or DB_PATH)")
		return nil, nil, nil
	}
}
