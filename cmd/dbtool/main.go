package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"route-resolver-service/internal/adapters/repositories"
	"route-resolver-service/internal/config"
	"route-resolver-service/internal/platform/db"
	"route-resolver-service/internal/platform/obs"
	"strings"
	"time"

	"go.uber.org/zap"
)

// dbtool creates the resolution log schema ahead of the first server start.
func main() {
	foundEnv := config.LoadDotEnv()

	logger, err := obs.NewLogger(config.Get("LOG_LEVEL", "info"), "console")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if !foundEnv {
		logger.Info("no .env file found (using environment variables)")
	}

	if err := run(logger); err != nil {
		logger.Error("schema initialization failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	databaseURL := strings.TrimSpace(config.Get("DATABASE_URL", ""))
	dbPath := strings.TrimSpace(config.Get("DB_PATH", ""))

	var (
		conn       *sql.DB
		err        error
		initSchema func(context.Context, *sql.DB) error
		backend    string
	)
	switch {
	case databaseURL != "":
		conn, err = db.Open(ctx, databaseURL)
		initSchema, backend = repositories.InitPostgresSchema, "postgres"
	case dbPath != "":
		conn, err = db.OpenSQLite(ctx, dbPath)
		initSchema, backend = repositories.InitSchema, "sqlite"
	default:
		return errors.New("DATABASE_URL or DB_PATH is required")
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	logger.Info("initializing database schema", zap.String("backend", backend))
	if err := initSchema(ctx, conn); err != nil {
		return err
	}
	logger.Info("schema ready")
	return nil
}
