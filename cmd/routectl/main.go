package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"route-resolver-service/internal/adapters/catalog"
	"route-resolver-service/internal/adapters/routeapi"
	"route-resolver-service/internal/cli"
	"route-resolver-service/internal/config"
	"route-resolver-service/internal/platform/obs"
	"route-resolver-service/internal/services"
	"syscall"
)

func main() {
	config.LoadDotEnv()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorMessage(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Keep stdout for command output; only warnings and errors are logged.
	logger, err := obs.NewLogger(config.Get("ROUTECTL_LOG_LEVEL", "warn"), "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	endpoints, err := services.NewEndpointResolver(cfg.EndpointTemplates())
	if err != nil {
		return err
	}
	fetcher, err := routeapi.NewHTTPFetcher(cfg.ProxyBaseURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}
	resolver, err := services.NewRouteResolver(endpoints, fetcher, nil, logger)
	if err != nil {
		return err
	}
	catalogClient, err := catalog.NewHTTPCatalog(cfg.CatalogBaseURL, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}

	cli.SetServices(resolver, catalogClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Execute(ctx)
}
