package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/meridiancon/companion-sync/internal/adapter"
	"github.com/meridiancon/companion-sync/internal/cache"
	"github.com/meridiancon/companion-sync/internal/client"
	"github.com/meridiancon/companion-sync/internal/config"
	"github.com/meridiancon/companion-sync/internal/logger"
	"github.com/meridiancon/companion-sync/internal/service"
	"github.com/meridiancon/companion-sync/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("companion-sync")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fetcher := adapter.NewHTTPDeltaFetcher(cfg.Adapter, log)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	entityStore := cache.NewStore()
	services := service.NewClientServices(entityStore, storages, fetcher, cfg.App, log)

	app, err := client.NewApp(entityStore, services, cfg.App, cfg.Adapter, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
