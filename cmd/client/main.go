package main

import (
	"context"
	"fmt"

	"github.com/memehoueibib/securecode-platform-sub001/internal/adapter"
	"github.com/memehoueibib/securecode-platform-sub001/internal/client"
	"github.com/memehoueibib/securecode-platform-sub001/internal/config"
	"github.com/memehoueibib/securecode-platform-sub001/internal/identity"
	"github.com/memehoueibib/securecode-platform-sub001/internal/logger"
	"github.com/memehoueibib/securecode-platform-sub001/internal/service"
	"github.com/memehoueibib/securecode-platform-sub001/internal/store"
	"github.com/memehoueibib/securecode-platform-sub001/internal/tui"
	"github.com/memehoueibib/securecode-platform-sub001/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("securecode-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("securecode-client", cfg.Client.LogPath)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	localStorages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	identities := identity.NewProvider()
	services := service.NewClientServices(localStorages, serverAdapter, identities, log)

	tracker := workers.NewSyncTracker(identities, services.SyncService, log,
		workers.WithInterval(cfg.Workers.SyncInterval),
		workers.WithManualStatusTracking(cfg.Workers.TrackManualSync),
	)

	ui, err := tui.New(services, tracker, tui.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	}, log)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(services, ui, tracker, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run()
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
