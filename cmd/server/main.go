package main

import (
	"context"
	"fmt"

	"github.com/patas-felizes/backend/internal/config"
	httphandler "github.com/patas-felizes/backend/internal/handler/http"
	"github.com/patas-felizes/backend/internal/logger"
	"github.com/patas-felizes/backend/internal/server"
	"github.com/patas-felizes/backend/internal/service"
	"github.com/patas-felizes/backend/internal/store"
	"github.com/patas-felizes/backend/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("patas-felizes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	services := service.NewServices(repositories, *cfg, log)
	routes := httphandler.NewHandler(services, cfg.RateLimit, log).Init()

	srv, err := server.NewServer(routes, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
