package main

import (
	"context"
	"fmt"

	"github.com/openscilab/lab-auth-keeper/internal/adapter"
	"github.com/openscilab/lab-auth-keeper/internal/config"
	"github.com/openscilab/lab-auth-keeper/internal/crypto"
	"github.com/openscilab/lab-auth-keeper/internal/handler"
	"github.com/openscilab/lab-auth-keeper/internal/logger"
	"github.com/openscilab/lab-auth-keeper/internal/server"
	"github.com/openscilab/lab-auth-keeper/internal/service"
	"github.com/openscilab/lab-auth-keeper/internal/store"
	"github.com/openscilab/lab-auth-keeper/internal/workers"
	"github.com/openscilab/lab-auth-keeper/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("lab-auth-keeper")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)

	envelope := crypto.NewEnvelopeService(cfg.Auth.DeploymentKey)
	emails, err := adapter.NewHTTPEmailAdapter(cfg.Email, envelope, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating email adapter")
	}

	services := service.NewServices(repositories, emails, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	maintenance := workers.NewWorkers(services, cfg.Workers, log)
	maintenance.Run()
	defer maintenance.Stop()

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
