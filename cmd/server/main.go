package main

import (
	"context"
	"fmt"

	"github.com/StephEngl/KanMind/internal/config"
	myHTTP "github.com/StephEngl/KanMind/internal/handler/http"
	"github.com/StephEngl/KanMind/internal/logger"
	"github.com/StephEngl/KanMind/internal/server"
	"github.com/StephEngl/KanMind/internal/service"
	"github.com/StephEngl/KanMind/internal/store"
	"github.com/StephEngl/KanMind/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("kanmind-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close() //nolint:errcheck // process is exiting anyway

	services := service.NewServices(storages, *cfg, log)

	guest, err := services.AuthService.EnsureGuestAccount(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding guest account")
	}

	workers.NewWorkers(ctx, cfg.Workers, guest, storages.BoardRepository, log).Run()

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
