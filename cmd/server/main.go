package main

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/TessVincent/prismhealth/internal/config"
	kc "github.com/TessVincent/prismhealth/internal/crypto"
	"github.com/TessVincent/prismhealth/internal/fhe"
	"github.com/TessVincent/prismhealth/internal/handler"
	"github.com/TessVincent/prismhealth/internal/logger"
	"github.com/TessVincent/prismhealth/internal/server"
	"github.com/TessVincent/prismhealth/internal/service"
	"github.com/TessVincent/prismhealth/internal/store"
	"github.com/TessVincent/prismhealth/internal/workers"
	"github.com/TessVincent/prismhealth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	ctx := context.Background()

	log := logger.NewLogger("ledger")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Uint64("chain_id", cfg.App.ChainID).
		Str("contract", cfg.App.ContractAddress).
		Str("driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db)
	domain := fhe.NewDomain(cfg.App.ChainID, common.HexToAddress(cfg.Engine.OracleAddress))
	coprocessor := fhe.NewCoprocessor(storages.Engine, kc.NewKeyChain(), cfg.Engine, domain, log)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, coprocessor, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
