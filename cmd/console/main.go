// Package main starts the interactive ledger console.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/console"
	"github.com/go-petr/pet-ledger/internal/interest"
	"github.com/go-petr/pet-ledger/internal/ledgerrepo"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = logger.WithContext(ctx)

	ledger := ledgerrepo.NewRepoMem()
	accounts := accountservice.New(ledger)
	transfers := transferservice.New(ledger, accounts)

	if config.InterestSchedule != "" {
		scheduler, err := interest.New(config.InterestSchedule, accounts, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot create interest scheduler")
		}

		scheduler.Start()
		defer scheduler.Stop()
	}

	if err := console.New(accounts, transfers, os.Stdin, os.Stdout).Run(ctx); err != nil {
		logger.Error().Err(err).Msg("console stopped")
	}
}
