// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-profiles/internal/adapter"
	"github.com/MKhiriev/go-profiles/internal/config"
	"github.com/MKhiriev/go-profiles/internal/handler"
	"github.com/MKhiriev/go-profiles/internal/logger"
	"github.com/MKhiriev/go-profiles/internal/metrics"
	"github.com/MKhiriev/go-profiles/internal/server"
	"github.com/MKhiriev/go-profiles/internal/service"
	"github.com/MKhiriev/go-profiles/internal/store"
	"github.com/MKhiriev/go-profiles/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(service.ServiceName, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(service.ServiceName, cfg.App.LogLevel)

	ctx := context.Background()

	storage, db, err := store.NewStorage(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storage")
	}
	defer db.Close()

	adapters, err := adapter.NewAdapters(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}
	defer adapters.Close()

	services, err := service.NewServices(storage, adapters, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
