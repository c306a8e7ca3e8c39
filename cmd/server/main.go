package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webcrm-console/internal/config"
	handler "github.com/MKhiriev/webcrm-console/internal/handler/http"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/sandbox"
	"github.com/MKhiriev/webcrm-console/internal/server"
	"github.com/MKhiriev/webcrm-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("webcrm-sandbox")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Dur("request_timeout", cfg.RequestTimeout).
		Int("rate_limit", cfg.RateLimit).
		Dur("token_duration", cfg.TokenDuration).
		Msg("received configs")

	store := sandbox.NewStore(log.WithComponent("store"))
	h := handler.NewHandler(store, cfg, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
