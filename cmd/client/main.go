package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/webcrm-console/internal/client"
	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("webcrm-console")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	app, err := client.NewApp(cfg, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init console app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := app.Run(ctx)
	stop()

	if err = app.Close(); err != nil {
		log.Err(err).Msg("error closing console app")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("console run error")
	}
}
