package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/webcrm-console/internal/adapter"
	"github.com/MKhiriev/webcrm-console/internal/config"
	"github.com/MKhiriev/webcrm-console/internal/logger"
	"github.com/MKhiriev/webcrm-console/internal/service"
	"github.com/MKhiriev/webcrm-console/internal/session"
	"github.com/MKhiriev/webcrm-console/internal/store"
	"github.com/MKhiriev/webcrm-console/internal/tui"
	"github.com/MKhiriev/webcrm-console/internal/validators"
	"github.com/MKhiriev/webcrm-console/internal/workers"
	"github.com/MKhiriev/webcrm-console/models"
)

// App owns every long-lived component of the console.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	storages *store.ClientStorages
	broker   *session.Broker
	sessions *session.Manager
	services *service.ClientServices
	ui       *tui.TUI
}

var _ Client = (*App)(nil)

// NewApp opens the local store and wires the gateway, services and UI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	broker := session.NewBroker(log.WithComponent("session-broker"))
	sessions := session.NewManager(storages.CredentialRepository, broker, log.WithComponent("session"))

	webcrm, err := adapter.NewHTTPWebCRMAdapter(cfg.Adapter, sessions, broker, log.WithComponent("webcrm"))
	if err != nil {
		sessions.Close()
		_ = storages.Close()
		return nil, fmt.Errorf("create webcrm adapter: %w", err)
	}

	validator := validators.NewEntityValidator(cfg.App.PhoneRegion)
	services := service.NewClientServices(webcrm, sessions, validator, log)

	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
		storages:  storages,
		broker:    broker,
		sessions:  sessions,
		services:  services,
		ui:        tui.New(services, buildInfo, log.WithComponent("tui")),
	}, nil
}

// Run shows the UI until the user quits. The summary worker runs only while
// someone is signed in; the UI starts and stops it.
func (a *App) Run(ctx context.Context) error {
	summaryWorker := workers.NewSummaryWorker(ctx, a.services.SummaryJob, a.cfg.Workers.SummaryInterval, a.ui.OnSummary)
	a.ui.BindSummaryWorker(workers.NewWorkers(summaryWorker))

	unsubscribe := a.broker.Subscribe(a.ui.OnSessionEvent)
	defer unsubscribe()

	a.logger.Info().
		Str("version", a.buildInfo.BuildVersion()).
		Str("api", a.cfg.Adapter.HTTPAddress).
		Msg("console started")

	err := a.ui.Run(ctx)
	a.logger.Info().Msg("console stopped")
	return err
}

// Close releases the session subscription and the local database.
func (a *App) Close() error {
	a.sessions.Close()
	return a.storages.Close()
}
