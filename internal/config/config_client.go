package config

import (
	"fmt"
	"time"
)

// ClientApp holds console-level settings derived from the shared config.
type ClientApp struct {
	// PhoneRegion is the region used for mobile number validation.
	PhoneRegion string
}

// ClientAdapter holds the settings used by the WebCRM API client.
type ClientAdapter struct {
	// HTTPAddress is the WebCRM API base URL.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the console.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups console storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains console background job settings.
type ClientWorkers struct {
	// SummaryInterval defines how often the pending-changes summary is refreshed.
	SummaryInterval time.Duration
}

// ClientConfig is the console configuration assembled from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the console config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			PhoneRegion: cfg.App.PhoneRegion,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{SummaryInterval: cfg.Workers.SummaryInterval},
	}
}
