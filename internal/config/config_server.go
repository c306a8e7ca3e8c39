package config

import (
	"fmt"
	"time"
)

// ServerConfig is the sandbox server configuration view.
type ServerConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	RateLimit      int
	TokenSignKey   string
	TokenDuration  time.Duration
}

// GetServerConfig builds and validates the sandbox server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		RateLimit:      cfg.Server.RateLimit,
		TokenSignKey:   cfg.Server.TokenSignKey,
		TokenDuration:  cfg.Server.TokenDuration,
	}
}
