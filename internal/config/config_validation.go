// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. Role-specific checks live on
// [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SummaryInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if r := cfg.App.PhoneRegion; r != "" && len(r) != 2 {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 || cfg.RateLimit <= 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.TokenSignKey == "" || cfg.TokenDuration <= 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
