// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds console-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the sandbox server settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote WebCRM API settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds console-level settings.
type App struct {
	// PhoneRegion is the ISO 3166 region used to validate mobile numbers
	// (e.g. "IT"). Empty disables the region check.
	// Env: APP_PHONE_REGION
	PhoneRegion string `env:"PHONE_REGION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the sandbox API server settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per second accepted by the sandbox.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// TokenSignKey signs the bearer tokens issued by POST /token.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime of an issued token.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Adapter holds the settings of the outbound WebCRM API client.
type Adapter struct {
	// HTTPAddress is the base URL of the WebCRM API
	// (e.g. "http://localhost:5000/").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single API call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SummaryInterval is how often the pending-changes summary is refreshed.
	// Env: WORKERS_SUMMARY_INTERVAL
	SummaryInterval time.Duration `env:"SUMMARY_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
