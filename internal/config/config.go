// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// companion sync client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds convention-level settings: which convention this client
	// caches and the timezone its schedule is presented in.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend API address and request timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background sync job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds convention-level application settings.
type App struct {
	// ConventionIdentifier names the convention this client is built for
	// (e.g. "MC2026"). The sync orchestrator compares it against the
	// identifier persisted with the cache; a mismatch forces a full sync.
	// Env: APP_CONVENTION_IDENTIFIER
	ConventionIdentifier string `env:"CONVENTION_IDENTIFIER"`

	// EventTimezone is the IANA timezone name the convention schedule is
	// presented in (e.g. "Europe/Berlin"). Used by the part-of-day
	// derivation.
	// Env: APP_EVENT_TIMEZONE
	EventTimezone string `env:"EVENT_TIMEZONE"`
}

// Adapter holds network settings for the outbound API transport.
type Adapter struct {
	// BaseURL is the API base the sync and communications endpoints hang
	// off (e.g. "https://app.example.org").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache backends.
type Storage struct {
	// DB holds the local cache database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache database.
type DB struct {
	// DSN is the SQLite file path (or ":memory:" for a throwaway cache).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SyncInterval defines how often the background sync job runs.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from all sources.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
