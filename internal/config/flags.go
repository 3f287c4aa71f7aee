package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend API base URL
//	-d local cache database path
//	-convention convention identifier
//	-timezone convention timezone (IANA name)
//	-sync-interval background sync interval (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var conventionIdentifier string
	var eventTimezone string
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "a", "", "Backend API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&conventionIdentifier, "convention", "", "Convention identifier")
	flag.StringVar(&eventTimezone, "timezone", "", "Convention timezone (IANA name)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync interval (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			ConventionIdentifier: conventionIdentifier,
			EventTimezone:        eventTimezone,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
	}
}
