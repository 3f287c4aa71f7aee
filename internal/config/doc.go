// Package config provides configuration loading, merging, and validation
// facilities for the companion sync client.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win; later sources only fill fields still empty):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which merges all sources and
// returns a validated client configuration view.
package config
