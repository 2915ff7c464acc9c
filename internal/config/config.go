// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads the configuration of the SDK's command-line binaries
// (configctl, devserver) by merging environment variables, an optional JSON
// file, and built-in defaults, in that priority order.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from environment variables and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Backend holds the remote config backend connection settings.
	Backend Backend `envPrefix:"BACKEND_"`

	// Cache holds the local fetch-cache settings.
	Cache Cache `envPrefix:"CACHE_"`

	// Devserver holds settings for the fake backend binary.
	Devserver Devserver `envPrefix:"DEVSERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// Backend holds the remote config backend connection settings.
type Backend struct {
	// BaseURL is the root URL of the backend.
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Project is the backend project whose configuration is fetched.
	// Env: BACKEND_PROJECT
	Project string `env:"PROJECT"`

	// APIKey authenticates the client against the backend token endpoint.
	// Env: BACKEND_API_KEY
	APIKey string `env:"API_KEY"`

	// ClientID identifies this installation to the backend. A random one is
	// generated when empty.
	// Env: BACKEND_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Timeout bounds each HTTP round-trip (e.g. "15s").
	// Env: BACKEND_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Cache holds the local fetch-cache settings.
type Cache struct {
	// Path is the SQLite file holding the fetched-config cache;
	// ":memory:" keeps the cache ephemeral.
	// Env: CACHE_PATH
	Path string `env:"PATH"`
}

// Devserver holds settings for the fake backend binary.
type Devserver struct {
	// Address is the TCP address the devserver listens on,
	// in "host:port" format.
	// Env: DEVSERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// Project is the project name the devserver answers for.
	// Env: DEVSERVER_PROJECT
	Project string `env:"PROJECT"`

	// APIKey is the key the devserver's token endpoint accepts.
	// Env: DEVSERVER_API_KEY
	APIKey string `env:"API_KEY"`

	// EntriesFile is an optional JSON file with the configuration set to
	// serve, shaped namespace → key → value.
	// Env: DEVSERVER_ENTRIES_FILE
	EntriesFile string `env:"ENTRIES_FILE"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (earlier sources win for
// non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
