// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	// DefaultHTTPAddress is the address ClickNLoad pages post to.
	DefaultHTTPAddress = "127.0.0.1:9666"

	// DefaultAdapterTimeout bounds each outbound call to the destination API.
	DefaultAdapterTimeout = 30 * time.Second

	// DefaultJSONFilePath is probed in the working directory when no JSON
	// config file is given explicitly.
	DefaultJSONFilePath = "pyloadConfig.json"
)

// StructuredConfig is the top-level configuration container for the relay.
// It is populated by merging values from a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listen address and timeouts of the inbound
	// ClickNLoad HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Destination identifies the download manager the links are relayed to.
	// An empty URL disables relaying.
	Destination Destination `envPrefix:"DESTINATION_"`

	// Adapter holds settings of the outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Notify controls desktop notifications and the clipboard fallback.
	Notify Notify `envPrefix:"NOTIFY_"`

	// Log controls the log output format.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the ClickNLoad server listens on,
	// in "host:port" format. Defaults to [DefaultHTTPAddress].
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Zero means no timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Destination is the download manager (pyLoad) API the relay submits
// packages to. It is loaded once at startup and never mutated.
type Destination struct {
	// URL is the base URL of the web interface, e.g. "http://nas:8000".
	// Env: DESTINATION_URL
	URL string `env:"URL"`

	// Username is the login of the API user.
	// Env: DESTINATION_USERNAME
	Username string `env:"USERNAME"`

	// Password is the password of the API user.
	// Env: DESTINATION_PASSWORD
	Password string `env:"PASSWORD"`
}

// Configured reports whether a destination URL is set.
func (d Destination) Configured() bool {
	return d.URL != ""
}

// Adapter holds settings of the outbound destination client.
type Adapter struct {
	// RequestTimeout bounds each outbound request. Defaults to
	// [DefaultAdapterTimeout].
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Notify controls how the user is told about received packages.
type Notify struct {
	// Disabled turns desktop notifications off.
	// Env: NOTIFY_DISABLED
	Disabled bool `env:"DISABLED"`

	// NoClipboard turns off copying links to the clipboard when no
	// destination is configured.
	// Env: NOTIFY_NO_CLIPBOARD
	NoClipboard bool `env:"NO_CLIPBOARD"`
}

// Log controls the log output.
type Log struct {
	// Pretty switches from JSON lines to human readable console output.
	// Env: LOG_PRETTY
	Pretty bool `env:"PRETTY"`
}

// GetStructuredConfig loads, merges, and validates the relay configuration.
// Sources in increasing priority (later sources win for non-zero fields):
//  1. JSON file (explicit path, or ./pyloadConfig.json when present)
//  2. .env file and environment variables
//  3. Command-line flags
//
// Defaults are applied to fields still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}
