// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file, including the legacy pyloadConfig.json layout
//  2. .env file and environment variables
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]. The resulting
// [Destination] is injected into the relay at construction and is never
// changed afterwards.
package config
