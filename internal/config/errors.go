package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, an empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDestinationConfigs indicates a destination URL that cannot
	// be used (for example, missing scheme or host).
	ErrInvalidDestinationConfigs = errors.New("invalid destination configuration")
	// ErrInvalidTimeoutConfigs indicates a negative timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
)
