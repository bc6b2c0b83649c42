package service

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid click'n'load request")

	// ErrDestinationNotConfigured is logged, never returned: relaying without a
	// destination is a valid degraded mode.
	ErrDestinationNotConfigured = errors.New("no destination configured")
)
