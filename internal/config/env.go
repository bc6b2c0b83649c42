// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Nested sections are read
// under their prefixes: SERVER_ADDRESS, DESTINATION_URL, ADAPTER_REQUEST_TIMEOUT,
// NOTIFY_DISABLED, LOG_PRETTY and so on. CONFIG names the JSON file.
//
// Durations use Go syntax ("30s"); a value that cannot be converted is
// returned as a wrapped error.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
