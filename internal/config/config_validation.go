// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	cfg.Destination.URL = strings.TrimRight(strings.TrimSpace(cfg.Destination.URL), "/")
}

// validate checks that the final merged [StructuredConfig] can be used at
// startup. A missing destination is valid: relaying is then disabled.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidTimeoutConfigs
	}

	if cfg.Destination.Configured() {
		u, err := url.Parse(cfg.Destination.URL)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDestinationConfigs, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%w: url must start with http:// or https://", ErrInvalidDestinationConfigs)
		}
		if u.Host == "" {
			return fmt.Errorf("%w: url has no host", ErrInvalidDestinationConfigs)
		}
	}

	return nil
}
