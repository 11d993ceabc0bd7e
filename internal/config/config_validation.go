// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [ClientConfig] can drive a client.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.GraphQLEndpoint)
	if cfg.Adapter.GraphQLEndpoint == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: graphql endpoint %q", ErrInvalidAdapterConfigs, cfg.Adapter.GraphQLEndpoint)
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Crypto.KeyBlockSize < 0 {
		return fmt.Errorf("%w: key block size %d", ErrInvalidCryptoConfigs, cfg.Crypto.KeyBlockSize)
	}
	for alg, size := range cfg.Crypto.Algorithms {
		if alg == "" || size <= 0 {
			return fmt.Errorf("%w: algorithm %q size %d", ErrInvalidCryptoConfigs, alg, size)
		}
	}

	if cfg.Pagination.DefaultLimit < 1 || cfg.Pagination.DefaultLimit > MaxPageLimit {
		return fmt.Errorf("%w: default limit %d", ErrInvalidPaginationConfigs, cfg.Pagination.DefaultLimit)
	}

	return nil
}

// Validate is the exported form of validate for configs built in code.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}
