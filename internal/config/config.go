// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable the SDK reads.
const EnvPrefix = "VCARDS_"

// Defaults applied before any other source.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultUserAgent      = "go-virtual-cards"
	DefaultPageLimit      = 100
	MaxPageLimit          = 1000
	DefaultLogLevel       = "info"
	DefaultDotEnvPath     = ".env"
)

// ClientConfig is the top-level configuration of an SDK client. It is
// populated by merging defaults, a dotenv file, environment variables and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type ClientConfig struct {
	// Adapter holds the GraphQL transport settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds the sealed envelope layout.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Pagination holds list operation defaults.
	Pagination Pagination `envPrefix:"PAGINATION_"`

	// Log holds the SDK logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// on top of every other source.
	// Env: VCARDS_CONFIG
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the dotenv file read before the process environment.
	// A missing file is not an error.
	// Env: VCARDS_DOTENV
	DotEnvPath string `env:"DOTENV"`
}

// Adapter holds the settings of the GraphQL transport.
type Adapter struct {
	// GraphQLEndpoint is the absolute URL of the backend GraphQL API.
	// Env: VCARDS_ADAPTER_GRAPHQL_ENDPOINT
	GraphQLEndpoint string `env:"GRAPHQL_ENDPOINT"`

	// RequestTimeout bounds a single query or mutation (e.g. "30s").
	// Env: VCARDS_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// UserAgent is sent with every request.
	// Env: VCARDS_ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// Crypto holds the sealed envelope layout.
type Crypto struct {
	// KeyBlockSize overrides the wrapped-key block size of the default
	// algorithm (AES/CBC/PKCS7Padding). Zero keeps the built-in size.
	// Env: VCARDS_CRYPTO_KEY_BLOCK_SIZE
	KeyBlockSize int `env:"KEY_BLOCK_SIZE"`

	// Algorithms adds or overrides key block sizes per algorithm, written
	// as "ALG:size,ALG:size".
	// Env: VCARDS_CRYPTO_ALGORITHMS
	Algorithms map[string]int `env:"ALGORITHMS"`
}

// Pagination holds list operation defaults.
type Pagination struct {
	// DefaultLimit is the page size used when a caller passes none.
	// Env: VCARDS_PAGINATION_DEFAULT_LIMIT
	DefaultLimit int `env:"DEFAULT_LIMIT"`
}

// Log holds the SDK logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", ...).
	// Env: VCARDS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default returns the built-in configuration. It has no GraphQL endpoint
// and therefore does not validate on its own.
func Default() *ClientConfig {
	return &ClientConfig{
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
			UserAgent:      DefaultUserAgent,
		},
		Pagination: Pagination{DefaultLimit: DefaultPageLimit},
		Log:        Log{Level: DefaultLogLevel},
		DotEnvPath: DefaultDotEnvPath,
	}
}

// KeyBlockSizes returns the algorithm overrides to hand to the envelope
// layout, with KeyBlockSize folded in under defaultAlgorithm.
func (c Crypto) KeyBlockSizes(defaultAlgorithm string) map[string]int {
	out := make(map[string]int, len(c.Algorithms)+1)
	for alg, size := range c.Algorithms {
		out[alg] = size
	}
	if c.KeyBlockSize > 0 {
		out[defaultAlgorithm] = c.KeyBlockSize
	}
	return out
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Dotenv file
//  3. Environment variables
//  4. JSON file (path resolved from sources 1 to 3)
//
// Returns a fully populated *ClientConfig or an error if any source fails
// to load or the final config fails validation.
func GetClientConfig() (*ClientConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withJSON().
		build()
}
