package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid transport settings
	// (for example, a missing GraphQL endpoint or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCryptoConfigs indicates an invalid envelope layout
	// (for example, a negative key block size).
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidPaginationConfigs indicates a default page size outside the
	// accepted range.
	ErrInvalidPaginationConfigs = errors.New("invalid pagination configuration")
)
