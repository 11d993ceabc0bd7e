package service

import "errors"

var (
	// ErrUnknownFundingSourceType is returned for a funding source whose
	// __typename is neither member of the union.
	ErrUnknownFundingSourceType = errors.New("unknown funding source type")

	ErrNoTransport  = errors.New("transport is required")
	ErrNoKeyService = errors.New("key service is required")
)
