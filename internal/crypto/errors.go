// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrSealedDataTooShort is returned when a decoded envelope is shorter
	// than the wrapped-key block of its algorithm.
	ErrSealedDataTooShort = errors.New("sealed data too short")
	// ErrMalformedEnvelope is returned when a sealed value is not valid base64.
	ErrMalformedEnvelope = errors.New("malformed sealed envelope")
	// ErrUnsupportedAlgorithm is returned for an algorithm with no known layout.
	ErrUnsupportedAlgorithm = errors.New("unsupported sealing algorithm")
	// ErrInvalidPlaintext is returned when unsealed bytes cannot be
	// converted to the requested type.
	ErrInvalidPlaintext = errors.New("invalid unsealed plaintext")
	// ErrKeyNotFound is returned by key services that do not hold a key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidPadding is returned when symmetric plaintext padding is corrupt.
	ErrInvalidPadding = errors.New("invalid padding")
)

// UnsealingError reports a failure to unseal one sealed attribute. Cause is
// the codec, key-service or conversion error that stopped it.
type UnsealingError struct {
	Field string
	KeyID string
	Cause error
}

func (e *UnsealingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unseal %s (key %s): %v", e.Field, e.KeyID, e.Cause)
	}
	return fmt.Sprintf("unseal (key %s): %v", e.KeyID, e.Cause)
}

func (e *UnsealingError) Unwrap() error {
	return e.Cause
}

// IsCancellation reports whether err carries a context cancellation or
// deadline signal. Such errors are never wrapped or reclassified.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
