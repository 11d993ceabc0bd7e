package provider

import "errors"

var (
	// ErrUnsupportedProvider is returned when a payload names a provider
	// (or provider/type pair) the SDK does not know.
	ErrUnsupportedProvider = errors.New("unsupported provider")
	// ErrProviderMismatch is returned when the caller's provider hint and the
	// payload's own discriminant disagree.
	ErrProviderMismatch = errors.New("provider mismatch")
	// ErrUnsupportedVersion is returned for a payload version newer than the
	// SDK understands.
	ErrUnsupportedVersion = errors.New("unsupported provider payload version")
	// ErrMalformedPayload is returned when a payload is not base64 JSON.
	ErrMalformedPayload = errors.New("malformed provider payload")
	// ErrNoPayload is returned when there is nothing to encode or decode.
	ErrNoPayload = errors.New("empty provider payload")
)
