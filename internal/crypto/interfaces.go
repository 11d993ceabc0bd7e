// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the sealed-field protocol of the SDK: the envelope
// codec, the two-stage Unsealer, and the key-service contract the Unsealer
// consumes.
//
// A sealed value on the wire is base64(wrappedKey ‖ payload):
//
//	wrappedKey = asymmetric encryption of a per-field symmetric key under
//	             the owner's key pair (KeyBlockSize bytes, per algorithm)
//	payload    = symmetric encryption of the UTF-8 plaintext
//
// Every field has its own wrapped key, so every field is unsealed on its own;
// nothing is cached between fields or records.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_mock.go -package=mock

// KeyService is the key-management collaborator. The SDK never holds key
// material itself; it asks the KeyService to perform private-key operations
// by key id. Implementations must return context errors unchanged when ctx
// is cancelled.
type KeyService interface {
	// DecryptAsymmetric decrypts data with the private key identified by
	// keyID. Returns an error wrapping [ErrKeyNotFound] if the key is not
	// held by the service.
	DecryptAsymmetric(ctx context.Context, keyID string, data []byte) ([]byte, error)

	// DecryptSymmetric decrypts data with the raw symmetric key.
	DecryptSymmetric(ctx context.Context, key []byte, data []byte) ([]byte, error)

	// SignAsymmetric signs data with the private key identified by keyID.
	SignAsymmetric(ctx context.Context, keyID string, data []byte) ([]byte, error)
}
