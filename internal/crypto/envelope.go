// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
	"maps"
)

// AlgorithmAESCBCPKCS7 is the only symmetric scheme the backend seals with.
const AlgorithmAESCBCPKCS7 = "AES/CBC/PKCS7Padding"

// DefaultKeyBlockSize is the size of an RSA-2048 wrapped symmetric key.
const DefaultKeyBlockSize = 256

// SealedEnvelope is one decoded sealed value. CipherText holds the wrapped
// key block followed by the symmetric payload.
type SealedEnvelope struct {
	KeyID      string
	Algorithm  string
	CipherText []byte

	keyBlockSize int
}

// WrappedKey returns the asymmetric-wrapped symmetric key block.
func (e SealedEnvelope) WrappedKey() []byte {
	return e.CipherText[:e.keyBlockSize]
}

// Payload returns the symmetric ciphertext following the key block.
func (e SealedEnvelope) Payload() []byte {
	return e.CipherText[e.keyBlockSize:]
}

// EnvelopeLayout knows the wrapped-key block size of each sealing
// algorithm. It is immutable after construction and safe for concurrent use.
type EnvelopeLayout struct {
	keyBlockSizes map[string]int
}

// NewEnvelopeLayout returns a layout with the default algorithm table
// ([AlgorithmAESCBCPKCS7] → [DefaultKeyBlockSize]) plus overrides. An
// override with a non-positive size is ignored.
func NewEnvelopeLayout(overrides map[string]int) *EnvelopeLayout {
	sizes := map[string]int{AlgorithmAESCBCPKCS7: DefaultKeyBlockSize}
	for alg, size := range overrides {
		if size > 0 {
			sizes[alg] = size
		}
	}
	return &EnvelopeLayout{keyBlockSizes: sizes}
}

// Algorithms returns a copy of the algorithm table.
func (l *EnvelopeLayout) Algorithms() map[string]int {
	return maps.Clone(l.keyBlockSizes)
}

// KeyBlockSize returns the minimum envelope length for algorithm.
func (l *EnvelopeLayout) KeyBlockSize(algorithm string) (int, error) {
	size, ok := l.keyBlockSizes[algorithm]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	return size, nil
}

// Decode base64-decodes raw and splits it into key block and payload.
// Returns [ErrSealedDataTooShort] when the decoded bytes are shorter than
// the key block of algorithm.
func (l *EnvelopeLayout) Decode(raw, keyID, algorithm string) (SealedEnvelope, error) {
	size, err := l.KeyBlockSize(algorithm)
	if err != nil {
		return SealedEnvelope{}, err
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return SealedEnvelope{}, fmt.Errorf("%w: %w", ErrMalformedEnvelope, err)
	}
	if len(data) < size {
		return SealedEnvelope{}, fmt.Errorf("%w: got %d bytes, want at least %d", ErrSealedDataTooShort, len(data), size)
	}

	return SealedEnvelope{
		KeyID:        keyID,
		Algorithm:    algorithm,
		CipherText:   data,
		keyBlockSize: size,
	}, nil
}

// Encode returns the wire form of env.
func (l *EnvelopeLayout) Encode(env SealedEnvelope) string {
	return base64.StdEncoding.EncodeToString(env.CipherText)
}
