// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sealed addresses one sealed attribute: its base64 envelope plus the key
// descriptor needed to open it. Field is a label used in errors only.
type Sealed struct {
	Field     string
	KeyID     string
	Algorithm string
	Data      string
}

// Unsealer opens sealed attributes through a [KeyService]. It is stateless
// and safe for concurrent use.
type Unsealer struct {
	keys   KeyService
	layout *EnvelopeLayout
}

// NewUnsealer returns an Unsealer backed by keys. A nil layout means
// [NewEnvelopeLayout] with no overrides.
func NewUnsealer(keys KeyService, layout *EnvelopeLayout) *Unsealer {
	if layout == nil {
		layout = NewEnvelopeLayout(nil)
	}
	return &Unsealer{keys: keys, layout: layout}
}

// Layout returns the envelope layout used by the Unsealer.
func (u *Unsealer) Layout() *EnvelopeLayout {
	return u.layout
}

// Unseal performs the two-stage decrypt of env: unwrap the per-field key
// with the private key env.KeyID, then decrypt the payload with it.
func (u *Unsealer) Unseal(ctx context.Context, env SealedEnvelope) ([]byte, error) {
	symmetricKey, err := u.keys.DecryptAsymmetric(ctx, env.KeyID, env.WrappedKey())
	if err != nil {
		return nil, err
	}
	plain, err := u.keys.DecryptSymmetric(ctx, symmetricKey, env.Payload())
	if err != nil {
		return nil, err
	}
	return plain, nil
}

// UnsealBytes decodes and unseals s. Failures are returned as
// *[UnsealingError], except context cancellation which is returned as is.
func (u *Unsealer) UnsealBytes(ctx context.Context, s Sealed) ([]byte, error) {
	env, err := u.layout.Decode(s.Data, s.KeyID, s.Algorithm)
	if err != nil {
		return nil, u.fail(s, err)
	}
	plain, err := u.Unseal(ctx, env)
	if err != nil {
		return nil, u.fail(s, err)
	}
	return plain, nil
}

// UnsealString unseals s as UTF-8 text.
func (u *Unsealer) UnsealString(ctx context.Context, s Sealed) (string, error) {
	plain, err := u.UnsealBytes(ctx, s)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// UnsealInt64 unseals s as a decimal integer (amounts in minor units).
func (u *Unsealer) UnsealInt64(ctx context.Context, s Sealed) (int64, error) {
	text, err := u.UnsealString(ctx, s)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, u.fail(s, fmt.Errorf("%w: %w", ErrInvalidPlaintext, err))
	}
	return v, nil
}

// UnsealDecimal unseals s as a decimal number.
func (u *Unsealer) UnsealDecimal(ctx context.Context, s Sealed) (float64, error) {
	text, err := u.UnsealString(ctx, s)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, u.fail(s, fmt.Errorf("%w: %w", ErrInvalidPlaintext, err))
	}
	return v, nil
}

// UnsealTime unseals s as an epoch-milliseconds timestamp. The plaintext
// may carry a fractional part, which is truncated.
func (u *Unsealer) UnsealTime(ctx context.Context, s Sealed) (time.Time, error) {
	text, err := u.UnsealString(ctx, s)
	if err != nil {
		return time.Time{}, err
	}
	ms, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return time.Time{}, u.fail(s, fmt.Errorf("%w: %w", ErrInvalidPlaintext, err))
	}
	return time.UnixMilli(int64(ms)).UTC(), nil
}

// UnsealJSON unseals s and unmarshals the plaintext into target.
func (u *Unsealer) UnsealJSON(ctx context.Context, s Sealed, target any) error {
	plain, err := u.UnsealBytes(ctx, s)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(plain, target); err != nil {
		return u.fail(s, fmt.Errorf("%w: %w", ErrInvalidPlaintext, err))
	}
	return nil
}

func (u *Unsealer) fail(s Sealed, err error) error {
	if IsCancellation(err) {
		return err
	}
	return &UnsealingError{Field: s.Field, KeyID: s.KeyID, Cause: err}
}
