// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// projection is one projected record. cause is the first failure met while
// projecting; record is then partial, its failed attributes holding zero
// values.
type projection[T any] struct {
	record T
	cause  error
}

// projectFunc turns one wire record into its domain record. The returned
// error aborts the whole operation and is always a context cancellation.
type projectFunc[W, T any] func(ctx context.Context, u *crypto.Unsealer, wire W) (projection[T], error)

// session unseals the attributes of one record sequentially. It never stops
// at a failed attribute: it remembers the first failure and keeps going, so
// every attribute that can be unsealed is. A cancellation stops it.
type session struct {
	ctx       context.Context
	unsealer  *crypto.Unsealer
	keyID     string
	algorithm string

	cause error
	abort error
}

func newSession(ctx context.Context, u *crypto.Unsealer, keyID, algorithm string) *session {
	return &session{ctx: ctx, unsealer: u, keyID: keyID, algorithm: algorithm}
}

// finish pairs record with the outcome of s.
func finish[T any](s *session, record T) (projection[T], error) {
	return projection[T]{record: record, cause: s.cause}, s.abort
}

// observe records err and reports whether the attribute was unsealed.
func (s *session) observe(err error) bool {
	switch {
	case err == nil:
		return true
	case crypto.IsCancellation(err):
		if s.abort == nil {
			s.abort = err
		}
	case s.cause == nil:
		s.cause = err
	}
	return false
}

// merge folds the outcome of a nested projection into s.
func (s *session) merge(cause, err error) {
	if err != nil {
		s.observe(err)
		return
	}
	if cause != nil {
		s.observe(cause)
	}
}

func (s *session) stopped() bool {
	return s.abort != nil
}

func (s *session) sealed(field, data string) crypto.Sealed {
	return crypto.Sealed{Field: field, KeyID: s.keyID, Algorithm: s.algorithm, Data: data}
}

func (s *session) str(field, data string) string {
	if s.stopped() {
		return ""
	}
	v, err := s.unsealer.UnsealString(s.ctx, s.sealed(field, data))
	if !s.observe(err) {
		return ""
	}
	return v
}

func (s *session) optStr(field string, data *string) *string {
	if data == nil || s.stopped() {
		return nil
	}
	v, err := s.unsealer.UnsealString(s.ctx, s.sealed(field, *data))
	if !s.observe(err) {
		return nil
	}
	return &v
}

func (s *session) integer(field, data string) int64 {
	if s.stopped() {
		return 0
	}
	v, err := s.unsealer.UnsealInt64(s.ctx, s.sealed(field, data))
	if !s.observe(err) {
		return 0
	}
	return v
}

func (s *session) decimal(field, data string) float64 {
	if s.stopped() {
		return 0
	}
	v, err := s.unsealer.UnsealDecimal(s.ctx, s.sealed(field, data))
	if !s.observe(err) {
		return 0
	}
	return v
}

func (s *session) timestamp(field, data string) time.Time {
	if s.stopped() {
		return time.Time{}
	}
	v, err := s.unsealer.UnsealTime(s.ctx, s.sealed(field, data))
	if !s.observe(err) {
		return time.Time{}
	}
	return v
}

func (s *session) optTime(field string, data *string) *time.Time {
	if data == nil || s.stopped() {
		return nil
	}
	v, err := s.unsealer.UnsealTime(s.ctx, s.sealed(field, *data))
	if !s.observe(err) {
		return nil
	}
	return &v
}

func (s *session) amount(field string, a models.SealedCurrencyAmount) models.CurrencyAmount {
	return models.CurrencyAmount{
		Currency: s.str(field+".currency", a.Currency),
		Amount:   s.integer(field+".amount", a.Amount),
	}
}

// attribute addresses a self-describing sealed attribute.
func attribute(field string, a *models.SealedAttribute) crypto.Sealed {
	return crypto.Sealed{Field: field, KeyID: a.KeyID, Algorithm: a.Algorithm, Data: a.Base64EncodedSealedData}
}

func (s *session) attrString(field string, a *models.SealedAttribute) string {
	if a == nil || s.stopped() {
		return ""
	}
	v, err := s.unsealer.UnsealString(s.ctx, attribute(field, a))
	if !s.observe(err) {
		return ""
	}
	return v
}

// attrJSON unseals a into target and reports whether it succeeded. A nil
// attribute leaves target untouched and reports false.
func (s *session) attrJSON(field string, a *models.SealedAttribute, target any) bool {
	if a == nil || s.stopped() {
		return false
	}
	return s.observe(s.unsealer.UnsealJSON(s.ctx, attribute(field, a), target))
}

// epochMs converts a plain epoch-milliseconds wire scalar.
func epochMs(ms float64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

func optEpochMs(ms *float64) *time.Time {
	if ms == nil {
		return nil
	}
	t := epochMs(*ms)
	return &t
}

// projectOne projects wire and returns either the full record or a
// FailedItem. A nil wire yields a nil record.
func projectOne[W, T any](ctx context.Context, u *crypto.Unsealer, wire *W, project projectFunc[W, T]) (*T, *models.FailedItem[T], error) {
	if wire == nil {
		return nil, nil, nil
	}
	p, err := project(ctx, u, *wire)
	if err != nil {
		return nil, nil, err
	}
	if p.cause != nil {
		return nil, &models.FailedItem[T]{Partial: p.record, Cause: p.cause}, nil
	}
	return &p.record, nil, nil
}
