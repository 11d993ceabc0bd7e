// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators rejects malformed SDK inputs before any backend call
// is made.
//
// The service layer calls Validate with the input value (a record id, a
// card or funding source input, list options) and optionally the names of
// the fields to check. A failure is reported to the caller as an
// invalid-argument SdkError of the operation's family.
package validators

import "context"

// Validator checks one SDK input. Field names, when given, restrict the
// check to those fields; their spelling follows the Field* constants.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
