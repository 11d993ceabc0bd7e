// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResultStatus discriminates full from partial results.
type ResultStatus int

const (
	// StatusSuccess means every record was fully unsealed.
	StatusSuccess ResultStatus = iota
	// StatusPartial means at least one record could only be partially unsealed.
	StatusPartial
)

func (s ResultStatus) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusPartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Identifiable is implemented by every domain record returned in a list.
type Identifiable interface {
	GetID() string
}

// FailedItem pairs a best-effort partial record with the first unsealing
// failure met while projecting it. Attributes that could not be unsealed
// hold their zero value.
type FailedItem[T any] struct {
	Partial T
	Cause   error
}

// ListResult is one page of a list operation. Items and Failed together
// hold the deduplicated records of the page. NextToken is nil on the last
// page.
type ListResult[T any] struct {
	Status    ResultStatus
	Items     []T
	Failed    []FailedItem[T]
	NextToken *string
}

// IsPartial reports whether some records of the page failed to unseal.
func (r ListResult[T]) IsPartial() bool {
	return r.Status == StatusPartial
}

// SingleResult is the outcome of a single-record mutation. Exactly one of
// Result (StatusSuccess) or Failed (StatusPartial) is meaningful.
type SingleResult[T any] struct {
	Status ResultStatus
	Result T
	Failed *FailedItem[T]
}

// IsPartial reports whether the record failed to unseal.
func (r SingleResult[T]) IsPartial() bool {
	return r.Status == StatusPartial
}

// ListOptions controls pagination of list operations.
type ListOptions struct {
	// Limit is the page size; zero means the configured default (100).
	Limit int
	// NextToken continues a previous listing; nil starts from the beginning.
	NextToken *string
}
