// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrorFamily groups SDK errors by the operation family that raised them.
type ErrorFamily string

const (
	FamilyCard                     ErrorFamily = "card"
	FamilyTransaction              ErrorFamily = "transaction"
	FamilyFundingSource            ErrorFamily = "funding_source"
	FamilyProvisionalFundingSource ErrorFamily = "provisional_funding_source"
)

// ErrorKind is the classified reason of an SDK error.
type ErrorKind string

const (
	KindFailed                           ErrorKind = "Failed"
	KindCancelFailed                     ErrorKind = "CancelFailed"
	KindRefreshFailed                    ErrorKind = "RefreshFailed"
	KindNotFound                         ErrorKind = "NotFound"
	KindStateError                       ErrorKind = "StateError"
	KindAccountLocked                    ErrorKind = "AccountLocked"
	KindIdentityVerification             ErrorKind = "IdentityVerification"
	KindIdentityVerificationInsufficient ErrorKind = "IdentityVerificationInsufficient"
	KindFundingSourceNotFound            ErrorKind = "FundingSourceNotFound"
	KindFundingSourceNotActive           ErrorKind = "FundingSourceNotActive"
	KindCompletionDataInvalid            ErrorKind = "CompletionDataInvalid"
	KindSetupFailed                      ErrorKind = "SetupFailed"
	KindUnacceptableFundingSource        ErrorKind = "UnacceptableFundingSource"
	KindDuplicateFundingSource           ErrorKind = "DuplicateFundingSource"
	KindProvisionalFundingSourceNotFound ErrorKind = "ProvisionalFundingSourceNotFound"
	KindRequiresUserInteraction          ErrorKind = "RequiresUserInteraction"
	KindVelocityExceeded                 ErrorKind = "VelocityExceeded"
	KindEntitlementExceeded              ErrorKind = "EntitlementExceeded"
	KindUnsupportedCurrency              ErrorKind = "UnsupportedCurrency"
	KindInvalidArgument                  ErrorKind = "InvalidArgument"
	KindPublicKey                        ErrorKind = "PublicKey"
	KindUnsealing                        ErrorKind = "Unsealing"
	KindUnknown                          ErrorKind = "Unknown"
)

// SdkError is the typed error returned by every SDK operation except for
// context cancellation, which is always returned unchanged.
//
// Use errors.As to inspect it, or errors.Is against the exported sentinels
// (which match on Family and Kind only).
type SdkError struct {
	Family ErrorFamily
	Kind   ErrorKind

	// Code is the backend error code the error was classified from, if any.
	Code string
	// Message is the backend or underlying error message.
	Message string

	// Interaction is set for KindRequiresUserInteraction.
	Interaction ProviderInteractionData

	Cause error
}

func (e *SdkError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Family, e.Kind)
	if e.Code != "" {
		msg += " [" + e.Code + "]"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *SdkError) Unwrap() error {
	return e.Cause
}

// Is matches another *SdkError with the same Family and Kind. A target
// with an empty Family matches any family.
func (e *SdkError) Is(target error) bool {
	var t *SdkError
	if !errors.As(target, &t) || t == nil {
		return false
	}
	if t.Family != "" && t.Family != e.Family {
		return false
	}
	return t.Kind == e.Kind
}

// HasKind reports whether err is an SdkError of the given kind.
func HasKind(err error, kind ErrorKind) bool {
	var sdkErr *SdkError
	return errors.As(err, &sdkErr) && sdkErr.Kind == kind
}

// card family
var (
	ErrCardFailed               = &SdkError{Family: FamilyCard, Kind: KindFailed}
	ErrCardCancelFailed         = &SdkError{Family: FamilyCard, Kind: KindCancelFailed}
	ErrCardNotFound             = &SdkError{Family: FamilyCard, Kind: KindNotFound}
	ErrCardState                = &SdkError{Family: FamilyCard, Kind: KindStateError}
	ErrCardVelocityExceeded     = &SdkError{Family: FamilyCard, Kind: KindVelocityExceeded}
	ErrCardEntitlementExceeded  = &SdkError{Family: FamilyCard, Kind: KindEntitlementExceeded}
	ErrCardUnsupportedCurrency  = &SdkError{Family: FamilyCard, Kind: KindUnsupportedCurrency}
	ErrCardFundingSourceMissing = &SdkError{Family: FamilyCard, Kind: KindFundingSourceNotFound}
)

// transaction family
var (
	ErrTransactionFailed   = &SdkError{Family: FamilyTransaction, Kind: KindFailed}
	ErrTransactionNotFound = &SdkError{Family: FamilyTransaction, Kind: KindNotFound}
)

// funding source family
var (
	ErrFundingSourceFailed                  = &SdkError{Family: FamilyFundingSource, Kind: KindFailed}
	ErrFundingSourceCancelFailed            = &SdkError{Family: FamilyFundingSource, Kind: KindCancelFailed}
	ErrFundingSourceRefreshFailed           = &SdkError{Family: FamilyFundingSource, Kind: KindRefreshFailed}
	ErrFundingSourceNotFound                = &SdkError{Family: FamilyFundingSource, Kind: KindNotFound}
	ErrFundingSourceState                   = &SdkError{Family: FamilyFundingSource, Kind: KindStateError}
	ErrFundingSourceCompletionDataInvalid   = &SdkError{Family: FamilyFundingSource, Kind: KindCompletionDataInvalid}
	ErrFundingSourceRequiresUserInteraction = &SdkError{Family: FamilyFundingSource, Kind: KindRequiresUserInteraction}
	ErrUnacceptableFundingSource            = &SdkError{Family: FamilyFundingSource, Kind: KindUnacceptableFundingSource}
	ErrDuplicateFundingSource               = &SdkError{Family: FamilyFundingSource, Kind: KindDuplicateFundingSource}
)

// provisional funding source family
var (
	ErrProvisionalFundingSourceNotFound = &SdkError{Family: FamilyProvisionalFundingSource, Kind: KindProvisionalFundingSourceNotFound}
)

// family-independent
var (
	ErrAccountLocked  = &SdkError{Kind: KindAccountLocked}
	ErrUnsealing      = &SdkError{Kind: KindUnsealing}
	ErrPublicKey      = &SdkError{Kind: KindPublicKey}
	ErrUnknown        = &SdkError{Kind: KindUnknown}
	ErrInvalidRequest = &SdkError{Kind: KindInvalidArgument}
)
