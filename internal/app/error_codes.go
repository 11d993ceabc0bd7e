// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// SDK services.
//
// All Code* constants are backend error codes in their normalised form: the
// namespace up to the last "." and a trailing "Error" suffix are stripped
// before comparison (see [NormalizeCode]). Keeping them in one place keeps
// the classifier tables and tests in agreement.
package app

import "strings"

const (
	// CodeCardNotFound is returned when the referenced card does not exist
	// or is not visible to the caller.
	CodeCardNotFound = "CardNotFound"

	// CodeCardState is returned when the card is not in a state that
	// permits the requested transition (e.g. updating a closed card).
	CodeCardState = "CardState"

	// CodeAccountLocked is returned when the caller's account is restricted.
	CodeAccountLocked = "AccountLocked"

	// CodeIdentityVerificationNotVerified is returned when the caller has
	// not passed identity verification.
	CodeIdentityVerificationNotVerified = "IdentityVerificationNotVerified"

	// CodeIdentityVerificationInsufficient is returned when the caller's
	// verification level is too low for the operation.
	CodeIdentityVerificationInsufficient = "IdentityVerificationInsufficient"

	// CodeFundingSourceNotFound is returned when the referenced funding
	// source does not exist.
	CodeFundingSourceNotFound = "FundingSourceNotFound"

	// CodeFundingSourceNotActive is returned when a card is provisioned
	// against an inactive funding source.
	CodeFundingSourceNotActive = "FundingSourceNotActive"

	// CodeFundingSourceState is returned when the funding source is not in
	// a state that permits the requested transition.
	CodeFundingSourceState = "FundingSourceState"

	// CodeFundingSourceCompletionDataInvalid is returned when the provider
	// completion data does not match the provisional funding source.
	CodeFundingSourceCompletionDataInvalid = "FundingSourceCompletionDataInvalid"

	// CodeCompletionDataInvalid is the short form of
	// CodeFundingSourceCompletionDataInvalid.
	CodeCompletionDataInvalid = "CompletionDataInvalid"

	// CodeProvisionalFundingSourceNotFound is returned when the referenced
	// provisional funding source does not exist.
	CodeProvisionalFundingSourceNotFound = "ProvisionalFundingSourceNotFound"

	// CodeUnacceptableFundingSource is returned when the provider rejects
	// the payment method (e.g. prepaid cards).
	CodeUnacceptableFundingSource = "UnacceptableFundingSource"

	// CodeDuplicateFundingSource is returned when the payment method is
	// already attached to the caller.
	CodeDuplicateFundingSource = "DuplicateFundingSource"

	// CodeSetupFailed is returned when the provider setup could not start.
	CodeSetupFailed = "SetupFailed"

	// CodeRequiresUserInteraction is returned when the provider needs an
	// out-of-band user step. Its errorInfo carries the interaction payload.
	CodeRequiresUserInteraction = "RequiresUserInteraction"

	// CodeFundingSourceRequiresUserInteraction is the long form of
	// CodeRequiresUserInteraction.
	CodeFundingSourceRequiresUserInteraction = "FundingSourceRequiresUserInteraction"

	// CodeVelocityExceeded is returned when provisioning would exceed the
	// caller's card velocity.
	CodeVelocityExceeded = "VelocityExceeded"

	// CodeEntitlementExceeded is returned when provisioning would exceed the
	// caller's entitlements.
	CodeEntitlementExceeded = "EntitlementExceeded"

	// CodeUnsupportedCurrency is returned when the requested currency is
	// not supported.
	CodeUnsupportedCurrency = "UnsupportedCurrency"

	// CodeTransactionNotFound is returned when the referenced transaction
	// does not exist.
	CodeTransactionNotFound = "TransactionNotFound"
)

// Keys of the errorInfo map that may hold a provider interaction payload,
// in lookup order, and the optional provider hint.
const (
	InfoProvisioningData = "provisioningData"
	InfoInteractionData  = "interactionData"
	InfoProvider         = "provider"
)

// NormalizeCode strips the namespace and the "Error" suffix of a backend
// error code: "sudoplatform.virtual-cards.CardNotFoundError" becomes
// "CardNotFound".
func NormalizeCode(code string) string {
	code = strings.TrimSpace(code)
	if idx := strings.LastIndex(code, "."); idx != -1 {
		code = code[idx+1:]
	}
	return strings.TrimSuffix(code, "Error")
}
