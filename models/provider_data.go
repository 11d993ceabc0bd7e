// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProviderKind identifies a funding-source provider integration. It is the
// discriminant of every provider payload union below and is derived from
// the wire "provider" and "type" fields.
type ProviderKind string

const (
	ProviderStripe              ProviderKind = "stripe"
	ProviderCheckoutCard        ProviderKind = "checkoutCard"
	ProviderCheckoutBankAccount ProviderKind = "checkoutBankAccount"
)

// AuthorizationText is an agreement the user must accept before a bank
// account can be linked.
type AuthorizationText struct {
	Language      string `json:"language"`
	Content       string `json:"content"`
	ContentType   string `json:"contentType"`
	Hash          string `json:"hash"`
	HashAlgorithm string `json:"hashAlgorithm"`
}

// ProviderCompletionData is supplied by the caller to complete a funding
// source setup.
type ProviderCompletionData interface {
	Kind() ProviderKind
	isCompletionData()
}

// ProviderRefreshData is supplied by the caller to refresh a funding source
// that requires user interaction.
type ProviderRefreshData interface {
	Kind() ProviderKind
	isRefreshData()
}

// ProviderInteractionData is decoded from a backend error that requires an
// out-of-band user step before the operation can be retried.
type ProviderInteractionData interface {
	Kind() ProviderKind
	isInteractionData()
}

// ProviderSetupData is decoded from the provisioning data of a
// provisional funding source.
type ProviderSetupData interface {
	Kind() ProviderKind
	isSetupData()
}

// StripeCardCompletionData completes a stripe credit card setup.
type StripeCardCompletionData struct {
	PaymentMethod string `json:"paymentMethod"`
}

func (StripeCardCompletionData) Kind() ProviderKind { return ProviderStripe }
func (StripeCardCompletionData) isCompletionData()  {}

// CheckoutCardCompletionData completes a checkout credit card setup.
type CheckoutCardCompletionData struct {
	PaymentToken string `json:"paymentToken"`
}

func (CheckoutCardCompletionData) Kind() ProviderKind { return ProviderCheckoutCard }
func (CheckoutCardCompletionData) isCompletionData()  {}

// CheckoutBankAccountCompletionData completes a checkout bank account setup.
type CheckoutBankAccountCompletionData struct {
	PublicToken       string            `json:"publicToken"`
	AccountID         string            `json:"accountId"`
	InstitutionID     string            `json:"institutionId"`
	AuthorizationText AuthorizationText `json:"authorizationText"`
}

func (CheckoutBankAccountCompletionData) Kind() ProviderKind { return ProviderCheckoutBankAccount }
func (CheckoutBankAccountCompletionData) isCompletionData()  {}

// CheckoutBankAccountRefreshData refreshes a checkout bank account.
type CheckoutBankAccountRefreshData struct {
	AccountID         *string            `json:"accountId,omitempty"`
	AuthorizationText *AuthorizationText `json:"authorizationText,omitempty"`
}

func (CheckoutBankAccountRefreshData) Kind() ProviderKind { return ProviderCheckoutBankAccount }
func (CheckoutBankAccountRefreshData) isRefreshData()     {}

// CheckoutCardInteractionData asks the user to follow a 3-D Secure style
// redirect before completion can be retried.
type CheckoutCardInteractionData struct {
	RedirectURL string `json:"redirectUrl"`
	SuccessURL  string `json:"successUrl"`
	FailureURL  string `json:"failureUrl"`
}

func (CheckoutCardInteractionData) Kind() ProviderKind { return ProviderCheckoutCard }
func (CheckoutCardInteractionData) isInteractionData() {}

// CheckoutBankAccountInteractionData asks the user to relink a bank account.
type CheckoutBankAccountInteractionData struct {
	LinkToken         string              `json:"linkToken"`
	AuthorizationText []AuthorizationText `json:"authorizationText"`
}

func (CheckoutBankAccountInteractionData) Kind() ProviderKind { return ProviderCheckoutBankAccount }
func (CheckoutBankAccountInteractionData) isInteractionData() {}

// StripeCardSetupData is the stripe setup intent of a provisional card
// funding source.
type StripeCardSetupData struct {
	ClientSecret string `json:"clientSecret"`
	Intent       string `json:"intent"`
}

func (StripeCardSetupData) Kind() ProviderKind { return ProviderStripe }
func (StripeCardSetupData) isSetupData()       {}

// CheckoutCardSetupData carries no provider fields.
type CheckoutCardSetupData struct{}

func (CheckoutCardSetupData) Kind() ProviderKind { return ProviderCheckoutCard }
func (CheckoutCardSetupData) isSetupData()       {}

// CheckoutBankAccountSetupData is the link token used to start bank linking.
type CheckoutBankAccountSetupData struct {
	LinkToken         string              `json:"linkToken"`
	AuthorizationText []AuthorizationText `json:"authorizationText"`
}

func (CheckoutBankAccountSetupData) Kind() ProviderKind { return ProviderCheckoutBankAccount }
func (CheckoutBankAccountSetupData) isSetupData()       {}
