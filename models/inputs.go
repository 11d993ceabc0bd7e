// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BillingAddressInput is the plaintext billing address sent when
// provisioning or updating a card. The backend seals it.
type BillingAddressInput struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
}

// ProvisionVirtualCardInput requests a new virtual card.
type ProvisionVirtualCardInput struct {
	ClientRefID     string               `json:"clientRefId"`
	OwnershipProofs []string             `json:"ownerProofs"`
	FundingSourceID string               `json:"fundingSourceId"`
	CardHolder      string               `json:"cardHolder"`
	Alias           *string              `json:"alias,omitempty"`
	BillingAddress  *BillingAddressInput `json:"billingAddress,omitempty"`
	Currency        string               `json:"currency"`
}

// UpdateVirtualCardInput updates the mutable attributes of a card.
type UpdateVirtualCardInput struct {
	ID              string               `json:"id"`
	ExpectedVersion *int64               `json:"expectedVersion,omitempty"`
	CardHolder      *string              `json:"cardHolder,omitempty"`
	Alias           *string              `json:"alias,omitempty"`
	BillingAddress  *BillingAddressInput `json:"billingAddress,omitempty"`
}

// SetupFundingSourceInput starts setting up a funding source.
type SetupFundingSourceInput struct {
	Type               FundingSourceType `json:"type"`
	Currency           string            `json:"currency"`
	SupportedProviders []string          `json:"supportedProviders,omitempty"`
	ApplicationName    string            `json:"applicationName"`
}

// CompleteFundingSourceInput completes a funding source setup with the
// provider's completion data.
type CompleteFundingSourceInput struct {
	ID                      string                 `json:"id"`
	CompletionData          ProviderCompletionData `json:"-"`
	UpdateCardFundingSource *bool                  `json:"updateCardFundingSource,omitempty"`
}

// RefreshFundingSourceInput refreshes a funding source after a user
// interaction.
type RefreshFundingSourceInput struct {
	ID          string              `json:"id"`
	RefreshData ProviderRefreshData `json:"-"`
	Language    *string             `json:"language,omitempty"`
}

// ListTransactionsInput filters a transaction listing.
type ListTransactionsInput struct {
	CardID    string
	DateRange *DateRange
	SortOrder SortOrder
	ListOptions
}
