// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SealedAttribute is a sealed value that carries its own key descriptor.
// It is used where the backend seals a single attribute independently of
// the record it belongs to (funding-source institution data, card metadata).
type SealedAttribute struct {
	// KeyID identifies the private key that unwraps the per-field key.
	KeyID string `json:"keyId"`

	// Algorithm names the symmetric scheme of the payload (e.g. "AES/CBC/PKCS7Padding").
	Algorithm string `json:"algorithm"`

	// PlainTextType describes the plaintext shape ("string", "json-string").
	PlainTextType string `json:"plainTextType"`

	// Base64EncodedSealedData is the envelope: wrapped key block followed by ciphertext.
	Base64EncodedSealedData string `json:"base64EncodedSealedData"`
}

// SealedBillingAddress is the wire form of a billing address; every
// attribute is sealed with the owning card's key.
type SealedBillingAddress struct {
	AddressLine1 string  `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postalCode"`
	Country      string  `json:"country"`
}

// SealedExpiry is the wire form of a card expiry date.
type SealedExpiry struct {
	MM   string `json:"mm"`
	YYYY string `json:"yyyy"`
}

// SealedCard is a virtual card as returned by the graph API.
// Sealed string fields are base64 envelopes keyed by KeyID/Algorithm.
type SealedCard struct {
	ID                 string   `json:"id"`
	Owner              string   `json:"owner"`
	Version            int64    `json:"version"`
	CreatedAtEpochMs   float64  `json:"createdAtEpochMs"`
	UpdatedAtEpochMs   float64  `json:"updatedAtEpochMs"`
	Algorithm          string   `json:"algorithm"`
	KeyID              string   `json:"keyId"`
	FundingSourceID    string   `json:"fundingSourceId"`
	Currency           string   `json:"currency"`
	State              string   `json:"state"`
	ActiveToEpochMs    float64  `json:"activeToEpochMs"`
	CancelledAtEpochMs *float64 `json:"cancelledAtEpochMs,omitempty"`
	Last4              string   `json:"last4"`

	CardHolder     string                `json:"cardHolder"`
	Alias          *string               `json:"alias,omitempty"`
	PAN            string                `json:"pan"`
	CSC            string                `json:"csc"`
	BillingAddress *SealedBillingAddress `json:"billingAddress,omitempty"`
	Expiry         SealedExpiry          `json:"expiry"`

	LastTransaction *SealedTransaction `json:"lastTransaction,omitempty"`
	Metadata        *SealedAttribute   `json:"metadata,omitempty"`
}

// SealedCurrencyAmount is a sealed currency/amount pair.
type SealedCurrencyAmount struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
}

// SealedMarkup is the sealed fee schedule applied to a transaction.
type SealedMarkup struct {
	Percent   string `json:"percent"`
	Flat      string `json:"flat"`
	MinCharge string `json:"minCharge"`
}

// SealedTransactionDetail is one funding-source charge of a transaction.
type SealedTransactionDetail struct {
	VirtualCardAmount   SealedCurrencyAmount `json:"virtualCardAmount"`
	Markup              SealedMarkup         `json:"markup"`
	MarkupAmount        SealedCurrencyAmount `json:"markupAmount"`
	FundingSourceAmount SealedCurrencyAmount `json:"fundingSourceAmount"`
	FundingSourceID     string               `json:"fundingSourceId"`
	Description         string               `json:"description"`
	State               *string              `json:"state,omitempty"`
}

// SealedTransaction is a card transaction as returned by the graph API.
type SealedTransaction struct {
	ID               string  `json:"id"`
	Owner            string  `json:"owner"`
	Version          int64   `json:"version"`
	CreatedAtEpochMs float64 `json:"createdAtEpochMs"`
	UpdatedAtEpochMs float64 `json:"updatedAtEpochMs"`
	SortDateEpochMs  float64 `json:"sortDateEpochMs"`
	Algorithm        string  `json:"algorithm"`
	KeyID            string  `json:"keyId"`
	CardID           string  `json:"cardId"`
	SequenceID       string  `json:"sequenceId"`
	Type             string  `json:"type"`

	TransactedAtEpochMs string                    `json:"transactedAtEpochMs"`
	SettledAtEpochMs    *string                   `json:"settledAtEpochMs,omitempty"`
	BilledAmount        SealedCurrencyAmount      `json:"billedAmount"`
	TransactedAmount    SealedCurrencyAmount      `json:"transactedAmount"`
	Description         string                    `json:"description"`
	DeclineReason       *string                   `json:"declineReason,omitempty"`
	Detail              []SealedTransactionDetail `json:"detail,omitempty"`
}

// SealedTransactionVelocity is the plain velocity limit of a funding source.
type SealedTransactionVelocity struct {
	Maximum  *int64   `json:"maximum,omitempty"`
	Velocity []string `json:"velocity,omitempty"`
}

// SealedFundingSource is the union of credit-card and bank-account funding
// sources as returned by the graph API, discriminated by Typename.
type SealedFundingSource struct {
	Typename            string                     `json:"__typename"`
	ID                  string                     `json:"id"`
	Owner               string                     `json:"owner"`
	Version             int64                      `json:"version"`
	CreatedAtEpochMs    float64                    `json:"createdAtEpochMs"`
	UpdatedAtEpochMs    float64                    `json:"updatedAtEpochMs"`
	State               string                     `json:"state"`
	Flags               []string                   `json:"flags,omitempty"`
	Currency            string                     `json:"currency"`
	TransactionVelocity *SealedTransactionVelocity `json:"transactionVelocity,omitempty"`
	Last4               string                     `json:"last4"`

	// credit card only
	Network  string `json:"network,omitempty"`
	CardType string `json:"cardType,omitempty"`

	// bank account only
	BankAccountType string           `json:"bankAccountType,omitempty"`
	InstitutionName *SealedAttribute `json:"institutionName,omitempty"`
	InstitutionLogo *SealedAttribute `json:"institutionLogo,omitempty"`
}

// SealedProvisionalCard is a provisional card as returned by the graph API.
type SealedProvisionalCard struct {
	ID                string      `json:"id"`
	Owner             string      `json:"owner"`
	Version           int64       `json:"version"`
	CreatedAtEpochMs  float64     `json:"createdAtEpochMs"`
	UpdatedAtEpochMs  float64     `json:"updatedAtEpochMs"`
	ClientRefID       string      `json:"clientRefId"`
	ProvisioningState string      `json:"provisioningState"`
	Card              *SealedCard `json:"card,omitempty"`
}

// WireProvisionalFundingSource is a provisional funding source as returned
// by the graph API. It has no sealed attributes; ProvisioningData is a
// base64-JSON provider payload.
type WireProvisionalFundingSource struct {
	ID               string  `json:"id"`
	Owner            string  `json:"owner"`
	Version          int64   `json:"version"`
	CreatedAtEpochMs float64 `json:"createdAtEpochMs"`
	UpdatedAtEpochMs float64 `json:"updatedAtEpochMs"`
	Type             string  `json:"type"`
	State            string  `json:"state"`
	Last4            string  `json:"last4"`
	ProvisioningData string  `json:"provisioningData"`
}

// Page is one page of a list query.
type Page[T any] struct {
	Items     []T     `json:"items"`
	NextToken *string `json:"nextToken"`
}
