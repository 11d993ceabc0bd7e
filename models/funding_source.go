// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FundingSourceType is the kind of payment method backing a card.
type FundingSourceType string

const (
	FundingSourceTypeCreditCard  FundingSourceType = "CREDIT_CARD"
	FundingSourceTypeBankAccount FundingSourceType = "BANK_ACCOUNT"
)

// FundingSourceState is the lifecycle state of a funding source.
type FundingSourceState string

const (
	FundingSourceStateActive   FundingSourceState = "ACTIVE"
	FundingSourceStateInactive FundingSourceState = "INACTIVE"
	FundingSourceStateRefresh  FundingSourceState = "REFRESH"
)

// Wire __typename values of the funding source union.
const (
	TypenameCreditCardFundingSource  = "CreditCardFundingSource"
	TypenameBankAccountFundingSource = "BankAccountFundingSource"
)

// TransactionVelocity is the spending limit attached to a funding source.
type TransactionVelocity struct {
	Maximum  *int64
	Velocity []string
}

// InstitutionLogo is the unsealed logo of a bank institution.
type InstitutionLogo struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

// FundingSource is a credit card or bank account funding source. Fields
// that only apply to one Type are left zero for the other.
type FundingSource struct {
	ID                  string
	Owner               string
	Version             int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Type                FundingSourceType
	State               FundingSourceState
	Flags               []string
	Currency            string
	TransactionVelocity *TransactionVelocity
	Last4               string

	// credit card
	Network  string
	CardType string

	// bank account
	BankAccountType string
	InstitutionName string
	InstitutionLogo *InstitutionLogo
}

// GetID returns the funding source identifier.
func (f FundingSource) GetID() string { return f.ID }

// ProvisionalFundingSourceState is the state of a funding source setup.
type ProvisionalFundingSourceState string

const (
	ProvisionalFundingSourceStateProvisioning ProvisionalFundingSourceState = "PROVISIONING"
	ProvisionalFundingSourceStatePending      ProvisionalFundingSourceState = "PENDING"
	ProvisionalFundingSourceStateCompleted    ProvisionalFundingSourceState = "COMPLETED"
	ProvisionalFundingSourceStateFailed       ProvisionalFundingSourceState = "FAILED"
)

// ProvisionalFundingSource is a funding source whose setup has not been
// completed. ProvisioningData is the decoded provider setup payload.
type ProvisionalFundingSource struct {
	ID               string
	Owner            string
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Type             FundingSourceType
	State            ProvisionalFundingSourceState
	Last4            string
	ProvisioningData ProviderSetupData
}

// GetID returns the provisional funding source identifier.
func (p ProvisionalFundingSource) GetID() string { return p.ID }

// FundingSourceTypeConfig is the client configuration of one provider.
// Type is the wire provider name ("stripe", "checkout").
type FundingSourceTypeConfig struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	APIKey  string `json:"apiKey"`
}

// FundingSourceClientConfiguration lists the providers the client may
// use to set up funding sources.
type FundingSourceClientConfiguration struct {
	FundingSourceTypes []FundingSourceTypeConfig `json:"fundingSourceTypes"`
}
