// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CardState is the lifecycle state of a virtual card.
type CardState string

const (
	CardStateIssuing   CardState = "ISSUING"
	CardStateActive    CardState = "ACTIVE"
	CardStateSuspended CardState = "SUSPENDED"
	CardStateClosed    CardState = "CLOSED"
	CardStateFailed    CardState = "FAILED"
)

// BillingAddress is the unsealed billing address of a card.
type BillingAddress struct {
	AddressLine1 string
	AddressLine2 *string
	City         string
	State        string
	PostalCode   string
	Country      string
}

// Expiry is the unsealed expiry date of a card.
type Expiry struct {
	MM   string
	YYYY string
}

// Card is a virtual card with every sealed attribute unsealed.
type Card struct {
	ID              string
	Owner           string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	FundingSourceID string
	Currency        string
	State           CardState
	ActiveTo        time.Time
	CancelledAt     *time.Time
	Last4           string

	CardHolder     string
	Alias          *string
	PAN            string
	CSC            string
	BillingAddress *BillingAddress
	Expiry         Expiry

	LastTransaction *Transaction
	Metadata        map[string]any
}

// GetID returns the card identifier.
func (c Card) GetID() string { return c.ID }

// ProvisioningState is the state of a provisional card.
type ProvisioningState string

const (
	ProvisioningStateProvisioning ProvisioningState = "PROVISIONING"
	ProvisioningStateCompleted    ProvisioningState = "COMPLETED"
	ProvisioningStateFailed       ProvisioningState = "FAILED"
)

// ProvisionalCard tracks an in-flight card provisioning request. Card is
// set once provisioning has completed.
type ProvisionalCard struct {
	ID                string
	Owner             string
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ClientRefID       string
	ProvisioningState ProvisioningState
	Card              *Card
}

// GetID returns the provisional card identifier.
func (p ProvisionalCard) GetID() string { return p.ID }
