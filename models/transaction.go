// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TransactionType classifies a card transaction.
type TransactionType string

const (
	TransactionTypePending  TransactionType = "PENDING"
	TransactionTypeComplete TransactionType = "COMPLETE"
	TransactionTypeRefund   TransactionType = "REFUND"
	TransactionTypeDecline  TransactionType = "DECLINE"
	TransactionTypeReversal TransactionType = "REVERSAL"
)

// CurrencyAmount is an amount in minor units of Currency.
type CurrencyAmount struct {
	Currency string
	Amount   int64
}

// Markup is the fee schedule applied to a transaction charge. Percent is
// expressed in thousandths of a percent as delivered by the backend.
type Markup struct {
	Percent   float64
	Flat      int64
	MinCharge int64
}

// TransactionDetail is one funding-source charge of a transaction.
type TransactionDetail struct {
	VirtualCardAmount   CurrencyAmount
	Markup              Markup
	MarkupAmount        CurrencyAmount
	FundingSourceAmount CurrencyAmount
	FundingSourceID     string
	Description         string
	State               *string
}

// Transaction is a card transaction with every sealed attribute unsealed.
type Transaction struct {
	ID         string
	Owner      string
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	SortDate   time.Time
	CardID     string
	SequenceID string
	Type       TransactionType

	TransactedAt     time.Time
	SettledAt        *time.Time
	BilledAmount     CurrencyAmount
	TransactedAmount CurrencyAmount
	Description      string
	DeclineReason    *string
	Detail           []TransactionDetail
}

// GetID returns the transaction identifier.
func (t Transaction) GetID() string { return t.ID }

// SortOrder orders list results by sort date.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "ASC"
	SortOrderDesc SortOrder = "DESC"
)

// DateRange bounds a transaction listing by sort date, both ends inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}
