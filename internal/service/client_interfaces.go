package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/models"
)

// CardService defines the contract for provisioning and managing virtual
// cards. Every error it returns is a *models.SdkError of the card family,
// except context cancellation, which is returned unchanged.
type CardService interface {
	// ProvisionVirtualCard starts provisioning a card and returns the
	// provisional card that tracks it.
	ProvisionVirtualCard(ctx context.Context, in models.ProvisionVirtualCardInput) (*models.ProvisionalCard, error)

	// GetProvisionalCard returns the provisional card id, or nil if the
	// backend has none.
	GetProvisionalCard(ctx context.Context, id string) (*models.ProvisionalCard, error)

	// ListProvisionalCards returns one page of provisional cards.
	ListProvisionalCards(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.ProvisionalCard], error)

	// GetVirtualCard returns the card id, or nil if the backend has none.
	// A card that cannot be fully unsealed is reported as KindUnsealing.
	GetVirtualCard(ctx context.Context, id string) (*models.Card, error)

	// ListVirtualCards returns one page of cards. Cards that cannot be fully
	// unsealed are returned in the Failed bucket of a partial result.
	ListVirtualCards(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.Card], error)

	// UpdateVirtualCard updates the mutable attributes of a card.
	UpdateVirtualCard(ctx context.Context, in models.UpdateVirtualCardInput) (*models.SingleResult[models.Card], error)

	// CancelVirtualCard cancels a card. A transport failure is reported as
	// KindCancelFailed.
	CancelVirtualCard(ctx context.Context, id string) (*models.SingleResult[models.Card], error)
}

// TransactionService defines the contract for reading card transactions.
type TransactionService interface {
	// GetTransaction returns the transaction id, or nil if the backend has none.
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)

	// ListTransactions returns one page of the caller's transactions.
	// in.CardID is ignored.
	ListTransactions(ctx context.Context, in models.ListTransactionsInput) (*models.ListResult[models.Transaction], error)

	// ListTransactionsByCardID returns one page of the transactions of
	// in.CardID.
	ListTransactionsByCardID(ctx context.Context, in models.ListTransactionsInput) (*models.ListResult[models.Transaction], error)
}

// FundingSourceService defines the contract for setting up and managing
// funding sources. Provisional funding source operations report errors of
// the provisional funding source family.
type FundingSourceService interface {
	// GetFundingSourceClientConfiguration returns the providers the client
	// may set up funding sources with.
	GetFundingSourceClientConfiguration(ctx context.Context) (*models.FundingSourceClientConfiguration, error)

	// SetupFundingSource starts a provider setup and returns the provisional
	// funding source holding the provider's setup data.
	SetupFundingSource(ctx context.Context, in models.SetupFundingSourceInput) (*models.ProvisionalFundingSource, error)

	// CompleteFundingSource completes a setup with provider completion data.
	// A KindRequiresUserInteraction error carries the decoded interaction
	// data in its Interaction field.
	CompleteFundingSource(ctx context.Context, in models.CompleteFundingSourceInput) (*models.FundingSource, error)

	// RefreshFundingSource refreshes a funding source after a user
	// interaction. A transport failure is reported as KindRefreshFailed.
	RefreshFundingSource(ctx context.Context, in models.RefreshFundingSourceInput) (*models.FundingSource, error)

	// GetFundingSource returns the funding source id, or nil if the backend
	// has none.
	GetFundingSource(ctx context.Context, id string) (*models.FundingSource, error)

	// ListFundingSources returns one page of funding sources.
	ListFundingSources(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.FundingSource], error)

	// CancelFundingSource cancels a funding source. A transport failure is
	// reported as KindCancelFailed.
	CancelFundingSource(ctx context.Context, id string) (*models.FundingSource, error)

	// GetProvisionalFundingSource returns the provisional funding source id,
	// or nil if the backend has none.
	GetProvisionalFundingSource(ctx context.Context, id string) (*models.ProvisionalFundingSource, error)

	// ListProvisionalFundingSources returns one page of provisional funding
	// sources.
	ListProvisionalFundingSources(ctx context.Context, opts models.ListOptions) (*models.ListResult[models.ProvisionalFundingSource], error)

	// CancelProvisionalFundingSource cancels an unfinished setup.
	CancelProvisionalFundingSource(ctx context.Context, id string) (*models.ProvisionalFundingSource, error)
}
