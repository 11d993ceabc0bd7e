package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/validators"
	"github.com/MKhiriev/go-virtual-cards/models"
)

type transactionService struct {
	*base
}

func newTransactionService(b *base) TransactionService {
	return &transactionService{base: b}
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	if err := s.validate(ctx, models.FamilyTransaction, id); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpGetTransaction,
		Query:         adapter.GetTransactionQuery,
		Variables:     map[string]any{"id": id},
	}
	return getRecord(ctx, s.base, models.FamilyTransaction, req, "getTransaction", projectTransaction)
}

func (s *transactionService) ListTransactions(ctx context.Context, in models.ListTransactionsInput) (*models.ListResult[models.Transaction], error) {
	if err := s.validate(ctx, models.FamilyTransaction, in); err != nil {
		return nil, err
	}

	req := adapter.Request{
		OperationName: adapter.OpListTransactions,
		Query:         adapter.ListTransactionsQuery,
		Variables:     s.transactionVariables(in),
	}
	return listRecords(ctx, s.base, models.FamilyTransaction, req, "listTransactions2", projectTransaction)
}

func (s *transactionService) ListTransactionsByCardID(ctx context.Context, in models.ListTransactionsInput) (*models.ListResult[models.Transaction], error) {
	if err := s.validate(ctx, models.FamilyTransaction, in,
		validators.FieldCardID, validators.FieldDateRange, validators.FieldSortOrder,
		validators.FieldLimit, validators.FieldNextToken,
	); err != nil {
		return nil, err
	}

	vars := s.transactionVariables(in)
	vars["cardId"] = in.CardID

	req := adapter.Request{
		OperationName: adapter.OpListTransactionsByCardID,
		Query:         adapter.ListTransactionsByCardIDQuery,
		Variables:     vars,
	}
	return listRecords(ctx, s.base, models.FamilyTransaction, req, "listTransactionsByCardId2", projectTransaction)
}

func (s *transactionService) transactionVariables(in models.ListTransactionsInput) map[string]any {
	vars := s.pageVariables(in.ListOptions)
	if in.DateRange != nil {
		vars["dateRange"] = map[string]any{
			"startDateEpochMs": in.DateRange.Start.UnixMilli(),
			"endDateEpochMs":   in.DateRange.End.UnixMilli(),
		}
	}
	if in.SortOrder != "" {
		vars["sortOrder"] = string(in.SortOrder)
	}
	return vars
}
