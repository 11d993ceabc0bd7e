package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// projectTransaction unseals a transaction in declaration order:
// transactedAt, settledAt, billedAmount, transactedAmount, description,
// declineReason, then each detail entry.
func projectTransaction(ctx context.Context, u *crypto.Unsealer, w models.SealedTransaction) (projection[models.Transaction], error) {
	s := newSession(ctx, u, w.KeyID, w.Algorithm)

	tx := models.Transaction{
		ID:         w.ID,
		Owner:      w.Owner,
		Version:    w.Version,
		CreatedAt:  epochMs(w.CreatedAtEpochMs),
		UpdatedAt:  epochMs(w.UpdatedAtEpochMs),
		SortDate:   epochMs(w.SortDateEpochMs),
		CardID:     w.CardID,
		SequenceID: w.SequenceID,
		Type:       models.TransactionType(w.Type),
	}

	tx.TransactedAt = s.timestamp("transactedAt", w.TransactedAtEpochMs)
	tx.SettledAt = s.optTime("settledAt", w.SettledAtEpochMs)
	tx.BilledAmount = s.amount("billedAmount", w.BilledAmount)
	tx.TransactedAmount = s.amount("transactedAmount", w.TransactedAmount)
	tx.Description = s.str("description", w.Description)
	tx.DeclineReason = s.optStr("declineReason", w.DeclineReason)

	if len(w.Detail) > 0 {
		tx.Detail = make([]models.TransactionDetail, 0, len(w.Detail))
		for _, d := range w.Detail {
			tx.Detail = append(tx.Detail, models.TransactionDetail{
				VirtualCardAmount: s.amount("detail.virtualCardAmount", d.VirtualCardAmount),
				Markup: models.Markup{
					Percent:   s.decimal("detail.markup.percent", d.Markup.Percent),
					Flat:      s.integer("detail.markup.flat", d.Markup.Flat),
					MinCharge: s.integer("detail.markup.minCharge", d.Markup.MinCharge),
				},
				MarkupAmount:        s.amount("detail.markupAmount", d.MarkupAmount),
				FundingSourceAmount: s.amount("detail.fundingSourceAmount", d.FundingSourceAmount),
				FundingSourceID:     d.FundingSourceID,
				Description:         s.str("detail.description", d.Description),
				State:               s.optStr("detail.state", d.State),
			})
		}
	}

	return finish(s, tx)
}
