package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// projectCard unseals a card in declaration order: cardHolder, alias, pan,
// csc, billingAddress, expiry, lastTransaction, metadata. A failure inside
// lastTransaction counts as a failure of the card.
func projectCard(ctx context.Context, u *crypto.Unsealer, w models.SealedCard) (projection[models.Card], error) {
	s := newSession(ctx, u, w.KeyID, w.Algorithm)

	card := models.Card{
		ID:              w.ID,
		Owner:           w.Owner,
		Version:         w.Version,
		CreatedAt:       epochMs(w.CreatedAtEpochMs),
		UpdatedAt:       epochMs(w.UpdatedAtEpochMs),
		FundingSourceID: w.FundingSourceID,
		Currency:        w.Currency,
		State:           models.CardState(w.State),
		ActiveTo:        epochMs(w.ActiveToEpochMs),
		CancelledAt:     optEpochMs(w.CancelledAtEpochMs),
		Last4:           w.Last4,
	}

	card.CardHolder = s.str("cardHolder", w.CardHolder)
	card.Alias = s.optStr("alias", w.Alias)
	card.PAN = s.str("pan", w.PAN)
	card.CSC = s.str("csc", w.CSC)

	if a := w.BillingAddress; a != nil {
		card.BillingAddress = &models.BillingAddress{
			AddressLine1: s.str("billingAddress.addressLine1", a.AddressLine1),
			AddressLine2: s.optStr("billingAddress.addressLine2", a.AddressLine2),
			City:         s.str("billingAddress.city", a.City),
			State:        s.str("billingAddress.state", a.State),
			PostalCode:   s.str("billingAddress.postalCode", a.PostalCode),
			Country:      s.str("billingAddress.country", a.Country),
		}
	}

	card.Expiry = models.Expiry{
		MM:   s.str("expiry.mm", w.Expiry.MM),
		YYYY: s.str("expiry.yyyy", w.Expiry.YYYY),
	}

	if w.LastTransaction != nil && !s.stopped() {
		tx, err := projectTransaction(ctx, u, *w.LastTransaction)
		s.merge(tx.cause, err)
		if err == nil {
			card.LastTransaction = &tx.record
		}
	}

	if w.Metadata != nil {
		var metadata map[string]any
		if s.attrJSON("metadata", w.Metadata, &metadata) {
			card.Metadata = metadata
		}
	}

	return finish(s, card)
}

// projectProvisionalCard projects the card of a provisional card once
// provisioning has produced one.
func projectProvisionalCard(ctx context.Context, u *crypto.Unsealer, w models.SealedProvisionalCard) (projection[models.ProvisionalCard], error) {
	p := models.ProvisionalCard{
		ID:                w.ID,
		Owner:             w.Owner,
		Version:           w.Version,
		CreatedAt:         epochMs(w.CreatedAtEpochMs),
		UpdatedAt:         epochMs(w.UpdatedAtEpochMs),
		ClientRefID:       w.ClientRefID,
		ProvisioningState: models.ProvisioningState(w.ProvisioningState),
	}
	if w.Card == nil {
		return projection[models.ProvisionalCard]{record: p}, nil
	}

	card, err := projectCard(ctx, u, *w.Card)
	if err != nil {
		return projection[models.ProvisionalCard]{record: p}, err
	}
	p.Card = &card.record
	return projection[models.ProvisionalCard]{record: p, cause: card.cause}, nil
}
