package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/provider"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// projectFundingSource projects either member of the funding source union.
// Credit cards carry no sealed attributes; bank accounts carry a sealed
// institution name and an optional sealed logo, each with its own key. A
// record of any other type keeps its common attributes and fails with
// ErrUnknownFundingSourceType.
func projectFundingSource(ctx context.Context, u *crypto.Unsealer, w models.SealedFundingSource) (projection[models.FundingSource], error) {
	fs := models.FundingSource{
		ID:        w.ID,
		Owner:     w.Owner,
		Version:   w.Version,
		CreatedAt: epochMs(w.CreatedAtEpochMs),
		UpdatedAt: epochMs(w.UpdatedAtEpochMs),
		State:     models.FundingSourceState(w.State),
		Flags:     w.Flags,
		Currency:  w.Currency,
		Last4:     w.Last4,
	}
	if v := w.TransactionVelocity; v != nil {
		fs.TransactionVelocity = &models.TransactionVelocity{Maximum: v.Maximum, Velocity: v.Velocity}
	}

	switch w.Typename {
	case models.TypenameCreditCardFundingSource:
		fs.Type = models.FundingSourceTypeCreditCard
		fs.Network = w.Network
		fs.CardType = w.CardType
		return projection[models.FundingSource]{record: fs}, nil

	case models.TypenameBankAccountFundingSource:
		fs.Type = models.FundingSourceTypeBankAccount
		fs.BankAccountType = w.BankAccountType

		s := newSession(ctx, u, "", "")
		fs.InstitutionName = s.attrString("institutionName", w.InstitutionName)
		if w.InstitutionLogo != nil {
			var logo models.InstitutionLogo
			if s.attrJSON("institutionLogo", w.InstitutionLogo, &logo) {
				fs.InstitutionLogo = &logo
			}
		}
		return finish(s, fs)
	}

	return projection[models.FundingSource]{
		record: fs,
		cause:  fmt.Errorf("%w: %q", ErrUnknownFundingSourceType, w.Typename),
	}, nil
}

// projectProvisionalFundingSource decodes the provider setup data of a
// provisional funding source. Nothing is sealed; an undecodable payload is
// reported as the record's failure so the rest of the record survives.
func projectProvisionalFundingSource(_ context.Context, _ *crypto.Unsealer, w models.WireProvisionalFundingSource) (projection[models.ProvisionalFundingSource], error) {
	p := models.ProvisionalFundingSource{
		ID:        w.ID,
		Owner:     w.Owner,
		Version:   w.Version,
		CreatedAt: epochMs(w.CreatedAtEpochMs),
		UpdatedAt: epochMs(w.UpdatedAtEpochMs),
		Type:      models.FundingSourceType(w.Type),
		State:     models.ProvisionalFundingSourceState(w.State),
		Last4:     w.Last4,
	}
	if w.ProvisioningData == "" {
		return projection[models.ProvisionalFundingSource]{record: p}, nil
	}

	data, err := provider.DecodeSetup(w.ProvisioningData, "")
	if err != nil {
		return projection[models.ProvisionalFundingSource]{
			record: p,
			cause:  fmt.Errorf("decode provisioning data: %w", err),
		}, nil
	}
	p.ProvisioningData = data
	return projection[models.ProvisionalFundingSource]{record: p}, nil
}
