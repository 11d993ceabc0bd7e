// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"net/http"

	goerrors "github.com/goliatone/go-errors"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/app"
	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/logger"
	"github.com/MKhiriev/go-virtual-cards/internal/provider"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// operation selects the kind a transport failure maps to.
type operation int

const (
	opDefault operation = iota
	opCancel
	opRefresh
)

// code tables, one per family
var (
	cardCodes = map[string]models.ErrorKind{
		app.CodeCardNotFound:                     models.KindNotFound,
		app.CodeCardState:                        models.KindStateError,
		app.CodeAccountLocked:                    models.KindAccountLocked,
		app.CodeIdentityVerificationNotVerified:  models.KindIdentityVerification,
		app.CodeIdentityVerificationInsufficient: models.KindIdentityVerificationInsufficient,
		app.CodeFundingSourceNotFound:            models.KindFundingSourceNotFound,
		app.CodeFundingSourceNotActive:           models.KindFundingSourceNotActive,
		app.CodeVelocityExceeded:                 models.KindVelocityExceeded,
		app.CodeEntitlementExceeded:              models.KindEntitlementExceeded,
		app.CodeUnsupportedCurrency:              models.KindUnsupportedCurrency,
	}

	transactionCodes = map[string]models.ErrorKind{
		app.CodeTransactionNotFound: models.KindNotFound,
		app.CodeAccountLocked:       models.KindAccountLocked,
	}

	fundingSourceCodes = map[string]models.ErrorKind{
		app.CodeFundingSourceNotFound:                models.KindNotFound,
		app.CodeFundingSourceState:                   models.KindStateError,
		app.CodeAccountLocked:                        models.KindAccountLocked,
		app.CodeIdentityVerificationNotVerified:      models.KindIdentityVerification,
		app.CodeIdentityVerificationInsufficient:     models.KindIdentityVerificationInsufficient,
		app.CodeFundingSourceCompletionDataInvalid:   models.KindCompletionDataInvalid,
		app.CodeCompletionDataInvalid:                models.KindCompletionDataInvalid,
		app.CodeProvisionalFundingSourceNotFound:     models.KindProvisionalFundingSourceNotFound,
		app.CodeUnacceptableFundingSource:            models.KindUnacceptableFundingSource,
		app.CodeDuplicateFundingSource:               models.KindDuplicateFundingSource,
		app.CodeSetupFailed:                          models.KindSetupFailed,
		app.CodeRequiresUserInteraction:              models.KindRequiresUserInteraction,
		app.CodeFundingSourceRequiresUserInteraction: models.KindRequiresUserInteraction,
		app.CodeUnsupportedCurrency:                  models.KindUnsupportedCurrency,
		app.CodeEntitlementExceeded:                  models.KindEntitlementExceeded,
	}

	provisionalFundingSourceCodes = map[string]models.ErrorKind{
		app.CodeProvisionalFundingSourceNotFound: models.KindProvisionalFundingSourceNotFound,
		app.CodeFundingSourceState:               models.KindStateError,
		app.CodeAccountLocked:                    models.KindAccountLocked,
	}

	codeTables = map[models.ErrorFamily]map[string]models.ErrorKind{
		models.FamilyCard:                     cardCodes,
		models.FamilyTransaction:              transactionCodes,
		models.FamilyFundingSource:            fundingSourceCodes,
		models.FamilyProvisionalFundingSource: provisionalFundingSourceCodes,
	}
)

// errorClassifier translates lower-layer errors into *models.SdkError.
// It holds no state besides its logger and is safe for concurrent use.
type errorClassifier struct {
	logger *logger.Logger
}

func newErrorClassifier(log *logger.Logger) *errorClassifier {
	if log == nil {
		log = logger.Nop()
	}
	return &errorClassifier{logger: log}
}

// classify maps err raised by an operation of family. Context cancellation
// anywhere in the chain is returned unchanged, as is an error that is
// already an *models.SdkError.
func (c *errorClassifier) classify(family models.ErrorFamily, op operation, err error) error {
	if err == nil {
		return nil
	}
	if crypto.IsCancellation(err) {
		return err
	}

	var sdkErr *models.SdkError
	if errors.As(err, &sdkErr) {
		return err
	}

	// a missing key while unsealing is an unsealing failure like any other
	var unsealErr *crypto.UnsealingError
	if errors.As(err, &unsealErr) || errors.Is(err, crypto.ErrSealedDataTooShort) {
		return &models.SdkError{Family: family, Kind: models.KindUnsealing, Message: err.Error(), Cause: err}
	}
	if errors.Is(err, crypto.ErrKeyNotFound) {
		return &models.SdkError{Family: family, Kind: models.KindPublicKey, Message: err.Error(), Cause: err}
	}

	var backendErrs *adapter.BackendErrors
	if errors.As(err, &backendErrs) {
		return c.fromBackend(family, backendErrs)
	}

	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.Code >= http.StatusBadRequest {
		return &models.SdkError{Family: family, Kind: failedKind(op), Code: rich.TextCode, Message: err.Error(), Cause: err}
	}

	return &models.SdkError{Family: family, Kind: models.KindUnknown, Message: err.Error(), Cause: err}
}

// fromBackend classifies the first GraphQL error of errs.
func (c *errorClassifier) fromBackend(family models.ErrorFamily, errs *adapter.BackendErrors) error {
	first, ok := errs.First()
	if !ok {
		return &models.SdkError{Family: family, Kind: models.KindUnknown, Message: errs.Error(), Cause: errs}
	}

	code := first.Code()
	kind, known := codeTables[family][app.NormalizeCode(code)]
	if !known {
		c.logger.Warn().
			Str("family", string(family)).
			Str("operation", errs.Operation).
			Str("code", code).
			Msg("unmapped backend error code")
		kind = models.KindUnknown
	}

	out := &models.SdkError{Family: family, Kind: kind, Code: code, Message: first.Message, Cause: errs}
	if kind != models.KindRequiresUserInteraction {
		return out
	}

	interaction, err := decodeInteraction(first.Info())
	if err != nil {
		c.logger.Warn().
			Err(err).
			Str("code", code).
			Msg("undecodable interaction payload")
		out.Kind = models.KindUnknown
		out.Cause = errors.Join(errs, err)
		return out
	}
	out.Interaction = interaction
	return out
}

// decodeInteraction reads the interaction payload of a backend error info
// map. The provider entry, when present, must agree with the payload.
func decodeInteraction(info map[string]any) (models.ProviderInteractionData, error) {
	var raw string
	for _, key := range []string{app.InfoProvisioningData, app.InfoInteractionData} {
		if v, ok := info[key].(string); ok && v != "" {
			raw = v
			break
		}
	}
	hint, _ := info[app.InfoProvider].(string)
	return provider.DecodeInteraction(raw, hint)
}

func failedKind(op operation) models.ErrorKind {
	switch op {
	case opCancel:
		return models.KindCancelFailed
	case opRefresh:
		return models.KindRefreshFailed
	default:
		return models.KindFailed
	}
}

// invalidArgument reports a caller input rejected before any I/O.
func invalidArgument(family models.ErrorFamily, err error) error {
	return &models.SdkError{Family: family, Kind: models.KindInvalidArgument, Message: err.Error(), Cause: err}
}
