package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the identifier of the record an operation addresses.
	FieldID = "id"

	// FieldClientRefID targets the caller-chosen reference of a provisioning request.
	FieldClientRefID = "client_ref_id"

	// FieldOwnershipProofs targets the ownership proofs of a provisioning request.
	FieldOwnershipProofs = "ownership_proofs"

	// FieldFundingSourceID targets the funding source a card is drawn on.
	FieldFundingSourceID = "funding_source_id"

	// FieldCardHolder targets the card holder name.
	FieldCardHolder = "card_holder"

	// FieldCurrency targets an ISO-4217 currency code.
	FieldCurrency = "currency"

	// FieldBillingAddress targets the optional billing address.
	FieldBillingAddress = "billing_address"

	// FieldExpectedVersion targets the optimistic-locking version of an update.
	FieldExpectedVersion = "expected_version"

	// FieldType targets the funding source type.
	FieldType = "type"

	// FieldSupportedProviders targets the provider names a setup accepts.
	FieldSupportedProviders = "supported_providers"

	// FieldCompletionData targets the provider completion payload.
	FieldCompletionData = "completion_data"

	// FieldRefreshData targets the provider refresh payload.
	FieldRefreshData = "refresh_data"

	// FieldLimit targets the page size of a list operation.
	FieldLimit = "limit"

	// FieldNextToken targets the continuation token of a list operation.
	FieldNextToken = "next_token"

	// FieldCardID targets the card a transaction listing is scoped to.
	FieldCardID = "card_id"

	// FieldDateRange targets the date range of a transaction listing.
	FieldDateRange = "date_range"

	// FieldSortOrder targets the sort order of a transaction listing.
	FieldSortOrder = "sort_order"
)

var allowedFundingSourceTypes = []models.FundingSourceType{
	models.FundingSourceTypeCreditCard,
	models.FundingSourceTypeBankAccount,
}

// InputValidator implements the Validator interface for every SDK input:
// record ids, card provisioning and update requests, funding source setup,
// completion and refresh requests, list options and transaction filters.
//
// It supports both value and pointer forms of each input and allows
// field-level scoping via variadic field name arguments.
type InputValidator struct {
	maxLimit int
}

// NewInputValidator constructs a new InputValidator and returns it as the
// Validator interface.
func NewInputValidator() Validator {
	return &InputValidator{maxLimit: config.MaxPageLimit}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// A bare string is treated as a record id. Returns ErrUnsupportedType if obj
// does not match any known input.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateID(value, fields...)

	case models.ProvisionVirtualCardInput:
		return v.validateProvisionCard(value, fields...)
	case *models.ProvisionVirtualCardInput:
		return v.validateProvisionCard(*value, fields...)

	case models.UpdateVirtualCardInput:
		return v.validateUpdateCard(value, fields...)
	case *models.UpdateVirtualCardInput:
		return v.validateUpdateCard(*value, fields...)

	case models.SetupFundingSourceInput:
		return v.validateSetupFundingSource(value, fields...)
	case *models.SetupFundingSourceInput:
		return v.validateSetupFundingSource(*value, fields...)

	case models.CompleteFundingSourceInput:
		return v.validateCompleteFundingSource(value, fields...)
	case *models.CompleteFundingSourceInput:
		return v.validateCompleteFundingSource(*value, fields...)

	case models.RefreshFundingSourceInput:
		return v.validateRefreshFundingSource(value, fields...)
	case *models.RefreshFundingSourceInput:
		return v.validateRefreshFundingSource(*value, fields...)

	case models.ListOptions:
		return v.validateListOptions(value, fields...)
	case *models.ListOptions:
		return v.validateListOptions(*value, fields...)

	case models.ListTransactionsInput:
		return v.validateListTransactions(value, fields...)
	case *models.ListTransactionsInput:
		return v.validateListTransactions(*value, fields...)
	}

	return ErrUnsupportedType
}

func (v *InputValidator) validateID(id string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(id) {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateProvisionCard validates a card provisioning request.
//
// Default validated fields: ClientRefID, OwnershipProofs, FundingSourceID,
// CardHolder, Currency, BillingAddress.
func (v *InputValidator) validateProvisionCard(in models.ProvisionVirtualCardInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientRefID, FieldOwnershipProofs, FieldFundingSourceID, FieldCardHolder, FieldCurrency, FieldBillingAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldClientRefID:
			if isBlank(in.ClientRefID) {
				return ErrInvalidClientRefID
			}
		case FieldOwnershipProofs:
			if len(in.OwnershipProofs) == 0 {
				return ErrNoOwnershipProofs
			}
			for i, proof := range in.OwnershipProofs {
				if isBlank(proof) {
					return fmt.Errorf("ownership proof at index %d: %w", i, ErrNoOwnershipProofs)
				}
			}
		case FieldFundingSourceID:
			if isBlank(in.FundingSourceID) {
				return ErrInvalidFundingSourceID
			}
		case FieldCardHolder:
			if isBlank(in.CardHolder) {
				return ErrInvalidCardHolder
			}
		case FieldCurrency:
			if !isCurrency(in.Currency) {
				return ErrInvalidCurrency
			}
		case FieldBillingAddress:
			if err := validateBillingAddress(in.BillingAddress); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateUpdateCard validates a card update.
//
// Default validated fields: ID, ExpectedVersion, CardHolder (when set),
// BillingAddress (when set).
func (v *InputValidator) validateUpdateCard(in models.UpdateVirtualCardInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldExpectedVersion, FieldCardHolder, FieldBillingAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(in.ID) {
				return ErrInvalidID
			}
		case FieldExpectedVersion:
			if in.ExpectedVersion != nil && *in.ExpectedVersion < 0 {
				return ErrInvalidExpectedVersion
			}
		case FieldCardHolder:
			if in.CardHolder != nil && isBlank(*in.CardHolder) {
				return ErrInvalidCardHolder
			}
		case FieldBillingAddress:
			if err := validateBillingAddress(in.BillingAddress); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateSetupFundingSource validates a funding source setup request.
//
// Default validated fields: Type, Currency, SupportedProviders.
func (v *InputValidator) validateSetupFundingSource(in models.SetupFundingSourceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldCurrency, FieldSupportedProviders}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !isValidFundingSourceType(in.Type) {
				return ErrInvalidFundingSourceType
			}
		case FieldCurrency:
			if !isCurrency(in.Currency) {
				return ErrInvalidCurrency
			}
		case FieldSupportedProviders:
			for i, p := range in.SupportedProviders {
				if isBlank(p) {
					return fmt.Errorf("supported provider at index %d: %w", i, ErrInvalidProvider)
				}
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *InputValidator) validateCompleteFundingSource(in models.CompleteFundingSourceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldCompletionData}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(in.ID) {
				return ErrInvalidID
			}
		case FieldCompletionData:
			if in.CompletionData == nil {
				return ErrNoCompletionData
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *InputValidator) validateRefreshFundingSource(in models.RefreshFundingSourceInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldRefreshData}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if isBlank(in.ID) {
				return ErrInvalidID
			}
		case FieldRefreshData:
			if in.RefreshData == nil {
				return ErrNoRefreshData
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateListOptions validates pagination. A zero Limit means the
// configured default and is accepted.
func (v *InputValidator) validateListOptions(in models.ListOptions, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldNextToken}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if in.Limit < 0 || in.Limit > v.maxLimit {
				return fmt.Errorf("%w: %d (allowed 1..%d)", ErrInvalidLimit, in.Limit, v.maxLimit)
			}
		case FieldNextToken:
			if in.NextToken != nil && isBlank(*in.NextToken) {
				return ErrInvalidNextToken
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

// validateListTransactions validates a transaction listing. CardID is only
// checked when explicitly requested, since the unscoped listing has none.
//
// Default validated fields: DateRange, SortOrder, Limit, NextToken.
func (v *InputValidator) validateListTransactions(in models.ListTransactionsInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDateRange, FieldSortOrder, FieldLimit, FieldNextToken}
	}

	for _, f := range fields {
		switch f {
		case FieldCardID:
			if isBlank(in.CardID) {
				return ErrInvalidID
			}
		case FieldDateRange:
			if in.DateRange != nil && in.DateRange.Start.After(in.DateRange.End) {
				return ErrInvalidDateRange
			}
		case FieldSortOrder:
			switch in.SortOrder {
			case "", models.SortOrderAsc, models.SortOrderDesc:
			default:
				return fmt.Errorf("%w: %q", ErrInvalidSortOrder, in.SortOrder)
			}
		case FieldLimit, FieldNextToken:
			if err := v.validateListOptions(in.ListOptions, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func validateBillingAddress(a *models.BillingAddressInput) error {
	if a == nil {
		return nil
	}

	required := []struct {
		name  string
		value string
	}{
		{"addressLine1", a.AddressLine1},
		{"city", a.City},
		{"state", a.State},
		{"postalCode", a.PostalCode},
		{"country", a.Country},
	}
	for _, r := range required {
		if isBlank(r.value) {
			return fmt.Errorf("%w: %s is required", ErrInvalidBillingAddress, r.name)
		}
	}
	return nil
}

// isCurrency reports whether code has the shape of an ISO-4217 code.
func isCurrency(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func isValidFundingSourceType(t models.FundingSourceType) bool {
	for _, allowed := range allowedFundingSourceTypes {
		if t == allowed {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
