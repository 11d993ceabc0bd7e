package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID                = errors.New("id is required")
	ErrInvalidClientRefID       = errors.New("client reference id is required")
	ErrNoOwnershipProofs        = errors.New("at least one ownership proof is required")
	ErrInvalidFundingSourceID   = errors.New("funding source id is required")
	ErrInvalidCardHolder        = errors.New("card holder is required")
	ErrInvalidCurrency          = errors.New("currency must be a three-letter ISO-4217 code")
	ErrInvalidBillingAddress    = errors.New("invalid billing address")
	ErrInvalidExpectedVersion   = errors.New("expected version must not be negative")
	ErrInvalidFundingSourceType = errors.New("invalid funding source type")
	ErrInvalidProvider          = errors.New("supported provider must not be empty")
	ErrNoCompletionData         = errors.New("completion data is required")
	ErrNoRefreshData            = errors.New("refresh data is required")
	ErrInvalidLimit             = errors.New("invalid page limit")
	ErrInvalidNextToken         = errors.New("next token must not be empty")
	ErrInvalidDateRange         = errors.New("date range start is after its end")
	ErrInvalidSortOrder         = errors.New("invalid sort order")
)
