package adapter

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/go-resty/resty/v2"
)

const maxErrorBodyBytes = 512

func transportError(
	message string,
	category goerrors.Category,
	code int,
	metadata map[string]any,
) error {
	err := goerrors.New(message, category).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportWrapError(
	source error,
	category goerrors.Category,
	message string,
	code int,
	metadata map[string]any,
) error {
	if source == nil {
		return transportError(message, category, code, metadata)
	}
	err := goerrors.Wrap(source, category, message).
		WithCode(code).
		WithTextCode(transportTextCode(category))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

func transportTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return TextCodeBadInput
	case goerrors.CategoryAuth:
		return TextCodeUnauthorized
	case goerrors.CategoryAuthz:
		return TextCodeForbidden
	case goerrors.CategoryNotFound:
		return TextCodeNotFound
	case goerrors.CategoryConflict:
		return TextCodeConflict
	case goerrors.CategoryRateLimit:
		return TextCodeRateLimited
	case goerrors.CategoryOperation:
		return TextCodeOperationFailed
	case goerrors.CategoryExternal:
		return TextCodeExternalFailure
	default:
		return TextCodeInternal
	}
}

// statusCategory picks the go-errors category of a non-2xx HTTP status.
func statusCategory(status int) goerrors.Category {
	switch {
	case status == http.StatusBadRequest:
		return goerrors.CategoryBadInput
	case status == http.StatusUnauthorized:
		return goerrors.CategoryAuth
	case status == http.StatusForbidden:
		return goerrors.CategoryAuthz
	case status == http.StatusNotFound:
		return goerrors.CategoryNotFound
	case status == http.StatusConflict:
		return goerrors.CategoryConflict
	case status == http.StatusTooManyRequests:
		return goerrors.CategoryRateLimit
	case status >= http.StatusInternalServerError:
		return goerrors.CategoryExternal
	default:
		return goerrors.CategoryOperation
	}
}

// mapHTTPError returns nil for 2xx responses and a go-errors envelope
// carrying the status as Code otherwise.
func mapHTTPError(resp *resty.Response, operation string) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	return transportError(
		"adapter: graphql "+operation+": "+body,
		statusCategory(resp.StatusCode()),
		resp.StatusCode(),
		map[string]any{"operation": operation, "status": resp.StatusCode()},
	)
}
