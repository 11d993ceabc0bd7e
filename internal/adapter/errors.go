package adapter

import (
	"errors"
	"fmt"
	"strings"
)

// Text codes attached to transport go-errors envelopes.
const (
	TextCodeBadInput        = "VCARDS_BAD_INPUT"
	TextCodeUnauthorized    = "VCARDS_UNAUTHORIZED"
	TextCodeForbidden       = "VCARDS_FORBIDDEN"
	TextCodeNotFound        = "VCARDS_NOT_FOUND"
	TextCodeConflict        = "VCARDS_CONFLICT"
	TextCodeRateLimited     = "VCARDS_RATE_LIMITED"
	TextCodeExternalFailure = "VCARDS_EXTERNAL_FAILURE"
	TextCodeOperationFailed = "VCARDS_OPERATION_FAILED"
	TextCodeInternal        = "VCARDS_INTERNAL"
)

var (
	// ErrTokenExpired is the cause of the envelope returned when the token
	// provider hands out an already expired bearer token.
	ErrTokenExpired = errors.New("bearer token expired")
	// ErrNoResponse is the cause of the envelope returned for an empty
	// GraphQL response (neither data nor errors).
	ErrNoResponse = errors.New("empty graphql response")
)

// BackendError is one entry of a GraphQL "errors" array.
type BackendError struct {
	// ErrorType is the backend error code, possibly namespaced
	// (e.g. "sudoplatform.virtual-cards.CardNotFoundError").
	ErrorType string `json:"errorType"`
	Message   string `json:"message"`
	// ErrorInfo is the free-form payload attached to some errors.
	ErrorInfo  map[string]any `json:"errorInfo,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Code returns ErrorType, falling back to extensions.errorType and
// extensions.code for servers that report the code there.
func (e BackendError) Code() string {
	if e.ErrorType != "" {
		return e.ErrorType
	}
	for _, key := range []string{"errorType", "code"} {
		if v, ok := e.Extensions[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// Info returns ErrorInfo, falling back to extensions.errorInfo.
func (e BackendError) Info() map[string]any {
	if e.ErrorInfo != nil {
		return e.ErrorInfo
	}
	if v, ok := e.Extensions["errorInfo"].(map[string]any); ok {
		return v
	}
	return nil
}

// BackendErrors is returned when the backend answered an operation with
// one or more GraphQL errors.
type BackendErrors struct {
	Operation string
	Errors    []BackendError
}

func (e *BackendErrors) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("graphql %s: unknown error", e.Operation)
	}
	parts := make([]string, 0, len(e.Errors))
	for _, be := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", be.Code(), be.Message))
	}
	return fmt.Sprintf("graphql %s: %s", e.Operation, strings.Join(parts, "; "))
}

// First returns the first backend error. The classifier keys on it.
func (e *BackendErrors) First() (BackendError, bool) {
	if len(e.Errors) == 0 {
		return BackendError{}, false
	}
	return e.Errors[0], true
}
