package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/logger"
	"github.com/MKhiriev/go-virtual-cards/internal/utils"
)

// HeaderRequestID carries the per-call request id.
const HeaderRequestID = "X-Request-Id"

const (
	kindQuery    = "query"
	kindMutation = "mutation"
)

type graphQLTransport struct {
	client *utils.HTTPClient
	path   string

	tokens TokenProvider
	ids    *utils.UUIDGenerator
	now    func() time.Time

	logger *logger.Logger
}

type graphQLPayload struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []BackendError  `json:"errors"`
}

// NewGraphQLTransport constructs a GraphQL-over-HTTP implementation of
// [Transport]. It normalises and validates adapterCfg.GraphQLEndpoint and
// configures the underlying HTTP client with the request timeout and user
// agent. tokens may be nil for unauthenticated backends.
//
// Returns an error if the endpoint is empty or cannot be parsed as an
// absolute URL.
func NewGraphQLTransport(adapterCfg config.Adapter, tokens TokenProvider, log *logger.Logger) (Transport, error) {
	baseURL, path, err := splitEndpoint(adapterCfg.GraphQLEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid graphql endpoint: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &graphQLTransport{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.UserAgent),
		path:   path,
		tokens: tokens,
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}, nil
}

// splitEndpoint separates scheme and host from the path so that resty
// does not append a trailing slash to the endpoint.
func splitEndpoint(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}
	return u.Scheme + "://" + u.Host, path, nil
}

// Query implements [Transport].
func (t *graphQLTransport) Query(ctx context.Context, req Request, out any) error {
	return t.do(ctx, kindQuery, req, out)
}

// Mutate implements [Transport].
func (t *graphQLTransport) Mutate(ctx context.Context, req Request, out any) error {
	return t.do(ctx, kindMutation, req, out)
}

func (t *graphQLTransport) do(ctx context.Context, kind string, req Request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(req.Query) == "" {
		return transportError(
			"adapter: graphql query is required",
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			map[string]any{"operation": req.OperationName},
		)
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = t.ids.Generate()
	}
	log := t.logger.With().
		Str("operation", req.OperationName).
		Str("kind", kind).
		Str("request_id", requestID).
		Logger()

	r := t.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetBody(graphQLPayload{Query: req.Query, OperationName: req.OperationName, Variables: req.Variables})

	if t.tokens != nil {
		token, err := t.bearerToken(ctx, req.OperationName)
		if err != nil {
			return err
		}
		r.SetAuthToken(token)
	}

	started := t.now()
	resp, err := r.Post(t.path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Debug().Err(err).Msg("graphql request failed")
		return transportWrapError(
			err,
			goerrors.CategoryExternal,
			"adapter: graphql request failed",
			http.StatusBadGateway,
			map[string]any{"operation": req.OperationName},
		)
	}
	log.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", t.now().Sub(started)).
		Msg("graphql response")

	if err = mapHTTPError(resp, req.OperationName); err != nil {
		return err
	}

	var body graphQLResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return transportWrapError(
			err,
			goerrors.CategoryExternal,
			"adapter: decode graphql response",
			http.StatusBadGateway,
			map[string]any{"operation": req.OperationName},
		)
	}
	if len(body.Errors) > 0 {
		return &BackendErrors{Operation: req.OperationName, Errors: body.Errors}
	}
	if len(body.Data) == 0 || string(body.Data) == "null" {
		return transportWrapError(
			ErrNoResponse,
			goerrors.CategoryExternal,
			"adapter: graphql "+req.OperationName+" returned no data",
			http.StatusBadGateway,
			map[string]any{"operation": req.OperationName},
		)
	}
	if out == nil {
		return nil
	}
	if err = json.Unmarshal(body.Data, out); err != nil {
		return transportWrapError(
			err,
			goerrors.CategoryExternal,
			"adapter: decode graphql "+req.OperationName+" data",
			http.StatusBadGateway,
			map[string]any{"operation": req.OperationName},
		)
	}
	return nil
}

func (t *graphQLTransport) bearerToken(ctx context.Context, operation string) (string, error) {
	token, err := t.tokens.Token(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", transportWrapError(
			err,
			goerrors.CategoryAuth,
			"adapter: token provider failed",
			http.StatusUnauthorized,
			map[string]any{"operation": operation},
		)
	}
	token = strings.TrimSpace(token)
	if token == "" || utils.IsTokenExpired(token, t.now(), 0) {
		return "", transportWrapError(
			ErrTokenExpired,
			goerrors.CategoryAuth,
			"adapter: bearer token missing or expired",
			http.StatusUnauthorized,
			map[string]any{"operation": operation},
		)
	}
	return token, nil
}
