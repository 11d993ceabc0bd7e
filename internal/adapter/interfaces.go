// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstraction the SDK uses to
// talk to the virtual cards graph API.
//
// The primary abstraction is [Transport], which decouples the service layer
// from the wire protocol. The package ships a GraphQL-over-HTTP
// implementation ([NewGraphQLTransport]) built on resty.
//
// A transport call fails in one of three ways:
//   - the caller's context is done: ctx.Err() is returned unchanged;
//   - the backend answered with GraphQL errors: a *[BackendErrors] is returned;
//   - anything else (non-2xx status, network or decode failure): a
//     go-errors envelope whose Code is the HTTP status (or 502 when there
//     was none) is returned.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Request is one named GraphQL operation.
type Request struct {
	// OperationName must match the operation declared in Query.
	OperationName string
	// Query is the GraphQL document.
	Query string
	// Variables are sent as the "variables" object.
	Variables map[string]any
}

// Transport executes GraphQL operations against the backend. On success the
// response "data" object is decoded into out, which may be nil.
type Transport interface {
	// Query executes a read operation.
	Query(ctx context.Context, req Request, out any) error

	// Mutate executes a write operation.
	Mutate(ctx context.Context, req Request, out any) error
}

// TokenProvider supplies the bearer token attached to every request. It is
// asked once per call; implementations may refresh or cache as they wish.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a TokenProvider that always returns itself.
type StaticToken string

// Token implements [TokenProvider].
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}
