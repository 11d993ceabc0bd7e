// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-virtual-cards/internal/adapter"
	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/internal/service"
	"github.com/MKhiriev/go-virtual-cards/internal/utils"
	"github.com/MKhiriev/go-virtual-cards/internal/validators"
)

type (
	// Config is the SDK configuration; see DefaultConfig.
	Config = config.ClientConfig

	// KeyService performs the private-key operations of unsealing. The
	// SDK never sees private key material through it.
	KeyService = crypto.KeyService

	// LocalKeyService is an in-memory KeyService over RSA private keys.
	LocalKeyService = crypto.LocalKeyService

	// Transport executes GraphQL operations; inject one to replace the
	// built-in HTTP transport.
	Transport = adapter.Transport

	// Request is one GraphQL operation handed to a Transport.
	Request = adapter.Request

	// TokenProvider supplies the bearer token of every request.
	TokenProvider = adapter.TokenProvider

	// StaticToken is a TokenProvider returning a fixed token.
	StaticToken = adapter.StaticToken
)

var (
	ErrNoTransport  = service.ErrNoTransport
	ErrNoKeyService = service.ErrNoKeyService
	ErrNoConfig     = errors.New("config is required")
)

// Client exposes every card, transaction and funding source operation.
// It is safe for concurrent use.
type Client struct {
	service.CardService
	service.TransactionService
	service.FundingSourceService
}

// DefaultConfig returns the built-in configuration. It has no GraphQL
// endpoint set.
func DefaultConfig() *Config {
	return config.Default()
}

// NewLocalKeyService returns an empty LocalKeyService caching up to
// capacity keys; zero means the default capacity.
func NewLocalKeyService(capacity int) (*LocalKeyService, error) {
	if capacity <= 0 {
		capacity = crypto.DefaultLocalKeyCapacity
	}
	return crypto.NewLocalKeyService(capacity)
}

// New returns a Client that talks to the backend through transport.
func New(transport Transport, keys KeyService, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, ErrNoTransport
	}
	if keys == nil {
		return nil, ErrNoKeyService
	}
	return build(transport, keys, collect(config.Default(), opts))
}

// NewFromConfig returns a Client over the built-in GraphQL transport
// configured by cfg. tokens may be nil for unauthenticated backends.
func NewFromConfig(cfg *Config, tokens TokenProvider, keys KeyService, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, ErrNoConfig
	}
	if keys == nil {
		return nil, ErrNoKeyService
	}

	o := collect(config.Default(), append([]Option{WithConfig(cfg)}, opts...))
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("client config: %w", err)
	}

	transport, err := adapter.NewGraphQLTransport(o.cfg.Adapter, tokens, o.logger.GetChildLogger())
	if err != nil {
		return nil, fmt.Errorf("client transport: %w", err)
	}
	return build(transport, keys, o)
}

// NewFromEnv is NewFromConfig over the configuration loaded from the
// dotenv file, VCARDS_* environment variables and the optional JSON file.
func NewFromEnv(tokens TokenProvider, keys KeyService, opts ...Option) (*Client, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load client config: %w", err)
	}
	return NewFromConfig(cfg, tokens, keys, opts...)
}

// WithRequestID returns a copy of ctx whose backend calls carry id as their
// request id instead of a generated one.
func WithRequestID(ctx context.Context, id string) context.Context {
	return utils.WithRequestID(ctx, id)
}

func build(transport Transport, keys KeyService, o *options) (*Client, error) {
	if limit := o.cfg.Pagination.DefaultLimit; limit < 1 || limit > config.MaxPageLimit {
		return nil, fmt.Errorf("%w: default limit %d", config.ErrInvalidPaginationConfigs, limit)
	}

	layout := crypto.NewEnvelopeLayout(o.cfg.Crypto.KeyBlockSizes(crypto.AlgorithmAESCBCPKCS7))
	unsealer := crypto.NewUnsealer(keys, layout)

	svcs, err := service.NewClientServices(transport, unsealer, validators.NewInputValidator(), o.cfg.Pagination, o.logger)
	if err != nil {
		return nil, err
	}

	o.logger.Debug().
		Int("default_limit", o.cfg.Pagination.DefaultLimit).
		Interface("key_block_sizes", layout.Algorithms()).
		Msg("sdk client ready")

	return &Client{
		CardService:          svcs.CardService,
		TransactionService:   svcs.TransactionService,
		FundingSourceService: svcs.FundingSourceService,
	}, nil
}
