// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider encodes and decodes funding-source provider payloads.
//
// A payload crosses the wire as one opaque scalar: standard base64 of a JSON
// object whose "provider", "type" and "version" fields select the variant
// and whose remaining fields belong to that variant.
package provider

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-virtual-cards/models"
)

// Version is the payload version written by Encode.
const Version = 1

// Wire provider names.
const (
	WireStripe   = "stripe"
	WireCheckout = "checkout"
)

type discriminant struct {
	provider string
	typ      models.FundingSourceType
}

var kinds = map[models.ProviderKind]discriminant{
	models.ProviderStripe:              {WireStripe, models.FundingSourceTypeCreditCard},
	models.ProviderCheckoutCard:        {WireCheckout, models.FundingSourceTypeCreditCard},
	models.ProviderCheckoutBankAccount: {WireCheckout, models.FundingSourceTypeBankAccount},
}

// header is the discriminating part of every payload.
type header struct {
	Provider string                   `json:"provider"`
	Type     models.FundingSourceType `json:"type,omitempty"`
	Version  int                      `json:"version,omitempty"`
}

// Payload is any provider variant.
type Payload interface {
	Kind() models.ProviderKind
}

// Discriminant returns the wire provider and type of kind.
func Discriminant(kind models.ProviderKind) (string, models.FundingSourceType, error) {
	d, ok := kinds[kind]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedProvider, kind)
	}
	return d.provider, d.typ, nil
}

// KindOf resolves a wire discriminant. provider may also be a kind name
// ("checkoutBankAccount"), in which case typ may be empty.
func KindOf(provider string, typ models.FundingSourceType) (models.ProviderKind, error) {
	for kind, d := range kinds {
		if d.provider == provider && d.typ == typ {
			return kind, nil
		}
	}
	if d, ok := kinds[models.ProviderKind(provider)]; ok && (typ == "" || typ == d.typ) {
		return models.ProviderKind(provider), nil
	}
	return "", fmt.Errorf("%w: provider %q type %q", ErrUnsupportedProvider, provider, typ)
}

// Encode serializes p with its discriminant and version, then base64
// encodes the JSON.
func Encode(p Payload) (string, error) {
	if p == nil {
		return "", ErrNoPayload
	}
	provider, typ, err := Discriminant(p.Kind())
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", p.Kind(), err)
	}
	fields := map[string]any{}
	if err = json.Unmarshal(body, &fields); err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", p.Kind(), err)
	}
	fields["provider"] = provider
	fields["type"] = typ
	fields["version"] = Version

	out, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", p.Kind(), err)
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// EncodeCompletion encodes caller-supplied completion data.
func EncodeCompletion(data models.ProviderCompletionData) (string, error) {
	if data == nil {
		return "", ErrNoPayload
	}
	return Encode(data)
}

// EncodeRefresh encodes caller-supplied refresh data.
func EncodeRefresh(data models.ProviderRefreshData) (string, error) {
	if data == nil {
		return "", ErrNoPayload
	}
	return Encode(data)
}

// DecodeInteraction decodes the interaction payload of a backend error.
// hint is the provider the caller expects and may be empty.
func DecodeInteraction(raw, hint string) (models.ProviderInteractionData, error) {
	kind, body, err := open(raw, hint)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.ProviderCheckoutCard:
		return as[models.CheckoutCardInteractionData](kind, body)
	case models.ProviderCheckoutBankAccount:
		return as[models.CheckoutBankAccountInteractionData](kind, body)
	}
	return nil, fmt.Errorf("%w: no interaction data for %s", ErrUnsupportedProvider, kind)
}

// DecodeSetup decodes the provisioning data of a provisional funding source.
func DecodeSetup(raw, hint string) (models.ProviderSetupData, error) {
	kind, body, err := open(raw, hint)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.ProviderStripe:
		return as[models.StripeCardSetupData](kind, body)
	case models.ProviderCheckoutCard:
		return as[models.CheckoutCardSetupData](kind, body)
	case models.ProviderCheckoutBankAccount:
		return as[models.CheckoutBankAccountSetupData](kind, body)
	}
	return nil, fmt.Errorf("%w: no setup data for %s", ErrUnsupportedProvider, kind)
}

// DecodeCompletion is the inverse of EncodeCompletion.
func DecodeCompletion(raw, hint string) (models.ProviderCompletionData, error) {
	kind, body, err := open(raw, hint)
	if err != nil {
		return nil, err
	}
	switch kind {
	case models.ProviderStripe:
		return as[models.StripeCardCompletionData](kind, body)
	case models.ProviderCheckoutCard:
		return as[models.CheckoutCardCompletionData](kind, body)
	case models.ProviderCheckoutBankAccount:
		return as[models.CheckoutBankAccountCompletionData](kind, body)
	}
	return nil, fmt.Errorf("%w: no completion data for %s", ErrUnsupportedProvider, kind)
}

// DecodeRefresh is the inverse of EncodeRefresh.
func DecodeRefresh(raw, hint string) (models.ProviderRefreshData, error) {
	kind, body, err := open(raw, hint)
	if err != nil {
		return nil, err
	}
	if kind == models.ProviderCheckoutBankAccount {
		return as[models.CheckoutBankAccountRefreshData](kind, body)
	}
	return nil, fmt.Errorf("%w: no refresh data for %s", ErrUnsupportedProvider, kind)
}

// DecodeClientConfiguration decodes the base64 JSON funding source client
// configuration. It carries no discriminant.
func DecodeClientConfiguration(raw string) (models.FundingSourceClientConfiguration, error) {
	var cfg models.FundingSourceClientConfiguration
	body, err := unbase64(raw)
	if err != nil {
		return cfg, err
	}
	if err = json.Unmarshal(body, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return cfg, nil
}

// open decodes raw, resolves its discriminant and checks it against hint.
func open(raw, hint string) (models.ProviderKind, []byte, error) {
	body, err := unbase64(raw)
	if err != nil {
		return "", nil, err
	}

	var h header
	if err = json.Unmarshal(body, &h); err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if h.Provider == "" {
		return "", nil, fmt.Errorf("%w: missing provider", ErrUnsupportedProvider)
	}
	if h.Version > Version {
		return "", nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}

	kind, err := KindOf(h.Provider, h.Type)
	if err != nil {
		return "", nil, err
	}
	if hint != "" && !matches(kind, hint) {
		return "", nil, fmt.Errorf("%w: payload is %s, expected %s", ErrProviderMismatch, kind, hint)
	}
	return kind, body, nil
}

// matches accepts either the kind name or its wire provider as hint.
func matches(kind models.ProviderKind, hint string) bool {
	return string(kind) == hint || kinds[kind].provider == hint
}

func unbase64(raw string) ([]byte, error) {
	if raw == "" {
		return nil, ErrNoPayload
	}
	body, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return body, nil
}

func as[T Payload](kind models.ProviderKind, body []byte) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %w", ErrMalformedPayload, kind, err)
	}
	return v, nil
}
