// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the entry point of the virtual cards SDK.
//
// A [Client] wires a GraphQL transport, an envelope unsealer over the
// caller's [KeyService] and the card, transaction and funding source
// operations into one value:
//
//	keys, _ := client.NewLocalKeyService(0)
//	_ = keys.AddPrivateKeyPEM("key-1", pemBytes)
//
//	c, err := client.NewFromEnv(client.StaticToken(idToken), keys)
//	if err != nil {
//		return err
//	}
//	cards, err := c.ListVirtualCards(ctx, models.ListOptions{})
//
// Every operation returns either a *models.SdkError or, when ctx is done,
// ctx.Err() unchanged. List operations and card mutations report records
// that could only be partially unsealed in their Failed bucket instead of
// failing the call.
package client
