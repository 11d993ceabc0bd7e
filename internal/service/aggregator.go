// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-virtual-cards/internal/crypto"
	"github.com/MKhiriev/go-virtual-cards/models"
)

// aggregate projects every record of page in wire order, keeps only the
// last occurrence of each id and partitions the survivors into fully
// unsealed items and failed items. Survivors keep the position of their
// last occurrence. NextToken is passed through unchanged.
//
// Only a cancellation stops the aggregation; a record that fails to
// project lands in Failed.
func aggregate[W any, T models.Identifiable](
	ctx context.Context,
	u *crypto.Unsealer,
	page models.Page[W],
	project projectFunc[W, T],
) (*models.ListResult[T], error) {
	outcomes := make([]projection[T], 0, len(page.Items))
	last := make(map[string]int, len(page.Items))

	for _, wire := range page.Items {
		p, err := project(ctx, u, wire)
		if err != nil {
			return nil, err
		}
		last[p.record.GetID()] = len(outcomes)
		outcomes = append(outcomes, p)
	}

	result := &models.ListResult[T]{
		Status:    models.StatusSuccess,
		Items:     make([]T, 0, len(last)),
		NextToken: page.NextToken,
	}
	for i, o := range outcomes {
		if last[o.record.GetID()] != i {
			continue
		}
		if o.cause != nil {
			result.Failed = append(result.Failed, models.FailedItem[T]{Partial: o.record, Cause: o.cause})
			continue
		}
		result.Items = append(result.Items, o.record)
	}
	if len(result.Failed) > 0 {
		result.Status = models.StatusPartial
	}

	return result, nil
}

// single wraps the projection of one mutated record into a SingleResult.
func single[W, T any](ctx context.Context, u *crypto.Unsealer, wire W, project projectFunc[W, T]) (*models.SingleResult[T], error) {
	p, err := project(ctx, u, wire)
	if err != nil {
		return nil, err
	}
	if p.cause != nil {
		return &models.SingleResult[T]{
			Status: models.StatusPartial,
			Failed: &models.FailedItem[T]{Partial: p.record, Cause: p.cause},
		}, nil
	}
	return &models.SingleResult[T]{Status: models.StatusSuccess, Result: p.record}, nil
}
