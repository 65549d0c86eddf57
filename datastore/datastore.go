/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/shopstore/storagemodels"
)

// ItemStore is the single-item key-value surface the repositories need.
type ItemStore interface {
	// GetItem returns the record stored at key, or nil when there is none.
	GetItem(ctx context.Context, key storagemodels.Key) (storagemodels.Record, error)

	// QueryByPartition returns every record whose partition key is pk, in no
	// particular order.
	QueryByPartition(ctx context.Context, pk string) ([]storagemodels.Record, error)

	// PutItem writes rec at key under cond. The key attributes are set from
	// key. With WithReturnOld the replaced record, if any, is returned.
	PutItem(ctx context.Context, key storagemodels.Key, rec storagemodels.Record, cond storagemodels.Condition, opts ...storagemodels.WriteOption) (storagemodels.Record, error)

	// DeleteItem removes the record at key under cond and returns what was
	// removed, or nil when nothing was stored.
	DeleteItem(ctx context.Context, key storagemodels.Key, cond storagemodels.Condition) (storagemodels.Record, error)
}
