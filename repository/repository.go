/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// base holds what every repository shares.
type base struct {
	items datastore.ItemStore
	options
}

func newBase(items datastore.ItemStore, opts []Option) base {
	return base{items: items, options: newOptions(opts)}
}

// getOne reads key and validates it. Absent and invalid records are both
// reported as not found.
func getOne[E any](ctx context.Context, b *base, kind storagemodels.Kind, key storagemodels.Key, decode func(storagemodels.Record) (E, error)) (E, error) {
	var zero E

	rec, err := b.items.GetItem(ctx, key)
	if err != nil {
		return zero, err
	}
	if rec == nil {
		return zero, errors.NewNotFoundError(string(kind), key.String())
	}

	e, err := decode(rec)
	if err != nil {
		b.dropped(kind, key, err)
		return zero, errors.NewNotFoundError(string(kind), key.String())
	}
	return e, nil
}

// listAll reads the kind's partition and keeps the records that validate.
func listAll[E any](ctx context.Context, b *base, kind storagemodels.Kind, decode func(storagemodels.Record) (E, error)) ([]E, error) {
	pk, err := b.scheme.Partition(kind)
	if err != nil {
		return nil, err
	}

	recs, err := b.items.QueryByPartition(ctx, pk)
	if err != nil {
		return nil, err
	}

	out := make([]E, 0, len(recs))
	for _, rec := range recs {
		e, err := decode(rec)
		if err != nil {
			key, _ := storagemodels.KeyOf(rec)
			b.dropped(kind, key, err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// put writes rec at key under cond. A failed guard becomes not found for
// MustExist and already exists for MustNotExist.
func (b *base) put(ctx context.Context, kind storagemodels.Kind, key storagemodels.Key, rec storagemodels.Record, cond storagemodels.Condition) error {
	_, err := b.items.PutItem(ctx, key, rec, cond)
	if err == nil {
		return nil
	}
	if errors.IsConditionFailed(err) {
		switch cond {
		case storagemodels.MustExist:
			return errors.NewNotFoundError(string(kind), key.String())
		case storagemodels.MustNotExist:
			return errors.NewAlreadyExistsError(string(kind), key.String())
		}
	}
	return err
}

// remove deletes key if present and returns the validated removed entity.
func remove[E any](ctx context.Context, b *base, kind storagemodels.Kind, key storagemodels.Key, decode func(storagemodels.Record) (E, error)) (E, error) {
	var zero E

	old, err := b.items.DeleteItem(ctx, key, storagemodels.MustExist)
	if err != nil {
		if errors.IsConditionFailed(err) {
			return zero, errors.NewNotFoundError(string(kind), key.String())
		}
		return zero, err
	}
	if old == nil {
		return zero, errors.NewNotFoundError(string(kind), key.String())
	}

	e, err := decode(old)
	if err != nil {
		b.dropped(kind, key, err)
		return zero, errors.NewNotFoundError(string(kind), key.String())
	}
	return e, nil
}

func (b *base) dropped(kind storagemodels.Kind, key storagemodels.Key, err error) {
	b.logger.Warn("invalid stored record",
		zap.String("kind", string(kind)),
		zap.String("pk", key.PK),
		zap.String("sk", key.SK),
		zap.Error(err),
	)
}
