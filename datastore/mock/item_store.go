/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory ItemStore for tests and local tooling
package mock

import (
	"context"
	"sort"
	"sync"

	"github.com/suparena/shopstore/datastore"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

// ItemStore is an in-memory datastore.ItemStore with the same condition
// semantics as the DynamoDB store. It is safe for concurrent use.
type ItemStore struct {
	mu          sync.RWMutex
	data        map[storagemodels.Key]storagemodels.Record
	getError    error
	queryError  error
	putError    error
	deleteError error
}

var _ datastore.ItemStore = (*ItemStore)(nil)

// New creates an empty ItemStore
func New() *ItemStore {
	return &ItemStore{
		data: make(map[storagemodels.Key]storagemodels.Record),
	}
}

// WithGetError makes GetItem operations return an error
func (m *ItemStore) WithGetError(err error) *ItemStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getError = err
	return m
}

// WithQueryError makes QueryByPartition operations return an error
func (m *ItemStore) WithQueryError(err error) *ItemStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queryError = err
	return m
}

// WithPutError makes PutItem operations return an error
func (m *ItemStore) WithPutError(err error) *ItemStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.putError = err
	return m
}

// WithDeleteError makes DeleteItem operations return an error
func (m *ItemStore) WithDeleteError(err error) *ItemStore {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteError = err
	return m
}

// GetItem returns a copy of the record at key, or nil
func (m *ItemStore) GetItem(ctx context.Context, key storagemodels.Key) (storagemodels.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStoreUnavailableError("get", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.getError != nil {
		return nil, m.getError
	}
	rec, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return clone(rec), nil
}

// QueryByPartition returns copies of every record in pk, ordered by sort key
func (m *ItemStore) QueryByPartition(ctx context.Context, pk string) ([]storagemodels.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStoreUnavailableError("query", err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.queryError != nil {
		return nil, m.queryError
	}

	keys := make([]storagemodels.Key, 0)
	for k := range m.data {
		if k.PK == pk {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].SK < keys[j].SK })

	results := make([]storagemodels.Record, 0, len(keys))
	for _, k := range keys {
		results = append(results, clone(m.data[k]))
	}
	return results, nil
}

// PutItem stores rec at key if cond holds
func (m *ItemStore) PutItem(ctx context.Context, key storagemodels.Key, rec storagemodels.Record, cond storagemodels.Condition, opts ...storagemodels.WriteOption) (storagemodels.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStoreUnavailableError("put", err)
	}
	options := storagemodels.ApplyWriteOptions(opts...)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.putError != nil {
		return nil, m.putError
	}

	old, exists := m.data[key]
	if !holds(cond, exists) {
		return nil, errors.NewConditionFailedError("put", cond.String())
	}

	item := clone(rec)
	for k, v := range key.Attributes() {
		item[k] = v
	}
	m.data[key] = item

	if options.ReturnOld && exists {
		return old, nil
	}
	return nil, nil
}

// DeleteItem removes the record at key if cond holds and returns it
func (m *ItemStore) DeleteItem(ctx context.Context, key storagemodels.Key, cond storagemodels.Condition) (storagemodels.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewStoreUnavailableError("delete", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteError != nil {
		return nil, m.deleteError
	}

	old, exists := m.data[key]
	if !holds(cond, exists) {
		return nil, errors.NewConditionFailedError("delete", cond.String())
	}
	if !exists {
		return nil, nil
	}

	delete(m.data, key)
	return old, nil
}

// Helper methods for testing

// Seed stores rec under its own Pk and Sk attributes without any validation,
// so malformed records can be planted. Records without string key attributes
// are ignored.
func (m *ItemStore) Seed(records ...storagemodels.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range records {
		if key, ok := storagemodels.KeyOf(rec); ok {
			m.data[key] = clone(rec)
		}
	}
}

// Snapshot returns a copy of the stored records keyed by Key
func (m *ItemStore) Snapshot() map[storagemodels.Key]storagemodels.Record {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[storagemodels.Key]storagemodels.Record, len(m.data))
	for k, v := range m.data {
		result[k] = clone(v)
	}
	return result
}

// Count returns the number of stored records
func (m *ItemStore) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Clear removes all records
func (m *ItemStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[storagemodels.Key]storagemodels.Record)
}

func holds(cond storagemodels.Condition, exists bool) bool {
	switch cond {
	case storagemodels.MustNotExist:
		return !exists
	case storagemodels.MustExist:
		return exists
	default:
		return true
	}
}

// clone copies the attribute map. Attribute values are treated as immutable.
func clone(rec storagemodels.Record) storagemodels.Record {
	out := make(storagemodels.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}
	return out
}
