/*
Package datastore defines the item store the shop repositories write through.

	type ItemStore interface {
	    GetItem(ctx, key) (Record, error)
	    QueryByPartition(ctx, pk) ([]Record, error)
	    PutItem(ctx, key, rec, cond, opts...) (Record, error)
	    DeleteItem(ctx, key, cond) (Record, error)
	}

Writes take a storagemodels.Condition. A guard that does not hold is reported
as errors.ErrConditionFailed and nothing is written; every other failure of
the backing store is reported as errors.ErrStoreUnavailable. Implementations
never retry.

Implementations:
  - ddb: DynamoDB, one table keyed by Pk and Sk
  - mock: in-memory, for tests and local tooling
*/
package datastore
