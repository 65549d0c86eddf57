/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/shopstore/datastore/mock"
	"github.com/suparena/shopstore/errors"
	"github.com/suparena/shopstore/storagemodels"
)

func amount(n string) storagemodels.Record {
	return storagemodels.Record{"amount": &types.AttributeValueMemberN{Value: n}}
}

func TestItemStore(t *testing.T) {
	ctx := context.Background()
	key := storagemodels.Key{PK: "cart", SK: "product#1#user#u1"}

	t.Run("ConditionalWrites", func(t *testing.T) {
		store := mock.New()

		if _, err := store.PutItem(ctx, key, amount("1"), storagemodels.MustExist); !errors.IsConditionFailed(err) {
			t.Fatalf("Expected condition failure on missing item, got: %v", err)
		}

		if _, err := store.PutItem(ctx, key, amount("1"), storagemodels.MustNotExist); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := store.PutItem(ctx, key, amount("2"), storagemodels.MustNotExist); !errors.IsConditionFailed(err) {
			t.Fatalf("Expected condition failure on duplicate create, got: %v", err)
		}

		old, err := store.PutItem(ctx, key, amount("3"), storagemodels.MustExist, storagemodels.WithReturnOld())
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if n := old["amount"].(*types.AttributeValueMemberN).Value; n != "1" {
			t.Fatalf("Expected old amount 1, got %s", n)
		}

		rec, err := store.GetItem(ctx, key)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if got, _ := storagemodels.KeyOf(rec); got != key {
			t.Fatalf("Expected key attributes to be injected, got %+v", rec)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store := mock.New()
		store.PutItem(ctx, key, amount("4"), storagemodels.None)

		removed, err := store.DeleteItem(ctx, key, storagemodels.MustExist)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if removed == nil {
			t.Fatal("Expected removed record")
		}

		if _, err := store.DeleteItem(ctx, key, storagemodels.MustExist); !errors.IsConditionFailed(err) {
			t.Fatalf("Expected condition failure on second delete, got: %v", err)
		}

		removed, err = store.DeleteItem(ctx, key, storagemodels.None)
		if err != nil || removed != nil {
			t.Fatalf("Unconditional delete of missing item should be a no-op, got %v, %v", removed, err)
		}
	})

	t.Run("QueryByPartition", func(t *testing.T) {
		store := mock.New()
		store.PutItem(ctx, storagemodels.Key{PK: "cart", SK: "b"}, amount("1"), storagemodels.None)
		store.PutItem(ctx, storagemodels.Key{PK: "cart", SK: "a"}, amount("1"), storagemodels.None)
		store.PutItem(ctx, storagemodels.Key{PK: "user", SK: "a"}, amount("1"), storagemodels.None)

		recs, err := store.QueryByPartition(ctx, "cart")
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if len(recs) != 2 {
			t.Fatalf("Expected 2 records, got %d", len(recs))
		}
		if k, _ := storagemodels.KeyOf(recs[0]); k.SK != "a" {
			t.Fatalf("Expected records ordered by sort key, got %s first", k.SK)
		}
	})

	t.Run("ErrorSimulation", func(t *testing.T) {
		store := mock.New()
		unavailable := errors.NewStoreUnavailableError("put", context.DeadlineExceeded)

		store.WithPutError(unavailable)
		if _, err := store.PutItem(ctx, key, amount("1"), storagemodels.None); err != unavailable {
			t.Fatalf("Expected put error, got: %v", err)
		}

		store.WithQueryError(unavailable)
		if _, err := store.QueryByPartition(ctx, "cart"); err != unavailable {
			t.Fatalf("Expected query error, got: %v", err)
		}

		store.WithGetError(unavailable).WithDeleteError(unavailable)
		if _, err := store.GetItem(ctx, key); err != unavailable {
			t.Fatalf("Expected get error, got: %v", err)
		}
		if _, err := store.DeleteItem(ctx, key, storagemodels.None); err != unavailable {
			t.Fatalf("Expected delete error, got: %v", err)
		}
	})

	t.Run("CancelledContext", func(t *testing.T) {
		store := mock.New()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		if _, err := store.GetItem(cctx, key); !errors.IsStoreUnavailable(err) {
			t.Fatalf("Expected store unavailable, got: %v", err)
		}
	})

	t.Run("HelperMethods", func(t *testing.T) {
		store := mock.New()
		store.Seed(
			storagemodels.Record{
				"Pk":     &types.AttributeValueMemberS{Value: "cart"},
				"Sk":     &types.AttributeValueMemberS{Value: "product#12"},
				"amount": &types.AttributeValueMemberN{Value: "1"},
			},
			storagemodels.Record{"amount": &types.AttributeValueMemberN{Value: "1"}},
		)

		if store.Count() != 1 {
			t.Fatalf("Expected count 1, got %d", store.Count())
		}
		if _, ok := store.Snapshot()[storagemodels.Key{PK: "cart", SK: "product#12"}]; !ok {
			t.Fatal("Expected seeded record in snapshot")
		}

		store.Clear()
		if store.Count() != 0 {
			t.Fatalf("Expected count 0 after clear, got %d", store.Count())
		}
	})
}

func TestItemStoreSingleCreateWins(t *testing.T) {
	ctx := context.Background()
	store := mock.New()
	key := storagemodels.Key{PK: "product", SK: "p#1"}

	const workers = 16
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.PutItem(ctx, key, storagemodels.Record{}, storagemodels.MustNotExist); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("Expected exactly one winning create, got %d", wins)
	}
}
