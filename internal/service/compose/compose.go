// Package compose attaches child collections to a page of parent records
// with one batched repository call per relation.
package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
)

// wait bounds how long a partially filled batch is held. Attach sizes the
// batch to the key count, so the batch normally dispatches on the last key.
const wait = 2 * time.Millisecond

// FetchFunc loads every child of the given parent keys.
type FetchFunc[C any] func(ctx context.Context, keys []uuid.UUID) ([]C, error)

// Relation describes a one-to-many join between P and C.
type Relation[P, C any] struct {
	ParentKey func(P) uuid.UUID
	ChildKey  func(C) uuid.UUID
	Fetch     FetchFunc[C]
	Set       func(*P, []C)
}

// Attach loads the children of parents through a per-call loader and
// stores them with rel.Set. Parents without children get an empty, non-nil
// slice. Fetch is called once for the whole page.
func Attach[P, C any](ctx context.Context, parents []P, rel Relation[P, C]) error {
	if len(parents) == 0 {
		return nil
	}

	keys := make([]uuid.UUID, 0, len(parents))
	seen := make(map[uuid.UUID]struct{}, len(parents))
	for _, p := range parents {
		k := rel.ParentKey(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	loader := dataloader.NewBatchedLoader(
		batchFn(rel),
		dataloader.WithWait[uuid.UUID, []C](wait),
		dataloader.WithBatchCapacity[uuid.UUID, []C](len(keys)),
	)

	children, errs := loader.LoadMany(ctx, keys)()
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("compose: %w", err)
		}
	}

	byKey := make(map[uuid.UUID][]C, len(keys))
	for i, k := range keys {
		byKey[k] = children[i]
	}
	for i := range parents {
		rel.Set(&parents[i], byKey[rel.ParentKey(parents[i])])
	}
	return nil
}

func batchFn[P, C any](rel Relation[P, C]) dataloader.BatchFunc[uuid.UUID, []C] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]C] {
		rows, err := rel.Fetch(ctx, keys)
		if err != nil {
			results := make([]*dataloader.Result[[]C], len(keys))
			for i := range results {
				results[i] = &dataloader.Result[[]C]{Error: err}
			}
			return results
		}

		grouped := make(map[uuid.UUID][]C, len(keys))
		for _, c := range rows {
			k := rel.ChildKey(c)
			grouped[k] = append(grouped[k], c)
		}

		results := make([]*dataloader.Result[[]C], len(keys))
		for i, k := range keys {
			v, ok := grouped[k]
			if !ok {
				v = []C{}
			}
			results[i] = &dataloader.Result[[]C]{Data: v}
		}
		return results
	}
}
