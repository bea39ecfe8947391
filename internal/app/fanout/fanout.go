// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration. It runs a function across a slice of items
// using a fixed number of worker goroutines, preserving input order in results.
//
// Run suits a homogeneous batch (one fetch per ID). All suits a fixed set of
// heterogeneous calls, such as loading the province, district and ward lists
// needed to resolve one address.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a semaphore slot,
// that goroutine records ctx.Err() and does not call fn. Goroutines that
// have already acquired a slot run to completion (fn is responsible for
// checking ctx internally if it supports cancellation).
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// All runs every task concurrently and waits for all of them. Tasks write
// their own outputs, typically into variables captured by the closure. The
// returned error joins every task failure in task order, or is nil.
func All(ctx context.Context, tasks ...func(context.Context) error) error {
	results := Run(ctx, len(tasks), tasks, func(ctx context.Context, task func(context.Context) error) (struct{}, error) {
		return struct{}{}, task(ctx)
	})
	return Errors(results)
}

// Errors joins the non-nil errors of results in order. It returns nil when
// every item succeeded.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
