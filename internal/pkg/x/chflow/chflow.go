// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, plus a small bounded fan-out that keeps results in
// input order.
package chflow

import (
	"context"
	"sync"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

type indexed[T any] struct {
	pos  int
	item T
}

// OrderedMap applies fn to every item using at most workers goroutines and
// returns the results in the order of items. fn must not touch state shared
// with other calls; the caller folds the returned slice itself.
//
// If ctx is canceled before every item was handed out, OrderedMap waits for
// the running calls and returns ctx.Err().
func OrderedMap[T, R any](ctx context.Context, workers int, items []T, fn func(context.Context, T) R) ([]R, error) {
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, len(items))

	results := make([]R, len(items))
	jobs := make(chan indexed[T])

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				job, ok := Receive(ctx, jobs)
				if !ok {
					return
				}
				results[job.pos] = fn(ctx, job.item)
			}
		}()
	}

	for pos, item := range items {
		if !Send(ctx, jobs, indexed[T]{pos: pos, item: item}) {
			break
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
