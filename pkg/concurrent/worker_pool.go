// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Package concurrent provides a bounded worker pool for fan-out side effects.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs functions concurrently with at most size in flight.
type WorkerPool struct {
	size int
}

// NewWorkerPool creates a pool; a size below one means one worker.
func NewWorkerPool(size int) *WorkerPool {
	if size < 1 {
		size = 1
	}
	return &WorkerPool{size: size}
}

// Run executes every function and returns the first error. The remaining
// functions still run; their context is cancelled once one fails.
func (p *WorkerPool) Run(ctx context.Context, functions ...func() error) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for _, fn := range functions {
		g.Go(fn)
	}

	return g.Wait()
}

// RunEach calls fn for every item with a context that is cancelled when any call fails.
func RunEach[T any](ctx context.Context, size int, items []T, fn func(context.Context, T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	functions := make([]func() error, 0, len(items))
	for _, item := range items {
		functions = append(functions, func() error {
			if err := fn(ctx, item); err != nil {
				cancel()
				return err
			}
			return nil
		})
	}

	return NewWorkerPool(size).Run(ctx, functions...)
}
