// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package concurrent

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool_RunAll(t *testing.T) {
	var count int32
	fns := make([]func() error, 10)
	for i := range fns {
		fns[i] = func() error {
			atomic.AddInt32(&count, 1)
			return nil
		}
	}

	err := NewWorkerPool(3).Run(context.Background(), fns...)
	require.NoError(t, err)
	assert.Equal(t, int32(10), atomic.LoadInt32(&count))
}

func TestWorkerPool_ReturnsError(t *testing.T) {
	sentinel := errors.New("publish failed")

	err := NewWorkerPool(2).Run(context.Background(),
		func() error { return nil },
		func() error { return sentinel },
	)
	assert.ErrorIs(t, err, sentinel)
}

func TestWorkerPool_RespectsLimit(t *testing.T) {
	var inFlight, peak int32
	fns := make([]func() error, 8)
	for i := range fns {
		fns[i] = func() error {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return nil
		}
	}

	require.NoError(t, NewWorkerPool(2).Run(context.Background(), fns...))
	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
}

func TestNewWorkerPool_MinimumSize(t *testing.T) {
	assert.Equal(t, 1, NewWorkerPool(0).size)
	assert.Equal(t, 1, NewWorkerPool(-4).size)
}

func TestRunEach(t *testing.T) {
	var seen int32
	err := RunEach(context.Background(), 4, []string{"u-1", "u-2", "u-3"}, func(ctx context.Context, id string) error {
		atomic.AddInt32(&seen, 1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&seen))
}
