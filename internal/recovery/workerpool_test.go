package recovery

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failing    int
	}{
		{
			name:       "all tasks succeed",
			numTasks:   5,
			numWorkers: 2,
		},
		{
			name:       "failing task does not stop the pool",
			numTasks:   4,
			numWorkers: 2,
			failing:    1,
		},
		{
			name:       "zero size falls back to one worker",
			numTasks:   3,
			numWorkers: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)

			var executed, failed int32
			for i := 0; i < tt.numTasks; i++ {
				err := wp.AddTask(context.Background(), func() error {
					if i < tt.failing {
						atomic.AddInt32(&failed, 1)
						return assert.AnError
					}
					time.Sleep(10 * time.Millisecond)
					atomic.AddInt32(&executed, 1)
					return nil
				})
				require.NoError(t, err)
			}

			wp.Close()

			assert.Equal(t, int32(tt.numTasks-tt.failing), atomic.LoadInt32(&executed))
			assert.Equal(t, int32(tt.failing), atomic.LoadInt32(&failed))
		})
	}
}

func TestWorkerPool_AddTaskCanceled(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	block := make(chan struct{})
	defer close(block)

	// occupy the worker and fill the queue
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))
	require.NoError(t, wp.AddTask(context.Background(), func() error { <-block; return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}
