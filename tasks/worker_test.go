package tasks

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorker_RunsQueuedJobs(t *testing.T) {
	worker := NewWorker(2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		worker.Enqueue(func(context.Context) {
			defer wg.Done()
			ran.Add(1)
		})
	}

	wg.Wait()
	assert.EqualValues(t, 10, ran.Load())
}

func TestWorker_StopDrainsTheQueue(t *testing.T) {
	worker := NewWorker(1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker.Start(ctx)

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		worker.Enqueue(func(context.Context) {
			time.Sleep(time.Millisecond)
			ran.Add(1)
		})
	}

	worker.Stop()
	assert.EqualValues(t, 5, ran.Load(), "Stop returns only after queued jobs ran")
}

func TestWorker_DropsJobsWhenQueueIsFull(t *testing.T) {
	// Never started, so nothing drains the queue and the capacity is the cap.
	worker := NewWorker(1)

	for i := 0; i < queueCapacity; i++ {
		worker.Enqueue(func(context.Context) {})
	}
	require.Len(t, worker.jobs, queueCapacity)

	worker.Enqueue(func(context.Context) {})
	assert.Len(t, worker.jobs, queueCapacity, "overflow job is dropped, not queued")
}

func TestWorker_JobsSeeCancellation(t *testing.T) {
	worker := NewWorker(1)
	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)

	observed := make(chan error, 1)
	worker.Enqueue(func(jobCtx context.Context) {
		cancel()
		observed <- jobCtx.Err()
	})

	select {
	case err := <-observed:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
	worker.Stop()
}

func TestScheduler_RunsImmediatelyThenOnTicks(t *testing.T) {
	var runs atomic.Int32
	scheduler := NewScheduler(10*time.Millisecond, func(context.Context) {
		runs.Add(1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)

	require.Eventually(t, func() bool { return runs.Load() >= 3 },
		time.Second, time.Millisecond, "expected the immediate run plus ticks")

	cancel()
	settled := runs.Load()
	time.Sleep(50 * time.Millisecond)
	assert.LessOrEqual(t, runs.Load(), settled+1, "loop stops after cancellation")
}
