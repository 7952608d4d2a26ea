package tasks

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Job is one unit of background work.
type Job func(ctx context.Context)

const queueCapacity = 64

// Worker is a fixed-size pool draining an in-process queue. Jobs live only
// as long as the process; Stop drains whatever is still queued.
type Worker struct {
	size int
	jobs chan Job
	wg   sync.WaitGroup
}

func NewWorker(size int) *Worker {
	if size <= 0 {
		size = 1
	}
	return &Worker{
		size: size,
		jobs: make(chan Job, queueCapacity),
	}
}

// Start launches the pool. ctx is handed to every job so long-running work
// can notice shutdown.
func (w *Worker) Start(ctx context.Context) {
	for i := 0; i < w.size; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for job := range w.jobs {
				job(ctx)
			}
		}()
	}
}

// Enqueue hands a job to the pool. A full queue drops the job with a
// warning rather than blocking the request that produced it.
func (w *Worker) Enqueue(job Job) {
	select {
	case w.jobs <- job:
	default:
		logrus.Warn("⚠️ background queue full, dropping job")
	}
}

// Stop closes the queue and waits for in-flight and queued jobs to finish.
// Callers must stop producing jobs first.
func (w *Worker) Stop() {
	close(w.jobs)
	w.wg.Wait()
}
