package tasks

import (
	"context"
	"time"
)

// Scheduler fires a job on a fixed interval. The first run happens
// immediately so a restart doesn't skip a day.
type Scheduler struct {
	interval time.Duration
	run      func(ctx context.Context)
}

func NewScheduler(interval time.Duration, run func(ctx context.Context)) *Scheduler {
	return &Scheduler{interval: interval, run: run}
}

// Start launches the loop; it exits when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		s.run(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.run(ctx)
			}
		}
	}()
}
