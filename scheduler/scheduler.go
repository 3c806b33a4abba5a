package scheduler

import (
	"context"
	"sync"
	"time"

	"medblog/logger"
)

// Job is one named recurring task.
type Job struct {
	Name     string
	Interval time.Duration
	Fn       func(ctx context.Context)
}

// Scheduler owns a set of named recurring jobs and runs each on its own
// ticker goroutine. It replaces process-global cron registrations with an
// instance that has an explicit Start/Stop lifecycle and can be driven
// directly in tests.
type Scheduler struct {
	mu      sync.Mutex
	jobs    []Job
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func New() *Scheduler {
	return &Scheduler{}
}

// Add registers a job. Jobs added after Start are ignored until the next
// Start.
func (s *Scheduler) Add(name string, interval time.Duration, fn func(ctx context.Context)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Fn: fn})
}

// Start launches every registered job loop. Calling Start twice is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runLoop(ctx, job)
	}
	logger.Log.Infof("scheduler started with %d job(s)", len(s.jobs))
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infof("scheduler job %q stopped", job.Name)
			return
		case <-ticker.C:
			logger.InfoWithFields("scheduler job fired", logger.Fields{
				"job": job.Name,
				"at":  time.Now().UTC().Format(time.RFC3339),
			})
			job.Fn(ctx)
		}
	}
}

// Stop cancels all job loops and waits for them to exit. Jobs remain
// registered, so the scheduler can be started again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	cancel := s.cancel
	s.mu.Unlock()

	cancel()
	s.wg.Wait()
}
