package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is one periodic maintenance task. Name is used for logging only.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs registered jobs on their own tickers until Stop or
// context cancellation. Each job runs on its own goroutine so a slow
// job cannot delay the others.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewScheduler(logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, logger: logger}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)
	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.runJob(ctx, job)
	}
}

// Stop cancels all job loops and waits for in-flight runs to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.started = false
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) runJob(ctx context.Context, job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.logger.Info("worker job started", "job", job.Name, "interval", job.Interval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("worker job stopped", "job", job.Name)
			return
		case <-ticker.C:
			if err := job.Run(ctx); err != nil {
				s.logger.Error("worker job run failed", "job", job.Name, "error", err)
			}
		}
	}
}
