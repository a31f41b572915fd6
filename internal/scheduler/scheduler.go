package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/worker"
)

// LogMsgJobSkipped is logged when a tick finds the worker queue full
const LogMsgJobSkipped = "Scheduled job skipped, worker queue full"

// Enqueuer accepts jobs without blocking. *worker.Pool satisfies it.
type Enqueuer interface {
	TryEnqueue(job worker.Job) bool
}

// Scheduler enqueues jobs on fixed intervals.
type Scheduler struct {
	pool Enqueuer
	quit chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// New creates a new scheduler
func New(pool Enqueuer) *Scheduler {
	return &Scheduler{
		pool: pool,
		quit: make(chan struct{}),
	}
}

// Schedule enqueues job every interval until Stop. A tick that finds the queue
// full is dropped rather than stalling later ticks.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleNow is Schedule with one extra run enqueued immediately.
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if immediate {
			s.enqueue(job)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *Scheduler) enqueue(job worker.Job) {
	if !s.pool.TryEnqueue(job) {
		slog.Default().Warn(LogMsgJobSkipped, "interval_job", jobLabel(job))
	}
}

func jobLabel(job worker.Job) string {
	if n, ok := job.(worker.Named); ok {
		return n.Name()
	}
	return "unnamed"
}

// Stop stops all scheduled jobs. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.quit) })
	s.wg.Wait()
}
