package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// ErrPoolStopped is returned when enqueueing into a stopped pool.
var ErrPoolStopped = errors.New("worker pool stopped")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named is implemented by jobs that want a readable name in logs.
type Named interface {
	Name() string
}

// Pool runs queued jobs on a fixed number of goroutines. Each run gets its own
// context carrying a fresh request id and bounded by the job timeout.
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewPool creates a new worker pool
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: DefaultJobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobQueue {
		p.run(job)
	}
}

func (p *Pool) run(job Job) {
	ctx := logger.WithRequestID(p.ctx, logger.GenerateRequestID())
	ctx, cancel := context.WithTimeout(ctx, p.jobTimeout)
	defer cancel()

	name := jobName(job)
	start := time.Now()
	log := logger.FromContext(ctx)

	if err := job.Process(ctx); err != nil {
		log.Error(LogMsgWorkerJobFailed, LogFieldJob, name, LogFieldError, err)
		return
	}
	log.Debug(LogMsgWorkerJobCompleted, LogFieldJob, name, LogFieldDuration, time.Since(start))
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return unnamedJob
}

// Enqueue blocks until the job is queued, ctx is done or the pool stops.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobQueue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TryEnqueue queues the job without blocking and reports whether it was accepted.
func (p *Pool) TryEnqueue(job Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// Stop refuses new jobs, lets queued ones finish and waits for the workers.
// Running jobs see their context cancelled if ctx expires first.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.jobQueue)
	p.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgPoolStopping)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		<-done
		return ctx.Err()
	}
}
