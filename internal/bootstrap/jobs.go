package bootstrap

import (
	"log/slog"

	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/eventlog"
	"github.com/osse101/PackOpenSim_Go/internal/scheduler"
	"github.com/osse101/PackOpenSim_Go/internal/worker"
)

// StartBackgroundJobs starts the worker pool and schedules event log retention.
// A zero retention keeps events forever and schedules nothing.
func StartBackgroundJobs(cfg *config.Config, eventLog eventlog.Service) (*worker.Pool, *scheduler.Scheduler) {
	pool := worker.NewPool(cfg.WorkerCount, JobQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	if cfg.EventRetention > 0 && cfg.EventCleanupRate > 0 {
		sched.ScheduleNow(cfg.EventCleanupRate, eventlog.NewCleanupJob(eventLog, cfg.EventRetention))
	}

	slog.Info(LogMsgBackgroundJobsStarted,
		"workers", cfg.WorkerCount,
		"retention_days", cfg.EventRetention,
		"cleanup_interval", cfg.EventCleanupRate)
	return pool, sched
}
