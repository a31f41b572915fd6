package worker

import "time"

// Log messages
const (
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
	LogMsgPoolStopping       = "Worker pool stopping"
)

// Log field keys
const (
	LogFieldJob      = "job"
	LogFieldError    = "error"
	LogFieldDuration = "duration"
)

// DefaultJobTimeout bounds a single job run
const DefaultJobTimeout = 5 * time.Minute

// unnamedJob labels jobs that do not implement Named
const unnamedJob = "job"
