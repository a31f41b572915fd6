package bootstrap

import "time"

// Log messages for startup
const (
	LogMsgLoggingInitialized      = "Logging initialized"
	LogMsgStartingApp             = "Starting PackOpenSim"
	LogMsgConfigurationLoaded     = "Configuration loaded"
	LogMsgEventSystemInitialized  = "Event system initialized"
	LogMsgMetricsCollectorReady   = "Metrics collector registered"
	LogMsgEventLoggerInitialized  = "Event logger initialized"
	LogMsgCatalogSeeded           = "Card catalog seeded"
	LogMsgCatalogSeedFailed       = "Card catalog seed failed, pool must be imported"
	LogMsgCatalogUpstreamDisabled = "Card upstream disabled, import endpoint will fail"
	LogMsgBackgroundJobsStarted   = "Background jobs started"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer       = "Shutting down server..."
	LogMsgShuttingDownJobs         = "Stopping background jobs..."
	LogMsgShuttingDownPublisher    = "Waiting for in-flight events..."
	LogMsgServerStopped            = "Server stopped"
	LogMsgServerForcedShutdown     = "Server forced to shutdown"
	LogMsgWorkerPoolStopFailed     = "Worker pool shutdown failed"
	LogMsgPublisherWaitFailed      = "Event publisher shutdown failed"
	LogMsgServiceShutdownFailedFmt = "%s service shutdown failed"
)

// Error messages
const (
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// Service names for shutdown logging
const (
	ServiceNamePlayer      = "player"
	ServiceNameShop        = "shop"
	ServiceNameAchievement = "achievement"
	ServiceNameCatalog     = "catalog"
)

// Background job sizing
const (
	JobQueueSize = 16
)

// DefaultShutdownTimeout bounds GracefulShutdown when the caller sets no deadline
const DefaultShutdownTimeout = 30 * time.Second
