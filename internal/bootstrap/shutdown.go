package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/scheduler"
	"github.com/osse101/PackOpenSim_Go/internal/worker"
)

// Stopper is the part of *server.Server that shutdown needs.
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Services  *Services
	Publisher *event.AsyncPublisher
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server, so no new requests arrive
//  2. scheduler and worker pool
//  3. services, which wait for their own in-flight publishes
//  4. the shared publisher, as a final flush
//
// Errors are logged and the sequence continues.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultShutdownTimeout)
		defer cancel()
	}

	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownJobs)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Workers != nil {
		if err := c.Workers.Stop(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolStopFailed, "error", err)
		}
	}

	if s := c.Services; s != nil {
		shutdownService(ctx, ServiceNamePlayer, s.Player)
		shutdownService(ctx, ServiceNameShop, s.Shop)
		shutdownService(ctx, ServiceNameAchievement, s.Achievement)
		shutdownService(ctx, ServiceNameCatalog, s.Catalog)
	}

	slog.Info(LogMsgShuttingDownPublisher)
	if err := c.Publisher.Wait(ctx); err != nil {
		slog.Error(LogMsgPublisherWaitFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if service == nil {
		return
	}
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(fmt.Sprintf(LogMsgServiceShutdownFailedFmt, name), "error", err)
	}
}
