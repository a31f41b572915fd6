package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/eventlog"
	"github.com/osse101/PackOpenSim_Go/internal/metrics"
)

// InitializeEventSystem creates the in-process bus and the publisher services
// use to emit events after commit.
func InitializeEventSystem() (event.Bus, *event.AsyncPublisher) {
	bus := event.NewMemoryBus()
	publisher := event.NewAsyncPublisher(bus)
	slog.Info(LogMsgEventSystemInitialized, "event_types", len(event.AllTypes()))
	return bus, publisher
}

// RegisterEventHandlers subscribes the metrics collector and the event logger.
func RegisterEventHandlers(bus event.Bus, eventLog eventlog.Service) error {
	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorReady)

	if err := eventLog.Subscribe(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}
