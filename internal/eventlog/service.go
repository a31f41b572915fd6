package eventlog

import (
	"context"
	"fmt"

	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// Service persists domain events and serves player history
type Service interface {
	// Subscribe registers the event logger to listen to all events
	Subscribe(bus event.Bus) error

	// History returns the most recent events for a player, newest first
	History(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error)

	// CleanupOldEvents removes events older than retention period
	CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo repository.EventLog
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo}
}

// Subscribe registers event handlers for all event types
func (s *service) Subscribe(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, s.handleEvent)
	}
	return nil
}

// handleEvent flattens the typed payload into a JSON object and stores it
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayloadFailed, err)
	}

	var playerID *string
	if pid, ok := payload[PayloadKeyPlayerID].(string); ok && pid != "" {
		playerID = &pid
	}

	metadata := evt.Metadata
	if reqID, ok := logger.RequestIDFromContext(ctx); ok && evt.GetMetadataValue(event.MetadataKeyRequestID) == nil {
		metadata = make(map[string]interface{}, len(evt.Metadata)+1)
		for k, v := range evt.Metadata {
			metadata[k] = v
		}
		metadata[event.MetadataKeyRequestID] = reqID
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), playerID, payload, metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return fmt.Errorf(ErrMsgLogEventFailed, err)
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldPlayerID, playerID)
	return nil
}

func (s *service) History(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	entries, err := s.repo.GetEventsByPlayer(ctx, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgHistoryFailed, err)
	}
	return entries, nil
}

// CleanupOldEvents removes events older than the retention period
func (s *service) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	return s.repo.CleanupOldEvents(ctx, retentionDays)
}
