package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

type eventLogRepository struct {
	db *pgxpool.Pool
}

// NewEventLogRepository creates a new PostgreSQL event log repository
func NewEventLogRepository(db *pgxpool.Pool) repository.EventLog {
	return &eventLogRepository{db: db}
}

// LogEvent stores an event in the database
func (r *eventLogRepository) LogEvent(ctx context.Context, eventType string, playerID *string, payload, metadata map[string]interface{}) error {
	query := `
		INSERT INTO events (event_type, player_id, payload, metadata)
		VALUES ($1, $2, $3, $4)
	`

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
		}
	}

	if _, err := r.db.Exec(ctx, query, eventType, playerID, payloadJSON, metadataJSON); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// GetEventsByPlayer retrieves events for a specific player, newest first
func (r *eventLogRepository) GetEventsByPlayer(ctx context.Context, playerID string, limit int) ([]repository.EventLogEntry, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, event_type, player_id::text, payload, metadata, created_at
		FROM events
		WHERE player_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, id.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CleanupOldEvents removes events older than the retention period
func (r *eventLogRepository) CleanupOldEvents(ctx context.Context, retentionDays int) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM events WHERE created_at < NOW() - make_interval(days => $1)`, retentionDays)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]repository.EventLogEntry, error) {
	var events []repository.EventLogEntry
	for rows.Next() {
		var (
			e                     repository.EventLogEntry
			payload, metadataJSON []byte
		)
		if err := rows.Scan(&e.ID, &e.EventType, &e.PlayerID, &payload, &metadataJSON, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}
		if err := json.Unmarshal(payload, &e.Payload); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &e.Metadata); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
			}
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryEvents, err)
	}
	return events, nil
}
