package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// parsePlayerUUID parses a player ID. Malformed ids cannot match any row, so
// they are reported as not found.
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s %q", domain.ErrPlayerNotFound, ErrMsgInvalidPlayerID, playerID)
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}
