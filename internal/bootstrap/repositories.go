package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpenSim_Go/internal/database/postgres"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// Repositories holds the postgres-backed repositories.
type Repositories struct {
	Player   repository.Player
	Card     repository.Card
	EventLog repository.EventLog
}

// InitializeRepositories creates all repository implementations on one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Player:   postgres.NewPlayerRepository(dbPool),
		Card:     postgres.NewCardRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
