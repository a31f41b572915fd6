package repository

import (
	"context"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// Player defines the interface for player persistence
type Player interface {
	// CreatePlayer inserts a new player and fills its ID and timestamps.
	// Returns domain.ErrUsernameTaken on a duplicate username.
	CreatePlayer(ctx context.Context, player *domain.Player) error

	// GetPlayerByID returns domain.ErrPlayerNotFound when no row exists.
	GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error)
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx is the serialized write path for a player row.
type PlayerTx interface {
	Tx
	// GetPlayerForUpdate locks the player row until the transaction ends.
	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	// SavePlayer writes every mutable field of player in one statement.
	SavePlayer(ctx context.Context, player domain.Player) error
}
