package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

const playerColumns = `
	player_id::text, username, money, opened_packs,
	energy_total, common_total, uncommon_total, rare_total, holo_rare_total,
	pack_inventory, owned_cards, achievements, created_at, updated_at`

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new PlayerRepository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// PlayerTx implements repository.PlayerTx
type PlayerTx struct {
	tx pgx.Tx
}

// BeginTx starts a new transaction
func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &PlayerTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *PlayerTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *PlayerTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetPlayerForUpdate reads the player row with a row lock held until commit.
func (t *PlayerTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1 FOR UPDATE`
	return scanPlayer(t.tx.QueryRow(ctx, query, id.String()))
}

// SavePlayer writes every mutable column of the player.
func (t *PlayerTx) SavePlayer(ctx context.Context, player domain.Player) error {
	return savePlayer(ctx, t.tx, player)
}

// CreatePlayer inserts a new player
func (r *PlayerRepository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	inv, owned, achievements, err := encodePlayerState(*player)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO players (username, money, opened_packs, pack_inventory, owned_cards, achievements)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING player_id::text, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query, player.Username, player.Money, player.OpenedPacks, inv, owned, achievements).
		Scan(&player.ID, &player.CreatedAt, &player.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrUsernameTaken, player.Username)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertPlayer, err)
	}
	return nil
}

// GetPlayerByID retrieves a player by id
func (r *PlayerRepository) GetPlayerByID(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + playerColumns + ` FROM players WHERE player_id = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, id.String()))
}

// GetPlayerByUsername retrieves a player by username
func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE username = $1`
	return scanPlayer(r.db.QueryRow(ctx, query, username))
}

func savePlayer(ctx context.Context, q querier, player domain.Player) error {
	id, err := parsePlayerUUID(player.ID)
	if err != nil {
		return err
	}
	inv, owned, achievements, err := encodePlayerState(player)
	if err != nil {
		return err
	}

	totals := player.ObtainedRaritiesTotal
	query := `
		UPDATE players SET
			money = $2, opened_packs = $3,
			energy_total = $4, common_total = $5, uncommon_total = $6, rare_total = $7, holo_rare_total = $8,
			pack_inventory = $9, owned_cards = $10, achievements = $11,
			updated_at = NOW()
		WHERE player_id = $1
	`
	tag, err := q.Exec(ctx, query, id.String(), player.Money, player.OpenedPacks,
		totals.Energy, totals.Common, totals.Uncommon, totals.Rare, totals.HoloRare,
		inv, owned, achievements)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePlayer, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, player.ID)
	}
	return nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var (
		p                        domain.Player
		inv, owned, achievements []byte
	)
	t := &p.ObtainedRaritiesTotal
	err := row.Scan(&p.ID, &p.Username, &p.Money, &p.OpenedPacks,
		&t.Energy, &t.Common, &t.Uncommon, &t.Rare, &t.HoloRare,
		&inv, &owned, &achievements, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPlayer, err)
	}

	if err := json.Unmarshal(inv, &p.PackInventory); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodePlayer, err)
	}
	if err := json.Unmarshal(owned, &p.OwnedCards); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodePlayer, err)
	}
	if err := json.Unmarshal(achievements, &p.Achievements); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodePlayer, err)
	}
	if p.OwnedCards == nil {
		p.OwnedCards = map[string]int{}
	}
	if p.PackInventory == nil {
		p.PackInventory = []domain.BoosterPack{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	return &p, nil
}

func encodePlayerState(p domain.Player) (inv, owned, achievements []byte, err error) {
	packs := p.PackInventory
	if packs == nil {
		packs = []domain.BoosterPack{}
	}
	cards := p.OwnedCards
	if cards == nil {
		cards = map[string]int{}
	}
	claimed := p.Achievements
	if claimed == nil {
		claimed = []string{}
	}

	if inv, err = json.Marshal(packs); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlayer, err)
	}
	if owned, err = json.Marshal(cards); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlayer, err)
	}
	if achievements, err = json.Marshal(claimed); err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedToEncodePlayer, err)
	}
	return inv, owned, achievements, nil
}
