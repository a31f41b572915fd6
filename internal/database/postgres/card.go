package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

const cardColumns = `card_id, set_id, name, supertype, rarity, category, holo, types, price, image_url`

// CardRepository implements repository.Card for PostgreSQL
type CardRepository struct {
	db *pgxpool.Pool
}

// NewCardRepository creates a new CardRepository
func NewCardRepository(db *pgxpool.Pool) *CardRepository {
	return &CardRepository{db: db}
}

// UpsertCards writes all cards in one transaction
func (r *CardRepository) UpsertCards(ctx context.Context, cards []domain.Card) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	query := `
		INSERT INTO cards (` + cardColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (card_id) DO UPDATE SET
			set_id = EXCLUDED.set_id,
			name = EXCLUDED.name,
			supertype = EXCLUDED.supertype,
			rarity = EXCLUDED.rarity,
			category = EXCLUDED.category,
			holo = EXCLUDED.holo,
			types = EXCLUDED.types,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			updated_at = NOW()
	`

	batch := &pgx.Batch{}
	for _, c := range cards {
		c = c.Normalize()
		types := c.Types
		if types == nil {
			types = []string{}
		}
		batch.Queue(query, c.ID, c.SetID, c.Name, c.Supertype, string(c.Rarity), string(c.Category),
			c.Holo, types, c.Price, c.ImageURL)
	}

	results := tx.SendBatch(ctx, batch)
	for range cards {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCards, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCards, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertCards, err)
	}
	return len(cards), nil
}

// GetCardsBySet returns every card of a set ordered by id
func (r *CardRepository) GetCardsBySet(ctx context.Context, setID string) ([]domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE set_id = $1 ORDER BY card_id`
	rows, err := r.db.Query(ctx, query, setID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCards, err)
	}
	defer rows.Close()

	var cards []domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCards, err)
	}
	return cards, nil
}

// GetCardByID returns a single card
func (r *CardRepository) GetCardByID(ctx context.Context, cardID string) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE card_id = $1`
	c, err := scanCard(r.db.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCardNotFound, cardID)
		}
		return nil, err
	}
	return c, nil
}

// ListSets returns the distinct set ids present in the catalog
func (r *CardRepository) ListSets(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT set_id FROM cards ORDER BY set_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCards, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var (
		c                domain.Card
		rarity, category string
	)
	err := row.Scan(&c.ID, &c.SetID, &c.Name, &c.Supertype, &rarity, &category, &c.Holo, &c.Types, &c.Price, &c.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCards, err)
	}
	c.Rarity = domain.Rarity(rarity)
	c.Category = domain.Category(category)
	return &c, nil
}
