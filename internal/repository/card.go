package repository

import (
	"context"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// Card defines the interface for card catalog persistence
type Card interface {
	// UpsertCards inserts or replaces cards by id and returns the number written.
	UpsertCards(ctx context.Context, cards []domain.Card) (int, error)
	GetCardsBySet(ctx context.Context, setID string) ([]domain.Card, error)
	// GetCardByID returns domain.ErrCardNotFound when no row exists.
	GetCardByID(ctx context.Context, cardID string) (*domain.Card, error)
	ListSets(ctx context.Context) ([]string, error)
}
