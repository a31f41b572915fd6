package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

func testCards() []domain.Card {
	return []domain.Card{
		{ID: "base1-98", SetID: "base1", Name: "Fire Energy", Supertype: domain.SupertypeEnergy},
		{ID: "base1-46", SetID: "base1", Name: "Charmander", Rarity: domain.RarityCommon},
		{ID: "base1-24", SetID: "base1", Name: "Charmeleon", Rarity: domain.RarityUncommon},
		{ID: "base1-20", SetID: "base1", Name: "Electabuzz", Rarity: domain.RarityRare},
		{ID: "base1-4", SetID: "base1", Name: "Charizard", Rarity: domain.RarityRare, Holo: true},
	}
}

func TestPool(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from cache", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, "base1").Return(testCards(), nil).Once()
		svc := NewService(repo, nil, Config{})

		first, err := svc.Pool(ctx, "base1")
		require.NoError(t, err)
		second, err := svc.Pool(ctx, " base1 ")
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.True(t, first.Complete())
		assert.Equal(t, 5, first.Len())
	})

	t.Run("blank set id uses default", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, domain.DefaultCardSetID).Return(testCards(), nil).Once()
		svc := NewService(repo, nil, Config{})

		pool, err := svc.Pool(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCardSetID, pool.SetID())
	})

	t.Run("empty set is exhausted", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, "base9").Return([]domain.Card{}, nil).Once()
		svc := NewService(repo, nil, Config{})

		_, err := svc.Pool(ctx, "base9")
		assert.ErrorIs(t, err, domain.ErrPoolExhausted)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		dbErr := errors.New("connection refused")
		repo.On("GetCardsBySet", mock.Anything, "base1").Return(nil, dbErr).Once()
		svc := NewService(repo, nil, Config{})

		_, err := svc.Pool(ctx, "base1")
		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), ErrMsgLoadCardsFailed)
	})
}

func TestImport(t *testing.T) {
	ctx := context.Background()

	t.Run("stores fetched cards and invalidates cache", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		fetcher := mocks.NewMockCatalogFetcher(t)
		svc := NewService(repo, fetcher, Config{})

		repo.On("GetCardsBySet", mock.Anything, "base1").Return(testCards()[:4], nil).Once()
		before, err := svc.Pool(ctx, "base1")
		require.NoError(t, err)
		assert.False(t, before.Complete())

		fetcher.On("FetchSet", mock.Anything, "base1").Return(testCards(), nil).Once()
		repo.On("UpsertCards", mock.Anything, testCards()).Return(5, nil).Once()
		n, err := svc.Import(ctx, "base1")
		require.NoError(t, err)
		assert.Equal(t, 5, n)

		repo.On("GetCardsBySet", mock.Anything, "base1").Return(testCards(), nil).Once()
		after, err := svc.Pool(ctx, "base1")
		require.NoError(t, err)
		assert.True(t, after.Complete())
	})

	t.Run("no upstream configured", func(t *testing.T) {
		svc := NewService(mocks.NewMockRepositoryCard(t), nil, Config{})

		_, err := svc.Import(ctx, "base1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFetchFailed)
	})

	t.Run("upstream returns nothing", func(t *testing.T) {
		fetcher := mocks.NewMockCatalogFetcher(t)
		fetcher.On("FetchSet", mock.Anything, "nope").Return([]domain.Card{}, nil).Once()
		svc := NewService(mocks.NewMockRepositoryCard(t), fetcher, Config{})

		_, err := svc.Import(ctx, "nope")
		assert.ErrorIs(t, err, domain.ErrPoolExhausted)
	})
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	seed := `[
		{"id": "base1-4", "set_id": "base1", "name": "Charizard", "rarity": "Rare", "holo": true},
		{"id": "base1-98", "name": "Fire Energy", "supertype": "Energy"},
		{"id": "jungle-1", "set_id": "jungle", "name": "Clefable", "rarity": "Rare"}
	]`

	t.Run("skips when set already stored", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, "base1").Return(testCards(), nil).Once()
		svc := NewService(repo, nil, Config{})

		n, err := svc.Seed(ctx, "base1", "does-not-matter.json")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("stores only cards of the set", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, "base1").Return([]domain.Card{}, nil).Once()
		repo.On("UpsertCards", mock.Anything, mock.MatchedBy(func(cards []domain.Card) bool {
			if len(cards) != 2 {
				return false
			}
			for _, c := range cards {
				if c.SetID != "base1" || c.Price == 0 {
					return false
				}
			}
			return cards[1].Category == domain.CategoryEnergy
		})).Return(2, nil).Once()
		svc := NewService(repo, nil, Config{})

		n, err := svc.Seed(ctx, "base1", writeSeed(t, seed))
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("file has no cards for set", func(t *testing.T) {
		repo := mocks.NewMockRepositoryCard(t)
		repo.On("GetCardsBySet", mock.Anything, "base2").Return([]domain.Card{}, nil).Once()
		svc := NewService(repo, nil, Config{})

		_, err := svc.Seed(ctx, "base2", writeSeed(t, `[{"id": "jungle-1", "set_id": "jungle", "name": "Clefable"}]`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgSeedSetMismatch)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("resolves category and price", func(t *testing.T) {
		cards, err := LoadFile(writeSeed(t, `[
			{"id": "a", "name": "Double Colorless ENERGY"},
			{"id": "b", "name": "Pikachu", "rarity": "Common", "price": 7}
		]`))
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Equal(t, domain.CategoryEnergy, cards[0].Category)
		assert.Equal(t, domain.DefaultPriceForTier(domain.TierEnergy), cards[0].Price)
		assert.Equal(t, domain.CategoryCommon, cards[1].Category)
		assert.Equal(t, 7, cards[1].Price)
	})

	t.Run("explicit zero price kept", func(t *testing.T) {
		cards, err := LoadFile(writeSeed(t, `[
			{"id": "z", "name": "Bill", "rarity": "Common", "price": 0},
			{"id": "d", "name": "Potion", "rarity": "Common"}
		]`))
		require.NoError(t, err)
		require.Len(t, cards, 2)
		assert.Zero(t, cards[0].Price)
		assert.Equal(t, domain.DefaultPriceForTier(domain.TierCommon), cards[1].Price)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgReadSeedFailed)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadFile(writeSeed(t, `{"not": "an array"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDecodeFailed)
	})
}

func TestShippedSeedFileIsComplete(t *testing.T) {
	cards, err := LoadFile(filepath.Join("..", "..", "configs", "cards", "base1.json"))
	require.NoError(t, err)

	repo := mocks.NewMockRepositoryCard(t)
	repo.On("GetCardsBySet", mock.Anything, "base1").Return(filterSet(cards, "base1"), nil).Once()
	pool, err := NewService(repo, nil, Config{}).Pool(context.Background(), "base1")
	require.NoError(t, err)

	assert.Empty(t, pool.MissingBuckets())
}
