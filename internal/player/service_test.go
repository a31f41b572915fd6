package player_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

func testPack(id int64) domain.BoosterPack {
	cards := []domain.Card{
		{ID: "base1-97", Name: "Fire Energy", Supertype: domain.SupertypeEnergy, Category: domain.CategoryEnergy},
		{ID: "base1-102", Name: "Water Energy", Supertype: domain.SupertypeEnergy, Category: domain.CategoryEnergy},
	}
	for i := 0; i < domain.PackCommonSlots; i++ {
		cards = append(cards, domain.Card{ID: "base1-46", Name: "Charmander", Rarity: domain.RarityCommon, Category: domain.CategoryCommon})
	}
	for i := 0; i < domain.PackUncommonSlots; i++ {
		cards = append(cards, domain.Card{ID: "base1-24", Name: "Charmeleon", Rarity: domain.RarityUncommon, Category: domain.CategoryUncommon})
	}
	cards = append(cards, domain.Card{ID: "base1-4", Name: "Charizard", Rarity: domain.RarityRare, Category: domain.CategoryRare, Holo: true})
	return domain.BoosterPack{ID: id, Name: "Booster-Pack-Charizard", Cards: cards, CreatedAt: time.Now()}
}

type serviceFixture struct {
	repo    *mocks.MockRepositoryPlayer
	tx      *mocks.MockRepositoryPlayerTx
	catalog *mocks.MockCatalogService
	bus     *mocks.MockEventBus
	svc     player.Service
}

func newFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		repo:    mocks.NewMockRepositoryPlayer(t),
		tx:      mocks.NewMockRepositoryPlayerTx(t),
		catalog: mocks.NewMockCatalogService(t),
		bus:     mocks.NewMockEventBus(t),
	}
	writer := player.NewWriter(f.repo, nil)
	f.svc = player.NewService(f.repo, writer, f.catalog, event.NewAsyncPublisher(f.bus), player.Config{
		StartingMoney: domain.StartingMoney,
		SetID:         "base1",
	})
	return f
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		username  string
		setup     func(f *serviceFixture)
		expectErr error
	}{
		{
			name:     "Success",
			username: "  misty  ",
			setup: func(f *serviceFixture) {
				f.repo.On("CreatePlayer", mock.Anything, mock.MatchedBy(func(p *domain.Player) bool {
					return p.Username == "misty" && p.Money == domain.StartingMoney && p.OwnedCards != nil
				})).Run(func(args mock.Arguments) {
					args.Get(1).(*domain.Player).ID = testPlayerID
				}).Return(nil)
			},
		},
		{
			name:      "Empty",
			username:  "   ",
			expectErr: domain.ErrInvalidInput,
		},
		{
			name:      "TooLong",
			username:  strings.Repeat("x", domain.MaxUsernameLength+1),
			expectErr: domain.ErrInvalidInput,
		},
		{
			name:     "Duplicate",
			username: "brock",
			setup: func(f *serviceFixture) {
				f.repo.On("CreatePlayer", mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)
			},
			expectErr: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			p, err := f.svc.Register(ctx, tt.username)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testPlayerID, p.ID)
			assert.Equal(t, domain.StartingMoney, p.Money)
		})
	}
}

func TestGetPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		f := newFixture(t)
		f.repo.On("GetPlayerByID", mock.Anything, "nobody").Return(nil, domain.ErrPlayerNotFound)

		_, err := f.svc.GetPlayer(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("BlankID", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.GetPlayer(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestListPacks_HidesContents(t *testing.T) {
	f := newFixture(t)
	p := newTestPlayer()
	p.PackInventory = []domain.BoosterPack{testPack(1), testPack(2)}
	f.repo.On("GetPlayerByID", mock.Anything, testPlayerID).Return(p, nil)

	packs, err := f.svc.ListPacks(context.Background(), testPlayerID)
	require.NoError(t, err)
	require.Len(t, packs, 2)
	for _, pk := range packs {
		assert.Nil(t, pk.Cards)
	}
	// Stored state is untouched
	assert.Len(t, p.PackInventory[0].Cards, domain.PackSize)
}

func TestOpenPack(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		p := newTestPlayer()
		p.PackInventory = []domain.BoosterPack{testPack(10), testPack(11)}
		expectTx(f.repo, f.tx, p)
		f.tx.On("SavePlayer", mock.Anything, mock.MatchedBy(func(saved domain.Player) bool {
			return saved.OpenedPacks == 1 &&
				len(saved.PackInventory) == 1 && saved.PackInventory[0].ID == 11 &&
				saved.OwnedCards["base1-46"] == 5 &&
				saved.ObtainedRaritiesTotal.HoloRare == 1
		})).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)
		f.bus.On("Publish", mock.Anything, mock.MatchedBy(func(e event.Event) bool {
			return e.Type == event.PackOpened
		})).Return(nil)

		res, err := f.svc.OpenPack(ctx, testPlayerID, 10)
		require.NoError(t, err)
		require.NoError(t, f.svc.Shutdown(ctx))

		assert.Equal(t, int64(10), res.Pack.ID)
		assert.True(t, res.Pack.IsOpened)
		assert.Len(t, res.Cards, domain.PackSize)
		assert.Equal(t, domain.RarityTotals{Energy: 2, Common: 5, Uncommon: 3, HoloRare: 1}, res.Counts)
	})

	t.Run("UnknownPack", func(t *testing.T) {
		f := newFixture(t)
		p := newTestPlayer()
		p.PackInventory = []domain.BoosterPack{testPack(10)}
		expectTx(f.repo, f.tx, p)

		_, err := f.svc.OpenPack(ctx, testPlayerID, 99)
		require.NoError(t, f.svc.Shutdown(ctx))

		assert.ErrorIs(t, err, domain.ErrPackNotFound)
		f.tx.AssertNotCalled(t, "SavePlayer", mock.Anything, mock.Anything)
		f.bus.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("PublishFailureDoesNotFailOpen", func(t *testing.T) {
		f := newFixture(t)
		p := newTestPlayer()
		p.PackInventory = []domain.BoosterPack{testPack(10)}
		expectTx(f.repo, f.tx, p)
		f.tx.On("SavePlayer", mock.Anything, mock.Anything).Return(nil)
		f.tx.On("Commit", mock.Anything).Return(nil)
		f.bus.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

		res, err := f.svc.OpenPack(ctx, testPlayerID, 10)
		require.NoError(t, f.svc.Shutdown(ctx))

		require.NoError(t, err)
		assert.Equal(t, int64(10), res.Pack.ID)
	})
}

func TestGetCollection(t *testing.T) {
	f := newFixture(t)
	p := newTestPlayer()
	p.OwnedCards = map[string]int{"base1-4": 2, "base1-46": 0}
	f.repo.On("GetPlayerByID", mock.Anything, testPlayerID).Return(p, nil)
	f.catalog.On("ListCards", mock.Anything, "base1").Return([]domain.Card{
		{ID: "base1-4", Name: "Charizard"},
		{ID: "base1-46", Name: "Charmander"},
	}, nil)

	c, err := f.svc.GetCollection(context.Background(), testPlayerID)
	require.NoError(t, err)
	require.Len(t, c.Cards, 1)
	assert.Equal(t, "Charizard", c.Cards[0].Card.Name)
	assert.Equal(t, 2, c.TotalCards)
	assert.Equal(t, 2, c.SetSize)
}
