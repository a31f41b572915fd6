package player_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpenSim_Go/internal/concurrency"
	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
	"github.com/osse101/PackOpenSim_Go/mocks"
)

const testPlayerID = "7d4b7d52-2f3c-4a8e-9b61-0c5e7f2a1d01"

func newTestPlayer() *domain.Player {
	return &domain.Player{
		ID:            testPlayerID,
		Username:      "ash",
		Money:         domain.StartingMoney,
		PackInventory: []domain.BoosterPack{},
		OwnedCards:    map[string]int{},
		Achievements:  []string{},
	}
}

func expectTx(repo *mocks.MockRepositoryPlayer, tx *mocks.MockRepositoryPlayerTx, current *domain.Player) {
	repo.On("BeginTx", mock.Anything).Return(tx, nil)
	tx.On("GetPlayerForUpdate", mock.Anything, current.ID).Return(current, nil)
	tx.On("Rollback", mock.Anything).Return(nil).Maybe()
}

func TestWriter_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("AppliesAndCommits", func(t *testing.T) {
		repo := mocks.NewMockRepositoryPlayer(t)
		tx := mocks.NewMockRepositoryPlayerTx(t)
		expectTx(repo, tx, newTestPlayer())
		tx.On("SavePlayer", mock.Anything, mock.MatchedBy(func(p domain.Player) bool {
			return p.Money == 1500 && p.OpenedPacks == 0
		})).Return(nil)
		tx.On("Commit", mock.Anything).Return(nil)

		w := player.NewWriter(repo, concurrency.NewLockManager())
		updated, err := w.Update(ctx, testPlayerID, func(current domain.Player) (domain.PlayerUpdate, error) {
			money := current.Money - 500
			return domain.PlayerUpdate{Money: &money}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1500, updated.Money)
		assert.Equal(t, "ash", updated.Username)
	})

	t.Run("MutateErrorAbortsWithoutSave", func(t *testing.T) {
		repo := mocks.NewMockRepositoryPlayer(t)
		tx := mocks.NewMockRepositoryPlayerTx(t)
		expectTx(repo, tx, newTestPlayer())

		w := player.NewWriter(repo, nil)
		_, err := w.Update(ctx, testPlayerID, func(domain.Player) (domain.PlayerUpdate, error) {
			return domain.PlayerUpdate{}, domain.ErrInsufficientFunds
		})

		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		tx.AssertNotCalled(t, "SavePlayer", mock.Anything, mock.Anything)
		tx.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("BeginTxFails", func(t *testing.T) {
		repo := mocks.NewMockRepositoryPlayer(t)
		repo.On("BeginTx", mock.Anything).Return(nil, errors.New("db down"))

		w := player.NewWriter(repo, nil)
		_, err := w.Update(ctx, testPlayerID, func(domain.Player) (domain.PlayerUpdate, error) {
			t.Fatal("mutate must not run")
			return domain.PlayerUpdate{}, nil
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})

	t.Run("PlayerNotFound", func(t *testing.T) {
		repo := mocks.NewMockRepositoryPlayer(t)
		tx := mocks.NewMockRepositoryPlayerTx(t)
		repo.On("BeginTx", mock.Anything).Return(tx, nil)
		tx.On("GetPlayerForUpdate", mock.Anything, "missing").Return(nil, domain.ErrPlayerNotFound)
		tx.On("Rollback", mock.Anything).Return(nil)

		w := player.NewWriter(repo, nil)
		_, err := w.Update(ctx, "missing", func(domain.Player) (domain.PlayerUpdate, error) {
			return domain.PlayerUpdate{}, nil
		})

		assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
	})

	t.Run("CommitFails", func(t *testing.T) {
		repo := mocks.NewMockRepositoryPlayer(t)
		tx := mocks.NewMockRepositoryPlayerTx(t)
		expectTx(repo, tx, newTestPlayer())
		tx.On("SavePlayer", mock.Anything, mock.Anything).Return(nil)
		tx.On("Commit", mock.Anything).Return(errors.New("serialization failure"))

		w := player.NewWriter(repo, nil)
		updated, err := w.Update(ctx, testPlayerID, func(domain.Player) (domain.PlayerUpdate, error) {
			return domain.PlayerUpdate{}, nil
		})

		assert.Nil(t, updated)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to commit transaction")
	})
}

// memRepo is an in-memory store with no row locking of its own, so lost
// updates show up unless the Writer serializes access.
type memRepo struct {
	mu      sync.Mutex
	players map[string]domain.Player
}

func (r *memRepo) CreatePlayer(_ context.Context, p *domain.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.players[p.ID] = *p
	return nil
}

func (r *memRepo) GetPlayerByID(_ context.Context, id string) (*domain.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (r *memRepo) GetPlayerByUsername(context.Context, string) (*domain.Player, error) {
	return nil, domain.ErrPlayerNotFound
}

func (r *memRepo) BeginTx(context.Context) (repository.PlayerTx, error) {
	return &memTx{repo: r}, nil
}

type memTx struct {
	repo    *memRepo
	pending *domain.Player
}

func (tx *memTx) GetPlayerForUpdate(ctx context.Context, id string) (*domain.Player, error) {
	return tx.repo.GetPlayerByID(ctx, id)
}

func (tx *memTx) SavePlayer(_ context.Context, p domain.Player) error {
	tx.pending = &p
	return nil
}

func (tx *memTx) Commit(context.Context) error {
	if tx.pending == nil {
		return nil
	}
	tx.repo.mu.Lock()
	defer tx.repo.mu.Unlock()
	tx.repo.players[tx.pending.ID] = *tx.pending
	tx.pending = nil
	return nil
}

func (tx *memTx) Rollback(context.Context) error {
	tx.pending = nil
	return nil
}

func TestWriter_SerializesSamePlayer(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{players: map[string]domain.Player{testPlayerID: *newTestPlayer()}}
	w := player.NewWriter(repo, concurrency.NewLockManager())

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.Update(ctx, testPlayerID, func(current domain.Player) (domain.PlayerUpdate, error) {
				opened := current.OpenedPacks + 1
				return domain.PlayerUpdate{OpenedPacks: &opened}, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.GetPlayerByID(ctx, testPlayerID)
	require.NoError(t, err)
	assert.Equal(t, writers, got.OpenedPacks)
}
