package player

import (
	"context"
	"fmt"

	"github.com/osse101/PackOpenSim_Go/internal/concurrency"
	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// MutateFunc computes a partial update from the locked snapshot. Returning an
// error aborts the transaction with no state change.
type MutateFunc func(current domain.Player) (domain.PlayerUpdate, error)

// Writer is the single write path for player state. Each Update holds the
// per-player lock and a row lock for the whole read-compute-commit sequence,
// so two requests for the same player can never apply against the same snapshot.
type Writer struct {
	repo  repository.Player
	locks *concurrency.LockManager
}

// NewWriter creates a Writer. Services that mutate players must share one Writer.
func NewWriter(repo repository.Player, locks *concurrency.LockManager) *Writer {
	if locks == nil {
		locks = concurrency.NewLockManager()
	}
	return &Writer{repo: repo, locks: locks}
}

// Update applies fn to the player in one transaction and returns the new state.
func (w *Writer) Update(ctx context.Context, playerID string, fn MutateFunc) (*domain.Player, error) {
	var updated *domain.Player
	err := w.locks.WithLock(playerID, func() error {
		var err error
		updated, err = w.update(ctx, playerID, fn)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgUpdateFailed, LogFieldPlayerID, playerID, LogFieldError, err)
		return nil, err
	}
	return updated, nil
}

func (w *Writer) update(ctx context.Context, playerID string, fn MutateFunc) (*domain.Player, error) {
	tx, err := w.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	current, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	update, err := fn(*current)
	if err != nil {
		return nil, err
	}

	next := current.Apply(update)
	if err := tx.SavePlayer(ctx, next); err != nil {
		return nil, fmt.Errorf(ErrMsgSavePlayerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}
	return &next, nil
}
