package postgres

import (
	"context"
	"fmt"
)

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are NOT supported: calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
type TxManager struct {
	db DB
}

// NewTxManager creates a new TxManager.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default). Row locks taken with
// SELECT ... FOR UPDATE inside fn are held until commit or rollback.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return MapError(fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		// Rollback must run even when ctx is already cancelled.
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return MapError(fmt.Errorf("commit transaction: %w", err))
	}

	return nil
}
