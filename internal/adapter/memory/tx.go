package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

type txKey struct{}

// tx records undo steps and the question locks taken by GetForUpdate.
type tx struct {
	mu   sync.Mutex
	undo []func()
	held map[uuid.UUID]func()
}

func txFromCtx(ctx context.Context) *tx {
	t, _ := ctx.Value(txKey{}).(*tx)
	return t
}

// record appends an undo step to the transaction in ctx. Outside a
// transaction it does nothing.
func record(ctx context.Context, undo func()) {
	if t := txFromCtx(ctx); t != nil {
		t.mu.Lock()
		t.undo = append(t.undo, undo)
		t.mu.Unlock()
	}
}

// TxManager runs functions as one all-or-nothing unit against a Store.
type TxManager struct {
	s *Store
}

// NewTxManager creates a TxManager for s.
func NewTxManager(s *Store) *TxManager {
	return &TxManager{s: s}
}

// RunInTx calls fn with a transactional context. If fn returns an error,
// panics, or ctx is cancelled before fn returns, every recorded change is
// undone in reverse order. Question locks are released on exit.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if txFromCtx(ctx) != nil {
		return errors.New("memory: nested transactions are not supported")
	}

	t := &tx{held: make(map[uuid.UUID]func())}
	txCtx := context.WithValue(ctx, txKey{}, t)

	defer func() {
		if p := recover(); p != nil {
			t.rollback()
			t.unlockAll()
			panic(p)
		}
	}()

	err = fn(txCtx)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		t.rollback()
	}
	t.unlockAll()
	return err
}

func (t *tx) rollback() {
	t.mu.Lock()
	undo := t.undo
	t.undo = nil
	t.mu.Unlock()
	for i := len(undo) - 1; i >= 0; i-- {
		undo[i]()
	}
}

func (t *tx) unlockAll() {
	t.mu.Lock()
	held := t.held
	t.held = nil
	t.mu.Unlock()
	for _, unlock := range held {
		unlock()
	}
}

// lock takes the question lock for id unless this transaction already holds it.
func (t *tx) lock(ctx context.Context, km *keyedMutex, id uuid.UUID) error {
	t.mu.Lock()
	_, ok := t.held[id]
	t.mu.Unlock()
	if ok {
		return nil
	}

	unlock, err := km.Lock(ctx, id)
	if err != nil {
		return err
	}
	t.mu.Lock()
	t.held[id] = unlock
	t.mu.Unlock()
	return nil
}
