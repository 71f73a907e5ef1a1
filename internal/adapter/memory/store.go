// Package memory implements the question, answer and tag stores in process
// memory. It backs the "memory" storage driver and the service-level
// concurrency tests.
//
// Isolation is weaker than in postgres: writes made inside RunInTx are
// visible to plain readers before commit and are undone on rollback.
// Mutators of the same question are still serialized by GetForUpdate.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/pawerflow/question-service/internal/domain"
)

// Store holds all in-memory state. Create one with NewStore and hand out the
// repositories built on top of it.
type Store struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]domain.Question
	answers   map[uuid.UUID]domain.Answer
	// answer ids per question, in insertion order
	answerIDs map[uuid.UUID][]uuid.UUID

	tagsMu sync.RWMutex
	tags   map[string]*tagEntry

	locks *keyedMutex
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		questions: make(map[uuid.UUID]domain.Question),
		answers:   make(map[uuid.UUID]domain.Answer),
		answerIDs: make(map[uuid.UUID][]uuid.UUID),
		tags:      make(map[string]*tagEntry),
		locks:     newKeyedMutex(),
	}
}

// Questions returns the question repository backed by s.
func (s *Store) Questions() *QuestionRepo { return &QuestionRepo{s: s} }

// Answers returns the answer repository backed by s.
func (s *Store) Answers() *AnswerRepo { return &AnswerRepo{s: s} }

// Tags returns the tag repository backed by s.
func (s *Store) Tags() *TagRepo { return &TagRepo{s: s} }

// TxManager returns the transaction manager for s.
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

// Ping always succeeds. It satisfies the readiness checker.
func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func cloneQuestion(q domain.Question) *domain.Question {
	q.TagSlugs = slices.Clone(q.TagSlugs)
	q.Answers = nil
	if q.UpdatedAt != nil {
		t := *q.UpdatedAt
		q.UpdatedAt = &t
	}
	return &q
}

func cloneAnswer(a domain.Answer) domain.Answer {
	if a.UpdatedAt != nil {
		t := *a.UpdatedAt
		a.UpdatedAt = &t
	}
	return a
}

// ---------------------------------------------------------------------------
// Keyed locks
// ---------------------------------------------------------------------------

// keyedMutex hands out one mutex per key. Entries are dropped when nobody
// holds or waits for them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[uuid.UUID]*keyLock)}
}

// Lock blocks until key is free or ctx is done.
func (k *keyedMutex) Lock(ctx context.Context, key uuid.UUID) (unlock func(), err error) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyLock{ch: make(chan struct{}, 1)}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	select {
	case l.ch <- struct{}{}:
		return func() {
			<-l.ch
			k.release(key, l)
		}, nil
	case <-ctx.Done():
		k.release(key, l)
		return nil, ctx.Err()
	}
}

func (k *keyedMutex) release(key uuid.UUID, l *keyLock) {
	k.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()
}
