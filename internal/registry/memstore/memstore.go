// Package memstore is an in-memory registry.Store. It backs tests and
// embedded registries that do not need durability.
package memstore

import (
	"context"
	"maps"
	"sync"

	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
)

// Store keeps tokens in a map. Direct calls commit immediately; Atomically
// groups several calls into one all-or-nothing step.
type Store struct {
	mu     sync.Mutex
	tokens map[registry.TokenID]registry.Token
	next   registry.TokenID
}

// New returns an empty store with the counter at 0.
func New() *Store {
	return &Store{tokens: make(map[registry.TokenID]registry.Token)}
}

func (s *Store) Lookup(_ context.Context, id registry.TokenID) (registry.Token, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[id]
	return t, ok, nil
}

func (s *Store) Save(_ context.Context, t registry.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[t.ID] = t
	return nil
}

func (s *Store) NextID(_ context.Context) (registry.TokenID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next, nil
}

func (s *Store) SetNextID(_ context.Context, next registry.TokenID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = next
	return nil
}

// Len returns the number of stored tokens.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

// Atomically runs fn against a staged view of the store. The staged writes
// are applied when fn returns nil and discarded otherwise. Atomic runs are
// serialized with each other and with direct calls.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, st registry.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &staged{
		base:   s.tokens,
		writes: make(map[registry.TokenID]registry.Token),
		next:   s.next,
	}
	if err := fn(ctx, tx); err != nil {
		return err
	}

	maps.Copy(s.tokens, tx.writes)
	s.next = tx.next
	return nil
}

// staged is the view handed to Atomically callbacks. The parent lock is held
// for its whole lifetime.
type staged struct {
	base   map[registry.TokenID]registry.Token
	writes map[registry.TokenID]registry.Token
	next   registry.TokenID
}

func (t *staged) Lookup(_ context.Context, id registry.TokenID) (registry.Token, bool, error) {
	if tok, ok := t.writes[id]; ok {
		return tok, true, nil
	}
	tok, ok := t.base[id]
	return tok, ok, nil
}

func (t *staged) Save(_ context.Context, tok registry.Token) error {
	t.writes[tok.ID] = tok
	return nil
}

func (t *staged) NextID(_ context.Context) (registry.TokenID, error) {
	return t.next, nil
}

func (t *staged) SetNextID(_ context.Context, next registry.TokenID) error {
	t.next = next
	return nil
}
