package registry

import (
	"context"
	"fmt"
)

// Registry applies token operations to a Store.
type Registry struct {
	store    Store
	notifier Notifier
}

// New returns a Registry over store. A nil notifier drops events.
func New(store Store, notifier Notifier) *Registry {
	if notifier == nil {
		notifier = NotifierFunc(func(context.Context, TransferEvent) {})
	}
	return &Registry{store: store, notifier: notifier}
}

// Mint creates a token owned by caller and returns its id.
//
// The counter is checked before anything is written, so a mint that would
// overflow leaves the store untouched.
func (r *Registry) Mint(ctx context.Context, caller Identity, username, item string) (TokenID, error) {
	id, err := r.store.NextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("read next token id: %w", err)
	}
	if id == MaxTokenID {
		return 0, NewError(KindTokenIDOverflow, id)
	}

	_, exists, err := r.store.Lookup(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("lookup token %d: %w", id, err)
	}
	if exists {
		return 0, NewError(KindTokenAlreadyExists, id)
	}

	t := Token{ID: id, Owner: caller, Record: Record{Username: username, Item: item}}
	if err := r.store.Save(ctx, t); err != nil {
		return 0, fmt.Errorf("save token %d: %w", id, err)
	}
	if err := r.store.SetNextID(ctx, id+1); err != nil {
		return 0, fmt.Errorf("advance next token id: %w", err)
	}

	r.notifier.Notify(ctx, TransferEvent{To: caller, TokenID: id})
	return id, nil
}

// Transfer hands token id from caller to to. Transferring to oneself is
// allowed and still reported.
func (r *Registry) Transfer(ctx context.Context, caller, to Identity, id TokenID) error {
	t, err := r.owned(ctx, caller, id)
	if err != nil {
		return err
	}

	t.Owner = to
	if err := r.store.Save(ctx, t); err != nil {
		return fmt.Errorf("save token %d: %w", id, err)
	}

	from := caller
	r.notifier.Notify(ctx, TransferEvent{From: &from, To: to, TokenID: id})
	return nil
}

// Get returns the record of token id. ok is false when the token does not
// exist.
func (r *Registry) Get(ctx context.Context, id TokenID) (rec Record, ok bool, err error) {
	t, ok, err := r.store.Lookup(ctx, id)
	if err != nil {
		return Record{}, false, fmt.Errorf("lookup token %d: %w", id, err)
	}
	if !ok {
		return Record{}, false, nil
	}
	return t.Record, true, nil
}

// UpdateUsername replaces the username of a token owned by caller. The item
// is kept and no event is emitted.
func (r *Registry) UpdateUsername(ctx context.Context, caller Identity, id TokenID, username string) error {
	t, err := r.owned(ctx, caller, id)
	if err != nil {
		return err
	}

	t.Record.Username = username
	if err := r.store.Save(ctx, t); err != nil {
		return fmt.Errorf("save token %d: %w", id, err)
	}
	return nil
}

// owned loads token id and checks that caller owns it.
func (r *Registry) owned(ctx context.Context, caller Identity, id TokenID) (Token, error) {
	t, ok, err := r.store.Lookup(ctx, id)
	if err != nil {
		return Token{}, fmt.Errorf("lookup token %d: %w", id, err)
	}
	if !ok {
		return Token{}, NewError(KindTokenNotFound, id)
	}
	if t.Owner != caller {
		return Token{}, NewError(KindNotTokenOwner, id)
	}
	return t, nil
}
