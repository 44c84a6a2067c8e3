package registry

import "context"

// Store is the key-value state behind a Registry: tokens keyed by id and the
// next id counter. A fresh store reports NextID 0.
type Store interface {
	// Lookup returns the token with the given id. ok is false when no such
	// token exists; that is not an error.
	Lookup(ctx context.Context, id TokenID) (t Token, ok bool, err error)
	// Save inserts or replaces the token with t.ID.
	Save(ctx context.Context, t Token) error
	// NextID returns the id the next mint will assign.
	NextID(ctx context.Context) (TokenID, error)
	// SetNextID stores the counter.
	SetNextID(ctx context.Context, next TokenID) error
}

// Notifier receives ownership changes after they are applied.
type Notifier interface {
	Notify(ctx context.Context, ev TransferEvent)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, ev TransferEvent)

func (f NotifierFunc) Notify(ctx context.Context, ev TransferEvent) {
	f(ctx, ev)
}

// Recorder is a Notifier that keeps events in memory, for hosts that publish
// only after their transaction commits.
type Recorder struct {
	Events []TransferEvent
}

func (r *Recorder) Notify(_ context.Context, ev TransferEvent) {
	r.Events = append(r.Events, ev)
}
