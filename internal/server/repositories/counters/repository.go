// Package counters stores named monotonic counters, currently only the next
// token id.
package counters

import "context"

// NextTokenID is the counter holding the id the next mint will assign.
const NextTokenID = "next_token_id"

type Repository interface {
	// Get returns the counter value and locks its row. A counter that was
	// never set yields common.ErrorNotFound.
	Get(ctx context.Context, name string) (int64, error)
	Set(ctx context.Context, name string, value int64) error
}
