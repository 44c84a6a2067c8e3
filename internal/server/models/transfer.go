package models

import "time"

// Transfer is one entry of a token's ownership log. FromOwner is nil for
// the mint entry.
type Transfer struct {
	ID        int64
	TokenID   int64
	FromOwner *string
	ToOwner   string
	CreatedAt time.Time
}
