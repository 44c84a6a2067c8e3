// Package models defines server-side data models persisted in the database.
package models

import "time"

// Token is a row of the tokens table: the registry record plus its owner.
type Token struct {
	ID        int64
	Owner     string
	Username  string
	Item      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
