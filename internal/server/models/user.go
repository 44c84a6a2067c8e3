package models

import "time"

// User is a registered caller. ID is the identity the registry records as
// token owner.
type User struct {
	ID           string
	UserName     string
	PasswordHash []byte
	CreatedAt    time.Time
}
