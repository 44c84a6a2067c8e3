// Package refreshtokens declares the server-side repository contract for
// refresh tokens issued at login.
package refreshtokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// Repository issues, looks up and revokes refresh tokens.
type Repository interface {
	// Create stores rt and fills in its ID and CreatedAt.
	Create(ctx context.Context, rt *models.RefreshToken) error

	// Find returns the row for token and locks it for the rest of the
	// transaction. Absent tokens yield common.ErrorNotFound.
	Find(ctx context.Context, token string) (*models.RefreshToken, error)

	// Delete removes token. Deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired drops every token of userID that expired before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error)
}
