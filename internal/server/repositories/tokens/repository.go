// Package tokens declares the server-side repository contract for token rows.
package tokens

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// Repository reads and writes the tokens table.
type Repository interface {
	// Get returns the token with id or common.ErrorNotFound.
	Get(ctx context.Context, id int64) (*models.Token, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id int64) (*models.Token, error)

	// Upsert inserts the token or updates owner and username of an existing
	// row. The item column is never rewritten.
	Upsert(ctx context.Context, t *models.Token) error
}
