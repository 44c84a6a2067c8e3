// Package transfers persists the append-only log of mint and transfer events.
package transfers

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

type Repository interface {
	// Append stores t and fills in its ID and CreatedAt.
	Append(ctx context.Context, t *models.Transfer) error

	// ListByToken returns the log of tokenID oldest first.
	ListByToken(ctx context.Context, tokenID int64) ([]*models.Transfer, error)
}
