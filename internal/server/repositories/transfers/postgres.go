package transfers

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, t *models.Transfer) error {
	query :=
		`INSERT INTO token_transfers (token_id, from_owner, to_owner)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, t.TokenID, t.FromOwner, t.ToOwner).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListByToken(ctx context.Context, tokenID int64) ([]*models.Transfer, error) {
	query :=
		`SELECT id, token_id, from_owner, to_owner, created_at FROM token_transfers
		 WHERE token_id = $1
		 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, tokenID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Transfer
	for rows.Next() {
		t := &models.Transfer{}
		if err := rows.Scan(&t.ID, &t.TokenID, &t.FromOwner, &t.ToOwner, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan error: %w", err)
		}
		result = append(result, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}
