package tokens

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectToken = `SELECT id, owner, username, item, created_at, updated_at FROM tokens
		 WHERE id = $1`

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Token, error) {
	return r.get(ctx, selectToken, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.Token, error) {
	return r.get(ctx, selectToken+`
		 FOR UPDATE`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, id int64) (*models.Token, error) {
	t := &models.Token{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&t.ID, &t.Owner, &t.Username, &t.Item, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, t *models.Token) error {
	query :=
		`INSERT INTO tokens (id, owner, username, item)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET owner = EXCLUDED.owner, username = EXCLUDED.username, updated_at = now()`

	res, err := r.db.ExecContext(ctx, query, t.ID, t.Owner, t.Username, t.Item)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}

	return nil
}
