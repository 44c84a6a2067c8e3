package transfers

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	appendQuery = `(?s)^INSERT\s+INTO\s+token_transfers\s*\(token_id,\s*from_owner,\s*to_owner\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id,\s*created_at\s*$`
	listQuery   = `(?s)^SELECT\s+id,\s*token_id,\s*from_owner,\s*to_owner,\s*created_at\s+FROM\s+token_transfers\s+WHERE\s+token_id\s*=\s*\$1\s+ORDER\s+BY\s+id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

func TestAppend_Mint(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(appendQuery).
		WithArgs(int64(0), nil, "u-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	tr := &models.Transfer{TokenID: 0, ToOwner: "u-1"}
	require.NoError(t, repo.Append(context.Background(), tr))
	assert.Equal(t, int64(1), tr.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_Transfer(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(appendQuery).
		WithArgs(int64(0), "u-1", "u-2").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(2), time.Now()))

	tr := &models.Transfer{TokenID: 0, FromOwner: strPtr("u-1"), ToOwner: "u-2"}
	require.NoError(t, repo.Append(context.Background(), tr))
	assert.Equal(t, int64(2), tr.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(appendQuery).WillReturnError(errors.New("boom"))

	err := repo.Append(context.Background(), &models.Transfer{TokenID: 0, ToOwner: "u-1"})
	require.ErrorContains(t, err, "db error: boom")
}

func TestListByToken(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "token_id", "from_owner", "to_owner", "created_at"}).
		AddRow(int64(1), int64(4), nil, "u-1", now).
		AddRow(int64(7), int64(4), "u-1", "u-2", now)
	mock.ExpectQuery(listQuery).WithArgs(int64(4)).WillReturnRows(rows)

	got, err := repo.ListByToken(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].FromOwner)
	assert.Equal(t, "u-1", got[0].ToOwner)
	require.NotNil(t, got[1].FromOwner)
	assert.Equal(t, "u-1", *got[1].FromOwner)
	assert.Equal(t, "u-2", got[1].ToOwner)
}

func TestListByToken_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_id", "from_owner", "to_owner", "created_at"}))

	got, err := repo.ListByToken(context.Background(), 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListByToken_Errors(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WithArgs(int64(4)).WillReturnError(errors.New("boom"))
	_, err := repo.ListByToken(context.Background(), 4)
	require.ErrorContains(t, err, "db error: boom")

	mock.ExpectQuery(listQuery).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_id", "from_owner", "to_owner", "created_at"}).
			AddRow(int64(1), int64(4), nil, "u-1", time.Now()).
			RowError(0, errors.New("row broke")))
	_, err = repo.ListByToken(context.Background(), 4)
	require.ErrorContains(t, err, "rows error: row broke")
}
