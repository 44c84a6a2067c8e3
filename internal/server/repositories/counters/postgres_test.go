package counters

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	getQuery = `(?s)^SELECT\s+value\s+FROM\s+registry_counters\s+WHERE\s+name\s*=\s*\$1\s+FOR\s+UPDATE\s*$`
	setQuery = `(?s)^INSERT\s+INTO\s+registry_counters\s*\(name,\s*value\)\s*VALUES\s*\(\$1,\s*\$2\)\s*ON\s+CONFLICT\s*\(name\)\s*DO\s+UPDATE\s+SET\s+value\s*=\s*EXCLUDED\.value\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(m sqlmock.Sqlmock)
		want    int64
		wantErr error
		errText string
	}{
		{
			name: "found",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(getQuery).WithArgs(NextTokenID).
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(17)))
			},
			want: 17,
		},
		{
			name: "missing",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(getQuery).WithArgs(NextTokenID).WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrorNotFound,
		},
		{
			name: "db error",
			setup: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(getQuery).WithArgs(NextTokenID).WillReturnError(errors.New("boom"))
			},
			errText: "db error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()
			tt.setup(mock)

			got, err := repo.Get(context.Background(), NextTokenID)
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				require.ErrorContains(t, err, tt.errText)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSet(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(setQuery).WithArgs(NextTokenID, int64(18)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(setQuery).WithArgs(NextTokenID, int64(19)).WillReturnError(errors.New("boom"))

	require.NoError(t, repo.Set(context.Background(), NextTokenID, 18))
	require.ErrorContains(t, repo.Set(context.Background(), NextTokenID, 19), "db error: boom")
	require.NoError(t, mock.ExpectationsWereMet())
}
