package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/counters"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/tokens"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/transfers"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

// --- tokens ---

type fakeTokensRepo struct {
	rows      map[int64]models.Token
	getErr    error
	upsertErr error
	locked    int
	writes    []tokenWrite
}

// tokenWrite is one Upsert together with the handle it was issued on.
type tokenWrite struct {
	db    dbx.DBTX
	token models.Token
}

func newFakeTokensRepo() *fakeTokensRepo {
	return &fakeTokensRepo{rows: map[int64]models.Token{}}
}

func (f *fakeTokensRepo) Get(_ context.Context, id int64) (*models.Token, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	t, ok := f.rows[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &t, nil
}

func (f *fakeTokensRepo) GetForUpdate(ctx context.Context, id int64) (*models.Token, error) {
	f.locked++
	return f.Get(ctx, id)
}

func (f *fakeTokensRepo) Upsert(_ context.Context, t *models.Token) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if old, ok := f.rows[t.ID]; ok {
		old.Owner, old.Username = t.Owner, t.Username
		f.rows[t.ID] = old
		return nil
	}
	f.rows[t.ID] = *t
	return nil
}

var _ tokens.Repository = (*fakeTokensRepo)(nil)

// boundTokensRepo is what the manager hands out for a handle, so writes can
// be traced back to the transaction they ran in.
type boundTokensRepo struct {
	*fakeTokensRepo
	db dbx.DBTX
}

func (b boundTokensRepo) Upsert(ctx context.Context, t *models.Token) error {
	b.writes = append(b.writes, tokenWrite{db: b.db, token: *t})
	return b.fakeTokensRepo.Upsert(ctx, t)
}

// --- counters ---

type fakeCountersRepo struct {
	values map[string]int64
	getErr error
	setErr error
}

func newFakeCountersRepo() *fakeCountersRepo {
	return &fakeCountersRepo{values: map[string]int64{}}
}

func (f *fakeCountersRepo) Get(_ context.Context, name string) (int64, error) {
	if f.getErr != nil {
		return 0, f.getErr
	}
	v, ok := f.values[name]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeCountersRepo) Set(_ context.Context, name string, value int64) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[name] = value
	return nil
}

var _ counters.Repository = (*fakeCountersRepo)(nil)

// --- transfers ---

type fakeTransfersRepo struct {
	log       []*models.Transfer
	appendErr error
	listErr   error
}

func (f *fakeTransfersRepo) Append(_ context.Context, t *models.Transfer) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	t.ID = int64(len(f.log) + 1)
	f.log = append(f.log, t)
	return nil
}

func (f *fakeTransfersRepo) ListByToken(_ context.Context, tokenID int64) ([]*models.Transfer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Transfer
	for _, t := range f.log {
		if t.TokenID == tokenID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ transfers.Repository = (*fakeTransfersRepo)(nil)

// --- users ---

type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
	getErr    error
}

func newFakeUsersRepo(names ...string) *fakeUsersRepo {
	f := &fakeUsersRepo{byName: map[string]*models.User{}}
	for _, n := range names {
		f.byName[n] = &models.User{ID: "id-" + n, UserName: n}
	}
	return f
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrUserAlreadyExists
	}
	f.byName[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

var _ users.Repository = (*fakeUsersRepo)(nil)

// --- refresh tokens ---

type fakeRefreshRepo struct {
	rows       map[string]*models.RefreshToken
	createErr  error
	findErr    error
	deleteErr  error
	expiredErr error
	purged     int
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{rows: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(_ context.Context, rt *models.RefreshToken) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[rt.Token] = rt
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	rt, ok := f.rows[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, userID string, now time.Time) (int64, error) {
	if f.expiredErr != nil {
		return 0, f.expiredErr
	}
	var n int64
	for k, rt := range f.rows {
		if rt.UserID == userID && rt.Expires.Before(now) {
			delete(f.rows, k)
			n++
		}
	}
	f.purged += int(n)
	return n, nil
}

var _ refreshtokens.Repository = (*fakeRefreshRepo)(nil)

// --- manager ---

type fakeRepoManager struct {
	users     *fakeUsersRepo
	refresh   *fakeRefreshRepo
	tokens    *fakeTokensRepo
	counters  *fakeCountersRepo
	transfers *fakeTransfersRepo
}

func newFakeRepoManager(userNames ...string) *fakeRepoManager {
	return &fakeRepoManager{
		users:     newFakeUsersRepo(userNames...),
		refresh:   newFakeRefreshRepo(),
		tokens:    newFakeTokensRepo(),
		counters:  newFakeCountersRepo(),
		transfers: &fakeTransfersRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Tokens(db dbx.DBTX) tokens.Repository            { return boundTokensRepo{m.tokens, db} }
func (m *fakeRepoManager) Counters(dbx.DBTX) counters.Repository           { return m.counters }
func (m *fakeRepoManager) Transfers(dbx.DBTX) transfers.Repository         { return m.transfers }

// --- publisher ---

type fakePublisher struct {
	events []registry.TransferEvent
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, ev registry.TransferEvent) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *fakePublisher) Close() {}
