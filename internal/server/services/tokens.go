package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/events"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
)

// TokenService hosts the registry on top of PostgreSQL.
//
// Each mutating call runs under a process-wide mutex inside one transaction
// that also appends to the transfer log. Events are published only after
// the commit succeeds.
type TokenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   events.Publisher
	log         logging.Logger

	mu sync.Mutex
}

func NewTokenService(db *sql.DB, m repomanager.RepositoryManager, p events.Publisher, log logging.Logger) *TokenService {
	return &TokenService{
		db:          db,
		repomanager: m,
		publisher:   p,
		log:         log.With("module", "tokens"),
	}
}

func (s *TokenService) Mint(ctx context.Context, caller registry.Identity, username, item string) (registry.TokenID, error) {
	var id registry.TokenID
	err := s.mutate(ctx, func(ctx context.Context, reg *registry.Registry, _ dbx.DBTX) error {
		var err error
		id, err = reg.Mint(ctx, caller, username, item)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(ctx, "token minted", "token_id", id, "owner", caller)
	return id, nil
}

// Transfer moves token id from caller to the registered user to. An unknown
// recipient yields common.ErrorInvalidArgument once the registry checks have
// passed, and nothing is written.
func (s *TokenService) Transfer(ctx context.Context, caller, to registry.Identity, id registry.TokenID) error {
	err := s.mutate(ctx, func(ctx context.Context, reg *registry.Registry, tx dbx.DBTX) error {
		if err := reg.Transfer(ctx, caller, to, id); err != nil {
			return err
		}
		if _, err := s.repomanager.Users(tx).GetByID(ctx, string(to)); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return fmt.Errorf("%w: unknown recipient", common.ErrorInvalidArgument)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "token transferred", "token_id", id, "from", caller, "to", to)
	return nil
}

func (s *TokenService) UpdateUsername(ctx context.Context, caller registry.Identity, id registry.TokenID, username string) error {
	return s.mutate(ctx, func(ctx context.Context, reg *registry.Registry, _ dbx.DBTX) error {
		return reg.UpdateUsername(ctx, caller, id, username)
	})
}

// Get returns the record of token id; ok is false when it does not exist.
func (s *TokenService) Get(ctx context.Context, id registry.TokenID) (registry.Record, bool, error) {
	return s.reader().Get(ctx, id)
}

// VerifyUsername returns the item of token id when username matches the
// record's username ignoring case.
func (s *TokenService) VerifyUsername(ctx context.Context, id registry.TokenID, username string) (string, error) {
	rec, ok, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", registry.NewError(registry.KindTokenNotFound, id)
	}
	if !strings.EqualFold(rec.Username, username) {
		return "", common.ErrUsernameMismatch
	}
	return rec.Item, nil
}

// History returns the mint and transfer log of token id, oldest first.
func (s *TokenService) History(ctx context.Context, id registry.TokenID) ([]*models.Transfer, error) {
	if _, err := s.repomanager.Tokens(s.db).Get(ctx, int64(id)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, registry.NewError(registry.KindTokenNotFound, id)
		}
		return nil, err
	}
	return s.repomanager.Transfers(s.db).ListByToken(ctx, int64(id))
}

func (s *TokenService) reader() *registry.Registry {
	return registry.New(&repoStore{
		tokens:   s.repomanager.Tokens(s.db),
		counters: s.repomanager.Counters(s.db),
	}, nil)
}

func (s *TokenService) mutate(ctx context.Context, op func(ctx context.Context, reg *registry.Registry, tx dbx.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := &registry.Recorder{}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := &repoStore{
			tokens:   s.repomanager.Tokens(tx),
			counters: s.repomanager.Counters(tx),
			lock:     true,
		}
		if err := op(ctx, registry.New(store, rec), tx); err != nil {
			return err
		}

		log := s.repomanager.Transfers(tx)
		for _, ev := range rec.Events {
			if err := log.Append(ctx, transferFromEvent(ev)); err != nil {
				return fmt.Errorf("append transfer log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// committed events are published even after the caller cancels
	pubCtx := context.WithoutCancel(ctx)
	for _, ev := range rec.Events {
		if err := s.publisher.Publish(pubCtx, ev); err != nil {
			s.log.Warn(ctx, "publish event failed", "token_id", ev.TokenID, "error", err)
		}
	}
	return nil
}
