package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/counters"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/tokens"
)

// repoStore is a registry.Store over the tokens and counters tables. With
// lock set, token reads take row locks; the counter read always does.
type repoStore struct {
	tokens   tokens.Repository
	counters counters.Repository
	lock     bool
}

var _ registry.Store = (*repoStore)(nil)

func (s *repoStore) Lookup(ctx context.Context, id registry.TokenID) (registry.Token, bool, error) {
	get := s.tokens.Get
	if s.lock {
		get = s.tokens.GetForUpdate
	}

	m, err := get(ctx, int64(id))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return registry.Token{}, false, nil
		}
		return registry.Token{}, false, err
	}
	return tokenFromModel(m), true, nil
}

func (s *repoStore) Save(ctx context.Context, t registry.Token) error {
	return s.tokens.Upsert(ctx, &models.Token{
		ID:       int64(t.ID),
		Owner:    string(t.Owner),
		Username: t.Record.Username,
		Item:     t.Record.Item,
	})
}

func (s *repoStore) NextID(ctx context.Context) (registry.TokenID, error) {
	v, err := s.counters.Get(ctx, counters.NextTokenID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return 0, nil
		}
		return 0, err
	}
	if v < 0 || v > int64(registry.MaxTokenID) {
		return 0, fmt.Errorf("counter %s out of range: %d", counters.NextTokenID, v)
	}
	return registry.TokenID(v), nil
}

func (s *repoStore) SetNextID(ctx context.Context, next registry.TokenID) error {
	return s.counters.Set(ctx, counters.NextTokenID, int64(next))
}

func tokenFromModel(m *models.Token) registry.Token {
	return registry.Token{
		ID:     registry.TokenID(m.ID),
		Owner:  registry.Identity(m.Owner),
		Record: registry.Record{Username: m.Username, Item: m.Item},
	}
}

func transferFromEvent(ev registry.TransferEvent) *models.Transfer {
	t := &models.Transfer{TokenID: int64(ev.TokenID), ToOwner: string(ev.To)}
	if ev.From != nil {
		from := string(*ev.From)
		t.FromOwner = &from
	}
	return t
}
