package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/registry"
)

// arg returns args[i], or prompts for it when it was not given.
func (a *App) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// rest joins args[i:] so usernames may contain spaces, prompting when empty.
func (a *App) rest(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return strings.Join(args[i:], " "), nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

func (a *App) tokenID(args []string) (registry.TokenID, error) {
	s, err := a.arg(args, 0, "Enter token id")
	if err != nil {
		return 0, err
	}
	id, err := registry.ParseTokenID(s)
	if err != nil {
		return 0, fmt.Errorf("bad token id %q", s)
	}
	return id, nil
}

// Mint prompts for the username and item and mints a token owned by the
// logged-in user.
func (a *App) Mint(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	username, err := getSimpleText(a.reader, "Enter username for the token", a.out)
	if err != nil {
		return err
	}
	item, err := getSimpleText(a.reader, "Enter item", a.out)
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := a.client.Mint(rctx, username, item)
	if err != nil {
		return err
	}
	a.remember(ctx, id, registry.Record{Username: username, Item: item})

	a.printf("Minted token %d\n", id)
	return nil
}

// Transfer gives a token to the registered user named by the second
// argument.
func (a *App) Transfer(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	id, err := a.tokenID(args)
	if err != nil {
		return err
	}
	recipient, err := a.rest(args, 1, "Enter recipient username")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	to, err := a.client.ResolveUser(ctx, recipient)
	if err != nil {
		return err
	}
	if err := a.client.Transfer(ctx, to, id); err != nil {
		return err
	}

	a.printf("Token %d transferred to %s\n", id, recipient)
	return nil
}

// Show prints a token record. When the server is unreachable the cached
// copy is shown instead.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.tokenID(args)
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	rec, ok, err := a.client.GetToken(rctx, id)
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return a.showCached(ctx, id)
	case err != nil:
		return err
	case !ok:
		_ = a.cache.Delete(ctx, id)
		a.printf("Token %d does not exist\n", id)
		return nil
	}

	a.remember(ctx, id, rec)
	a.printf("Token %d\n  username: %s\n  item:     %s\n", id, rec.Username, rec.Item)
	return nil
}

func (a *App) showCached(ctx context.Context, id registry.TokenID) error {
	e, ok, err := a.cache.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return client.ErrUnavailable
	}
	a.printf("Token %d (cached %s)\n  username: %s\n  item:     %s\n",
		id, e.SeenAt.Local().Format("2006-01-02 15:04"), e.Record.Username, e.Record.Item)
	return nil
}

// Rename changes the username on a token the caller owns.
func (a *App) Rename(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}
	id, err := a.tokenID(args)
	if err != nil {
		return err
	}
	username, err := a.rest(args, 1, "Enter new username")
	if err != nil {
		return err
	}

	rctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.UpdateUsername(rctx, id, username); err != nil {
		return err
	}

	if e, ok, err := a.cache.Get(ctx, id); err == nil && ok {
		e.Record.Username = username
		a.remember(ctx, id, e.Record)
	}

	a.printf("Token %d renamed to %s\n", id, username)
	return nil
}

// Verify checks a username against the token record and prints the item
// when they match.
func (a *App) Verify(ctx context.Context, args []string) error {
	id, err := a.tokenID(args)
	if err != nil {
		return err
	}
	username, err := a.rest(args, 1, "Enter username")
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	item, err := a.client.VerifyUsername(ctx, id, username)
	if err != nil {
		return err
	}

	a.printf("Verified: %s holds %s\n", username, item)
	return nil
}

// History prints the token's mint and transfers, oldest first.
func (a *App) History(ctx context.Context, args []string) error {
	id, err := a.tokenID(args)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	entries, err := a.client.History(ctx, id)
	if err != nil {
		return err
	}

	for _, e := range entries {
		at := e.At.Local().Format("2006-01-02 15:04:05")
		if e.From == nil {
			a.printf("%s  minted to %s\n", at, e.To)
			continue
		}
		a.printf("%s  %s -> %s\n", at, *e.From, e.To)
	}
	return nil
}

// Cached lists every token in the local cache.
func (a *App) Cached(ctx context.Context) error {
	entries, err := a.cache.List(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.printf("Cache is empty\n")
		return nil
	}
	for _, e := range entries {
		a.printf("%d\t%s\t%s\n", e.ID, e.Record.Username, e.Record.Item)
	}
	return nil
}

// remember writes a record to the cache. Cache failures are not fatal to
// the command that produced the record.
func (a *App) remember(ctx context.Context, id registry.TokenID, rec registry.Record) {
	if err := a.cache.Put(ctx, id, rec, a.now()); err != nil {
		a.printf("warning: %v\n", err)
	}
}
