package cli

import (
	"context"
	"errors"
	"log"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = errors.New("log in first")

func (a *App) credentials() (string, []byte, error) {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return "", nil, err
	}
	return userName, password, nil
}

// Register prompts for a username and password and creates an account.
func (a *App) Register(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.client.Register(ctx, userName, string(password)); err != nil {
		return err
	}

	a.printf("Success! You can now log in as %s\n", userName)
	return nil
}

// Login prompts for credentials and authenticates. The session lives in
// the client until Logout.
func (a *App) Login(ctx context.Context) error {
	userName, password, err := a.credentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userName, string(password)); err != nil {
		return err
	}

	a.mu.Lock()
	a.userName = userName
	a.mu.Unlock()

	log.Printf("Login successful")
	return nil
}

// Logout forgets the session and clears the local cache.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()

	a.mu.Lock()
	a.userName = ""
	a.mu.Unlock()

	return a.cache.Clear(ctx)
}
