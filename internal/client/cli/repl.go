package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Mint(ctx context.Context, args []string) error
	Transfer(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Rename(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	Cached(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, show <id>, verify <id> <username>, history <id>, cached, exit"
	helpLoggedIn  = "Available commands: mint, transfer <id> <user>, show <id>, rename <id> <username>, verify <id> <username>, history <id>, cached, logout, exit"
)

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Handler errors are printed and the loop continues.
//
//	help                      show available commands
//	register | login | logout manage the session
//	mint                      mint a token (prompts for username and item)
//	transfer <id> <user>      give a token to another registered user
//	show <id>                 print a token record (cache fallback offline)
//	rename <id> <username>    change the username on a token you own
//	verify <id> <username>    check a username against a token record
//	history <id>              list the token's mints and transfers
//	cached                    list tokens in the local cache
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("tk %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "mint":
			err = a.Mint(ctx, args)
		case "transfer":
			err = a.Transfer(ctx, args)
		case "show":
			err = a.Show(ctx, args)
		case "rename":
			err = a.Rename(ctx, args)
		case "verify":
			err = a.Verify(ctx, args)
		case "history":
			err = a.History(ctx, args)
		case "cached":
			err = a.Cached(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", describe(err))
		}
	}
}
