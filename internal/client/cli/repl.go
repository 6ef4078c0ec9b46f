package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Me(ctx context.Context) error
	Regions(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit" / "quit".
//
//	Signed out:
//	  - help           show available commands
//	  - signup         create an account
//	  - login          sign in
//	  - exit | quit    leave the program
//
//	Signed in:
//	  - help           show available commands
//	  - me             show the account
//	  - regions [r..]  show or replace subscribed regions ("regions none" clears)
//	  - logout         sign out
//	  - delete         delete the account
//	  - exit | quit    leave the program
//
// Errors from handlers are ignored here; handlers report their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("palace (%s) > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: me, regions [region...], logout, delete, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup", "register":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "me":
			_ = a.Me(ctx)

		case "regions":
			_ = a.Regions(ctx, args)

		case "logout":
			_ = a.Logout(ctx)

		case "delete":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
