package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/salesdesk/internal/client/router"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	help() string
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Do(ctx context.Context, cmd string, args []string) error
}

// runREPL reads commands line by line from in and dispatches them to a.
// Global commands are handled here; a bare route name ("salary",
// "/total-sales") opens that page; anything else goes to the open page.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done.
//
// Errors returned by handlers are ignored here; handlers print their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("sd %s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(a.help())

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if _, err := router.Lookup(cmd); err == nil {
				_ = a.Open(ctx, cmd)
				continue
			}
			_ = a.Do(ctx, cmd, args)
		}
	}
}
