package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hotelhub/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Goto(ctx context.Context, route string) error
}

type lineResult struct {
	line string
	err  error
}

// readLine reads one line from in, giving up when ctx is done. On
// cancellation the pending read is abandoned and ctx.Err() is returned.
func readLine(ctx context.Context, in *bufio.Reader) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := in.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// runREPL starts a simple read-eval-print loop for the HotelHub CLI.
//
// It reads a line from the provided reader, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on EOF, on context cancellation (even
// while waiting for input) or when the user types "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	help                 - show available commands
//	home                 - go to the home page
//	properties           - browse properties
//	bookings             - show my bookings
//	goto <route>         - open a page by route
//	signup               - create an account (logged out)
//	login                - sign in (logged out)
//	profile              - show my profile (logged in)
//	logout               - sign out (logged in)
//	exit | quit          - leave the program
//
// Errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("%s > ", statusFn()))
		line, err := readLine(ctx, in)
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: home, properties, bookings, profile, goto <route>, logout, exit")
			} else {
				printlnFn("Available commands: home, properties, bookings, goto <route>, signup, login, exit")
			}

		case "signup":
			_ = a.Signup(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "home":
			_ = a.Goto(ctx, common.RouteHome)

		case "properties":
			_ = a.Goto(ctx, common.RouteProperties)

		case "bookings":
			_ = a.Goto(ctx, common.RouteBookings)

		case "profile":
			_ = a.Goto(ctx, common.RouteProfile)

		case "goto":
			if len(parts) < 2 {
				printlnFn("Usage: goto <route>")
				continue
			}
			_ = a.Goto(ctx, parts[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
