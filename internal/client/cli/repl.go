package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	t(key string, args ...any) string
	Login(ctx context.Context) error
	QuickLogin(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF or "exit"/"quit".
//
// The accepted commands depend on the current screen:
//
//	Entry screen (no session):
//	  - help           show available commands
//	  - login          authenticate with carteirinha and password
//	  - quicklogin     development shortcut, if enabled
//	  - exit | quit    leave the program
//
//	Home screen (session present):
//	  - help           show available commands
//	  - whoami         show the stored user record
//	  - logout         end the session
//	  - exit | quit    leave the program
//
// The reader is shared with the prompts of the handlers, so a handler
// consumes its own input lines. Command errors are not fatal; handlers print
// their own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("odontofast %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		home := a.isLoggedIn()

		switch {
		case cmd == "help" && home:
			printlnFn(a.t("help_home"))
		case cmd == "help":
			printlnFn(a.t("help_entry"))

		case cmd == "login" && !home:
			_ = a.Login(ctx)
		case cmd == "quicklogin" && !home:
			_ = a.QuickLogin(ctx)

		case cmd == "whoami" && home:
			_ = a.Whoami(ctx)
		case cmd == "logout" && home:
			_ = a.Logout(ctx)

		case cmd == "exit", cmd == "quit":
			printlnFn(a.t("bye"))
			return

		default:
			printlnFn(a.t("unknown_command", cmd))
		}
	}
}
