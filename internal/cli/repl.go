package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/realtydesk/internal/router"
	"github.com/dmitrijs2005/realtydesk/internal/ui"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Users(ctx context.Context, args []string) error
}

// runREPL starts the read-eval-print loop for the RealtyDesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Handler errors are printed and the loop continues; one bad command never
// takes the session down.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "rd %s> ", statusFn(ctx))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(out, "Available commands: home, login, register, reset, logout, whoami, account, users, open <path>, back, exit")

		case "home":
			cmdErr = a.Open(ctx, router.PathHome)

		case "login":
			cmdErr = a.Login(ctx)

		case "register":
			cmdErr = a.Register(ctx)

		case "reset":
			cmdErr = a.ResetPassword(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "account":
			cmdErr = a.Open(ctx, router.PathAccount)

		case "users":
			cmdErr = a.Users(ctx, args)

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: open <path>")
				continue
			}
			cmdErr = a.Open(ctx, args[0])

		case "back":
			cmdErr = a.Back(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, ui.ErrorLine(cmdErr))
		}
	}
}
