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
	banner() string
	List(ctx context.Context) error
	Totals(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Refresh(ctx context.Context) error
	Dismiss(ctx context.Context) error
	Export(ctx context.Context, path string) error
}

const helpText = `Available commands:
  (l)ist             list subscriptions
  totals             monthly and annual spend
  add                add a subscription
  edit <id>          edit a subscription
  delete <id>        delete a subscription
  refresh            reload from the server
  dismiss            hide the error banner
  export <file>      write the list to an .xlsx workbook
  exit | quit        leave the program`

// runREPL starts a simple read–eval–print loop for the subtracker CLI.
//
// Before each prompt the current error banner, if any, is printed. The prompt
// itself carries statusFn's text. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report their
// own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if msg := a.banner(); msg != "" {
			printlnFn(fmt.Sprintf("! %s (type 'dismiss' to hide)", msg))
		}
		printlnFn(fmt.Sprintf("subs %s> ", statusFn()))

		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "totals":
			_ = a.Totals(ctx)

		case "add":
			_ = a.Add(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.Edit(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "dismiss":
			_ = a.Dismiss(ctx)

		case "export":
			if len(args) == 0 {
				printlnFn("Usage: export <file.xlsx>")
				continue
			}
			_ = a.Export(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
