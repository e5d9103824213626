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
	AddFiles(ctx context.Context, args []string) error
	ListFiles(ctx context.Context) error
	RemoveFile(ctx context.Context, args []string) error
	AddRecipients(ctx context.Context, args []string) error
	ListRecipients(ctx context.Context) error
	RemoveRecipient(ctx context.Context, args []string) error
	SetMessage(ctx context.Context, args []string) error
	SetExpiry(ctx context.Context, args []string) error
	Send(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Token(ctx context.Context) error
	Clear(ctx context.Context) error
}

const helpText = `Available commands:
  add <path>...     add files to the transfer
  files             list selected files
  rm <n>            remove file number n
  to <email>...     add recipients
  recipients        list recipients
  unto <n>          remove recipient number n
  message [text]    set the message ("-" clears it)
  expiry <days>     set expiry, 1-30 days
  send              upload the files and notify recipients
  history [n]       show recent transfers
  token             set the session token
  clear             drop the current selection
  exit | quit       leave the program`

// runREPL starts a simple read–eval–print loop for the sharefile client.
//
// It reads a line from reader, parses the first token as the command and
// the rest as its arguments, and dispatches to methods on 'a'. Unknown
// commands are reported back to the user. The loop exits on EOF or when the
// user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sharefile %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
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

		case "add":
			_ = a.AddFiles(ctx, args)

		case "files", "ls":
			_ = a.ListFiles(ctx)

		case "rm":
			_ = a.RemoveFile(ctx, args)

		case "to":
			_ = a.AddRecipients(ctx, args)

		case "recipients":
			_ = a.ListRecipients(ctx)

		case "unto":
			_ = a.RemoveRecipient(ctx, args)

		case "message", "msg":
			_ = a.SetMessage(ctx, args)

		case "expiry":
			_ = a.SetExpiry(ctx, args)

		case "send":
			_ = a.Send(ctx)

		case "history":
			_ = a.History(ctx, args)

		case "token":
			_ = a.Token(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
