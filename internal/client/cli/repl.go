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
	Login(ctx context.Context) error
	Papers(ctx context.Context) error
	Use(ctx context.Context, arg string) error
	Attach(path string) error
	Detach(arg string) error
	Files() error
	History(ctx context.Context) error
	Approve(ctx context.Context, arg string) error
	Reject(ctx context.Context, arg string) error
	MergeSection(ctx context.Context, msgArg, sectionArg string, replace bool) error
	Sections() error
	Settings(ctx context.Context, args []string) error
	Compose(ctx context.Context) error
	Save(ctx context.Context, msgArg, fileArg string) error
	SendMessage(ctx context.Context, text string) error
}

// runREPL starts a read-eval-print loop for the PaperDesk CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. A line that is not a known
// command is sent to the assistant as a chat message. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	login               enter an access token (hidden input)
//	papers              list your papers
//	use <n>             switch the active paper
//	attach <path>       stage a file for the next message
//	detach <n>          remove a staged file
//	files               show staged files
//	history | list      print the transcript
//	approve <n>         approve an assistant reply
//	reject <n>          reject an assistant reply
//	merge <n> <section> [replace]
//	                    merge a reply into a paper section
//	sections            list merge targets
//	settings [<field> <value>]
//	                    show or change personalization settings
//	compose             write a multiline message
//	save <msg> <n>      download an attachment
//	exit | quit         leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pd %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: papers, use, attach, detach, files, history, approve, reject, merge, sections, settings, compose, save, login, exit")
				printlnFn("Anything else is sent to the assistant as a message.")
			} else {
				printlnFn("Available commands: login, papers, help, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "papers":
			_ = a.Papers(ctx)

		case "use":
			if len(args) == 0 {
				printlnFn("Usage: use <n>")
				continue
			}
			_ = a.Use(ctx, args[0])

		case "attach":
			if len(args) == 0 {
				printlnFn("Usage: attach <path>")
				continue
			}
			_ = a.Attach(args[0])

		case "detach":
			if len(args) == 0 {
				printlnFn("Usage: detach <n>")
				continue
			}
			_ = a.Detach(args[0])

		case "files":
			_ = a.Files()

		case "history", "list":
			_ = a.History(ctx)

		case "approve":
			if len(args) == 0 {
				printlnFn("Usage: approve <n>")
				continue
			}
			_ = a.Approve(ctx, args[0])

		case "reject":
			if len(args) == 0 {
				printlnFn("Usage: reject <n>")
				continue
			}
			_ = a.Reject(ctx, args[0])

		case "merge":
			if len(args) < 2 {
				printlnFn("Usage: merge <n> <section> [replace]")
				continue
			}
			replace := len(args) > 2 && args[2] == "replace"
			_ = a.MergeSection(ctx, args[0], args[1], replace)

		case "sections":
			_ = a.Sections()

		case "settings":
			_ = a.Settings(ctx, args)

		case "compose":
			_ = a.Compose(ctx)

		case "save":
			if len(args) < 2 {
				printlnFn("Usage: save <msg> <n>")
				continue
			}
			_ = a.Save(ctx, args[0], args[1])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			_ = a.SendMessage(ctx, line)
		}
	}
}
