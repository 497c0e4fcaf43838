// Package cli provides the interactive PaperDesk command-line client.
//
// It wires configuration, the backend API client, and the session services
// into an interactive REPL. Typical flow: load the transcript for the active
// paper, then execute user commands until exit.
//
// Key features:
//   - Chat with the research assistant (plain lines and multiline compose)
//   - Stage file attachments for the next message
//   - List papers and switch the active one
//   - Approve / reject assistant replies and merge them into paper sections
//   - Show and edit personalization settings
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
