// Package cli provides the interactive subtracker command-line client.
//
// It wires configuration, the remote REST client, the optional local
// snapshot, the subscription store and the add/edit form into a REPL.
// Typical flow: restore the last snapshot, start a background refresh, then
// execute user commands until "exit".
//
// Key features:
//   - List subscriptions and show spend totals
//   - Add / Edit through a single form with validation
//   - Delete behind a confirmation prompt
//   - Refresh from the server, dismiss the error banner
//   - Export the list to an .xlsx workbook
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command table.
package cli
