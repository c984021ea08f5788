// Package cli provides the interactive FileVault command-line client.
//
// It wires configuration, the snapshot database, the file store, user
// settings and the access gate into an interactive REPL. Typical flow:
// load the persisted state, run the app-lock gate if enabled, and execute
// user commands until exit.
//
// Key features:
//   - List / find / create / import file and folder records
//   - Rename, remove, copy and move records (with content when a URI is set)
//   - Multi-select with bulk remove and bulk move-to-secure
//   - Secure folder behind the access gate (PIN / biometric)
//   - PIN lifecycle (setpin / clearpin) and lock settings toggles
//   - Presigned share links for s3:// content
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
