// Package cli provides the interactive StudyHub command-line client.
//
// It wires configuration, the persistent session store, the collaborator
// client, and an interactive REPL whose commands are gated by the caller's
// role. Typical flow: restore a saved session (or prompt for credentials),
// then execute user commands against the shared material catalog.
//
// Key features:
//   - Login / Logout with a session that survives restarts
//   - Registration with email verification
//   - Browse, search, and download approved materials
//   - Upload materials for review
//   - Administrator moderation: approve, reject, rename, stats
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
