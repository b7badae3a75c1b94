// Package state holds the client-side session and the environment store.
//
// Both types are owned by the TUI update loop (or a single CLI command) and
// are not safe for concurrent mutation.
package state
