// Package cli provides the interactive palace command-line client.
//
// It wires configuration, the local session database and the session
// manager into a small REPL. On start the saved session is restored; the
// user can then sign up, sign in, inspect the account, change subscribed
// regions and sign out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
