// Package cli provides the interactive OdontoFast command-line client.
//
// It wires configuration, the sqlite session store, the HTTP login client
// and the session service, then hands startup to the bootstrap gate. The gate
// waits for the message catalog ("resources") and the persisted session
// ("auth") and picks the first screen:
//
//   - entry screen: login, quicklogin, exit
//   - home screen ("Olá, <nome>"): whoami, logout, exit
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, Start and runREPL for details.
package cli
