// Package cli provides the interactive SalesDesk Manager client.
//
// It wires configuration, the persisted session, the REST client, the page
// controllers and a REPL. The prompt shows who is signed in and which page
// is open; every navigation goes through the route guard, so protected
// pages bounce to login when the session is gone.
//
// Global commands:
//   - help                     list commands and, when signed in, the sidebar
//   - open <route> | <route>   navigate, e.g. "open total-sales" or "salary"
//   - login / signup / logout  session management
//   - exit | quit              leave the program
//
// Everything else is handed to the open page; "help" lists its commands.
// The REPL is started via App.Run, which blocks until the user exits.
package cli
