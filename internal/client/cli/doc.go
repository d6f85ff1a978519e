// Package cli implements the interactive terminal surface of stylecart:
// a REPL that dispatches commands to the session, catalog, cart and
// checkout services. Every action failure becomes a printed status line;
// nothing crashes the loop.
package cli
