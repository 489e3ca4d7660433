// Package browser abstracts the subset of the browser history API the
// synchronizer needs: read the current location and entry payload, push or
// replace entries, move relatively through the stack, and subscribe to
// popstate-equivalent events.
//
// MemoryHistory is a faithful in-process implementation used by tests and
// simulations; package remote provides one backed by a real browser over a
// WebSocket connection.
package browser
