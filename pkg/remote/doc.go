// Package remote implements browser.History backed by a real browser over
// a WebSocket connection.
//
// The server keeps a mirror of the client's location and entry index.
// Writes (push, replace, go) are encoded as protocol frames and sent to the
// thin client, which applies them to the real history API. The client
// reports popstate events back; ReadLoop decodes them, updates the mirror,
// and dispatches listeners on the read goroutine — which therefore is the
// single event-dispatch goroutine the synchronizer requires.
package remote
