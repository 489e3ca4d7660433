// Package protocol implements the binary wire format between a server-side
// synchronizer and a thin browser client.
//
// The server sends history operations (push, replace, relative go); the
// client sends events (popstate, initial load). Frames are a single type
// byte followed by a payload of varints and length-prefixed strings,
// optimized for tiny messages on a hot WebSocket path.
//
// Truncated or malformed input returns an error, never panics.
package protocol
