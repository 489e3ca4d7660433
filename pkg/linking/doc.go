// Package linking defines the URL codec contract between paths and
// navigation states, plus simple default implementations.
//
// The synchronizer never interprets URLs itself; it calls the three codec
// functions configured in Options:
//
//	GetStateFromPath(path, config)  → *navstate.NavigationState
//	GetPathFromState(state, config) → string
//	GetActionFromState(state)      → navstate.Action
//
// The defaults map path segments to a chain of nested focused routes and
// the query string to leaf-route params. They cover the common case; apps
// with a richer routing grammar supply their own functions.
package linking
