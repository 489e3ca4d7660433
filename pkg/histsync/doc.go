// Package histsync reconciles a hierarchical navigation state against the
// browser URL and session-history stack, in both directions.
//
// The hard part is feedback suppression: a programmatic history move raises
// a popstate event, and a programmatic state mutation raises a state-change
// event, and neither must be re-translated back, or the two sides chase
// each other forever. The Synchronizer models this as a three-state machine
// shared by its two handlers:
//
//	Idle                     → no self-triggered event outstanding
//	AwaitHistoryEvent(index) → we moved the browser; swallow the popstate
//	                           that lands on index
//	AwaitStateEvent          → we mutated navigation state; swallow the
//	                           state change whose derived path matches the
//	                           current URL
//
// Multi-entry growth is approximated: when navigation depth grows by N the
// synchronizer pushes N entries all carrying the final path, since the
// intermediate entries cannot be reconstructed from a single state change.
// Back/forward jumps of more than one entry are left uncorrected.
//
// The whole protocol assumes a single-threaded event model: every handler
// runs to completion before the next event is dispatched. Both History
// implementations in this repository honor that.
package histsync
