package navstate

// EventState is the listener event name for state changes.
const EventState = "state"

// Container is the navigation-state capability consumed by the history
// synchronizer. It owns the root state; the synchronizer only reads state
// and issues commands through this interface.
type Container interface {
	// GetRootState returns the current root navigation state.
	// May return nil before the container has an initial state.
	GetRootState() *NavigationState

	// Dispatch applies a navigation action to the current state.
	Dispatch(action Action)

	// GoBack pops the focused route of the deepest navigator that can go
	// back. No-op when nothing can be popped.
	GoBack()

	// ResetRoot replaces the root state wholesale.
	ResetRoot(state *NavigationState)

	// AddListener subscribes to the named event (EventState) and returns a
	// remove function. Remove is idempotent.
	AddListener(event string, fn func()) (remove func())
}
