package navstate

// Route is a single entry in a navigator's route list.
type Route struct {
	// Name identifies the screen this route renders.
	Name string

	// Key uniquely identifies this route instance within its navigator.
	// Containers assign keys; states built by URL parsing leave it empty.
	Key string

	// Params are the route's parameters (query values at the leaf).
	Params map[string]string

	// State is the nested navigator owned by this route, if any.
	State *NavigationState
}

// NavigationState is a navigator's state: an ordered route list plus the
// index of the focused route. States form a strict parent-to-child tree;
// cycles cannot occur.
type NavigationState struct {
	// Key uniquely identifies this navigator instance.
	Key string

	// Index is the position of the focused route in Routes.
	Index int

	// Routes is the ordered list of routes in this navigator.
	Routes []Route

	// History, when non-nil, is the navigator's own visit history as route
	// keys, newest last. Navigators without per-route history leave it nil
	// and their history length is implied by Index+1.
	History []string

	// Stale marks a state that has not been materialized by its navigator
	// yet (for example a state freshly built from a URL). Stale nested
	// states are excluded from depth counting and path derivation.
	Stale bool
}

// FocusedRoute returns the currently focused route, or nil when the index
// is out of range (an empty or malformed state).
func (s *NavigationState) FocusedRoute() *Route {
	if s == nil || s.Index < 0 || s.Index >= len(s.Routes) {
		return nil
	}
	return &s.Routes[s.Index]
}

// LeafRoute follows the chain of focused routes down to the deepest route
// that has no nested state. Returns nil for an empty state.
func (s *NavigationState) LeafRoute() *Route {
	route := s.FocusedRoute()
	for route != nil && route.State != nil {
		next := route.State.FocusedRoute()
		if next == nil {
			break
		}
		route = next
	}
	return route
}
