package linking

import "github.com/navsync-dev/navsync/pkg/navstate"

// ActionFromState is the default action derivation. A state whose focused
// chain consists of single-route navigators can be reproduced with one
// incremental navigate; anything wider needs a full root reset.
func ActionFromState(state *navstate.NavigationState) navstate.Action {
	if state == nil {
		return navstate.NewResetAction(nil)
	}

	for current := state; current != nil; {
		if len(current.Routes) != 1 {
			return navstate.NewResetAction(state)
		}
		current = current.Routes[0].State
	}

	return navstate.NewNavigateAction(navigatePayload(state))
}

// navigatePayload converts a single-route chain into a nested navigate
// payload, outermost first.
func navigatePayload(state *navstate.NavigationState) *navstate.NavigatePayload {
	if state == nil || len(state.Routes) == 0 {
		return nil
	}
	route := state.Routes[0]
	return &navstate.NavigatePayload{
		Name:   route.Name,
		Params: route.Params,
		Child:  navigatePayload(route.State),
	}
}
