package histsync

import "github.com/navsync-dev/navsync/pkg/navstate"

// Depth computes the history length a navigation state represents.
//
// A navigator with its own History list contributes that list's length;
// one without contributes Index+1. A non-stale nested state under the
// focused route adds its own depth minus one, since the focused route's
// frame is already counted by the parent. The result is always at least 1.
func Depth(state *navstate.NavigationState) int {
	if state == nil {
		return 1
	}

	length := state.Index + 1
	if state.History != nil {
		length = len(state.History)
	}

	if focused := state.FocusedRoute(); focused != nil {
		if nested := focused.State; nested != nil && !nested.Stale {
			length += Depth(nested) - 1
		}
	}

	if length < 1 {
		return 1
	}
	return length
}
