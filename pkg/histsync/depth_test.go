package histsync

import (
	"testing"

	"github.com/navsync-dev/navsync/pkg/navstate"
)

func TestDepth(t *testing.T) {
	t.Run("NilState", func(t *testing.T) {
		if got := Depth(nil); got != 1 {
			t.Errorf("Depth(nil) = %d, want 1", got)
		}
	})

	t.Run("IndexPlusOne", func(t *testing.T) {
		state := &navstate.NavigationState{
			Index:  2,
			Routes: []navstate.Route{{Name: "a"}, {Name: "b"}, {Name: "c"}},
		}
		if got := Depth(state); got != 3 {
			t.Errorf("Depth = %d, want 3", got)
		}
	})

	t.Run("HistoryListWins", func(t *testing.T) {
		state := &navstate.NavigationState{
			Index:   0,
			Routes:  []navstate.Route{{Name: "a", Key: "a-1"}, {Name: "b", Key: "b-1"}},
			History: []string{"b-1", "a-1"},
		}
		if got := Depth(state); got != 2 {
			t.Errorf("Depth = %d, want 2 (history length)", got)
		}
	})

	t.Run("NestedAddsDepthMinusOne", func(t *testing.T) {
		inner := &navstate.NavigationState{
			Index:  1,
			Routes: []navstate.Route{{Name: "x"}, {Name: "y"}},
		}
		outer := &navstate.NavigationState{
			Index:  1,
			Routes: []navstate.Route{{Name: "a"}, {Name: "b", State: inner}},
		}
		// depth(outer alone) = 2, depth(inner) = 2, shared frame counted once.
		if got := Depth(outer); got != 3 {
			t.Errorf("Depth = %d, want 3", got)
		}
	})

	t.Run("StaleNestedExcluded", func(t *testing.T) {
		inner := &navstate.NavigationState{
			Index:  1,
			Routes: []navstate.Route{{Name: "x"}, {Name: "y"}},
			Stale:  true,
		}
		outer := &navstate.NavigationState{
			Index:  0,
			Routes: []navstate.Route{{Name: "a", State: inner}},
		}
		if got := Depth(outer); got != 1 {
			t.Errorf("Depth = %d, want 1 (stale nested state ignored)", got)
		}
	})

	t.Run("DeepNesting", func(t *testing.T) {
		// Tens of levels, one extra frame per level.
		state := &navstate.NavigationState{
			Index:  1,
			Routes: []navstate.Route{{Name: "pad"}, {Name: "leaf"}},
		}
		for i := 0; i < 50; i++ {
			state = &navstate.NavigationState{
				Index:  1,
				Routes: []navstate.Route{{Name: "pad"}, {Name: "level", State: state}},
			}
		}
		if got := Depth(state); got != 52 {
			t.Errorf("Depth = %d, want 52", got)
		}
	})

	t.Run("NeverBelowOne", func(t *testing.T) {
		state := &navstate.NavigationState{History: []string{}}
		if got := Depth(state); got != 1 {
			t.Errorf("Depth = %d, want 1", got)
		}
	})
}
