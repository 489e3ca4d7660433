package navstate

import "testing"

func TestStoreNavigate(t *testing.T) {
	store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})

	store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "settings"}))

	state := store.GetRootState()
	if len(state.Routes) != 2 || state.Index != 1 {
		t.Fatalf("state = %+v, want two routes focused on settings", state)
	}
	if got := state.FocusedRoute().Name; got != "settings" {
		t.Errorf("focused = %q, want settings", got)
	}
	if state.FocusedRoute().Key == "" {
		t.Error("pushed route has no key")
	}

	// Navigating to an existing route re-focuses instead of duplicating.
	store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "home"}))
	state = store.GetRootState()
	if len(state.Routes) != 2 || state.Index != 0 {
		t.Errorf("state = %+v, want re-focus on home", state)
	}
}

func TestStoreNavigateNested(t *testing.T) {
	store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})

	store.Dispatch(NewNavigateAction(&NavigatePayload{
		Name:  "home",
		Child: &NavigatePayload{Name: "profile", Params: map[string]string{"id": "3"}},
	}))

	leaf := store.GetRootState().LeafRoute()
	if leaf == nil || leaf.Name != "profile" {
		t.Fatalf("leaf = %+v, want profile", leaf)
	}
	if leaf.Params["id"] != "3" {
		t.Errorf("leaf params = %v, want id=3", leaf.Params)
	}
}

func TestStoreGoBack(t *testing.T) {
	t.Run("StackPopsFocusedRoute", func(t *testing.T) {
		store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})
		store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "a"}))
		store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "b"}))

		store.GoBack()

		state := store.GetRootState()
		if len(state.Routes) != 2 || state.FocusedRoute().Name != "a" {
			t.Errorf("state = %+v, want [home a] focused on a", state)
		}
	})

	t.Run("HistoryNavigatorMovesFocus", func(t *testing.T) {
		store := NewStore(&NavigationState{
			Index: 1,
			Routes: []Route{
				{Name: "feed", Key: "feed-1"},
				{Name: "search", Key: "search-1"},
			},
			History: []string{"feed-1", "search-1"},
		})

		store.GoBack()

		state := store.GetRootState()
		if len(state.Routes) != 2 {
			t.Fatalf("history navigator dropped a route: %+v", state)
		}
		if state.FocusedRoute().Name != "feed" {
			t.Errorf("focused = %q, want feed", state.FocusedRoute().Name)
		}
	})

	t.Run("NothingToPopIsNoOp", func(t *testing.T) {
		store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})
		fired := 0
		store.AddListener(EventState, func() { fired++ })

		store.GoBack()

		if fired != 0 {
			t.Errorf("listeners fired %d times on a no-op go-back", fired)
		}
	})

	t.Run("PopsDeepestNavigatorFirst", func(t *testing.T) {
		store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})
		store.Dispatch(NewNavigateAction(&NavigatePayload{
			Name:  "home",
			Child: &NavigatePayload{Name: "a"},
		}))
		store.Dispatch(NewNavigateAction(&NavigatePayload{
			Name:  "home",
			Child: &NavigatePayload{Name: "b"},
		}))

		store.GoBack()

		leaf := store.GetRootState().LeafRoute()
		if leaf.Name != "a" {
			t.Errorf("leaf = %q, want a (nested pop)", leaf.Name)
		}
		if len(store.GetRootState().Routes) != 1 {
			t.Error("outer navigator changed during nested pop")
		}
	})
}

func TestStoreResetRoot(t *testing.T) {
	store := NewStore(nil)
	fired := 0
	store.AddListener(EventState, func() { fired++ })

	stale := &NavigationState{
		Stale:  true,
		Routes: []Route{{Name: "a", State: &NavigationState{Stale: true, Routes: []Route{{Name: "b"}}}}},
	}
	store.ResetRoot(stale)

	state := store.GetRootState()
	if state.Stale || state.Routes[0].State.Stale {
		t.Error("ResetRoot left stale flags set")
	}
	if state.Routes[0].Key == "" || state.Routes[0].State.Routes[0].Key == "" {
		t.Error("ResetRoot left routes without keys")
	}
	if fired != 1 {
		t.Errorf("listeners fired %d times, want 1", fired)
	}
}

func TestStoreListeners(t *testing.T) {
	store := NewStore(&NavigationState{Routes: []Route{{Name: "home"}}})

	calls := 0
	remove := store.AddListener(EventState, func() { calls++ })

	store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "a"}))
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	remove()
	remove() // idempotent
	store.Dispatch(NewNavigateAction(&NavigatePayload{Name: "b"}))
	if calls != 1 {
		t.Errorf("calls = %d after remove, want 1", calls)
	}

	if got := store.AddListener("bogus", func() {}); got == nil {
		t.Error("AddListener for unknown event returned nil remover")
	}
}

func TestAppendHistory(t *testing.T) {
	history := []string{"a", "b", "c"}
	got := appendHistory(history, "b")
	want := []string{"a", "c", "b"}
	if len(got) != len(want) {
		t.Fatalf("appendHistory = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("appendHistory = %v, want %v", got, want)
		}
	}
}
