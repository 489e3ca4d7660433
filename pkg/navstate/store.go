package navstate

import (
	"fmt"
	"log/slog"
)

// Store is a reference in-memory Container.
//
// Navigators backed by a History list keep their routes and move focus
// through the history (tab-style); navigators without one behave as plain
// stacks (navigate pushes, go-back pops the focused route).
//
// Store is not safe for concurrent use. The synchronizer's event model is
// single-threaded: every handler runs to completion before the next event,
// so all Store calls must happen on one goroutine.
type Store struct {
	root   *NavigationState
	logger *slog.Logger

	listeners  map[int]func()
	listenerID int
	keySeq     int
}

// NewStore creates a store with the given initial state. A nil initial
// state leaves the store empty until the first ResetRoot or Dispatch.
func NewStore(initial *NavigationState) *Store {
	s := &Store{
		logger:    slog.Default(),
		listeners: make(map[int]func()),
	}
	if initial != nil {
		s.root = initial
		s.materialize(s.root)
	}
	return s
}

// SetLogger replaces the store's logger.
func (s *Store) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// GetRootState returns the current root state, or nil when empty.
func (s *Store) GetRootState() *NavigationState {
	return s.root
}

// Dispatch applies an action and notifies listeners on change.
func (s *Store) Dispatch(action Action) {
	switch action.Type {
	case ActionNavigate:
		payload, ok := action.Payload.(*NavigatePayload)
		if !ok || payload == nil {
			s.logger.Warn("dispatch ignored: bad navigate payload")
			return
		}
		if s.root == nil {
			s.root = &NavigationState{Key: s.nextKey("nav")}
		}
		s.applyNavigate(s.root, payload)
		s.notify()

	case ActionGoBack:
		s.GoBack()

	case ActionReset:
		payload, ok := action.Payload.(*ResetPayload)
		if !ok || payload == nil {
			s.logger.Warn("dispatch ignored: bad reset payload")
			return
		}
		s.ResetRoot(payload.State)

	default:
		s.logger.Warn("dispatch ignored: unknown action", "type", action.Type)
	}
}

// GoBack pops the deepest focused navigator that can go back.
func (s *Store) GoBack() {
	if s.root == nil {
		return
	}

	// Collect the chain of focused navigators, root first.
	var chain []*NavigationState
	for state := s.root; state != nil; {
		chain = append(chain, state)
		route := state.FocusedRoute()
		if route == nil {
			break
		}
		state = route.State
	}

	for i := len(chain) - 1; i >= 0; i-- {
		if pop(chain[i]) {
			s.notify()
			return
		}
	}
}

// ResetRoot replaces the root state and notifies listeners. The new state
// is materialized: stale flags are cleared and missing keys assigned.
func (s *Store) ResetRoot(state *NavigationState) {
	s.root = state
	if s.root != nil {
		s.materialize(s.root)
	}
	s.notify()
}

// AddListener subscribes fn to the named event. Only EventState is
// supported; other names return a no-op remover.
func (s *Store) AddListener(event string, fn func()) (remove func()) {
	if event != EventState || fn == nil {
		return func() {}
	}
	s.listenerID++
	id := s.listenerID
	s.listeners[id] = fn
	return func() {
		delete(s.listeners, id)
	}
}

// pop removes one step of history from a single navigator.
// Returns false when the navigator has nothing to go back to.
func pop(state *NavigationState) bool {
	if len(state.History) > 1 {
		state.History = state.History[:len(state.History)-1]
		key := state.History[len(state.History)-1]
		for i := range state.Routes {
			if state.Routes[i].Key == key {
				state.Index = i
				return true
			}
		}
		return true
	}
	if state.History == nil && state.Index > 0 {
		state.Routes = append(state.Routes[:state.Index], state.Routes[state.Index+1:]...)
		state.Index--
		return true
	}
	return false
}

// applyNavigate focuses or pushes the named route, then recurses into the
// nested payload if present.
func (s *Store) applyNavigate(state *NavigationState, payload *NavigatePayload) {
	idx := -1
	for i := range state.Routes {
		if state.Routes[i].Name == payload.Name {
			idx = i
			break
		}
	}
	if idx == -1 {
		state.Routes = append(state.Routes, Route{
			Name: payload.Name,
			Key:  s.nextKey(payload.Name),
		})
		idx = len(state.Routes) - 1
	}
	state.Index = idx
	route := &state.Routes[idx]
	if payload.Params != nil {
		route.Params = payload.Params
	}
	if state.History != nil {
		state.History = appendHistory(state.History, route.Key)
	}

	if payload.Child != nil {
		if route.State == nil {
			route.State = &NavigationState{Key: s.nextKey(payload.Name + "-nav")}
		}
		s.applyNavigate(route.State, payload.Child)
	}
}

// appendHistory moves key to the end of the history, dropping any earlier
// occurrence so each key appears at most once.
func appendHistory(history []string, key string) []string {
	out := history[:0]
	for _, k := range history {
		if k != key {
			out = append(out, k)
		}
	}
	return append(out, key)
}

// materialize clears stale flags and assigns keys throughout the tree.
func (s *Store) materialize(state *NavigationState) {
	state.Stale = false
	if state.Key == "" {
		state.Key = s.nextKey("nav")
	}
	if state.Index < 0 {
		state.Index = 0
	}
	if state.Index >= len(state.Routes) && len(state.Routes) > 0 {
		state.Index = len(state.Routes) - 1
	}
	for i := range state.Routes {
		route := &state.Routes[i]
		if route.Key == "" {
			route.Key = s.nextKey(route.Name)
		}
		if route.State != nil {
			s.materialize(route.State)
		}
	}
}

func (s *Store) nextKey(name string) string {
	s.keySeq++
	return fmt.Sprintf("%s-%d", name, s.keySeq)
}

func (s *Store) notify() {
	// Snapshot so removals during dispatch are safe.
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}
