package histsync

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/navsync-dev/navsync/pkg/browser"
	"github.com/navsync-dev/navsync/pkg/linking"
	"github.com/navsync-dev/navsync/pkg/navstate"
)

// phase is the feedback-suppression state. At most one self-triggered event
// is outstanding per round-trip; the phase is cleared by the single handler
// invocation that consumes it.
type phase uint8

const (
	// phaseIdle means no self-triggered event is outstanding.
	phaseIdle phase = iota

	// phaseAwaitHistoryEvent means the outbound handler moved the browser
	// and the popstate landing on pendingIndex must be swallowed.
	phaseAwaitHistoryEvent

	// phaseAwaitStateEvent means the inbound handler mutated navigation
	// state and the matching state-change event must be swallowed.
	phaseAwaitStateEvent
)

// String returns the phase name for logging.
func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "Idle"
	case phaseAwaitHistoryEvent:
		return "AwaitHistoryEvent"
	case phaseAwaitStateEvent:
		return "AwaitStateEvent"
	default:
		return "Unknown"
	}
}

// linkingCell holds the latest linking options. Handlers read it at call
// time, so callers can swap codec functions or config without
// re-subscribing and without handlers capturing stale values.
type linkingCell struct {
	mu   sync.Mutex
	opts linking.Options
}

func (c *linkingCell) store(opts linking.Options) {
	c.mu.Lock()
	c.opts = opts
	c.mu.Unlock()
}

func (c *linkingCell) load() linking.Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Synchronizer keeps a navigation container and a browser history in sync.
//
// Wire-up order: construct, SetContainer (may also happen later), Start.
// Stop removes both event subscriptions; Start/Stop are symmetric.
//
// All handler invocations must happen on a single event-dispatch goroutine;
// the suppression protocol is race-free only under that model.
type Synchronizer struct {
	history   browser.History
	container navstate.Container
	linking   linkingCell
	logger    *slog.Logger
	metrics   *Metrics
	tracer    trace.Tracer

	// Correlation state shared by the two handlers.
	phase                phase
	pendingIndex         int
	previousDepth        int
	previousDepthSeen    bool
	previousHistoryIndex int

	started     bool
	removePop   func()
	removeState func()
}

// New creates a synchronizer for the given history.
func New(history browser.History, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		history: history,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetOptions replaces the linking options. Takes effect on the next handler
// invocation; no re-subscription needed.
func (s *Synchronizer) SetOptions(opts linking.Options) {
	s.linking.store(opts)
}

// SetContainer installs or replaces the navigation container. Until a
// container is set every handler is a no-op. When the synchronizer is
// already started the state subscription moves to the new container and the
// depth baseline is seeded from its current state.
func (s *Synchronizer) SetContainer(c navstate.Container) {
	if s.removeState != nil {
		s.removeState()
		s.removeState = nil
	}
	s.container = c
	if s.started && c != nil {
		s.removeState = c.AddListener(navstate.EventState, s.handleStateChange)
		s.seedDepth()
	}
}

// Start subscribes to popstate and state-change events and seeds the
// correlation state from the current history index and navigation depth.
// Calling Start twice is a no-op.
func (s *Synchronizer) Start() {
	if s.started {
		return
	}
	s.started = true

	s.previousHistoryIndex = s.history.Index()
	s.removePop = s.history.Listen(s.handleHistoryEvent)
	if s.container != nil {
		s.removeState = s.container.AddListener(navstate.EventState, s.handleStateChange)
		s.seedDepth()
	}
}

// Stop removes both subscriptions. Safe to call without Start and safe to
// call twice.
func (s *Synchronizer) Stop() {
	if !s.started {
		return
	}
	s.started = false

	if s.removePop != nil {
		s.removePop()
		s.removePop = nil
	}
	if s.removeState != nil {
		s.removeState()
		s.removeState = nil
	}
}

// GetInitialState returns the navigation state implied by the current URL,
// for startup. Returns nil when the location is empty (the container should
// fall back to its own default state) and when parsing fails.
func (s *Synchronizer) GetInitialState() *navstate.NavigationState {
	location := s.history.Location()
	if location == "" {
		return nil
	}
	return s.linking.load().StateFromPath(location)
}

// seedDepth records the depth baseline from the container's current state,
// once. Without it the first outbound run would treat the whole initial
// depth as growth.
func (s *Synchronizer) seedDepth() {
	if s.previousDepthSeen || s.container == nil {
		return
	}
	if state := s.container.GetRootState(); state != nil {
		s.previousDepth = Depth(state)
		s.previousDepthSeen = true
	}
}

// handleHistoryEvent is the inbound handler: it translates a browser
// back/forward event into navigation actions.
func (s *Synchronizer) handleHistoryEvent() {
	if s.container == nil {
		return
	}

	span := s.startSpan("histsync.inbound")
	defer span.End()

	index := s.history.Index()
	previous := s.previousHistoryIndex
	s.previousHistoryIndex = index
	span.SetAttributes(
		attribute.Int("history.index", index),
		attribute.Int("history.previous_index", previous),
	)

	if s.phase == phaseAwaitHistoryEvent && s.pendingIndex == index {
		s.phase = phaseIdle
		s.metrics.recordSuppressed("popstate")
		s.logger.Debug("suppressed self-triggered popstate", "index", index)
		return
	}

	opts := s.linking.load()

	switch {
	case index == previous:
		// The browser replaced the entry without traversal. Resync the URL
		// to whatever the current state derives, without growing history.
		state := s.container.GetRootState()
		if state == nil {
			return
		}
		path := opts.PathFromState(state)
		if path != s.history.Location() {
			s.phase = phaseAwaitStateEvent
			s.history.ReplaceState(browser.Entry{Index: index}, path)
			s.metrics.recordReplace()
			s.logger.Debug("replaced history entry to resync URL", "path", path)
		}

	case previous == index+1:
		// Back by one.
		s.phase = phaseAwaitStateEvent
		s.container.GoBack()

	case previous == index-1:
		// Forward by one: rebuild state from the URL. A parse failure means
		// nothing to do; browser and navigation state stay desynchronized
		// rather than destroying user input.
		location := s.history.Location()
		state := opts.StateFromPath(location)
		if state == nil {
			s.metrics.recordDesync()
			s.logger.Debug("forward URL failed to parse", "location", location)
			return
		}
		action := opts.ActionFromState(state)
		s.phase = phaseAwaitStateEvent
		if action.Type == navstate.ActionReset {
			reset := resetState(action)
			s.container.ResetRoot(reset)
		} else {
			s.container.Dispatch(action)
		}

	default:
		// Jumps of more than one entry have no defined correction policy.
		s.metrics.recordUnhandledJump()
		s.logger.Warn("unhandled history jump", "from", previous, "to", index)
	}
}

// handleStateChange is the outbound handler: it translates a navigation
// state change into browser history operations.
func (s *Synchronizer) handleStateChange() {
	if s.container == nil {
		return
	}
	state := s.container.GetRootState()
	if state == nil {
		return
	}

	span := s.startSpan("histsync.outbound")
	defer span.End()

	opts := s.linking.load()
	path := opts.PathFromState(state)

	if s.phase == phaseAwaitStateEvent && path == s.history.Location() {
		s.phase = phaseIdle
		s.metrics.recordSuppressed("state")
		s.logger.Debug("suppressed self-triggered state change", "path", path)
		return
	}

	stateLength := Depth(state)
	previousLength := 1
	if s.previousDepthSeen {
		previousLength = s.previousDepth
	}
	s.previousDepth = stateLength
	s.previousDepthSeen = true

	index := s.history.Index()
	span.SetAttributes(
		attribute.Int("state.depth", stateLength),
		attribute.Int("state.previous_depth", previousLength),
		attribute.String("state.path", path),
	)

	switch {
	case stateLength == previousLength:
		if s.history.Location() != path {
			s.history.ReplaceState(browser.Entry{Index: index}, path)
			s.previousHistoryIndex = index
			s.metrics.recordReplace()
		}

	case stateLength > previousLength:
		// Intermediate entries are not individually reconstructed: every
		// pushed entry carries the final path.
		delta := stateLength - previousLength
		for i := 0; i < delta; i++ {
			index++
			s.history.PushState(browser.Entry{Index: index}, path)
		}
		s.previousHistoryIndex = index
		s.metrics.recordPushes(delta)

	default:
		delta := previousLength - stateLength
		s.pendingIndex = index - delta
		s.phase = phaseAwaitHistoryEvent
		s.metrics.recordPops(delta)
		s.history.Go(-delta)
	}
}

// resetState extracts the root state carried by a reset action.
func resetState(action navstate.Action) *navstate.NavigationState {
	if payload, ok := action.Payload.(*navstate.ResetPayload); ok && payload != nil {
		return payload.State
	}
	return nil
}

// startSpan opens a handler span, or a no-op span when tracing is off.
func (s *Synchronizer) startSpan(name string) trace.Span {
	if s.tracer == nil {
		return trace.SpanFromContext(context.Background())
	}
	_, span := s.tracer.Start(context.Background(), name)
	return span
}
