package linking

import "github.com/navsync-dev/navsync/pkg/navstate"

// Config is the opaque routing configuration handed to the codec pair.
// The default codec does not interpret it; custom codec functions define
// its meaning.
type Config struct {
	Screens map[string]any
}

// Options bundles the linking configuration: URL prefixes, the routing
// config, and the codec function overrides. Zero-value fields fall back to
// the package defaults.
type Options struct {
	// Prefixes are URL prefixes to strip before parsing (e.g. app schemes).
	// Passed through; the synchronizer itself never consumes them.
	Prefixes []string

	// Config is forwarded verbatim to the codec functions.
	Config *Config

	// GetStateFromPath parses a path+query into a navigation state.
	// Returns nil when the path cannot be parsed.
	GetStateFromPath func(path string, config *Config) *navstate.NavigationState

	// GetPathFromState derives the path+query a state represents.
	GetPathFromState func(state *navstate.NavigationState, config *Config) string

	// GetActionFromState derives the action that reproduces a parsed state.
	GetActionFromState func(state *navstate.NavigationState) navstate.Action
}

// StateFromPath invokes the configured or default path parser.
func (o Options) StateFromPath(path string) *navstate.NavigationState {
	fn := o.GetStateFromPath
	if fn == nil {
		fn = StateFromPath
	}
	return fn(path, o.Config)
}

// PathFromState invokes the configured or default path serializer.
func (o Options) PathFromState(state *navstate.NavigationState) string {
	fn := o.GetPathFromState
	if fn == nil {
		fn = PathFromState
	}
	return fn(state, o.Config)
}

// ActionFromState invokes the configured or default action derivation.
func (o Options) ActionFromState(state *navstate.NavigationState) navstate.Action {
	fn := o.GetActionFromState
	if fn == nil {
		fn = ActionFromState
	}
	return fn(state)
}
