// Package navstate defines the hierarchical navigation-state model and the
// container capability consumed by the history synchronizer.
//
// A NavigationState is an ordered list of routes with a focus index. A route
// may own a nested NavigationState, forming a tree of navigators. States and
// routes are plain data; all mutation goes through a Container, which owns
// the root state and notifies listeners on change.
//
// The package also ships Store, a reference in-memory Container with
// stack-style semantics (navigate pushes or re-focuses, go-back pops focus).
// Store is what the demo server and the test suites run against; any other
// implementation of Container works the same way with the synchronizer.
package navstate
