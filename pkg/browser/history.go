package browser

// Entry is the payload attached to a history entry. Index is the logical
// depth counter maintained by the synchronizer, not the browser's native
// entry count.
type Entry struct {
	Index int
}

// History is the browser session-history capability.
//
// Implementations dispatch popstate listeners only for traversal (Go and
// user back/forward), never for PushState or ReplaceState, matching real
// browser semantics.
type History interface {
	// Location returns the current path plus query string, e.g. "/a/b?x=1".
	// Empty when no location is known yet.
	Location() string

	// Index returns the current entry's payload index, 0 when absent.
	Index() int

	// PushState appends a new entry with the given payload and URL.
	PushState(entry Entry, url string)

	// ReplaceState overwrites the current entry's payload and URL.
	ReplaceState(entry Entry, url string)

	// Go moves delta entries through the stack (negative is back).
	Go(delta int)

	// Listen subscribes fn to popstate events and returns a remove
	// function. Remove is idempotent.
	Listen(fn func()) (remove func())
}
