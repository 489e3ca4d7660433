package browser

// historyEntry is one stack slot in a MemoryHistory.
type historyEntry struct {
	entry Entry
	url   string
}

// MemoryHistory is an in-process History with browser back/forward
// semantics: pushing truncates any forward entries, Go clamps to the stack
// bounds and dispatches popstate listeners synchronously.
//
// Synchronous dispatch mirrors the single-threaded event model the
// synchronizer relies on. MemoryHistory is not safe for concurrent use.
type MemoryHistory struct {
	entries []historyEntry
	pos     int

	listeners  map[int]func()
	listenerID int
}

// NewMemoryHistory creates a history with a single initial entry at the
// given URL and a zero payload index.
func NewMemoryHistory(url string) *MemoryHistory {
	return &MemoryHistory{
		entries:   []historyEntry{{url: url}},
		pos:       0,
		listeners: make(map[int]func()),
	}
}

// Location returns the current entry's URL.
func (h *MemoryHistory) Location() string {
	return h.entries[h.pos].url
}

// Index returns the current entry's payload index.
func (h *MemoryHistory) Index() int {
	return h.entries[h.pos].entry.Index
}

// Length returns the number of entries in the stack.
func (h *MemoryHistory) Length() int {
	return len(h.entries)
}

// Position returns the cursor position within the stack.
func (h *MemoryHistory) Position() int {
	return h.pos
}

// PushState appends an entry after the cursor, dropping forward entries.
// No listeners are dispatched.
func (h *MemoryHistory) PushState(entry Entry, url string) {
	h.entries = append(h.entries[:h.pos+1], historyEntry{entry: entry, url: url})
	h.pos = len(h.entries) - 1
}

// ReplaceState overwrites the entry at the cursor. No listeners are
// dispatched.
func (h *MemoryHistory) ReplaceState(entry Entry, url string) {
	h.entries[h.pos] = historyEntry{entry: entry, url: url}
}

// Go moves the cursor by delta, clamped to the stack bounds, and
// dispatches popstate listeners synchronously. A zero effective move still
// dispatches nothing.
func (h *MemoryHistory) Go(delta int) {
	target := h.pos + delta
	if target < 0 {
		target = 0
	}
	if target > len(h.entries)-1 {
		target = len(h.entries) - 1
	}
	if target == h.pos {
		return
	}
	h.pos = target
	h.dispatch()
}

// Back is shorthand for Go(-1).
func (h *MemoryHistory) Back() {
	h.Go(-1)
}

// Forward is shorthand for Go(1).
func (h *MemoryHistory) Forward() {
	h.Go(1)
}

// Listen subscribes fn to popstate events.
func (h *MemoryHistory) Listen(fn func()) (remove func()) {
	if fn == nil {
		return func() {}
	}
	h.listenerID++
	id := h.listenerID
	h.listeners[id] = fn
	return func() {
		delete(h.listeners, id)
	}
}

func (h *MemoryHistory) dispatch() {
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	for _, fn := range fns {
		fn()
	}
}
