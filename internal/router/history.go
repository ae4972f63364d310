package router

// History tracks the current location and notifies watchers when it changes.
// All methods must be called from the goroutine that drives the UI.
type History struct {
	table    *Table
	current  Location
	watchers map[int]func()
	nextID   int
}

// NewHistory creates a history positioned at start.
func NewHistory(table *Table, start string) *History {
	return &History{
		table:    table,
		current:  ParseLocation(start),
		watchers: map[int]func(){},
	}
}

// Table returns the route table backing this history.
func (h *History) Table() *Table {
	return h.table
}

// Current returns the current location.
func (h *History) Current() Location {
	return h.current
}

// Navigate moves to a new location and notifies watchers. Navigating to the
// current location is a no-op.
func (h *History) Navigate(to string) {
	next := ParseLocation(to)
	if next.String() == h.current.String() {
		return
	}
	h.current = next
	for _, fn := range h.watchers {
		fn()
	}
}

// Watch registers a change callback and returns a stop function. Stopping
// twice is harmless.
func (h *History) Watch(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.watchers[id] = fn
	return func() {
		delete(h.watchers, id)
	}
}
