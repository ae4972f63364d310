package tabs

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"

	"github.com/Sh1nto/quasar/internal/router"
)

// RouteBinding mirrors the router's live view of one route-capable tab. The
// router collaborator supplies and refreshes it; the engine only reads it.
type RouteBinding struct {
	Exact       bool // require hash+query equality, not segment matching
	Active      bool
	ExactActive bool
	Target      *router.Target // nil while the link is unresolvable
}

// Descriptor is one registered tab. The registry owns it from Register to
// Unregister.
type Descriptor struct {
	ID        string // stable handle, assigned by Register
	Name      string
	Root      Element
	Indicator IndicatorTarget
	Route     *RouteBinding // nil for plain tabs
}

// Registry keeps registered tabs in registration order. Order is stable for
// iteration but carries no further meaning; duplicate names are tolerated
// and lookups return the first match.
type Registry struct {
	items   []*Descriptor
	onCount func(total int)
}

// NewRegistry creates a registry. onCount, if non-nil, fires after every
// register and unregister with the new total.
func NewRegistry(onCount func(int)) *Registry {
	return &Registry{onCount: onCount}
}

// Register appends d and returns its assigned handle.
func (r *Registry) Register(d *Descriptor) string {
	d.ID = uuid.NewString()
	r.items = append(r.items, d)
	r.notify()
	return d.ID
}

// Unregister removes the tab with the given handle. Unknown handles are a
// no-op and return nil.
func (r *Registry) Unregister(id string) *Descriptor {
	for i, d := range r.items {
		if d.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.notify()
			return d
		}
	}
	return nil
}

func (r *Registry) notify() {
	if r.onCount != nil {
		r.onCount(len(r.items))
	}
}

// Len returns the number of registered tabs.
func (r *Registry) Len() int {
	return len(r.items)
}

// Tabs returns the registered tabs in registration order. The slice is
// shared; callers must not mutate it.
func (r *Registry) Tabs() []*Descriptor {
	return r.items
}

// Lookup returns the first tab with the given name, or nil.
func (r *Registry) Lookup(name string) *Descriptor {
	if name == "" {
		return nil
	}
	for _, d := range r.items {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// HasPlain reports whether a non-route tab with the given name is
// registered.
func (r *Registry) HasPlain(name string) bool {
	if name == "" {
		return false
	}
	for _, d := range r.items {
		if d.Route == nil && d.Name == name {
			return true
		}
	}
	return false
}

// RouteCount returns the number of route-capable tabs.
func (r *Registry) RouteCount() int {
	n := 0
	for _, d := range r.items {
		if d.Route != nil {
			n++
		}
	}
	return n
}

// Closest returns the registered tab whose name is nearest to query by edit
// distance, ignoring case. Exact prefixes rank ahead of pure distance so
// partial input still lands on the intended tab. Returns nil when empty.
func (r *Registry) Closest(query string) *Descriptor {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || len(r.items) == 0 {
		return nil
	}
	var best *Descriptor
	bestDist := 0
	for _, d := range r.items {
		name := strings.ToLower(d.Name)
		dist := levenshtein.ComputeDistance(name, query)
		if strings.HasPrefix(name, query) {
			dist = 0
		}
		if best == nil || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	return best
}
