// Package router supplies navigation locations and resolved route targets
// for route-capable tabs. It owns route declaration and matching; the tab
// engine only consumes the results.
package router

import (
	"net/url"
	"sort"
	"strings"
)

// Query holds decoded query parameters. Values are compared per key,
// element by element.
type Query map[string][]string

// Get returns the first value for key, or "".
func (q Query) Get(key string) string {
	if vs := q[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// QueryEqual reports whether a and b hold the same keys with the same values.
func QueryEqual(a, b Query) bool {
	if len(a) != len(b) {
		return false
	}
	return QueryContains(a, b)
}

// QueryContains reports whether every key of inner is present in outer with
// equal values. Outer may carry extra keys.
func QueryContains(outer, inner Query) bool {
	for key, want := range inner {
		got, ok := outer[key]
		if !ok || len(got) != len(want) {
			return false
		}
		for i := range want {
			if got[i] != want[i] {
				return false
			}
		}
	}
	return true
}

// Location is a parsed navigation location.
type Location struct {
	Path  string
	Hash  string
	Query Query
}

// String returns the full identifying form of the location. Query keys are
// emitted sorted so equal locations compare equal.
func (l Location) String() string {
	var b strings.Builder
	b.WriteString(l.Path)
	if len(l.Query) > 0 {
		keys := make([]string, 0, len(l.Query))
		for k := range l.Query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sep := "?"
		for _, k := range keys {
			for _, v := range l.Query[k] {
				b.WriteString(sep)
				b.WriteString(url.QueryEscape(k))
				b.WriteString("=")
				b.WriteString(url.QueryEscape(v))
				sep = "&"
			}
		}
	}
	if l.Hash != "" {
		b.WriteString("#")
		b.WriteString(l.Hash)
	}
	return b.String()
}

// ParseLocation parses a "/path?query#hash" string. Malformed query strings
// degrade to an empty query rather than failing.
func ParseLocation(to string) Location {
	loc := Location{Path: to, Query: Query{}}
	if i := strings.IndexByte(loc.Path, '#'); i >= 0 {
		loc.Hash = loc.Path[i+1:]
		loc.Path = loc.Path[:i]
	}
	if i := strings.IndexByte(loc.Path, '?'); i >= 0 {
		if vals, err := url.ParseQuery(loc.Path[i+1:]); err == nil {
			loc.Query = Query(vals)
		}
		loc.Path = loc.Path[:i]
	}
	if loc.Path == "" {
		loc.Path = "/"
	}
	return loc
}

// Target is a resolved route target for one link.
type Target struct {
	Path    string
	Hash    string
	Query   Query
	Matched []string // path segments of the matched route record
	Href    string
}

// Route declares one navigable path.
type Route struct {
	Path string
	Name string
}

// Table holds the declared routes.
type Table struct {
	routes []Route
}

// NewTable builds a route table from the given routes.
func NewTable(routes ...Route) *Table {
	return &Table{routes: routes}
}

// Resolve matches a "to" string against the declared routes. The winning
// record is the one with the most path segments that prefix the target path;
// ok is false when no record matches.
func (t *Table) Resolve(to string) (Target, bool) {
	loc := ParseLocation(to)
	segs := Segments(loc.Path)

	var best []string
	found := false
	for _, r := range t.routes {
		rs := Segments(r.Path)
		if !segmentsPrefix(segs, rs) {
			continue
		}
		if !found || len(rs) > len(best) {
			best = rs
			found = true
		}
	}
	if !found {
		return Target{}, false
	}
	return Target{
		Path:    loc.Path,
		Hash:    loc.Hash,
		Query:   loc.Query,
		Matched: best,
		Href:    loc.String(),
	}, true
}

// IsActive reports whether target counts as active for loc: the location
// path must extend the target path at a segment boundary.
func IsActive(t Target, loc Location) bool {
	return segmentsPrefix(Segments(loc.Path), Segments(t.Path))
}

// IsExactActive reports whether target's path equals the location path.
func IsExactActive(t Target, loc Location) bool {
	return loc.Path == t.Path
}

// Segments splits a path into its non-empty segments.
func Segments(path string) []string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// segmentsPrefix reports whether inner is a prefix of outer.
func segmentsPrefix(outer, inner []string) bool {
	if len(inner) > len(outer) {
		return false
	}
	for i := range inner {
		if outer[i] != inner[i] {
			return false
		}
	}
	return true
}
