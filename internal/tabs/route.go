package tabs

import (
	"strings"

	"github.com/Sh1nto/quasar/internal/router"
)

// LocationSource supplies the current navigation location and change
// notifications. Implemented by router.History.
type LocationSource interface {
	Current() router.Location
	Watch(fn func()) (stop func())
}

// routeScore ranks one non-exact route candidate. Comparison is a strict
// total order over the three criteria so the tie-break policy stays
// independent of iteration mechanics.
type routeScore struct {
	matched   int // count of matched route segments; larger wins
	queryDiff int // current minus candidate query key count; smaller wins
	hrefLen   int // href length excluding the hash; longer wins
}

// beats reports whether s strictly beats best on the first differing
// criterion. Equal scores keep the earlier-encountered champion.
//
// queryDiff is compared signed, matching the historical ranking: a candidate
// declaring more query keys than the location carries ranks ahead of one
// declaring fewer, even at equal magnitude.
func (s routeScore) beats(best routeScore) bool {
	if s.matched != best.matched {
		return s.matched > best.matched
	}
	if s.queryDiff != best.queryDiff {
		return s.queryDiff < best.queryDiff
	}
	return s.hrefLen > best.hrefLen
}

// pickRouteTab chooses at most one winning route tab for loc.
//
// Only tabs with a resolvable target and the activity flag matching their
// mode are candidates. An exact-mode candidate whose hash and query equal
// the location's wins outright and stops the scan. Non-exact candidates are
// rejected on a conflicting declared hash or on query keys missing from the
// location, then ranked by routeScore.
func pickRouteTab(items []*Descriptor, loc router.Location) (name string, found bool) {
	var best routeScore
	for _, d := range items {
		rb := d.Route
		if rb == nil || rb.Target == nil {
			continue
		}
		if rb.Exact {
			if !rb.ExactActive {
				continue
			}
		} else if !rb.Active {
			continue
		}

		t := rb.Target
		if rb.Exact {
			if t.Hash != loc.Hash {
				continue
			}
			if !router.QueryEqual(t.Query, loc.Query) {
				continue
			}
			return d.Name, true
		}

		if t.Hash != "" && t.Hash != loc.Hash {
			continue
		}
		if !router.QueryContains(loc.Query, t.Query) {
			continue
		}

		score := routeScore{
			matched:   len(t.Matched),
			queryDiff: len(loc.Query) - len(t.Query),
			hrefLen:   len(stripHash(t.Href)),
		}
		if !found || score.beats(best) {
			best = score
			name = d.Name
			found = true
		}
	}
	return name, found
}

func stripHash(href string) string {
	if i := strings.IndexByte(href, '#'); i >= 0 {
		return href[:i]
	}
	return href
}
