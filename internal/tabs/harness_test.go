package tabs

import (
	"time"

	"github.com/Sh1nto/quasar/internal/router"
)

// fakeClock is a manual Scheduler: ticks flush on demand and timers fire
// only when the clock is advanced.
type fakeClock struct {
	now    time.Duration
	ticks  []func()
	timers []*fakeTimer
}

type fakeTimer struct {
	when    time.Duration
	period  time.Duration // zero for one-shot
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() { t.stopped = true }

func (c *fakeClock) NextTick(fn func()) {
	c.ticks = append(c.ticks, fn)
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Handle {
	t := &fakeTimer{when: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Interval(d time.Duration, fn func()) Handle {
	t := &fakeTimer{when: c.now + d, period: d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// flushTicks runs queued tick callbacks, including ones they queue in turn.
func (c *fakeClock) flushTicks() {
	for len(c.ticks) > 0 {
		fns := c.ticks
		c.ticks = nil
		for _, fn := range fns {
			fn()
		}
	}
}

// advance moves the clock forward, firing due timers in order and flushing
// ticks after each one.
func (c *fakeClock) advance(d time.Duration) {
	end := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.stopped || t.when > end {
				continue
			}
			if next == nil || t.when < next.when {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.when
		if next.period > 0 {
			next.when += next.period
		} else {
			next.stopped = true
		}
		next.fn()
		c.flushTicks()
	}
	c.now = end
}

// testStrip models a scrollable run of tabs: fixed container viewport, items
// laid end to end, offset clamped to the scrollable range.
type testStrip struct {
	viewport int
	items    []testItem
	offset   int // sign preserved, so negated-storage engines round-trip
}

type testItem struct {
	name   string
	extent int
}

func (s *testStrip) total() int {
	sum := 0
	for _, it := range s.items {
		sum += it.extent
	}
	return sum
}

func (s *testStrip) maxOffset() int {
	if m := s.total() - s.viewport; m > 0 {
		return m
	}
	return 0
}

func (s *testStrip) magnitude() int {
	if s.offset < 0 {
		return -s.offset
	}
	return s.offset
}

func (s *testStrip) container() Element { return stripContainer{s} }
func (s *testStrip) content() Element { return stripContent{s} }
func (s *testStrip) item(name string) Element {
	return stripItemElem{s: s, name: name}
}

type stripContainer struct{ s *testStrip }

func (e stripContainer) Size(Axis) int { return e.s.viewport }
func (e stripContainer) ScrollSize(Axis) int { return e.s.viewport }
func (e stripContainer) ChildSizes(Axis) []int { return nil }
func (e stripContainer) ScrollPos(Axis) int { return 0 }
func (e stripContainer) SetScrollPos(Axis, int) {}
func (e stripContainer) Bounds(Axis) (int, int) { return 0, e.s.viewport }

type stripContent struct{ s *testStrip }

func (e stripContent) Size(Axis) int { return e.s.total() }
func (e stripContent) ScrollSize(Axis) int { return e.s.total() }

func (e stripContent) ChildSizes(Axis) []int {
	sizes := make([]int, len(e.s.items))
	for i, it := range e.s.items {
		sizes[i] = it.extent
	}
	return sizes
}

func (e stripContent) ScrollPos(Axis) int { return e.s.offset }

func (e stripContent) SetScrollPos(_ Axis, pos int) {
	neg := pos < 0
	mag := pos
	if neg {
		mag = -mag
	}
	if m := e.s.maxOffset(); mag > m {
		mag = m
	}
	if neg {
		mag = -mag
	}
	e.s.offset = mag
}

func (e stripContent) Bounds(Axis) (int, int) {
	start := -e.s.magnitude()
	return start, start + e.s.total()
}

type stripItemElem struct {
	s    *testStrip
	name string
}

func (e stripItemElem) startExtent() (int, int) {
	start := 0
	for _, it := range e.s.items {
		if it.name == e.name {
			return start, it.extent
		}
		start += it.extent
	}
	return 0, 0
}

func (e stripItemElem) Size(Axis) int {
	_, extent := e.startExtent()
	return extent
}

func (e stripItemElem) ScrollSize(Axis) int { return e.Size(Horizontal) }
func (e stripItemElem) ChildSizes(Axis) []int { return nil }
func (e stripItemElem) ScrollPos(Axis) int { return 0 }
func (e stripItemElem) SetScrollPos(Axis, int) {}

func (e stripItemElem) Bounds(Axis) (int, int) {
	start, extent := e.startExtent()
	abs := start - e.s.magnitude()
	return abs, abs + extent
}

// fakeLoc is a scriptable LocationSource.
type fakeLoc struct {
	loc      router.Location
	watchers []func()
}

func newFakeLoc(to string) *fakeLoc {
	return &fakeLoc{loc: router.ParseLocation(to)}
}

func (f *fakeLoc) Current() router.Location { return f.loc }

func (f *fakeLoc) Watch(fn func()) func() {
	f.watchers = append(f.watchers, fn)
	i := len(f.watchers) - 1
	return func() { f.watchers[i] = nil }
}

func (f *fakeLoc) set(to string) {
	f.loc = router.ParseLocation(to)
	for _, fn := range f.watchers {
		if fn != nil {
			fn()
		}
	}
}

func (f *fakeLoc) watcherCount() int {
	n := 0
	for _, fn := range f.watchers {
		if fn != nil {
			n++
		}
	}
	return n
}

// fakeIndicator records the IndicatorTarget calls made against it.
type fakeIndicator struct {
	rect        Rect
	cleared     int
	applied     []Transform
	transitions []time.Duration
}

func (f *fakeIndicator) Bounds() Rect { return f.rect }

func (f *fakeIndicator) Apply(t Transform) { f.applied = append(f.applied, t) }

func (f *fakeIndicator) Transition(d time.Duration) {
	f.transitions = append(f.transitions, d)
}

func (f *fakeIndicator) Clear() { f.cleared++ }

// target builds a resolved route target the way the router would.
func target(table *router.Table, to string) *router.Target {
	t, ok := table.Resolve(to)
	if !ok {
		return nil
	}
	return &t
}
