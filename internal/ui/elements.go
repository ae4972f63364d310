package ui

import (
	"time"

	"github.com/Sh1nto/quasar/internal/tabs"
)

// stripState is the shared geometry the strip's elements read and mutate.
// Extents are terminal cells; the strip is the cell-based analogue of a
// scrollable flexbox row (or column, in vertical mode).
type stripState struct {
	axis     tabs.Axis
	originX  int
	originY  int
	viewport int // container extent along the axis
	offset   int // scroll offset; sign preserved for quirky engines
	items    []stripItem

	sched tabs.Scheduler
	ind   indicatorAnim
}

type stripItem struct {
	name   string
	extent int
}

func (s *stripState) origin() int {
	if s.axis == tabs.Vertical {
		return s.originY
	}
	return s.originX
}

func (s *stripState) total() int {
	sum := 0
	for _, it := range s.items {
		sum += it.extent
	}
	return sum
}

func (s *stripState) maxOffset() int {
	m := s.total() - s.viewport
	if m < 0 {
		m = 0
	}
	return m
}

func (s *stripState) offsetMagnitude() int {
	if s.offset < 0 {
		return -s.offset
	}
	return s.offset
}

// startOf returns the cumulative extent before the named item, and its own
// extent. ok is false for unknown names.
func (s *stripState) startOf(name string) (start, extent int, ok bool) {
	for _, it := range s.items {
		if it.name == name {
			return start, it.extent, true
		}
		start += it.extent
	}
	return 0, 0, false
}

// containerElem is the fixed viewport of the strip.
type containerElem struct {
	s *stripState
}

func (e containerElem) Size(tabs.Axis) int { return e.s.viewport }
func (e containerElem) ScrollSize(tabs.Axis) int { return e.s.viewport }
func (e containerElem) ChildSizes(tabs.Axis) []int { return nil }
func (e containerElem) ScrollPos(tabs.Axis) int { return 0 }
func (e containerElem) SetScrollPos(tabs.Axis, int) {}
func (e containerElem) Bounds(tabs.Axis) (int, int) {
	o := e.s.origin()
	return o, o + e.s.viewport
}

// contentElem is the scrollable run of tab items inside the container.
type contentElem struct {
	s *stripState
}

func (e contentElem) Size(tabs.Axis) int { return e.s.total() }
func (e contentElem) ScrollSize(tabs.Axis) int { return e.s.total() }

func (e contentElem) ChildSizes(tabs.Axis) []int {
	sizes := make([]int, len(e.s.items))
	for i, it := range e.s.items {
		sizes[i] = it.extent
	}
	return sizes
}

func (e contentElem) ScrollPos(tabs.Axis) int { return e.s.offset }

// SetScrollPos clamps the offset magnitude to the scrollable range,
// preserving sign so the engine's saturation detection works in both
// storage conventions.
func (e contentElem) SetScrollPos(_ tabs.Axis, pos int) {
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

func (e contentElem) Bounds(tabs.Axis) (int, int) {
	start := e.s.origin() - e.s.offsetMagnitude()
	return start, start + e.s.total()
}

// itemElem is one tab item inside the content run.
type itemElem struct {
	s    *stripState
	name string
}

func (e itemElem) Size(tabs.Axis) int {
	_, extent, _ := e.s.startOf(e.name)
	return extent
}

func (e itemElem) ScrollSize(tabs.Axis) int { return e.Size(tabs.Horizontal) }
func (e itemElem) ChildSizes(tabs.Axis) []int { return nil }
func (e itemElem) ScrollPos(tabs.Axis) int { return 0 }
func (e itemElem) SetScrollPos(tabs.Axis, int) {}
func (e itemElem) Bounds(tabs.Axis) (int, int) {
	start, extent, ok := e.s.startOf(e.name)
	if !ok {
		return 0, 0
	}
	abs := e.s.origin() - e.s.offsetMagnitude() + start
	return abs, abs + extent
}

// indicatorAnim tracks the cosmetic slide of the selection bar.
type indicatorAnim struct {
	name     string
	from     tabs.Transform
	active   bool
	progress float64 // 0 = fully transformed, 1 = natural position
	timer    tabs.Handle
}

func (a *indicatorAnim) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// indicatorElem is the rendering-side handle for one tab's indicator bar.
type indicatorElem struct {
	s    *stripState
	name string
}

func (e indicatorElem) Bounds() tabs.Rect {
	start, extent, ok := e.s.startOf(e.name)
	if !ok {
		return tabs.Rect{}
	}
	if e.s.axis == tabs.Vertical {
		return tabs.Rect{
			X: e.s.originX,
			Y: e.s.originY - e.s.offsetMagnitude() + start,
			W: 1,
			H: extent,
		}
	}
	return tabs.Rect{
		X: e.s.originX - e.s.offsetMagnitude() + start,
		Y: e.s.originY + 1,
		W: extent,
		H: 1,
	}
}

func (e indicatorElem) Apply(t tabs.Transform) {
	e.s.ind.stopTimer()
	e.s.ind = indicatorAnim{name: e.name, from: t, active: true, progress: 0}
}

func (e indicatorElem) Transition(d time.Duration) {
	if e.s.ind.name != e.name || !e.s.ind.active {
		return
	}
	const frame = 25 * time.Millisecond
	steps := int(d / frame)
	if steps < 1 {
		steps = 1
	}
	step := 1.0 / float64(steps)

	e.s.ind.stopTimer()
	e.s.ind.timer = e.s.sched.Interval(frame, func() {
		e.s.ind.progress += step
		if e.s.ind.progress >= 1 {
			e.s.ind.stopTimer()
			e.s.ind = indicatorAnim{}
		}
	})
}

func (e indicatorElem) Clear() {
	e.s.ind.stopTimer()
	e.s.ind = indicatorAnim{}
}
