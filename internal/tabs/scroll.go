package tabs

import "time"

const (
	scrollStep     = 5
	scrollInterval = 5 * time.Millisecond

	// scrollEndSentinel stands in for "as far as it goes"; the step loop
	// detects saturation when the element stops moving.
	scrollEndSentinel = int(1) << 30
)

// scroller drives the strip's scroll position: instant reveal of a single
// element and an interruptible fixed-step animation toward a target.
type scroller struct {
	container Element
	content   Element
	axis      Axis
	rtlFix    bool // RTL layout on an engine storing RTL offsets as positive
	sched     Scheduler

	// Position access is resolved once per configuration; the closures run
	// on every animation step.
	pos    func() int
	setPos func(int)

	anim   slot
	onStep func() // arrow recompute hook
}

func newScroller(container, content Element, axis Axis, rtlFix bool, sched Scheduler, onStep func()) *scroller {
	s := &scroller{
		container: container,
		content:   content,
		axis:      axis,
		rtlFix:    rtlFix,
		sched:     sched,
		onStep:    onStep,
	}
	if rtlFix {
		s.pos = func() int {
			v := content.ScrollPos(axis)
			if v < 0 {
				v = -v
			}
			return v
		}
		s.setPos = func(v int) { content.SetScrollPos(axis, -v) }
	} else {
		s.pos = func() int { return content.ScrollPos(axis) }
		s.setPos = func(v int) { content.SetScrollPos(axis, v) }
	}
	return s
}

// intoView shifts the scroll position the minimal amount needed to fully
// reveal el; a no-op when el is already visible. Reports whether it moved.
func (s *scroller) intoView(el Element) bool {
	if el == nil || s.container == nil {
		return false
	}
	cStart, cEnd := s.container.Bounds(s.axis)
	eStart, eEnd := el.Bounds(s.axis)

	moved := false
	if d := eStart - cStart; d < 0 {
		s.setPos(s.pos() + d)
		moved = true
	} else if d := eEnd - cEnd; d > 0 {
		s.setPos(s.pos() + d)
		moved = true
	}
	if moved && s.onStep != nil {
		s.onStep()
	}
	return moved
}

// animateTo cancels any in-flight animation and walks the offset toward
// target in fixed steps, snapping exactly onto it on arrival or overshoot.
func (s *scroller) animateTo(target int) {
	s.anim.cancel()
	if s.content == nil {
		return
	}
	if target < 0 {
		target = 0
	}
	s.anim.arm(s.sched.Interval(scrollInterval, func() { s.step(target) }))
}

func (s *scroller) step(target int) {
	pos := s.pos()
	next := pos
	if pos < target {
		next = pos + scrollStep
		if next > target {
			next = target
		}
	} else if pos > target {
		next = pos - scrollStep
		if next < target {
			next = target
		}
		if next < 0 {
			next = 0
		}
	}
	s.setPos(next)
	got := s.pos()
	if s.onStep != nil {
		s.onStep()
	}
	// Done on arrival, or when the element saturates short of the target.
	if got == target || got == pos {
		s.anim.cancel()
	}
}

func (s *scroller) toStart() {
	if s.rtlFix {
		s.animateTo(scrollEndSentinel)
	} else {
		s.animateTo(0)
	}
}

func (s *scroller) toEnd() {
	if s.rtlFix {
		s.animateTo(0)
	} else {
		s.animateTo(scrollEndSentinel)
	}
}

// stop cancels the animation; safe to call at any time.
func (s *scroller) stop() {
	s.anim.cancel()
}

func (s *scroller) animating() bool {
	return s.anim.h != nil
}
