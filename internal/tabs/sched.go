package tabs

import "time"

// Scheduler defers engine work. Implementations must deliver every callback
// on the goroutine that drives the controller; the engine holds no locks.
type Scheduler interface {
	// NextTick defers fn to the next logical tick. Callbacks registered
	// within the same tick run once each, in registration order.
	NextTick(fn func())
	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) Handle
	// Interval runs fn repeatedly every d until stopped.
	Interval(d time.Duration, fn func()) Handle
}

// Handle cancels a scheduled callback. Stop is idempotent.
type Handle interface {
	Stop()
}

// slot holds at most one outstanding handle. Arming it cancels the previous
// occupant, so no two timers from the same slot ever run concurrently.
type slot struct {
	h Handle
}

func (s *slot) arm(h Handle) {
	s.cancel()
	s.h = h
}

func (s *slot) cancel() {
	if s.h != nil {
		s.h.Stop()
		s.h = nil
	}
}
