package tabs

import "time"

const (
	indicatorDelay    = 70 * time.Millisecond
	indicatorDuration = 250 * time.Millisecond
)

// Rect is an absolute bounding box in cells.
type Rect struct {
	X, Y, W, H int
}

// Transform places an indicator over another indicator's prior box.
type Transform struct {
	TranslateX int
	TranslateY int
	ScaleX     float64
	ScaleY     float64
}

// IndicatorTarget is the rendering-side handle for one tab's indicator bar.
type IndicatorTarget interface {
	Bounds() Rect
	// Apply sets the transform instantly, with no transition.
	Apply(t Transform)
	// Transition eases the indicator back to its natural box over d.
	Transition(d time.Duration)
	// Clear drops any transform and transition styling instantly.
	Clear()
}

// indicator slides the selection bar from the previously active tab onto the
// newly active one. At most one pending transition exists at a time.
type indicator struct {
	sched Scheduler
	delay slot
}

// animate snaps to's indicator onto from's prior box and, after a short
// settle delay, eases it back to its own position. Skipped entirely when
// either side is unknown (initial selection, deselection to nothing).
func (ind *indicator) animate(from, to IndicatorTarget) {
	if from == nil || to == nil {
		return
	}
	fb := from.Bounds()
	tb := to.Bounds()

	to.Clear()
	t := Transform{
		TranslateX: fb.X - tb.X,
		TranslateY: fb.Y - tb.Y,
		ScaleX:     1,
		ScaleY:     1,
	}
	if tb.W != 0 {
		t.ScaleX = float64(fb.W) / float64(tb.W)
	}
	if tb.H != 0 {
		t.ScaleY = float64(fb.H) / float64(tb.H)
	}
	to.Apply(t)

	ind.delay.arm(ind.sched.AfterFunc(indicatorDelay, func() {
		to.Transition(indicatorDuration)
	}))
}

func (ind *indicator) stop() {
	ind.delay.cancel()
}
