package tabs

// ArrowState reports which scroll arrows are usable. Left and Right read as
// up and down in vertical mode.
type ArrowState struct {
	Left  bool
	Right bool
}

// resolveArrows computes arrow visibility from the current scroll offset and
// the last probed extents. Under the right-to-left correction the two sides
// swap which boundary they are computed from: "left" then means more content
// toward the visual end and "right" means a non-zero offset.
func resolveArrows(offset int, ext Extents, rtlCorrected bool) ArrowState {
	scrolled := offset > 0
	more := offset+ext.Container < ext.Scroll
	if rtlCorrected {
		return ArrowState{Left: more, Right: scrolled}
	}
	return ArrowState{Left: scrolled, Right: more}
}
