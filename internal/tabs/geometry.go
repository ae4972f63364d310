// Package tabs implements the tab strip coordination engine: registration,
// route matching, scroll and indicator animation, and arrow visibility.
// Rendering stays behind the Element and IndicatorTarget boundaries.
package tabs

// Axis selects the direction the strip lays out and scrolls along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Element is the rendering-side handle for anything the engine measures or
// scrolls. All extents and positions are in terminal cells.
type Element interface {
	// Size reports the visible extent along the axis.
	Size(axis Axis) int
	// ScrollSize reports the full content extent along the axis.
	ScrollSize(axis Axis) int
	// ChildSizes reports the extent of each direct child along the axis.
	ChildSizes(axis Axis) []int
	// ScrollPos and SetScrollPos access the native scroll position.
	ScrollPos(axis Axis) int
	SetScrollPos(axis Axis, pos int)
	// Bounds reports the element's absolute start and end along the axis.
	Bounds(axis Axis) (start, end int)
}

// Extents is one geometry probe result.
type Extents struct {
	Container int // visible extent of the container
	Content   int // max of native scroll extent and summed child extents
	Scroll    int // native scroll extent
}

// Measure probes the container and content extents along the axis. The
// content extent takes the larger of the native scroll extent and the sum of
// the direct child extents, which guards against underreported scroll sizes.
// A missing reference returns ok=false so callers keep their previous state.
func Measure(container, content Element, axis Axis) (Extents, bool) {
	if container == nil || content == nil {
		return Extents{}, false
	}
	ext := Extents{
		Container: container.Size(axis),
		Scroll:    content.ScrollSize(axis),
	}
	sum := 0
	for _, s := range content.ChildSizes(axis) {
		sum += s
	}
	ext.Content = ext.Scroll
	if sum > ext.Content {
		ext.Content = sum
	}
	return ext, true
}
