package tabs

import "time"

const (
	routeDebounceDelay = 50 * time.Millisecond
	blurDebounceDelay  = 30 * time.Millisecond
)

// Align controls how tabs distribute along the strip.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// Config carries the strip's behavioral configuration and visual
// pass-throughs. It is fixed for the controller's lifetime.
type Config struct {
	Axis       Axis
	Align      Align
	Breakpoint int // container extent below which alignment forces to justify

	// Arrow policy.
	Desktop       bool // host platform is desktop-like
	MobileArrows  bool // show arrows even off desktop
	OutsideArrows bool

	// Text direction.
	RTL                bool
	ReverseScrollQuirk bool // engine stores RTL scroll offsets as positive

	// Visual pass-throughs, consumed by the host view.
	ActiveColor    string
	ActiveBgColor  string
	IndicatorColor string
	Dense          bool
	Shrink         bool
	Stretch        bool
}

// rtlFix reports whether scroll positions need the sign/abs correction.
// Resolved once; the scroller bakes it into its position closures.
func (c Config) rtlFix() bool {
	return c.RTL && c.ReverseScrollQuirk
}

// ScrollState is the derived scroll/arrow state, consistent with the last
// geometry probe.
type ScrollState struct {
	Scrollable bool
	Justify    bool
	LeftArrow  bool
	RightArrow bool
}

// NavKey is a keyboard navigation action.
type NavKey int

const (
	NavHome NavKey = iota
	NavEnd
	NavPrev
	NavNext
)

// Controller owns the active selection and mediates between the registry,
// the route resolver, the animators and the arrow resolver. All methods must
// run on a single goroutine; the scheduler delivers callbacks there too.
type Controller struct {
	cfg   Config
	sched Scheduler
	loc   LocationSource // nil when no router is attached
	reg   *Registry

	container Element
	content   Element
	scr       *scroller
	ind       indicator

	current  string // active selection; "" means none
	focused  string
	hasFocus bool

	onChange func(name string) // outward model notification

	ext    Extents
	scroll ScrollState

	// Deferred work. A single per-tick flush runs the dirty operations in a
	// fixed order, so a geometry recheck always lands before any route
	// resolution triggered by the same event.
	tickPending  bool
	geomDirty    bool
	routeDirty   bool
	revealDirty  bool
	routeBounce  slot
	blurBounce   slot
	watchStop    func()
	watchRestore bool
	lastLocKey   string

	suppressOwner string // owner tag of the active route-resolve suppression
}

// NewController creates a controller. loc may be nil for strips without
// route tabs; onChange may be nil when no external listener exists.
func NewController(cfg Config, sched Scheduler, loc LocationSource, onChange func(string)) *Controller {
	c := &Controller{
		cfg:      cfg,
		sched:    sched,
		loc:      loc,
		onChange: onChange,
	}
	c.ind = indicator{sched: sched}
	c.reg = NewRegistry(func(int) { c.requestRecalc() })
	return c
}

// AttachElements wires the strip's container and content elements. Position
// accessors are resolved once here and reused across animation steps.
func (c *Controller) AttachElements(container, content Element) {
	c.container = container
	c.content = content
	c.scr = newScroller(container, content, c.cfg.Axis, c.cfg.rtlFix(), c.sched, c.refreshArrows)
	c.requestRecalc()
}

// Config returns the controller's configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Registry exposes the tab registry for iteration by the host view.
func (c *Controller) Registry() *Registry {
	return c.reg
}

// Current returns the active selection name; "" means no selection.
func (c *Controller) Current() string {
	return c.current
}

// HasActiveTab reports whether a registered tab matches the active
// selection.
func (c *Controller) HasActiveTab() bool {
	return c.reg.Lookup(c.current) != nil
}

// ScrollState returns the derived scroll and arrow state.
func (c *Controller) ScrollState() ScrollState {
	return c.scroll
}

// Focused returns the keyboard-focused tab name; "" means none.
func (c *Controller) Focused() string {
	return c.focused
}

// HasFocus reports whether the strip currently tracks keyboard focus.
func (c *Controller) HasFocus() bool {
	return c.hasFocus
}

// ModelUpdate describes one active-selection transition.
type ModelUpdate struct {
	Name       string
	SetCurrent bool // force internal state even when emission is suppressed
	SkipEmit   bool // suppress the outward change notification
}

// UpdateModel is the only mutation path for the active selection. A name
// transition animates the indicator between the old and new tabs when both
// are resolvable and reveals the new tab; with an external listener attached,
// nothing moves until the listener accepts the value and it comes back
// through SetModel. Emits unless suppressed.
func (c *Controller) UpdateModel(u ModelUpdate) {
	if c.current == u.Name {
		return
	}

	if u.SetCurrent || c.onChange == nil {
		from := c.reg.Lookup(c.current)
		to := c.reg.Lookup(u.Name)
		c.current = u.Name

		if from != nil && to != nil {
			c.ind.animate(from.Indicator, to.Indicator)
		}
		if to != nil && c.scr != nil {
			c.scr.intoView(to.Root)
		}
	}

	if !u.SkipEmit && c.onChange != nil {
		c.onChange(u.Name)
	}
}

// SetModel applies an external model value: state is forced, nothing is
// echoed back out.
func (c *Controller) SetModel(name string) {
	c.UpdateModel(ModelUpdate{Name: name, SetCurrent: true, SkipEmit: true})
}

// Select applies a user interaction on a tab. Internal state only moves
// directly when no external listener is attached; otherwise the listener is
// expected to feed the value back through SetModel.
func (c *Controller) Select(name string) {
	c.UpdateModel(ModelUpdate{Name: name, SetCurrent: c.onChange == nil})
}

// RegisterTab adds a tab and returns its registry handle. Route-capable
// tabs start the location watch; one already reporting itself active
// triggers resolution right after the pending geometry recheck.
func (c *Controller) RegisterTab(d *Descriptor) string {
	id := c.reg.Register(d) // count change schedules the geometry recheck

	if rb := d.Route; rb != nil {
		c.ensureWatch()
		if rb.Target != nil && (rb.Active || rb.ExactActive) {
			c.requestRouteResolve()
		}
	} else if c.scroll.Scrollable {
		// Let layout settle one tick, then reveal the active tab in case
		// this registration was it.
		c.revealDirty = true
		c.scheduleFlush()
	}
	return id
}

// UnregisterTab removes a tab by handle; unknown handles are a no-op.
// Removing the last route tab stops the location watch; removing any route
// tab re-resolves, since the candidate set changed.
func (c *Controller) UnregisterTab(id string) {
	d := c.reg.Unregister(id)
	if d == nil || d.Route == nil {
		return
	}
	if c.reg.RouteCount() == 0 {
		c.stopWatch()
	}
	c.requestRouteResolve()
}

// SuppressRouteResolve disables automatic route resolution until the same
// owner resumes it. Competing owners do not stack; the first wins.
func (c *Controller) SuppressRouteResolve(owner string) {
	if c.suppressOwner == "" && owner != "" {
		c.suppressOwner = owner
	}
}

// ResumeRouteResolve clears a suppression held by owner.
func (c *Controller) ResumeRouteResolve(owner string) {
	if c.suppressOwner == owner {
		c.suppressOwner = ""
	}
}

// OnResize is the resize-notifier entry point; it batches a geometry
// recheck into the next tick.
func (c *Controller) OnResize() {
	c.requestRecalc()
}

// ScrollToStart animates to the logical start of the strip.
func (c *Controller) ScrollToStart() {
	if c.scr != nil {
		c.scr.toStart()
	}
}

// ScrollToEnd animates to the logical end of the strip.
func (c *Controller) ScrollToEnd() {
	if c.scr != nil {
		c.scr.toEnd()
	}
}

// ScrollTo animates to an absolute offset.
func (c *Controller) ScrollTo(offset int) {
	if c.scr != nil {
		c.scr.animateTo(offset)
	}
}

// StopScroll cancels any in-flight scroll animation.
func (c *Controller) StopScroll() {
	if c.scr != nil {
		c.scr.stop()
	}
}

// RevealTab scrolls the named tab fully into view, instantly.
func (c *Controller) RevealTab(name string) {
	if d := c.reg.Lookup(name); d != nil && c.scr != nil {
		c.scr.intoView(d.Root)
	}
}

// Navigate handles Home/End/previous/next keyboard navigation: it moves
// focus, reveals the focused tab, and reports whether the key was handled.
// Previous/next wrap around and reverse under right-to-left layout.
func (c *Controller) Navigate(k NavKey) bool {
	items := c.reg.Tabs()
	if len(items) == 0 {
		return false
	}

	idx := c.focusIndex(items)
	switch k {
	case NavHome:
		idx = 0
	case NavEnd:
		idx = len(items) - 1
	case NavPrev, NavNext:
		delta := 1
		if k == NavPrev {
			delta = -1
		}
		if c.cfg.RTL && c.cfg.Axis == Horizontal {
			delta = -delta
		}
		idx = (idx + delta + len(items)) % len(items)
	}

	c.FocusTab(items[idx].Name)
	return true
}

// focusIndex returns the index navigation starts from: the focused tab,
// else the active selection, else the first tab.
func (c *Controller) focusIndex(items []*Descriptor) int {
	for i, d := range items {
		if c.focused != "" && d.Name == c.focused {
			return i
		}
	}
	for i, d := range items {
		if c.current != "" && d.Name == c.current {
			return i
		}
	}
	return 0
}

// FocusTab records keyboard focus on a tab and keeps it scrolled into view.
// Any pending blur is cancelled, so focus hopping between a tab's internal
// elements does not flicker.
func (c *Controller) FocusTab(name string) {
	c.blurBounce.cancel()
	c.hasFocus = true
	c.focused = name
	if d := c.reg.Lookup(name); d != nil && c.scr != nil {
		c.scr.intoView(d.Root)
	}
}

// BlurTab schedules focus-tracking to clear after a short debounce.
func (c *Controller) BlurTab() {
	c.blurBounce.arm(c.sched.AfterFunc(blurDebounceDelay, func() {
		c.hasFocus = false
		c.focused = ""
	}))
}

// Deactivate synchronously cancels every outstanding animation, debounce
// and watch. The controller can be re-activated later.
func (c *Controller) Deactivate() {
	if c.scr != nil {
		c.scr.stop()
	}
	c.ind.stop()
	c.routeBounce.cancel()
	c.blurBounce.cancel()
	c.watchRestore = c.watchStop != nil
	c.stopWatch()
}

// Activate restores a deactivated controller: the location watch comes back
// only if it was running before, and one geometry recheck is forced.
func (c *Controller) Activate() {
	if c.watchRestore {
		c.ensureWatch()
	}
	c.requestRecalc()
}

// --- deferred work -------------------------------------------------------

func (c *Controller) requestRecalc() {
	c.geomDirty = true
	c.scheduleFlush()
}

func (c *Controller) requestRouteResolve() {
	c.routeDirty = true
	c.scheduleFlush()
}

func (c *Controller) scheduleFlush() {
	if c.tickPending {
		return
	}
	c.tickPending = true
	c.sched.NextTick(c.flush)
}

// flush runs the batched work for this tick. Order matters: geometry before
// route resolution, reveal last.
func (c *Controller) flush() {
	c.tickPending = false
	if c.geomDirty {
		c.geomDirty = false
		c.recalcGeometry()
	}
	if c.routeDirty {
		c.routeDirty = false
		c.resolveRouteNow()
	}
	if c.revealDirty {
		c.revealDirty = false
		if d := c.reg.Lookup(c.current); d != nil && c.scr != nil {
			c.scr.intoView(d.Root)
		}
	}
}

func (c *Controller) recalcGeometry() {
	ext, ok := Measure(c.container, c.content, c.cfg.Axis)
	if !ok {
		return // references not live yet; previous state retained
	}
	c.ext = ext
	c.scroll.Scrollable = ext.Content > ext.Container
	c.scroll.Justify = c.cfg.Align == AlignJustify ||
		(c.cfg.Breakpoint > 0 && ext.Container < c.cfg.Breakpoint)
	c.refreshArrows()
}

func (c *Controller) arrowsEnabled() bool {
	return c.cfg.Desktop || c.cfg.MobileArrows
}

func (c *Controller) refreshArrows() {
	if !c.arrowsEnabled() || c.scr == nil {
		c.scroll.LeftArrow = false
		c.scroll.RightArrow = false
		return
	}
	st := resolveArrows(c.scr.pos(), c.ext, c.cfg.rtlFix())
	c.scroll.LeftArrow = st.Left
	c.scroll.RightArrow = st.Right
}

// --- route resolution ----------------------------------------------------

func (c *Controller) ensureWatch() {
	if c.loc == nil || c.watchStop != nil {
		return
	}
	c.lastLocKey = c.loc.Current().String()
	c.watchStop = c.loc.Watch(c.onLocationChanged)
}

func (c *Controller) stopWatch() {
	if c.watchStop != nil {
		c.watchStop()
		c.watchStop = nil
	}
}

func (c *Controller) onLocationChanged() {
	key := c.loc.Current().String()
	if key == c.lastLocKey {
		return
	}
	c.lastLocKey = key
	c.routeBounce.arm(c.sched.AfterFunc(routeDebounceDelay, c.resolveRouteNow))
}

// resolveRouteNow applies the route-match algorithm to the current
// candidate set. With no winner and a manually selected non-route tab, the
// selection is deliberately left alone.
func (c *Controller) resolveRouteNow() {
	if c.suppressOwner != "" || c.loc == nil {
		return
	}
	winner, found := pickRouteTab(c.reg.Tabs(), c.loc.Current())
	if !found && c.reg.HasPlain(c.current) {
		return
	}
	c.UpdateModel(ModelUpdate{Name: winner, SetCurrent: true})
}
