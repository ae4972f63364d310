package tabs

import (
	"testing"
	"time"

	"github.com/Sh1nto/quasar/internal/router"
)

type ctlFixture struct {
	clock *fakeClock
	strip *testStrip
	loc   *fakeLoc
	table *router.Table
	ctl   *Controller

	changes []string
}

func newCtlFixture(t *testing.T, cfg Config, onChange bool) *ctlFixture {
	t.Helper()
	f := &ctlFixture{
		clock: &fakeClock{},
		strip: threeTabs(100),
		loc:   newFakeLoc("/"),
		table: demoTable(),
	}
	var fn func(string)
	if onChange {
		fn = func(name string) {
			f.changes = append(f.changes, name)
			f.ctl.SetModel(name)
		}
	}
	f.ctl = NewController(cfg, f.clock, f.loc, fn)
	f.ctl.AttachElements(f.strip.container(), f.strip.content())
	f.clock.flushTicks()
	return f
}

// addPlain registers a plain tab backed by the strip fixture.
func (f *ctlFixture) addPlain(name string) string {
	id := f.ctl.RegisterTab(&Descriptor{
		Name:      name,
		Root:      f.strip.item(name),
		Indicator: &fakeIndicator{},
	})
	f.clock.flushTicks()
	return id
}

// addPlainInd is addPlain keeping a handle on the tab's indicator recorder.
func (f *ctlFixture) addPlainInd(name string) *fakeIndicator {
	ind := &fakeIndicator{}
	f.ctl.RegisterTab(&Descriptor{
		Name:      name,
		Root:      f.strip.item(name),
		Indicator: ind,
	})
	f.clock.flushTicks()
	return ind
}

// addRoute registers a route tab whose binding is resolved against the
// fixture's current location, the way the host view would.
func (f *ctlFixture) addRoute(name, to string, exact bool) string {
	d := routeTab(name, to, f.table, f.loc.Current(), exact)
	d.Root = f.strip.item(name)
	d.Indicator = &fakeIndicator{}
	id := f.ctl.RegisterTab(d)
	f.clock.flushTicks()
	return id
}

// refreshBindings re-resolves every binding against the fixture's current
// location, the way the host view's watcher does.
func (f *ctlFixture) refreshBindings() {
	loc := f.loc.Current()
	for _, d := range f.ctl.Registry().Tabs() {
		rb := d.Route
		if rb == nil || rb.Target == nil {
			continue
		}
		rb.Active = router.IsActive(*rb.Target, loc)
		rb.ExactActive = router.IsExactActive(*rb.Target, loc)
	}
}

// navigate moves the fixture location, refreshes every binding, and lets the
// debounce elapse.
func (f *ctlFixture) navigate(to string) {
	f.loc.set(to)
	f.refreshBindings()
	f.clock.advance(routeDebounceDelay)
}

func TestSelectRoundTripsThroughListener(t *testing.T) {
	f := newCtlFixture(t, Config{}, true)
	f.addPlainInd("a")
	bInd := f.addPlainInd("b")
	f.ctl.SetModel("a")

	f.ctl.Select("b")
	if f.ctl.Current() != "b" {
		t.Errorf("Current = %q, want b after listener round-trip", f.ctl.Current())
	}
	if len(f.changes) != 1 || f.changes[0] != "b" {
		t.Errorf("changes = %v, want one emission of b", f.changes)
	}

	// The animation belongs to the name transition: one Apply from the
	// SetModel leg, not a second from the Select leg.
	if len(bInd.applied) != 1 || bInd.cleared != 1 {
		t.Errorf("applied=%d cleared=%d, want exactly one animation", len(bInd.applied), bInd.cleared)
	}

	// Re-selecting the active tab is a no-op.
	f.ctl.Select("b")
	if len(f.changes) != 1 {
		t.Errorf("changes = %v, re-selection must not emit", f.changes)
	}
}

func TestSelectDeclinedByListenerLeavesViewUntouched(t *testing.T) {
	clock := &fakeClock{}
	strip := threeTabs(100)
	var offered []string
	// A listener that records the value but never feeds it back.
	ctl := NewController(Config{}, clock, nil, func(name string) { offered = append(offered, name) })
	ctl.AttachElements(strip.container(), strip.content())

	aInd := &fakeIndicator{rect: Rect{W: 100, H: 1}}
	cInd := &fakeIndicator{rect: Rect{X: 200, W: 100, H: 1}}
	ctl.RegisterTab(&Descriptor{Name: "a", Root: strip.item("a"), Indicator: aInd})
	ctl.RegisterTab(&Descriptor{Name: "b", Root: strip.item("b"), Indicator: &fakeIndicator{}})
	ctl.RegisterTab(&Descriptor{Name: "c", Root: strip.item("c"), Indicator: cInd})
	clock.flushTicks()
	ctl.SetModel("a")

	ctl.Select("c")
	if ctl.Current() != "a" {
		t.Fatalf("Current = %q, want a: listener declined the change", ctl.Current())
	}
	if len(offered) != 1 || offered[0] != "c" {
		t.Fatalf("offered = %v, want one emission of c", offered)
	}
	if len(cInd.applied) != 0 || cInd.cleared != 0 {
		t.Errorf("indicator moved without a selection change: applied=%d cleared=%d", len(cInd.applied), cInd.cleared)
	}
	if strip.offset != 0 {
		t.Errorf("offset = %d, want 0: declined selection must not scroll", strip.offset)
	}
}

func TestSelectWithoutListenerSetsCurrent(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")

	f.ctl.Select("a")
	if f.ctl.Current() != "a" {
		t.Errorf("Current = %q, want a", f.ctl.Current())
	}
}

func TestHasActiveTab(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	id := f.addPlain("a")

	if f.ctl.HasActiveTab() {
		t.Error("no selection yet, HasActiveTab must be false")
	}
	f.ctl.Select("a")
	if !f.ctl.HasActiveTab() {
		t.Error("selected registered tab, HasActiveTab must be true")
	}
	f.ctl.UnregisterTab(id)
	if f.ctl.HasActiveTab() {
		t.Error("selection survives unregistration but no longer counts as active")
	}
}

func TestGeometryRecalcOnRegistration(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	st := f.ctl.ScrollState()
	if !st.Scrollable {
		t.Error("content 300 in container 100 must be scrollable")
	}
}

func TestJustifyBelowBreakpoint(t *testing.T) {
	f := newCtlFixture(t, Config{Breakpoint: 150}, false)
	f.addPlain("a")

	if !f.ctl.ScrollState().Justify {
		t.Error("container 100 below breakpoint 150 must force justify")
	}
}

func TestArrowsFollowScrollPosition(t *testing.T) {
	f := newCtlFixture(t, Config{Desktop: true}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	st := f.ctl.ScrollState()
	if st.LeftArrow || !st.RightArrow {
		t.Fatalf("at start want only right arrow, got %+v", st)
	}

	f.ctl.ScrollToEnd()
	f.clock.advance(time.Second)
	st = f.ctl.ScrollState()
	if !st.LeftArrow || st.RightArrow {
		t.Errorf("at end want only left arrow, got %+v", st)
	}
}

func TestArrowsDisabledOffDesktop(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	st := f.ctl.ScrollState()
	if st.LeftArrow || st.RightArrow {
		t.Errorf("arrows disabled off desktop, got %+v", st)
	}
}

func TestNavigateKeys(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	if !f.ctl.Navigate(NavHome) {
		t.Fatal("Navigate must report handled with tabs registered")
	}
	if f.ctl.Focused() != "a" {
		t.Errorf("Focused = %q after Home, want a", f.ctl.Focused())
	}

	f.ctl.Navigate(NavEnd)
	if f.ctl.Focused() != "c" {
		t.Errorf("Focused = %q after End, want c", f.ctl.Focused())
	}

	f.ctl.Navigate(NavNext) // wraps
	if f.ctl.Focused() != "a" {
		t.Errorf("Focused = %q after Next from last, want wrap to a", f.ctl.Focused())
	}
	f.ctl.Navigate(NavPrev)
	if f.ctl.Focused() != "c" {
		t.Errorf("Focused = %q after Prev from first, want wrap to c", f.ctl.Focused())
	}
}

func TestNavigateEmptyRegistryUnhandled(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	if f.ctl.Navigate(NavHome) {
		t.Error("Navigate with no tabs must report unhandled")
	}
}

func TestNavigateReversedUnderRTL(t *testing.T) {
	f := newCtlFixture(t, Config{RTL: true}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	f.ctl.FocusTab("b")
	f.ctl.Navigate(NavNext)
	if f.ctl.Focused() != "a" {
		t.Errorf("Focused = %q, want a: next moves backward under RTL", f.ctl.Focused())
	}
}

func TestBlurDebounce(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")

	f.ctl.FocusTab("a")
	f.ctl.BlurTab()
	if !f.ctl.HasFocus() {
		t.Fatal("blur must not clear focus before the debounce elapses")
	}

	// Refocusing within the window cancels the pending blur.
	f.ctl.FocusTab("a")
	f.clock.advance(blurDebounceDelay * 2)
	if !f.ctl.HasFocus() {
		t.Error("refocus within the debounce window must cancel the blur")
	}

	f.ctl.BlurTab()
	f.clock.advance(blurDebounceDelay)
	if f.ctl.HasFocus() || f.ctl.Focused() != "" {
		t.Error("blur must clear focus after the debounce")
	}
}

func TestRouteResolutionOnLocationChange(t *testing.T) {
	f := newCtlFixture(t, Config{}, true)
	f.addRoute("media", "/media", false)
	f.addRoute("photos", "/media/photos", false)

	f.navigate("/media/photos")
	if f.ctl.Current() != "photos" {
		t.Errorf("Current = %q, want photos", f.ctl.Current())
	}

	f.navigate("/media")
	if f.ctl.Current() != "media" {
		t.Errorf("Current = %q, want media", f.ctl.Current())
	}
}

func TestRouteResolutionDebounces(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addRoute("media", "/media", false)

	f.loc.set("/media")
	f.refreshBindings()
	f.clock.advance(routeDebounceDelay / 2)
	if f.ctl.Current() != "" {
		t.Fatal("resolution must wait out the debounce")
	}
	f.clock.advance(routeDebounceDelay)
	if f.ctl.Current() != "media" {
		t.Errorf("Current = %q, want media after debounce", f.ctl.Current())
	}
}

func TestRouteResolutionIgnoresIdenticalLocation(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addRoute("media", "/media", false)
	f.navigate("/media")

	f.ctl.SetModel("")
	f.loc.set("/media") // same key: watcher fires but nothing re-resolves
	f.clock.advance(routeDebounceDelay)
	if f.ctl.Current() != "" {
		t.Error("identical location must not trigger re-resolution")
	}
}

func TestRouteSuppressionByOwner(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addRoute("media", "/media", false)

	f.ctl.SuppressRouteResolve("panel")
	f.ctl.SuppressRouteResolve("other") // first owner wins
	f.navigate("/media")
	if f.ctl.Current() != "" {
		t.Fatal("suppressed resolution must leave the selection alone")
	}

	f.ctl.ResumeRouteResolve("other")
	f.navigate("/media/photos")
	if f.ctl.Current() != "" {
		t.Fatal("non-owner resume must not lift the suppression")
	}

	f.ctl.ResumeRouteResolve("panel")
	f.navigate("/media")
	if f.ctl.Current() != "media" {
		t.Errorf("Current = %q, want media after resume", f.ctl.Current())
	}
}

func TestRouteNoWinnerKeepsPlainSelection(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("about")
	f.addRoute("media", "/media", false)

	f.ctl.Select("about")
	f.navigate("/elsewhere")
	if f.ctl.Current() != "about" {
		t.Errorf("Current = %q, want about: no winner must not clobber a plain selection", f.ctl.Current())
	}
}

func TestRouteNoWinnerClearsRouteSelection(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addRoute("media", "/media", false)

	f.navigate("/media")
	if f.ctl.Current() != "media" {
		t.Fatalf("Current = %q, want media", f.ctl.Current())
	}

	f.navigate("/elsewhere")
	if f.ctl.Current() != "" {
		t.Errorf("Current = %q, want empty: route selection clears without a winner", f.ctl.Current())
	}
}

func TestWatchLifecycle(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	id := f.addRoute("media", "/media", false)
	if f.loc.watcherCount() != 1 {
		t.Fatalf("watchers = %d, want 1 after first route tab", f.loc.watcherCount())
	}

	f.addRoute("photos", "/media/photos", false)
	if f.loc.watcherCount() != 1 {
		t.Errorf("watchers = %d, want still 1: a single shared watch", f.loc.watcherCount())
	}

	f.ctl.UnregisterTab(id)
	if f.loc.watcherCount() != 1 {
		t.Errorf("watchers = %d, want 1 while a route tab remains", f.loc.watcherCount())
	}
}

func TestDeactivateActivateRestoresWatch(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addRoute("media", "/media", false)

	f.ctl.Deactivate()
	f.navigate("/media")
	if f.ctl.Current() != "" {
		t.Fatal("deactivated controller must ignore location changes")
	}

	f.ctl.Activate()
	f.clock.flushTicks()
	f.navigate("/media/photos")
	f.navigate("/media")
	if f.ctl.Current() != "media" {
		t.Errorf("Current = %q, want media after reactivation", f.ctl.Current())
	}
}

func TestUpdateModelAnimatesIndicator(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	fromInd := &fakeIndicator{rect: Rect{X: 0, W: 100, H: 1}}
	toInd := &fakeIndicator{rect: Rect{X: 100, W: 100, H: 1}}
	f.ctl.RegisterTab(&Descriptor{Name: "a", Root: f.strip.item("a"), Indicator: fromInd})
	f.ctl.RegisterTab(&Descriptor{Name: "b", Root: f.strip.item("b"), Indicator: toInd})
	f.clock.flushTicks()

	f.ctl.SetModel("a")
	f.ctl.SetModel("b")

	if len(toInd.applied) != 1 {
		t.Fatalf("Apply called %d times, want 1", len(toInd.applied))
	}
	if got := toInd.applied[0].TranslateX; got != -100 {
		t.Errorf("TranslateX = %d, want -100", got)
	}
	f.clock.advance(indicatorDelay)
	if len(toInd.transitions) != 1 {
		t.Errorf("transitions = %v, want one after the settle delay", toInd.transitions)
	}
}

func TestSetModelRevealsTab(t *testing.T) {
	f := newCtlFixture(t, Config{}, false)
	f.addPlain("a")
	f.addPlain("b")
	f.addPlain("c")

	f.ctl.SetModel("c")
	if f.strip.offset != 200 {
		t.Errorf("offset = %d, want 200: activation reveals the tab", f.strip.offset)
	}
}
