// Package ui provides the Bubble Tea host view for the quasar tab strip.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Sh1nto/quasar/internal/config"
	"github.com/Sh1nto/quasar/internal/prefs"
	"github.com/Sh1nto/quasar/internal/router"
	"github.com/Sh1nto/quasar/internal/tabs"
)

// tabSpec declares one tab of the demo strip.
type tabSpec struct {
	name  string
	label string
	route string // navigation target; empty for plain tabs
	exact bool
	body  string
}

// tabEntry pairs a spec with its live registration.
type tabEntry struct {
	spec tabSpec
	desc *tabs.Descriptor
	id   string
}

// Options configures the UI.
type Options struct {
	Config     config.Config
	Prefs      prefs.Prefs
	PrefsPath  string
	History    *router.History
	Dispatcher *Dispatcher
}

// shared holds state that must survive Bubble Tea's value-copied Model:
// engine callbacks and the history watcher registered in New run against
// this one instance, not the copies threaded through Update.
type shared struct {
	lastTab string
	entries []*tabEntry
}

// Model is the root application state for Bubble Tea.
type Model struct {
	cfg       config.Config
	prefsPath string
	theme     Theme
	keys      keyMap
	help      help.Model

	history *router.History
	ctrl    *tabs.Controller
	strip   *stripState
	st      *shared

	dynamic int // count of "+"-added tabs

	width  int
	height int
	ready  bool

	showHelp bool
	jump     jumpState
}

// New creates a new Bubble Tea model and registers the demo tabs.
func New(opts Options) Model {
	theme := GetTheme(opts.Prefs.Theme)

	strip := &stripState{
		axis:    axisOf(opts.Config),
		originX: 0,
		originY: 1,
		sched:   opts.Dispatcher,
	}

	st := &shared{lastTab: opts.Prefs.LastTab}

	var ctrl *tabs.Controller
	ctrl = tabs.NewController(engineConfig(opts.Config), opts.Dispatcher, opts.History, func(name string) {
		// The host is the external listener: accept the value and feed it
		// back as the model, the way a bound prop would.
		st.lastTab = name
		ctrl.SetModel(name)
	})
	ctrl.AttachElements(containerElem{s: strip}, contentElem{s: strip})

	m := Model{
		cfg:       opts.Config,
		prefsPath: opts.PrefsPath,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		history:   opts.History,
		ctrl:      ctrl,
		strip:     strip,
		st:        st,
		jump:      newJumpState(),
	}

	for _, spec := range demoTabs() {
		m.addEntry(spec)
	}
	m.refreshBindings()
	opts.History.Watch(m.refreshBindings)

	if opts.Prefs.LastTab != "" {
		ctrl.SetModel(opts.Prefs.LastTab)
	}
	return m
}

func axisOf(cfg config.Config) tabs.Axis {
	if cfg.Vertical {
		return tabs.Vertical
	}
	return tabs.Horizontal
}

func engineConfig(cfg config.Config) tabs.Config {
	align := tabs.AlignLeft
	switch cfg.Align {
	case "center":
		align = tabs.AlignCenter
	case "right":
		align = tabs.AlignRight
	case "justify":
		align = tabs.AlignJustify
	}
	return tabs.Config{
		Axis:           axisOf(cfg),
		Align:          align,
		Breakpoint:     cfg.Breakpoint,
		Desktop:        cfg.Arrows == "desktop",
		MobileArrows:   cfg.Arrows == "always",
		OutsideArrows:  cfg.OutsideArrows,
		RTL:            cfg.RightToLeft,
		ActiveColor:    cfg.ActiveColor,
		ActiveBgColor:  cfg.ActiveBgColor,
		IndicatorColor: cfg.IndicatorColor,
		Dense:          cfg.Dense,
		Shrink:         cfg.Shrink,
		Stretch:        cfg.Stretch,
	}
}

// demoTabs returns the built-in strip: route tabs over the demo site plus
// one plain tab.
func demoTabs() []tabSpec {
	return []tabSpec{
		{name: "dashboard", label: "Dashboard", route: "/dashboard",
			body: "System overview.\n\nThis tab is bound to /dashboard."},
		{name: "media", label: "Media", route: "/media",
			body: "All media.\n\nThis tab matches /media and any deeper path."},
		{name: "photos", label: "Photos", route: "/media/photos",
			body: "Photo library.\n\nDeeper match than Media; it wins on /media/photos."},
		{name: "settings", label: "Settings", route: "/settings",
			body: "General settings."},
		{name: "profile", label: "Profile", route: "/settings/profile?section=identity", exact: true,
			body: "Exact-mode tab: active only when path, query and hash all match."},
		{name: "about", label: "About", route: "",
			body: "Plain tab: selected directly, never by route matching."},
	}
}

// addEntry registers one tab with the engine and the strip geometry.
func (m *Model) addEntry(spec tabSpec) *tabEntry {
	d := &tabs.Descriptor{
		Name:      spec.name,
		Root:      itemElem{s: m.strip, name: spec.name},
		Indicator: indicatorElem{s: m.strip, name: spec.name},
	}
	if spec.route != "" {
		d.Route = &tabs.RouteBinding{Exact: spec.exact}
	}
	entry := &tabEntry{spec: spec, desc: d}
	m.st.entries = append(m.st.entries, entry)
	m.syncStripItems()
	if spec.route != "" {
		m.refreshBinding(entry)
	}
	entry.id = m.ctrl.RegisterTab(d)
	return entry
}

// removeEntry unregisters the tab and drops it from the strip.
func (m *Model) removeEntry(entry *tabEntry) {
	m.ctrl.UnregisterTab(entry.id)
	for i, e := range m.st.entries {
		if e == entry {
			m.st.entries = append(m.st.entries[:i], m.st.entries[i+1:]...)
			break
		}
	}
	m.syncStripItems()
}

// syncStripItems rebuilds the strip's item extents from the entry list.
func (m *Model) syncStripItems() {
	items := make([]stripItem, 0, len(m.st.entries))
	for _, e := range m.st.entries {
		items = append(items, stripItem{name: e.spec.name, extent: m.itemExtent(e.spec.label)})
	}
	m.strip.items = items
}

func (m *Model) itemExtent(label string) int {
	if m.cfg.Vertical {
		return 1
	}
	return lipgloss.Width(label) + 2 // one cell of padding each side
}

// refreshBindings re-resolves every route tab's binding against the current
// location. The router collaborator owns these values; the engine only
// reads them.
func (m *Model) refreshBindings() {
	for _, e := range m.st.entries {
		if e.desc.Route != nil {
			m.refreshBinding(e)
		}
	}
}

func (m *Model) refreshBinding(e *tabEntry) {
	rb := e.desc.Route
	target, ok := m.history.Table().Resolve(e.spec.route)
	if !ok {
		rb.Target = nil
		rb.Active = false
		rb.ExactActive = false
		return
	}
	loc := m.history.Current()
	rb.Target = &target
	rb.Active = router.IsActive(target, loc)
	rb.ExactActive = router.IsExactActive(target, loc)
}

// entryByName returns the first entry with the given tab name.
func (m *Model) entryByName(name string) *tabEntry {
	for _, e := range m.st.entries {
		if e.spec.name == name {
			return e
		}
	}
	return nil
}

// activateTab applies a user interaction: route tabs navigate (the route
// watch then drives the selection), plain tabs select directly.
func (m *Model) activateTab(name string) {
	e := m.entryByName(name)
	if e == nil {
		return
	}
	if e.spec.route != "" {
		m.history.Navigate(e.spec.route)
		return
	}
	m.ctrl.Select(name)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.layoutStrip()
		m.ctrl.OnResize()
		return m, nil

	case callbackMsg:
		msg.fn()
		return m, nil
	}

	return m, nil
}

// layoutStrip recomputes the strip's viewport from the window size and the
// arrow reservation.
func (m *Model) layoutStrip() {
	reserve := 0
	if m.arrowsShown() {
		reserve = 2 * arrowColumns
	}
	if m.cfg.Vertical {
		m.strip.originX = 1
		m.strip.originY = 2
		m.strip.viewport = maxInt(0, m.height-4-reserve)
	} else {
		m.strip.originX = 1 + reserve/2
		m.strip.originY = 1
		m.strip.viewport = maxInt(0, m.width-2-reserve)
	}
}

func (m *Model) arrowsShown() bool {
	return m.cfg.Arrows != "never"
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.jump.active {
		return m.handleJumpKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		m.ctrl.Deactivate()
		// Preferences are best-effort; quitting proceeds regardless.
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, LastTab: m.st.lastTab})
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, k.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		return m, nil

	case key.Matches(msg, k.Escape):
		m.showHelp = false
		m.ctrl.BlurTab()
		return m, nil

	case key.Matches(msg, k.First):
		m.ctrl.Navigate(tabs.NavHome)
		return m, nil

	case key.Matches(msg, k.Last):
		m.ctrl.Navigate(tabs.NavEnd)
		return m, nil

	case key.Matches(msg, k.Prev):
		m.ctrl.Navigate(tabs.NavPrev)
		return m, nil

	case key.Matches(msg, k.Next):
		m.ctrl.Navigate(tabs.NavNext)
		return m, nil

	case key.Matches(msg, k.Select):
		name := m.ctrl.Focused()
		if name == "" {
			name = m.ctrl.Current()
		}
		m.activateTab(name)
		return m, nil

	case key.Matches(msg, k.Jump):
		m.jump.open()
		m.ctrl.BlurTab()
		return m, nil

	case key.Matches(msg, k.ScrollStart):
		m.ctrl.ScrollToStart()
		return m, nil

	case key.Matches(msg, k.ScrollEnd):
		m.ctrl.ScrollToEnd()
		return m, nil

	case key.Matches(msg, k.AddTab):
		m.addDynamicTab()
		return m, nil

	case key.Matches(msg, k.RemoveTab):
		m.removeDynamicTab()
		return m, nil
	}

	return m, nil
}

func (m *Model) addDynamicTab() {
	m.dynamic++
	name := dynamicTabName(m.dynamic)
	m.addEntry(tabSpec{
		name:  name,
		label: dynamicTabLabel(m.dynamic),
		body:  "A dynamically registered plain tab.",
	})
}

func (m *Model) removeDynamicTab() {
	if m.dynamic == 0 {
		return
	}
	if e := m.entryByName(dynamicTabName(m.dynamic)); e != nil {
		m.removeEntry(e)
	}
	m.dynamic--
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
