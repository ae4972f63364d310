package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// arrowColumns is the cells reserved per side for a scroll arrow glyph plus
// its gap.
const arrowColumns = 2

func dynamicTabName(n int) string {
	return fmt.Sprintf("extra-%d", n)
}

func dynamicTabLabel(n int) string {
	return fmt.Sprintf("Extra %d", n)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(m.renderHeader(styles))
	b.WriteString("\n")

	if m.cfg.Vertical {
		b.WriteString(m.renderVerticalBody(styles))
	} else {
		b.WriteString(m.renderStrip(styles))
		b.WriteString("\n")
		b.WriteString(m.renderIndicatorRow(styles))
		b.WriteString("\n\n")
		b.WriteString(m.renderContent(styles))
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(styles))

	if m.showHelp {
		return overlayCentered(b.String(), m.renderHelp(styles), m.width, m.height)
	}
	if m.jump.active {
		return overlayCentered(b.String(), m.renderJump(styles), m.width, m.height)
	}
	return b.String()
}

func (m Model) renderHeader(s Styles) string {
	logo := s.Logo.Render("quasar")
	loc := s.MutedText.Render(" " + m.history.Current().String())
	right := s.FaintText.Render(m.theme.Name + " ")

	left := logo + loc
	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return s.Header.Width(m.width).Render(left + strings.Repeat(" ", pad) + right)
}

// renderStrip draws the horizontal tab row: arrows at the edges, tab labels
// clipped to the scroll viewport in between.
func (m Model) renderStrip(s Styles) string {
	var b strings.Builder
	b.WriteString(" ")

	st := m.ctrl.ScrollState()
	if m.arrowsShown() {
		b.WriteString(m.arrowGlyph(s, "‹", st.LeftArrow))
		b.WriteString(" ")
	}

	window := m.strip.viewport
	from := m.strip.offsetMagnitude()
	b.WriteString(m.renderTabRun(s, from, window))

	if m.arrowsShown() {
		b.WriteString(" ")
		b.WriteString(m.arrowGlyph(s, "›", st.RightArrow))
	}
	return b.String()
}

func (m Model) arrowGlyph(s Styles, glyph string, on bool) string {
	if on {
		return s.Arrow.Render(glyph)
	}
	return s.ArrowDim.Render(glyph)
}

// renderTabRun renders the cells [from, from+window) of the joined tab
// labels, styling each tab's visible slice.
func (m Model) renderTabRun(s Styles, from, window int) string {
	if window <= 0 {
		return ""
	}
	entries := m.st.entries
	if m.cfg.RightToLeft {
		entries = reversed(entries)
	}

	var b strings.Builder
	used := 0
	pos := 0
	for _, e := range entries {
		cells := []rune(" " + e.spec.label + " ")
		for _, r := range cells {
			if pos >= from && used < window {
				b.WriteString(m.tabStyle(s, e.spec.name).Render(string(r)))
				used++
			}
			pos++
		}
		if used >= window {
			break
		}
	}
	if used < window {
		b.WriteString(strings.Repeat(" ", window-used))
	}
	return b.String()
}

func (m Model) tabStyle(s Styles, name string) lipgloss.Style {
	switch {
	case m.ctrl.HasFocus() && m.ctrl.Focused() == name:
		return s.FocusedTab.UnsetPadding()
	case m.ctrl.Current() == name:
		return s.ActiveTab.UnsetPadding()
	default:
		return s.Tab.UnsetPadding()
	}
}

// renderIndicatorRow draws the selection bar under the active tab. While an
// indicator animation runs, the bar is interpolated between the previous
// tab's box and its natural one.
func (m Model) renderIndicatorRow(s Styles) string {
	active := m.ctrl.Current()
	if active == "" {
		return ""
	}
	start, extent, ok := m.strip.startOf(active)
	if !ok {
		return ""
	}

	barStart := start - m.strip.offsetMagnitude()
	barWidth := extent

	if ind := m.strip.ind; ind.active && ind.name == active {
		p := ind.progress
		barStart += int(float64(ind.from.TranslateX) * (1 - p))
		w := float64(extent) * (ind.from.ScaleX*(1-p) + p)
		barWidth = int(w + 0.5)
		if barWidth < 1 {
			barWidth = 1
		}
	}

	// Clip to the viewport.
	window := m.strip.viewport
	if barStart < 0 {
		barWidth += barStart
		barStart = 0
	}
	if barStart+barWidth > window {
		barWidth = window - barStart
	}
	if barWidth <= 0 {
		return ""
	}

	lead := 1
	if m.arrowsShown() {
		lead += arrowColumns
	}
	return strings.Repeat(" ", lead+barStart) + s.Indicator.Render(strings.Repeat("▔", barWidth))
}

// renderVerticalBody draws the vertical strip beside the content pane.
func (m Model) renderVerticalBody(s Styles) string {
	window := m.strip.viewport
	from := m.strip.offsetMagnitude()
	st := m.ctrl.ScrollState()

	var rows []string
	if m.arrowsShown() {
		rows = append(rows, " "+m.arrowGlyph(s, "▲", st.LeftArrow))
	}
	for i := from; i < from+window && i < len(m.st.entries); i++ {
		e := m.st.entries[i]
		label := e.spec.label
		marker := "  "
		if m.ctrl.Current() == e.spec.name {
			marker = s.Indicator.Render("▎") + " "
		}
		rows = append(rows, marker+m.tabStyle(s, e.spec.name).Render(label))
	}
	if m.arrowsShown() {
		rows = append(rows, " "+m.arrowGlyph(s, "▼", st.RightArrow))
	}

	strip := lipgloss.NewStyle().Width(stripPaneWidth(m.st.entries)).Render(strings.Join(rows, "\n"))
	content := m.renderContent(s)
	return lipgloss.JoinHorizontal(lipgloss.Top, strip, "  ", content)
}

func stripPaneWidth(entries []*tabEntry) int {
	w := 12
	for _, e := range entries {
		if lw := lipgloss.Width(e.spec.label) + 4; lw > w {
			w = lw
		}
	}
	return w
}

func (m Model) renderContent(s Styles) string {
	name := m.ctrl.Current()
	e := m.entryByName(name)
	if e == nil {
		return s.FaintText.Render("  No tab selected. Use ←/→ to focus, enter to activate.")
	}

	body := s.Text.Render(e.spec.body)
	title := s.AccentText.Render(e.spec.label)
	meta := ""
	if e.spec.route != "" {
		meta = s.FaintText.Render("  " + e.spec.route)
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(title + meta + "\n\n" + body)
}

func (m Model) renderFooter(s Styles) string {
	st := m.ctrl.ScrollState()
	left := m.help.View(m.keys)

	var flags []string
	if st.Scrollable {
		flags = append(flags, "scrollable")
	}
	if st.Justify {
		flags = append(flags, "justify")
	}
	right := strings.Join(flags, " ")

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return s.Footer.Width(m.width).Render(left + strings.Repeat(" ", pad) + right)
}

func (m Model) renderHelp(s Styles) string {
	var b strings.Builder
	b.WriteString(s.AccentText.Render("Key bindings") + "\n\n")
	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %-8s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	return boxStyle(m.theme).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderJump(s Styles) string {
	hint := s.FaintText.Render("enter to jump, esc to cancel")
	return boxStyle(m.theme).Render(m.jump.input.View() + "\n" + hint)
}

func boxStyle(t Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Accent)).
		Padding(1, 2)
}

// overlayCentered places the overlay in the middle of the screen, replacing
// the base view. Bubble Tea repaints fully each frame, so this is enough.
func overlayCentered(base, overlay string, width, height int) string {
	_ = base
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
}

func reversed(entries []*tabEntry) []*tabEntry {
	out := make([]*tabEntry, len(entries))
	for i, e := range entries {
		out[len(entries)-1-i] = e
	}
	return out
}
