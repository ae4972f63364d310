package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Tab navigation
	Prev  key.Binding
	Next  key.Binding
	First key.Binding
	Last  key.Binding

	// Selection
	Select key.Binding
	Jump   key.Binding

	// Scrolling
	ScrollStart key.Binding
	ScrollEnd   key.Binding

	// Demo registry actions
	AddTab    key.Binding
	RemoveTab key.Binding

	// Jump overlay
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close overlay / drop focus"),
		),

		// Tab navigation
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k"),
			key.WithHelp("←/h", "Previous tab"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "down", "l", "j"),
			key.WithHelp("→/l", "Next tab"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "First tab"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "Last tab"),
		),

		// Selection
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Activate focused tab"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Jump to tab by name"),
		),

		// Scrolling
		ScrollStart: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "Scroll to start"),
		),
		ScrollEnd: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "Scroll to end"),
		),

		// Demo registry actions
		AddTab: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "Add a tab"),
		),
		RemoveTab: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Remove last added tab"),
		),

		// Jump overlay
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select, k.Jump, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Select, k.Jump, k.ScrollStart, k.ScrollEnd},
		{k.AddTab, k.RemoveTab},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
