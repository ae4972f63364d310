package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	// Engine callbacks flow through the program's message loop from here on.
	opts.Dispatcher.Attach(p.Send)

	_, err := p.Run()
	return err
}
