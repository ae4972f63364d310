package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// jumpState is the "/" overlay: type a tab name fragment, land on the
// closest match.
type jumpState struct {
	active bool
	input  textinput.Model
}

func newJumpState() jumpState {
	ti := textinput.New()
	ti.Placeholder = "tab name"
	ti.Prompt = "/ "
	ti.CharLimit = 32
	ti.Width = 24
	return jumpState{input: ti}
}

func (j *jumpState) open() {
	j.active = true
	j.input.Reset()
	j.input.Focus()
}

func (j *jumpState) close() {
	j.active = false
	j.input.Blur()
}

func (m Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.jump.close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		query := m.jump.input.Value()
		m.jump.close()
		if d := m.ctrl.Registry().Closest(query); d != nil {
			m.ctrl.FocusTab(d.Name)
			m.activateTab(d.Name)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.jump.input, cmd = m.jump.input.Update(msg)
	return m, cmd
}
