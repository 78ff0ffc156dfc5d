package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextLocale):
			m.localeIdx = (m.localeIdx + 1) % len(m.locales)
			return m, nil
		case key.Matches(msg, m.keys.PrevLocale):
			m.localeIdx = (m.localeIdx - 1 + len(m.locales)) % len(m.locales)
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.input.SetValue(m.today())
			m.input.CursorEnd()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.input.Reset()
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
