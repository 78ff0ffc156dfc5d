package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("edtfloc"),
		"",
		m.viewLocales(),
		"",
		m.input.View(),
		"",
		m.viewResults(),
		"",
		m.help.View(m.keys),
	)
	return docStyle.Render(ui)
}

func (m Model) viewLocales() string {
	var tabs []string
	for i, l := range m.locales {
		if i == m.localeIdx {
			tabs = append(tabs, activeLocaleStyle.Render(l.ID))
		} else {
			tabs = append(tabs, inactiveLocaleStyle.Render(l.ID))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) viewResults() string {
	v, err := m.parsed()
	if err != nil {
		return dangerStyle.Render(err.Error())
	}
	if v == nil {
		return hintStyle.Render("Type an EDTF level 0 date, e.g. 2004, 2004-06-05 or 1985-04-12T23:20:30Z")
	}

	lines := []string{
		hintStyle.Render(fmt.Sprintf("%s precision, canonical %s", v.Precision(), v)),
	}
	for _, r := range m.rows() {
		value := r.value
		if r.err != nil {
			value = dangerStyle.Render(r.err.Error())
		}
		lines = append(lines, labelStyle.Render(fmt.Sprintf("%-8s", r.label))+" "+value)
	}
	return strings.Join(lines, "\n")
}
