package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/edtfloc/pkg/datefmt"
	"github.com/julianstephens/edtfloc/pkg/edtf"
)

// Model is a live playground: every keystroke reformats the typed EDTF
// string in each style for the selected locale.
type Model struct {
	locales   []datefmt.Locale
	localeIdx int
	format    string
	now       func() time.Time
	input     textinput.Model
	keys      KeyMap
	help      help.Model
	width     int
	quitting  bool
}

// row is one rendered line of the results table.
type row struct {
	label string
	value string
	err   error
}

// NewModel starts the playground on locale with an extra row for format
// when it is not one of the predefined styles. base supplies the clock.
func NewModel(base *datefmt.Formatter, locale, format string) (Model, error) {
	current, err := datefmt.ResolveLocale(locale)
	if err != nil {
		return Model{}, err
	}

	locales := datefmt.Locales()
	idx := 0
	for i, l := range locales {
		if l.ID == current.ID {
			idx = i
			break
		}
	}

	ti := textinput.New()
	ti.Placeholder = "2004-06/2004-08"
	ti.Prompt = "EDTF › "
	ti.CharLimit = 64
	ti.Focus()

	m := Model{
		locales:   locales,
		localeIdx: idx,
		format:    format,
		now:       time.Now,
		input:     ti,
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
	if base != nil && base.Now != nil {
		m.now = base.Now
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Locale returns the selected locale.
func (m Model) Locale() datefmt.Locale {
	return m.locales[m.localeIdx]
}

// Input returns the current text of the input field.
func (m Model) Input() string {
	return m.input.Value()
}

func (m Model) formatter() *datefmt.Formatter {
	return &datefmt.Formatter{Locale: m.Locale(), Now: m.now}
}

func (m Model) today() string {
	return edtf.DateOf(m.now()).String()
}

// parsed returns the value for the current input, or nil with the parse
// error. Empty input is not an error.
func (m Model) parsed() (edtf.Value, error) {
	if m.input.Value() == "" {
		return nil, nil
	}
	return edtf.Parse(m.input.Value())
}

func (m Model) rows() []row {
	v, err := m.parsed()
	if err != nil || v == nil {
		return nil
	}

	f := m.formatter()
	formats := make([]string, 0, len(datefmt.Styles)+1)
	for _, s := range datefmt.Styles {
		formats = append(formats, string(s))
	}
	if m.format != "" && !datefmt.IsStyle(m.format) {
		formats = append(formats, m.format)
	}

	rows := make([]row, 0, len(formats))
	for _, format := range formats {
		out, ferr := f.FormatValue(v, format)
		rows = append(rows, row{label: format, value: out, err: ferr})
	}
	return rows
}
