package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/internal/tui"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

type TuiCmd struct {
	Pick bool `help:"Choose the starting locale and style before launching."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	locale := ctx.Formatter.Locale.ID
	format := ctx.Format()

	if c.Pick {
		form := pickerForm(&locale, &format)
		if err := form.Run(); err != nil {
			return fmt.Errorf("picker aborted: %w", err)
		}
	}

	model, err := tui.NewModel(ctx.Formatter, locale, format)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}

func pickerForm(locale, format *string) *huh.Form {
	var localeOptions []huh.Option[string]
	for _, l := range datefmt.Locales() {
		localeOptions = append(localeOptions, huh.NewOption(l.ID, l.ID))
	}

	var styleOptions []huh.Option[string]
	for _, s := range datefmt.Styles {
		styleOptions = append(styleOptions, huh.NewOption(string(s), string(s)))
	}
	if !datefmt.IsStyle(*format) {
		styleOptions = append(styleOptions, huh.NewOption("custom: "+*format, *format))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Locale").
				Options(localeOptions...).
				Value(locale),
			huh.NewSelect[string]().
				Title("Format").
				Options(styleOptions...).
				Value(format),
		),
	)
}
