package system

import (
	"golang.org/x/text/language/display"

	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
)

type LocalesCmd struct {
	Sample string `help:"EDTF string rendered in every locale." default:"2004-06-05"`
}

func (cmd *LocalesCmd) Run(ctx *cli.Context) error {
	english := display.English.Tags()
	current := ctx.Formatter.Locale.ID

	for _, loc := range datefmt.Locales() {
		f := &datefmt.Formatter{Locale: loc, Now: ctx.Formatter.Now}
		sample, err := f.Format(cmd.Sample, ctx.Format())
		if err != nil {
			return err
		}

		marker := " "
		if loc.ID == current {
			marker = "*"
		}
		ctx.Printf("%s %-6s %-26s %s\n", marker, loc.ID, english.Name(loc.Tag)+" / "+display.Self.Name(loc.Tag), sample)
	}
	return nil
}
