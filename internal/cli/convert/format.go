package convert

import (
	"fmt"

	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/internal/logger"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
	"github.com/julianstephens/edtfloc/pkg/edtf"
)

type FormatCmd struct {
	Inputs []string `arg:"" optional:"" help:"EDTF level 0 strings to format. Formats today when omitted."`
	Echo   bool     `short:"e" help:"Print each input before its formatted value."`
}

func (cmd *FormatCmd) Run(ctx *cli.Context) error {
	inputs := cmd.Inputs
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	format := ctx.Format()
	for _, input := range inputs {
		out, err := ctx.Formatter.Format(input, format)
		if err != nil {
			return err
		}
		logger.Debug("Formatted EDTF", "input", input, "format", format, "locale", ctx.Formatter.Locale.ID, "output", out)

		if cmd.Echo {
			label := input
			if label == "" {
				label = "today"
			}
			ctx.Printf("%s\t%s\n", label, out)
			continue
		}
		ctx.Println(out)
	}
	return nil
}

type SkeletonCmd struct {
	Precision string `arg:"" enum:"year,month,day,second" help:"Precision to look up (year, month, day or second)."`
	All       bool   `short:"a" help:"List the skeleton for every style."`
}

func (cmd *SkeletonCmd) Run(ctx *cli.Context) error {
	p, err := edtf.ParsePrecision(cmd.Precision)
	if err != nil {
		return err
	}

	if cmd.All {
		for _, style := range datefmt.Styles {
			sk, err := datefmt.Skeleton(p, style)
			if err != nil {
				return err
			}
			ctx.Printf("%-7s %s\n", style, sk)
		}
		return nil
	}

	style, ok := datefmt.ParseStyle(ctx.Format())
	if !ok {
		return fmt.Errorf("%q is not a style name; skeletons exist for full, long, medium and short", ctx.Format())
	}
	sk, err := datefmt.Skeleton(p, style)
	if err != nil {
		return err
	}
	ctx.Println(sk)
	return nil
}
