package convert

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/julianstephens/edtfloc/internal/cli"
	clierrors "github.com/julianstephens/edtfloc/internal/errors"
	"github.com/julianstephens/edtfloc/internal/logger"
	"github.com/julianstephens/edtfloc/internal/validation"
)

type ValidateCmd struct {
	Inputs []string `arg:"" optional:"" help:"EDTF level 0 strings to check."`
	Stdin  bool     `help:"Also read inputs from standard input, one per line."`
	Quiet  bool     `short:"q" help:"Only print the summary report."`
}

func (cmd *ValidateCmd) Run(ctx *cli.Context) error {
	inputs := append([]string(nil), cmd.Inputs...)
	if cmd.Stdin {
		scanner := bufio.NewScanner(ctx.In)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			inputs = append(inputs, line)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read standard input: %w", err)
		}
	}
	if len(inputs) == 0 {
		return fmt.Errorf("nothing to validate: pass EDTF strings or use --stdin")
	}

	validator := validation.New()
	validator.Format = ctx.Format()
	result := validator.ValidateInputs(inputs)

	if !cmd.Quiet {
		ok := color.New(color.FgGreen)
		bad := color.New(color.FgRed)
		for _, entry := range result.Entries {
			if entry.Value == nil {
				bad.Fprint(ctx.Out, "✗ invalid ")
				ctx.Println(entry.Input)
				continue
			}
			ok.Fprint(ctx.Out, "✓ valid   ")
			ctx.Printf("%s (%s)\n", entry.Input, entry.Value.Precision())
		}
		ctx.Println()
	}
	ctx.Println(strings.TrimRight(result.FormatReport(), "\n"))

	if result.HasIssues() {
		logger.Warn("Validation found invalid inputs", "checked", len(result.Entries), "valid", result.Valid())
		return clierrors.ErrInvalidInputs
	}
	return nil
}
