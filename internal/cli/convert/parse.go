package convert

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/edtfloc/internal/cli"
	"github.com/julianstephens/edtfloc/pkg/edtf"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(11)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
)

// ParsedValue is the machine-readable description of a parsed EDTF string.
type ParsedValue struct {
	Input     string `json:"input"`
	Canonical string `json:"canonical"`
	Type      string `json:"type"`
	Precision string `json:"precision"`
	Lower     string `json:"lower"`
	Upper     string `json:"upper"`
	Formatted string `json:"formatted"`
}

type ParseCmd struct {
	Input string `arg:"" help:"EDTF level 0 string to inspect."`
	JSON  bool   `help:"Output as JSON."`
}

func (cmd *ParseCmd) Run(ctx *cli.Context) error {
	v, err := edtf.Parse(cmd.Input)
	if err != nil {
		return err
	}
	formatted, err := ctx.Formatter.FormatValue(v, ctx.Format())
	if err != nil {
		return err
	}
	parsed := describe(cmd.Input, v)
	parsed.Formatted = formatted

	if cmd.JSON {
		jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		ctx.Println(string(jsonBytes))
		return nil
	}

	rows := [][2]string{
		{"input", parsed.Input},
		{"canonical", parsed.Canonical},
		{"type", parsed.Type},
		{"precision", parsed.Precision},
		{"lower", parsed.Lower},
		{"upper", parsed.Upper},
		{"formatted", parsed.Formatted},
	}
	for _, row := range rows {
		ctx.Println(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return nil
}

func describe(input string, v edtf.Value) ParsedValue {
	p := ParsedValue{
		Input:     input,
		Canonical: v.String(),
		Precision: v.Precision().String(),
	}

	layout := time.DateOnly
	switch v.(type) {
	case edtf.Date:
		p.Type = "date"
	case edtf.DateAndTime:
		p.Type = "date_and_time"
		layout = time.RFC3339
	case edtf.Interval:
		p.Type = "interval"
	}
	p.Lower = v.Lower().Format(layout)
	p.Upper = v.Upper().Format(layout)
	return p
}
