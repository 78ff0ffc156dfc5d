package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/edtfloc/pkg/datefmt"
	"github.com/julianstephens/edtfloc/pkg/edtf"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueEmptyInput    IssueType = "empty_input"
	IssueDuplicate     IssueType = "duplicate_input"
	IssueInvalidFormat IssueType = "invalid_format"
)

// KindIssue maps an EDTF rejection kind to an issue type.
func KindIssue(k edtf.Kind) IssueType {
	return IssueType(k.String())
}

// Issue represents a single rejected or suspicious input
type Issue struct {
	Type        IssueType
	Input       string
	Line        int // 1-based position in the batch
	Description string
	// Warning issues are reported but do not make the batch invalid.
	Warning bool
}

// Entry is one checked input together with its parse result.
type Entry struct {
	Input string
	Line  int
	Value edtf.Value // nil when the input was rejected
}

// ValidationResult contains all checked entries and detected issues
type ValidationResult struct {
	Entries []Entry
	Issues  []Issue
}

// HasIssues returns true if any non-warning issue was found
func (vr *ValidationResult) HasIssues() bool {
	for _, issue := range vr.Issues {
		if !issue.Warning {
			return true
		}
	}
	return false
}

// Valid returns the number of accepted entries.
func (vr *ValidationResult) Valid() int {
	n := 0
	for _, e := range vr.Entries {
		if e.Value != nil {
			n++
		}
	}
	return n
}

// FormatReport returns a human-readable report of all issues
func (vr *ValidationResult) FormatReport() string {
	if len(vr.Issues) == 0 {
		return fmt.Sprintf("All %d input(s) are valid EDTF level 0.", len(vr.Entries))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d input(s) valid.\n", vr.Valid(), len(vr.Entries))
	for _, issue := range vr.Issues {
		label := "error"
		if issue.Warning {
			label = "warning"
		}
		// Batch-level issues such as the format check have no line.
		if issue.Line == 0 {
			fmt.Fprintf(&b, "- [%s] %s: %s\n", label, issue.Type, issue.Description)
			continue
		}
		fmt.Fprintf(&b, "- line %d [%s] %s: %s\n", issue.Line, label, issue.Type, issue.Description)
	}
	return b.String()
}

// Validator checks batches of EDTF strings.
type Validator struct {
	// Format, when set, is checked once against every batch.
	Format string
}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateInputs parses every input and collects issues. Surrounding
// whitespace is trimmed before parsing.
func (v *Validator) ValidateInputs(inputs []string) ValidationResult {
	result := ValidationResult{Issues: []Issue{}}

	if v.Format != "" {
		if err := datefmt.ValidateFormat(v.Format); err != nil {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueInvalidFormat,
				Input:       v.Format,
				Description: err.Error(),
			})
		}
	}

	seen := make(map[string]int)
	for i, raw := range inputs {
		line := i + 1
		input := strings.TrimSpace(raw)
		entry := Entry{Input: input, Line: line}

		if input == "" {
			result.Entries = append(result.Entries, entry)
			result.Issues = append(result.Issues, Issue{
				Type:        IssueEmptyInput,
				Line:        line,
				Description: "input is empty",
			})
			continue
		}

		value, err := edtf.Parse(input)
		if err != nil {
			result.Entries = append(result.Entries, entry)
			result.Issues = append(result.Issues, Issue{
				Type:        KindIssue(edtf.KindOf(err)),
				Input:       input,
				Line:        line,
				Description: err.Error(),
			})
			continue
		}
		entry.Value = value
		result.Entries = append(result.Entries, entry)

		key := value.String()
		if first, ok := seen[key]; ok {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicate,
				Input:       input,
				Line:        line,
				Description: fmt.Sprintf("%s repeats line %d", key, first),
				Warning:     true,
			})
			continue
		}
		seen[key] = line
	}

	return result
}
