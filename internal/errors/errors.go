package errors

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/edtfloc/internal/logger"
	"github.com/julianstephens/edtfloc/pkg/datefmt"
	"github.com/julianstephens/edtfloc/pkg/edtf"
)

// ErrInvalidInputs is returned by commands that checked several inputs and
// found at least one invalid.
var ErrInvalidInputs = errors.New("one or more inputs are not valid EDTF")

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\n       " + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a follow-up suggestion for well-known failures, or "".
func Hint(err error) string {
	switch {
	case edtf.KindOf(err) == edtf.KindAmbiguous:
		return "Write dates year first, e.g. 2004-06-05."
	case edtf.KindOf(err) == edtf.KindLeapDay:
		return "29 February only exists in leap years."
	case errors.Is(err, datefmt.ErrUnknownLocale):
		return "Run `edtfloc locales` to list supported locales."
	case errors.Is(err, datefmt.ErrBadPattern):
		return "Use full, long, medium, short or a CLDR pattern such as \"d MMM y\"."
	}
	return ""
}

// ExitCode maps an error to the process exit status: 0 for nil, 2 for
// invalid EDTF input and 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, edtf.ErrInvalid), errors.Is(err, ErrInvalidInputs):
		return 2
	default:
		return 1
	}
}

// Fatal logs an error and exits the program with the error's exit code
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(ExitCode(err))
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
