package datefmt

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownLocale = errors.New("unknown or unsupported locale")
	ErrUnknownStyle  = errors.New("unknown format style")
	ErrBadPattern    = errors.New("invalid date pattern")
)

// PatternError reports an unsupported symbol or an unclosed quote in a
// custom date pattern.
type PatternError struct {
	Pattern      string
	Symbol       string
	Unterminated bool
}

func (e *PatternError) Error() string {
	if e.Unterminated {
		return fmt.Sprintf("date pattern %q: quoted text is not closed", e.Pattern)
	}
	if e.Symbol == "" {
		return fmt.Sprintf("date pattern %q prints no date fields", e.Pattern)
	}
	return fmt.Sprintf("date pattern %q: unsupported symbol %q", e.Pattern, e.Symbol)
}

func (e *PatternError) Unwrap() error {
	return ErrBadPattern
}
