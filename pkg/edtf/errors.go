package edtf

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalid is wrapped by every parse and validation failure.
	ErrInvalid = errors.New("invalid EDTF level 0 string")

	ErrInvalidBound = errors.New("invalid bound (expected lower or upper)")
	ErrNilValue     = errors.New("no EDTF value given")
)

// Kind classifies why a string was rejected.
type Kind int

const (
	KindNone Kind = iota
	KindSyntax
	KindAmbiguous
	KindMonthRange
	KindDayRange
	KindLeapDay
	KindTimeRange
	KindZoneRange
	KindIntervalOrder
)

// String returns a short snake_case identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSyntax:
		return "invalid_syntax"
	case KindAmbiguous:
		return "ambiguous_date"
	case KindMonthRange:
		return "month_out_of_range"
	case KindDayRange:
		return "day_out_of_range"
	case KindLeapDay:
		return "invalid_leap_day"
	case KindTimeRange:
		return "time_out_of_range"
	case KindZoneRange:
		return "offset_out_of_range"
	case KindIntervalOrder:
		return "inverted_interval"
	default:
		return "unknown"
	}
}

func (k Kind) message() string {
	switch k {
	case KindAmbiguous:
		return "day-first dates are ambiguous, use YYYY-MM-DD"
	case KindMonthRange:
		return "month is out of range"
	case KindDayRange:
		return "day is out of range for month"
	case KindLeapDay:
		return "day is out of range for month of February on non-leap year"
	case KindTimeRange:
		return "time of day is out of range"
	case KindZoneRange:
		return "UTC offset is out of range"
	case KindIntervalOrder:
		return "interval ends before it starts"
	default:
		return "not a valid EDTF level 0 string"
	}
}

// ParseError reports a rejected input. It unwraps to ErrInvalid.
type ParseError struct {
	Input string
	Kind  Kind
	// Level is set when the input is valid EDTF above level 0.
	Level int
}

func (e *ParseError) Error() string {
	if e.Level > 0 {
		return fmt.Sprintf("%q: EDTF level %d is not supported, only level 0", e.Input, e.Level)
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Kind.message())
}

func (e *ParseError) Unwrap() error {
	return ErrInvalid
}

// KindOf returns the Kind of a *ParseError in err's chain, or KindNone.
func KindOf(err error) Kind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindNone
}
