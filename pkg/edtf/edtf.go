// Package edtf models Extended Date/Time Format level 0 values: calendar
// dates of year, month or day precision, dates with a time of day, and
// intervals between two dates.
package edtf

import (
	"fmt"
	"time"
)

// Precision is the finest calendar unit a value specifies.
type Precision int

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
	PrecisionSecond
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionSecond:
		return "second"
	default:
		return "unknown"
	}
}

// Finer reports whether p is a finer precision than other.
func (p Precision) Finer(other Precision) bool {
	return p > other
}

// ParsePrecision parses one of "year", "month", "day" or "second".
func ParsePrecision(s string) (Precision, error) {
	switch s {
	case "year":
		return PrecisionYear, nil
	case "month":
		return PrecisionMonth, nil
	case "day":
		return PrecisionDay, nil
	case "second":
		return PrecisionSecond, nil
	}
	return 0, fmt.Errorf("unknown precision %q (expected year, month, day or second)", s)
}

// Value is a parsed EDTF level 0 expression: a Date, DateAndTime or Interval.
type Value interface {
	// String returns the canonical, zero-padded EDTF form.
	String() string
	Precision() Precision
	// Lower returns the earliest instant covered by the value.
	Lower() time.Time
	// Upper returns the start of the last day (or the instant, for
	// DateAndTime) covered by the value.
	Upper() time.Time

	value()
}

// Bound selects which end of a value ToTime converts.
type Bound string

const (
	BoundLower Bound = "lower"
	BoundUpper Bound = "upper"
)

// ToTime converts v to a time using its strict lower or upper bound.
func ToTime(v Value, b Bound) (time.Time, error) {
	if v == nil {
		return time.Time{}, ErrNilValue
	}
	switch b {
	case BoundLower:
		return v.Lower(), nil
	case BoundUpper:
		return v.Upper(), nil
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidBound, string(b))
}

// Date is a calendar date. A zero Day means month precision and a zero
// Month means year precision.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns a day-precision date after checking it exists.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if month < 1 || day < 1 {
		return Date{}, &ParseError{Input: d.String(), Kind: KindDayRange}
	}
	if kind := d.check(); kind != KindNone {
		return Date{}, &ParseError{Input: d.String(), Kind: kind}
	}
	return d, nil
}

// DateOf returns the day-precision date of t in t's location.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (Date) value() {}

func (d Date) Precision() Precision {
	switch {
	case d.Month == 0:
		return PrecisionYear
	case d.Day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

func (d Date) String() string {
	switch d.Precision() {
	case PrecisionYear:
		return fmt.Sprintf("%04d", d.Year)
	case PrecisionMonth:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Lower returns midnight UTC on the first day of the period.
func (d Date) Lower() time.Time {
	month, day := d.Month, d.Day
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Upper returns midnight UTC on the last day of the period.
func (d Date) Upper() time.Time {
	switch d.Precision() {
	case PrecisionYear:
		return time.Date(d.Year, time.December, 31, 0, 0, 0, 0, time.UTC)
	case PrecisionMonth:
		return time.Date(d.Year, time.Month(d.Month), DaysInMonth(d.Year, d.Month), 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	}
}

func (d Date) check() Kind {
	if d.Year < 0 || d.Year > 9999 {
		return KindSyntax
	}
	if d.Month < 0 || d.Month > 12 || (d.Month == 0 && d.Day != 0) {
		return KindMonthRange
	}
	if d.Day != 0 {
		if d.Month == 2 && d.Day == 29 && !IsLeapYear(d.Year) {
			return KindLeapDay
		}
		if d.Day < 0 || d.Day > DaysInMonth(d.Year, d.Month) {
			return KindDayRange
		}
	}
	return KindNone
}

// Zone is the UTC offset of a DateAndTime. UTC is set for a trailing "Z".
type Zone struct {
	UTC    bool
	Offset int // seconds east of UTC
}

func (z Zone) String() string {
	if z.UTC {
		return "Z"
	}
	sign := '+'
	off := z.Offset
	if off < 0 {
		sign = '-'
		off = -off
	}
	return fmt.Sprintf("%c%02d:%02d", sign, off/3600, off%3600/60)
}

// Location returns a fixed time.Location for the zone.
func (z Zone) Location() *time.Location {
	if z.UTC || z.Offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", z.Offset)
}

// DateAndTime is a day-precision date with a time of day. A nil Zone means
// local (floating) time.
type DateAndTime struct {
	Date   Date
	Hour   int
	Minute int
	Second int
	Zone   *Zone
}

func (DateAndTime) value() {}

func (dt DateAndTime) Precision() Precision { return PrecisionSecond }

func (dt DateAndTime) String() string {
	s := fmt.Sprintf("%sT%02d:%02d:%02d", dt.Date.String(), dt.Hour, dt.Minute, dt.Second)
	if dt.Zone != nil {
		s += dt.Zone.String()
	}
	return s
}

// Time returns the instant. Floating times are placed in UTC.
func (dt DateAndTime) Time() time.Time {
	loc := time.UTC
	if dt.Zone != nil {
		loc = dt.Zone.Location()
	}
	return time.Date(dt.Date.Year, time.Month(dt.Date.Month), dt.Date.Day, dt.Hour, dt.Minute, dt.Second, 0, loc)
}

func (dt DateAndTime) Lower() time.Time { return dt.Time() }

func (dt DateAndTime) Upper() time.Time { return dt.Time() }

func (dt DateAndTime) check() Kind {
	if dt.Date.Day == 0 {
		return KindDayRange
	}
	if kind := dt.Date.check(); kind != KindNone {
		return kind
	}
	if dt.Hour < 0 || dt.Hour > 23 || dt.Minute < 0 || dt.Minute > 59 || dt.Second < 0 || dt.Second > 59 {
		return KindTimeRange
	}
	if dt.Zone != nil && !dt.Zone.UTC {
		off := dt.Zone.Offset
		if off < 0 {
			off = -off
		}
		if off > 14*3600 {
			return KindZoneRange
		}
	}
	return KindNone
}

// Interval spans from the start of Start to the end of End.
type Interval struct {
	Start Date
	End   Date
}

func (Interval) value() {}

func (iv Interval) String() string {
	return iv.Start.String() + "/" + iv.End.String()
}

// Precision returns the finest precision of the two ends.
func (iv Interval) Precision() Precision {
	if iv.End.Precision().Finer(iv.Start.Precision()) {
		return iv.End.Precision()
	}
	return iv.Start.Precision()
}

func (iv Interval) Lower() time.Time { return iv.Start.Lower() }

func (iv Interval) Upper() time.Time { return iv.End.Upper() }

func (iv Interval) check() Kind {
	if kind := iv.Start.check(); kind != KindNone {
		return kind
	}
	if kind := iv.End.check(); kind != KindNone {
		return kind
	}
	if iv.Start.Lower().After(iv.End.Upper()) {
		return KindIntervalOrder
	}
	return KindNone
}

// IsLeapYear reports whether year has a 29 February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}
