package edtf

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		input string
		lower time.Time
		upper time.Time
	}{
		{input: "2004", lower: day(2004, time.January, 1), upper: day(2004, time.December, 31)},
		{input: "2004-02", lower: day(2004, time.February, 1), upper: day(2004, time.February, 29)},
		{input: "2003-02", lower: day(2003, time.February, 1), upper: day(2003, time.February, 28)},
		{input: "2004-06", lower: day(2004, time.June, 1), upper: day(2004, time.June, 30)},
		{input: "2004-06-05", lower: day(2004, time.June, 5), upper: day(2004, time.June, 5)},
		{input: "2004/2006-08", lower: day(2004, time.January, 1), upper: day(2006, time.August, 31)},
		{input: "2004-06-05T10:11:12Z", lower: time.Date(2004, time.June, 5, 10, 11, 12, 0, time.UTC), upper: time.Date(2004, time.June, 5, 10, 11, 12, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v := MustParse(tt.input)

			lower, err := ToTime(v, BoundLower)
			if err != nil {
				t.Fatalf("ToTime(lower) error = %v", err)
			}
			if !lower.Equal(tt.lower) {
				t.Errorf("lower = %v, want %v", lower, tt.lower)
			}

			upper, err := ToTime(v, BoundUpper)
			if err != nil {
				t.Fatalf("ToTime(upper) error = %v", err)
			}
			if !upper.Equal(tt.upper) {
				t.Errorf("upper = %v, want %v", upper, tt.upper)
			}
		})
	}
}

func TestToTimeErrors(t *testing.T) {
	if _, err := ToTime(MustParse("2004"), Bound("middle")); !errors.Is(err, ErrInvalidBound) {
		t.Errorf("ToTime with bad bound error = %v, want ErrInvalidBound", err)
	}
	if _, err := ToTime(nil, BoundLower); !errors.Is(err, ErrNilValue) {
		t.Errorf("ToTime(nil) error = %v, want ErrNilValue", err)
	}
}

func TestIntervalPrecision(t *testing.T) {
	tests := []struct {
		input string
		want  Precision
	}{
		{"2004/2006", PrecisionYear},
		{"2004-06/2006", PrecisionMonth},
		{"2004/2006-08", PrecisionMonth},
		{"2004-06/2006-08-01", PrecisionDay},
		{"2004-06-01/2006", PrecisionDay},
	}

	for _, tt := range tests {
		iv, err := ParseInterval(tt.input)
		if err != nil {
			t.Fatalf("ParseInterval(%q) error = %v", tt.input, err)
		}
		if got := iv.Precision(); got != tt.want {
			t.Errorf("%s: Precision() = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewDate(t *testing.T) {
	d, err := NewDate(2024, 2, 29)
	if err != nil {
		t.Fatalf("NewDate(2024-02-29) error = %v", err)
	}
	if d.String() != "2024-02-29" {
		t.Errorf("String() = %q", d.String())
	}

	if _, err := NewDate(2023, 2, 29); KindOf(err) != KindLeapDay {
		t.Errorf("NewDate(2023-02-29) kind = %v, want %v", KindOf(err), KindLeapDay)
	}
	if _, err := NewDate(2023, 0, 1); err == nil {
		t.Error("NewDate accepted month 0")
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2004, 1, 31},
		{2004, 2, 29},
		{2003, 2, 28},
		{1900, 2, 28},
		{2000, 2, 29},
		{2004, 4, 30},
		{2004, 12, 31},
	}
	for _, tt := range tests {
		if got := DaysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestParsePrecision(t *testing.T) {
	for _, p := range []Precision{PrecisionYear, PrecisionMonth, PrecisionDay, PrecisionSecond} {
		got, err := ParsePrecision(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePrecision(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePrecision("week"); err == nil {
		t.Error("ParsePrecision accepted week")
	}
}
