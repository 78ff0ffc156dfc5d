// Package datefmt renders EDTF level 0 values as localized, human-readable
// dates and date ranges.
//
// Single dates of day precision use the locale's date format for the chosen
// style. Year and month precision dates, and intervals, go through a CLDR
// style skeleton picked from the value's precision:
//
//	precision  full        long    medium  short
//	year       y           y       y       y
//	month      yMMMM       yMMMM   yMMM    yM
//	day        EEEEyMMMMd  yMMMMd  yMMMd   yMd
//
// Any format that is not a style name is used as a skeleton when the locale
// knows it, and otherwise as a literal CLDR date pattern.
package datefmt

import (
	"fmt"

	"github.com/julianstephens/edtfloc/pkg/edtf"
)

// Style is one of the four predefined format lengths.
type Style string

const (
	StyleFull   Style = "full"
	StyleLong   Style = "long"
	StyleMedium Style = "medium"
	StyleShort  Style = "short"

	DefaultStyle = StyleMedium
)

// Styles lists the predefined styles from longest to shortest.
var Styles = []Style{StyleFull, StyleLong, StyleMedium, StyleShort}

// IsStyle reports whether s names a predefined style.
func IsStyle(s string) bool {
	_, ok := ParseStyle(s)
	return ok
}

// ParseStyle returns the Style named by s.
func ParseStyle(s string) (Style, bool) {
	switch Style(s) {
	case StyleFull, StyleLong, StyleMedium, StyleShort:
		return Style(s), true
	}
	return "", false
}

var skeletons = map[edtf.Precision]map[Style]string{
	edtf.PrecisionYear: {
		StyleFull:   "y",
		StyleLong:   "y",
		StyleMedium: "y",
		StyleShort:  "y",
	},
	edtf.PrecisionMonth: {
		StyleFull:   "yMMMM",
		StyleLong:   "yMMMM",
		StyleMedium: "yMMM",
		StyleShort:  "yM",
	},
	edtf.PrecisionDay: {
		StyleFull:   "EEEEyMMMMd",
		StyleLong:   "yMMMMd",
		StyleMedium: "yMMMd",
		StyleShort:  "yMd",
	},
}

// Skeleton returns the date skeleton for a precision and style. Second
// precision shares the day skeletons.
func Skeleton(p edtf.Precision, style Style) (string, error) {
	if p == edtf.PrecisionSecond {
		p = edtf.PrecisionDay
	}
	byStyle, ok := skeletons[p]
	if !ok {
		return "", fmt.Errorf("no skeleton for precision %v", p)
	}
	sk, ok := byStyle[style]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
	}
	return sk, nil
}
