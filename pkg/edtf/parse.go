package edtf

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sfomuseum/go-edtf/parser"
)

const (
	isoDateLayout    = "2006-01-02"
	zoneOffsetLength = len("+00:00")

	// supportedLevel is the only EDTF conformance level accepted.
	supportedLevel = 0
)

var (
	isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// Field layouts of level 0 values. They read components out of strings
	// the grammar accepted and explain strings it rejected.
	dateFields      = regexp.MustCompile(`^(\d{4})(?:-(\d{2})(?:-(\d{2}))?)?$`)
	dateTimeFields  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})(Z|[+-]\d{2}(?::\d{2})?)?$`)
	dayFirstPattern = regexp.MustCompile(`^\d{1,2}[-_/.]\d{1,2}[-_/.]\d{4}$`)
)

// Parse parses an EDTF level 0 date, date and time, or interval. Plain
// YYYY-MM-DD input goes through ParseISODate without consulting the
// grammar.
func Parse(s string) (Value, error) {
	if isoDatePattern.MatchString(s) {
		d, err := ParseISODate(s)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	if err := recognize(s); err != nil {
		return nil, err
	}
	v, err := decode(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseISODate parses a calendar date in the YYYY-MM-DD form.
func ParseISODate(s string) (Date, error) {
	if !isoDatePattern.MatchString(s) {
		return Date{}, &ParseError{Input: s, Kind: KindSyntax}
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		// time.Parse does not say why; let the grammar classify it.
		return ParseDate(s)
	}
	return DateOf(t), nil
}

// ParseDate parses a date of year (YYYY), month (YYYY-MM) or day
// (YYYY-MM-DD) precision.
func ParseDate(s string) (Date, error) {
	if err := recognize(s); err != nil {
		return Date{}, err
	}
	return decodeDate(s)
}

// ParseDateAndTime parses YYYY-MM-DDThh:mm:ss with an optional Z or
// ±hh[:mm] suffix.
func ParseDateAndTime(s string) (DateAndTime, error) {
	if err := recognize(s); err != nil {
		return DateAndTime{}, err
	}
	return decodeDateAndTime(s)
}

// ParseInterval parses two dates separated by a slash.
func ParseInterval(s string) (Interval, error) {
	if err := recognize(s); err != nil {
		return Interval{}, err
	}
	return decodeInterval(s)
}

// recognize runs s through the EDTF grammar and rejects anything above
// level 0. Rejected strings are classified so callers learn which field
// was wrong.
func recognize(s string) error {
	res, err := parser.ParseString(s)
	if err != nil {
		return &ParseError{Input: s, Kind: classify(s)}
	}
	if res.Level != supportedLevel {
		return &ParseError{Input: s, Kind: KindSyntax, Level: res.Level}
	}
	return nil
}

// classify explains a grammar rejection. Strings laid out like a level 0
// value get the Kind of their first out-of-range field.
func classify(s string) Kind {
	if dayFirstPattern.MatchString(s) {
		return KindAmbiguous
	}
	if _, err := decode(s); err != nil {
		return KindOf(err)
	}
	return KindSyntax
}

func decode(s string) (Value, error) {
	switch {
	case strings.Contains(s, "/"):
		return decodeInterval(s)
	case strings.Contains(s, "T"):
		return decodeDateAndTime(s)
	default:
		return decodeDate(s)
	}
}

func decodeDate(s string) (Date, error) {
	m := dateFields.FindStringSubmatch(s)
	if m == nil {
		return Date{}, &ParseError{Input: s, Kind: KindSyntax}
	}
	d := Date{Year: atoi(m[1])}
	if m[2] != "" {
		if d.Month = atoi(m[2]); d.Month == 0 {
			return Date{}, &ParseError{Input: s, Kind: KindMonthRange}
		}
	}
	if m[3] != "" {
		if d.Day = atoi(m[3]); d.Day == 0 {
			return Date{}, &ParseError{Input: s, Kind: KindDayRange}
		}
	}
	if kind := d.check(); kind != KindNone {
		return Date{}, &ParseError{Input: s, Kind: kind}
	}
	return d, nil
}

func decodeDateAndTime(s string) (DateAndTime, error) {
	m := dateTimeFields.FindStringSubmatch(s)
	if m == nil {
		return DateAndTime{}, &ParseError{Input: s, Kind: KindSyntax}
	}
	dt := DateAndTime{
		Date:   Date{Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])},
		Hour:   atoi(m[4]),
		Minute: atoi(m[5]),
		Second: atoi(m[6]),
	}
	if z := m[7]; z != "" {
		zone, ok := parseZone(z)
		if !ok {
			return DateAndTime{}, &ParseError{Input: s, Kind: KindZoneRange}
		}
		dt.Zone = zone
	}
	if kind := dt.check(); kind != KindNone {
		return DateAndTime{}, &ParseError{Input: s, Kind: kind}
	}
	return dt, nil
}

func decodeInterval(s string) (Interval, error) {
	start, end, ok := strings.Cut(s, "/")
	if !ok || start == "" || end == "" || strings.Contains(end, "/") {
		return Interval{}, &ParseError{Input: s, Kind: KindSyntax}
	}
	var iv Interval
	var err error
	if iv.Start, err = decodeDate(start); err != nil {
		return Interval{}, &ParseError{Input: s, Kind: KindOf(err)}
	}
	if iv.End, err = decodeDate(end); err != nil {
		return Interval{}, &ParseError{Input: s, Kind: KindOf(err)}
	}
	if kind := iv.check(); kind != KindNone {
		return Interval{}, &ParseError{Input: s, Kind: kind}
	}
	return iv, nil
}

// parseZone reads Z or ±hh[:mm]. A negative zero offset has no canonical
// form and is rejected.
func parseZone(z string) (*Zone, bool) {
	if z == "Z" {
		return &Zone{UTC: true}, true
	}
	sign := 1
	if z[0] == '-' {
		sign = -1
	}
	hours := atoi(z[1:3])
	minutes := 0
	if len(z) == zoneOffsetLength {
		minutes = atoi(z[4:6])
	}
	if minutes > 59 {
		return nil, false
	}
	if sign < 0 && hours == 0 && minutes == 0 {
		return nil, false
	}
	return &Zone{Offset: sign * (hours*3600 + minutes*60)}, true
}

// atoi is only called on regexp-matched digit runs.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
