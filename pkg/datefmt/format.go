package datefmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"

	"github.com/julianstephens/edtfloc/pkg/edtf"
)

// Formatter renders EDTF values for one locale.
type Formatter struct {
	Locale Locale
	// Now supplies "today" for empty input. Defaults to time.Now.
	Now func() time.Time
}

// NewFormatter returns a Formatter for the locale identifier. An empty
// identifier uses DefaultLocale.
func NewFormatter(locale string) (*Formatter, error) {
	l, err := ResolveLocale(locale)
	if err != nil {
		return nil, err
	}
	return &Formatter{Locale: l, Now: time.Now}, nil
}

// FormatEDTF formats an EDTF level 0 string. format is a style name, a
// skeleton or a CLDR date pattern; empty means medium.
func FormatEDTF(input, format, locale string) (string, error) {
	f, err := NewFormatter(locale)
	if err != nil {
		return "", err
	}
	return f.Format(input, format)
}

// Format parses input and formats it. Empty input formats today's date.
func (f *Formatter) Format(input, format string) (string, error) {
	if input == "" {
		return f.FormatValue(edtf.DateOf(f.now()), format)
	}
	v, err := edtf.Parse(input)
	if err != nil {
		return "", err
	}
	return f.FormatValue(v, format)
}

// FormatValue formats a parsed value.
func (f *Formatter) FormatValue(v edtf.Value, format string) (string, error) {
	choice := resolveFormat(format)
	switch v := v.(type) {
	case edtf.Date:
		return f.formatDate(v, choice)
	case edtf.DateAndTime:
		return f.formatDateAndTime(v, choice)
	case edtf.Interval:
		return f.formatInterval(v, choice)
	case nil:
		return "", edtf.ErrNilValue
	default:
		return "", fmt.Errorf("unsupported EDTF value %T", v)
	}
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func (f *Formatter) locale() Locale {
	if f.Locale.profile == nil {
		return MustResolveLocale(FallbackLocale)
	}
	return f.Locale
}

// formatChoice is a resolved format argument: either a style or a raw
// skeleton/pattern.
type formatChoice struct {
	style   Style
	isStyle bool
	raw     string
}

func resolveFormat(format string) formatChoice {
	if format == "" {
		return formatChoice{style: DefaultStyle, isStyle: true}
	}
	if s, ok := ParseStyle(format); ok {
		return formatChoice{style: s, isStyle: true}
	}
	return formatChoice{raw: format}
}

func (s formatChoice) skeleton(p edtf.Precision) (string, error) {
	if !s.isStyle {
		return s.raw, nil
	}
	return Skeleton(p, s.style)
}

func (f *Formatter) formatDate(d edtf.Date, choice formatChoice) (string, error) {
	loc := f.locale()
	t := d.Lower()
	if choice.isStyle && d.Precision() == edtf.PrecisionDay {
		return monday.Format(t, loc.profile.dates[choice.style], loc.names()), nil
	}
	skeleton, err := choice.skeleton(d.Precision())
	if err != nil {
		return "", err
	}
	render, _, err := f.compile(skeleton)
	if err != nil {
		return "", err
	}
	return render(t), nil
}

func (f *Formatter) formatDateAndTime(dt edtf.DateAndTime, choice formatChoice) (string, error) {
	loc := f.locale()
	t := dt.Time()
	if !choice.isStyle {
		render, _, err := f.compile(choice.raw)
		if err != nil {
			return "", err
		}
		return render(t), nil
	}

	date := monday.Format(t, loc.profile.dates[choice.style], loc.names())
	clock := monday.Format(t, loc.profile.times[choice.style], loc.names())
	glue := loc.profile.dateTimeShort
	if choice.style == StyleFull || choice.style == StyleLong {
		glue = loc.profile.dateTimeLong
		if dt.Zone != nil {
			clock += " " + zoneName(*dt.Zone)
		}
	}
	return strings.NewReplacer("{date}", date, "{time}", clock).Replace(glue), nil
}

func (f *Formatter) formatInterval(iv edtf.Interval, choice formatChoice) (string, error) {
	loc := f.locale()
	start, end := iv.Start.Lower(), iv.End.Upper()

	skeleton, err := choice.skeleton(iv.Precision())
	if err != nil {
		return "", err
	}
	render, finest, err := f.compile(skeleton)
	if err != nil {
		return "", err
	}

	limit := precisionField(iv.Precision())
	if finest < limit {
		limit = finest
	}
	diff := greatestDifference(start, end, limit)
	if diff == fieldNone {
		return render(start), nil
	}
	if il, ok := loc.profile.intervals[skeleton][diff]; ok {
		names := loc.names()
		return monday.Format(start, il.start, names) + loc.profile.separator + monday.Format(end, il.end, names), nil
	}
	return render(start) + loc.profile.separator + render(end), nil
}

// compile returns a renderer for a skeleton the locale knows, or for a
// literal CLDR pattern, along with the finest field it prints.
func (f *Formatter) compile(skeleton string) (func(time.Time) string, field, error) {
	loc := f.locale()
	names := loc.names()
	if layout, ok := loc.profile.skeletons[skeleton]; ok {
		return func(t time.Time) string {
			return monday.Format(t, layout, names)
		}, skeletonField(skeleton), nil
	}
	p, err := compilePattern(skeleton)
	if err != nil {
		return nil, fieldNone, err
	}
	return func(t time.Time) string {
		return p.render(t, names)
	}, p.finestField(), nil
}

func skeletonField(skeleton string) field {
	switch {
	case strings.ContainsRune(skeleton, 'd'):
		return fieldDay
	case strings.ContainsRune(skeleton, 'M'):
		return fieldMonth
	default:
		return fieldYear
	}
}

func precisionField(p edtf.Precision) field {
	switch p {
	case edtf.PrecisionYear:
		return fieldYear
	case edtf.PrecisionMonth:
		return fieldMonth
	default:
		return fieldDay
	}
}

// greatestDifference returns the coarsest field, no finer than limit, in
// which a and b differ.
func greatestDifference(a, b time.Time, limit field) field {
	switch {
	case a.Year() != b.Year():
		return fieldYear
	case limit >= fieldMonth && a.Month() != b.Month():
		return fieldMonth
	case limit >= fieldDay && a.Day() != b.Day():
		return fieldDay
	}
	return fieldNone
}

func zoneName(z edtf.Zone) string {
	if z.UTC || z.Offset == 0 {
		return "UTC"
	}
	return "UTC" + z.String()
}

// ValidateFormat checks that format is empty, a style name, or a pattern
// the formatter can render.
func ValidateFormat(format string) error {
	if format == "" || IsStyle(format) {
		return nil
	}
	_, err := compilePattern(format)
	return err
}
