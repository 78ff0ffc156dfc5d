package datefmt

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// segment is either literal text or a single Go layout token.
type segment struct {
	text    string
	literal bool
}

// pattern is a compiled CLDR date pattern such as "d MMM y" or
// "EEEE 'the' d".
type pattern []segment

// compilePattern converts a CLDR date pattern into layout segments. Each
// run of a pattern letter becomes one token; quoted text and non-letters
// are kept literally and '' is a single quote, inside quotes too.
func compilePattern(src string) (pattern, error) {
	var (
		out  pattern
		lit  strings.Builder
		runs = []rune(src)
	)
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, segment{text: lit.String(), literal: true})
			lit.Reset()
		}
	}

	for i := 0; i < len(runs); i++ {
		r := runs[i]
		switch {
		case r == '\'':
			if i+1 < len(runs) && runs[i+1] == '\'' {
				lit.WriteRune('\'')
				i++
				continue
			}
			closed := false
			for i++; i < len(runs); i++ {
				if runs[i] != '\'' {
					lit.WriteRune(runs[i])
					continue
				}
				if i+1 < len(runs) && runs[i+1] == '\'' {
					lit.WriteRune('\'')
					i++
					continue
				}
				closed = true
				break
			}
			if !closed {
				return nil, &PatternError{Pattern: src, Unterminated: true}
			}
		case isPatternLetter(r):
			n := 1
			for i+n < len(runs) && runs[i+n] == r {
				n++
			}
			token, ok := layoutToken(r, n)
			if !ok {
				return nil, &PatternError{Pattern: src, Symbol: strings.Repeat(string(r), n)}
			}
			flush()
			out = append(out, segment{text: token})
			i += n - 1
		default:
			lit.WriteRune(r)
		}
	}
	flush()
	if len(out) == 0 {
		return nil, &PatternError{Pattern: src}
	}
	return out, nil
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// layoutToken maps a run of n pattern letters onto a Go layout token.
func layoutToken(r rune, n int) (string, bool) {
	switch r {
	case 'y':
		if n == 2 {
			return "06", true
		}
		return "2006", true
	case 'M', 'L':
		switch n {
		case 1:
			return "1", true
		case 2:
			return "01", true
		case 3:
			return "Jan", true
		default:
			return "January", true
		}
	case 'd':
		if n == 1 {
			return "2", true
		}
		return "02", true
	case 'E':
		if n <= 3 {
			return "Mon", true
		}
		return "Monday", true
	case 'H':
		return "15", true
	case 'h':
		if n == 1 {
			return "3", true
		}
		return "03", true
	case 'm':
		if n == 1 {
			return "4", true
		}
		return "04", true
	case 's':
		if n == 1 {
			return "5", true
		}
		return "05", true
	case 'a':
		return "PM", true
	}
	return "", false
}

// render formats t with the pattern. Field tokens are rendered one at a
// time so literal text never collides with layout tokens.
func (p pattern) render(t time.Time, locale monday.Locale) string {
	var b strings.Builder
	for _, seg := range p {
		if seg.literal {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(monday.Format(t, seg.text, locale))
	}
	return b.String()
}

// finestField reports the finest calendar field the pattern prints.
func (p pattern) finestField() field {
	finest := fieldNone
	for _, seg := range p {
		if seg.literal {
			continue
		}
		var f field
		switch seg.text {
		case "2006", "06":
			f = fieldYear
		case "1", "01", "Jan", "January":
			f = fieldMonth
		default:
			f = fieldDay
		}
		if f > finest {
			finest = f
		}
	}
	return finest
}
