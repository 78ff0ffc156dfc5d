package datefmt

import (
	"fmt"
	"os"
	"strings"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// FallbackLocale is used when the environment names no usable locale.
const FallbackLocale = "en_US"

// Locale is a supported formatting locale.
type Locale struct {
	// ID is the POSIX-style identifier, e.g. "fr_FR".
	ID  string
	Tag language.Tag

	profile *profile
}

func (l Locale) String() string { return l.ID }

func (l Locale) names() monday.Locale { return monday.Locale(l.ID) }

var (
	supportedTags = func() []language.Tag {
		tags := make([]language.Tag, len(profiles))
		for i, p := range profiles {
			tags[i] = language.MustParse(p.tag)
		}
		return tags
	}()
	matcher = language.NewMatcher(supportedTags)
)

// Locales returns every supported locale, en_US first.
func Locales() []Locale {
	out := make([]Locale, len(profiles))
	for i, p := range profiles {
		out[i] = Locale{ID: p.id, Tag: supportedTags[i], profile: p}
	}
	return out
}

// ResolveLocale maps a locale identifier such as "fr", "fr_FR", "fr-FR" or
// "fr_FR.UTF-8" onto the closest supported locale. An empty identifier
// resolves to DefaultLocale.
func ResolveLocale(id string) (Locale, error) {
	if id == "" {
		return DefaultLocale(), nil
	}
	tag, err := language.Parse(normalizeLocaleID(id))
	if err != nil {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id)
	}
	p := profiles[idx]
	return Locale{ID: p.id, Tag: supportedTags[idx], profile: p}, nil
}

// MustResolveLocale is like ResolveLocale but panics on error.
func MustResolveLocale(id string) Locale {
	l, err := ResolveLocale(id)
	if err != nil {
		panic(err)
	}
	return l
}

// DefaultLocale picks the locale from LANGUAGE, LC_ALL, LC_TIME and LANG,
// in that order, falling back to en_US.
func DefaultLocale() Locale {
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_TIME", "LANG"} {
		v := os.Getenv(key)
		if key == "LANGUAGE" {
			v, _, _ = strings.Cut(v, ":")
		}
		if v == "" {
			continue
		}
		if l, err := ResolveLocale(v); err == nil {
			return l
		}
	}
	return MustResolveLocale(FallbackLocale)
}

// normalizeLocaleID strips POSIX codeset and modifier suffixes and maps the
// C locale onto US English.
func normalizeLocaleID(id string) string {
	id, _, _ = strings.Cut(id, ".")
	id, _, _ = strings.Cut(id, "@")
	if id == "C" || id == "POSIX" {
		return "en-US"
	}
	return strings.ReplaceAll(id, "_", "-")
}
