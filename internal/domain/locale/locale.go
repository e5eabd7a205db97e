// Package locale parses, canonicalizes and negotiates BCP 47 locale tags.
package locale

import (
	"strings"

	"contactdesk/internal/errors"

	"golang.org/x/text/language"
)

// Canonicalize parses raw as a BCP 47 tag and returns its canonical form,
// so "FR" becomes "fr" and "pt-br" becomes "pt-BR".
func Canonicalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("locale is empty")
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", errors.Wrapf(err, "invalid locale %q", raw)
	}

	return tag.String(), nil
}

// Same reports whether two stored or submitted locales name the same tag.
// Values that do not parse are compared case-insensitively.
func Same(a, b string) bool {
	ca, errA := Canonicalize(a)
	cb, errB := Canonicalize(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}

	return ca == cb
}

// Resolver picks one of the published locales for a reader.
type Resolver struct {
	supported []string
	matcher   language.Matcher
}

// NewResolver builds a resolver whose fallback is def. def is always treated as supported.
func NewResolver(def string, supported []string) (*Resolver, error) {
	canonicalDefault, err := Canonicalize(def)
	if err != nil {
		return nil, errors.Wrap(err, "default locale")
	}

	names := []string{canonicalDefault}
	tags := []language.Tag{language.MustParse(canonicalDefault)}
	for _, raw := range supported {
		name, err := Canonicalize(raw)
		if err != nil {
			return nil, errors.Wrap(err, "supported locale")
		}
		if name == canonicalDefault || contains(names, name) {
			continue
		}
		names = append(names, name)
		tags = append(tags, language.MustParse(name))
	}

	return &Resolver{
		supported: names,
		matcher:   language.NewMatcher(tags),
	}, nil
}

// Default returns the fallback locale.
func (r *Resolver) Default() string {
	return r.supported[0]
}

// Supported returns every published locale, default first.
func (r *Resolver) Supported() []string {
	out := make([]string, len(r.supported))
	copy(out, r.supported)

	return out
}

// IsSupported reports whether locale is published as is.
func (r *Resolver) IsSupported(locale string) bool {
	name, err := Canonicalize(locale)
	if err != nil {
		return false
	}

	return contains(r.supported, name)
}

// Resolve chooses a locale from an explicit request, then from an
// Accept-Language header, falling back to the default.
func (r *Resolver) Resolve(requested, acceptLanguage string) string {
	if strings.TrimSpace(requested) != "" {
		tag, err := language.Parse(strings.TrimSpace(requested))
		if err != nil {
			return r.Default()
		}

		return r.match(tag)
	}

	if strings.TrimSpace(acceptLanguage) != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			return r.match(tags...)
		}
	}

	return r.Default()
}

func (r *Resolver) match(tags ...language.Tag) string {
	_, index, confidence := r.matcher.Match(tags...)
	if confidence == language.No {
		return r.Default()
	}

	return r.supported[index]
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}
