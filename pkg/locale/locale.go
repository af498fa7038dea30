package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Separator joins a field name and a locale code.
const Separator = "_"

// ErrInvalidLocale is returned when a configured code is not a valid BCP 47 tag.
var ErrInvalidLocale = errors.New("locale: invalid locale code")

// Registry supplies the ordered list of configured locale codes.
type Registry interface {
	Locales() []string
}

// Static is an in-memory Registry. The slice order is the registry order.
type Static []string

var _ Registry = Static(nil)

// New builds a Static registry, trimming codes and dropping empty entries and
// duplicates while preserving the first occurrence order.
func New(codes ...string) Static {
	out := make(Static, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if _, exists := seen[code]; exists {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Parse behaves like New but rejects codes that are not valid language tags.
// Codes are kept verbatim; they are never canonicalised since suffix matching
// compares them byte for byte.
func Parse(codes ...string) (Static, error) {
	static := New(codes...)
	for _, code := range static {
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidLocale, code, err)
		}
	}
	return static, nil
}

// Locales returns a copy of the configured codes.
func (s Static) Locales() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Tags parses the registry codes into language tags, skipping invalid ones.
func (s Static) Tags() []language.Tag {
	tags := make([]language.Tag, 0, len(s))
	for _, code := range s {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// Match picks the configured locale that best satisfies an Accept-Language
// header value. It returns the default locale when nothing matches.
func (s Static) Match(acceptLanguage string) string {
	if len(s) == 0 {
		return ""
	}
	codes := make([]string, 0, len(s))
	tags := make([]language.Tag, 0, len(s))
	for _, code := range s {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return s[0]
	}

	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return s[0]
	}

	_, index, confidence := language.NewMatcher(tags).Match(desired...)
	if confidence == language.No || index < 0 || index >= len(codes) {
		return s[0]
	}
	return codes[index]
}

// Default returns the first locale or an empty string.
func Default(locales []string) string {
	if len(locales) == 0 {
		return ""
	}
	return locales[0]
}

// IsDefault reports whether code is the first configured locale.
func IsDefault(code string, locales []string) bool {
	return len(locales) > 0 && code == locales[0]
}

// Contains reports whether code is one of the configured locales.
func Contains(code string, locales []string) bool {
	for _, candidate := range locales {
		if candidate == code {
			return true
		}
	}
	return false
}

// Suffix appends the locale suffix to name. An empty code leaves name as is.
func Suffix(name, code string) string {
	if code == "" {
		return name
	}
	return name + Separator + code
}

// StripSuffix removes "_"+code from the end of name.
func StripSuffix(name, code string) (string, bool) {
	if code == "" {
		return name, false
	}
	suffix := Separator + code
	if !strings.HasSuffix(name, suffix) {
		return name, false
	}
	return strings.TrimSuffix(name, suffix), true
}

// MatchSuffix finds the first locale, in registry order, whose suffix ends
// name. Scanning stops at the first match.
func MatchSuffix(name string, locales []string) (base, code string, ok bool) {
	for _, candidate := range locales {
		if stripped, matched := StripSuffix(name, candidate); matched {
			return stripped, candidate, true
		}
	}
	return name, "", false
}
