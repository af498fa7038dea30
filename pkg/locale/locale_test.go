package locale_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

func TestNewDropsEmptyAndDuplicateCodes(t *testing.T) {
	got := locale.New(" en ", "", "sv", "en").Locales()
	if diff := cmp.Diff([]string{"en", "sv"}, got); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsInvalidCodes(t *testing.T) {
	if _, err := locale.Parse("en", "not a locale"); !errors.Is(err, locale.ErrInvalidLocale) {
		t.Fatalf("expected ErrInvalidLocale, got %v", err)
	}

	static, err := locale.Parse("en", "pt-BR")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"en", "pt-BR"}, static.Locales()); diff != "" {
		t.Fatalf("codes must be kept verbatim (-want +got):\n%s", diff)
	}
}

func TestTagsSkipsInvalidCodes(t *testing.T) {
	got := locale.New("en", "not a locale", "pt-BR").Tags()
	want := []language.Tag{language.English, language.BrazilianPortuguese}
	if len(got) != len(want) {
		t.Fatalf("tags = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tag %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestStripSuffixRoundTrip(t *testing.T) {
	locales := []string{"en", "sv", "pt-BR"}
	for _, field := range []string{"title", "address.street", "body_text"} {
		for _, code := range locales {
			got, ok := locale.StripSuffix(locale.Suffix(field, code), code)
			if !ok || got != field {
				t.Fatalf("strip(%q, %q) = %q, %v", locale.Suffix(field, code), code, got, ok)
			}
		}
	}
}

func TestStripSuffixOnlyMatchesWholeLocale(t *testing.T) {
	if _, ok := locale.StripSuffix("titlesv", "sv"); ok {
		t.Fatalf("suffix without separator must not match")
	}
	if _, ok := locale.StripSuffix("title_sv", ""); ok {
		t.Fatalf("empty locale must never match")
	}
}

func TestMatchSuffixStopsAtFirstLocale(t *testing.T) {
	base, code, ok := locale.MatchSuffix("name_sv", []string{"en", "sv"})
	if !ok || base != "name" || code != "sv" {
		t.Fatalf("unexpected match: %q %q %v", base, code, ok)
	}

	// "x_a_b" ends with both "_b" and "_a_b"; registry order decides.
	base, code, ok = locale.MatchSuffix("x_a_b", []string{"b", "a_b"})
	if !ok || base != "x_a" || code != "b" {
		t.Fatalf("expected first configured locale to win, got %q %q", base, code)
	}

	if _, _, ok := locale.MatchSuffix("name", []string{"en", "sv"}); ok {
		t.Fatalf("expected no match for unsuffixed name")
	}
}

func TestDefaultAndIsDefault(t *testing.T) {
	locales := []string{"en", "sv"}
	if locale.Default(locales) != "en" {
		t.Fatalf("expected en as default")
	}
	if !locale.IsDefault("en", locales) || locale.IsDefault("sv", locales) {
		t.Fatalf("unexpected default detection")
	}
	if locale.Default(nil) != "" || locale.IsDefault("", nil) {
		t.Fatalf("empty registry has no default")
	}
}

func TestMatchAcceptLanguage(t *testing.T) {
	static := locale.New("en", "sv")
	if got := static.Match("sv-SE,sv;q=0.9,en;q=0.5"); got != "sv" {
		t.Fatalf("expected sv, got %q", got)
	}
	if got := static.Match(""); got != "en" {
		t.Fatalf("expected default for empty header, got %q", got)
	}
}
