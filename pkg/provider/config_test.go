package provider_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelpers/pkg/locale"
	"github.com/goliatone/go-formhelpers/pkg/provider"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join("testdata", "formhelpers.yaml")
	cfg, err := provider.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	want := provider.Config{
		Locales:       []string{"en", "sv", "de"},
		DefaultLocale: "en",
		MessageFiles:  []string{"lang/active.de.yaml", "lang/active.en.yaml"},
		MessageMarkup: true,
		BaseDir:       "testdata",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := provider.ParseConfig([]byte("locales: [' sv ', en, sv]\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if diff := cmp.Diff([]string{"sv", "en"}, cfg.Locales); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
	if cfg.DefaultLocale != "sv" {
		t.Fatalf("default locale should be the first locale, got %q", cfg.DefaultLocale)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		target error
	}{
		{"no locales", "default_locale: en\n", provider.ErrNoLocales},
		{"invalid locale", "locales: [en, 'not a locale']\n", locale.ErrInvalidLocale},
		{"unknown default", "locales: [en]\ndefault_locale: sv\n", nil},
		{"bad yaml", "locales: [en\n", nil},
	}
	for _, tc := range cases {
		_, err := provider.ParseConfig([]byte(tc.input))
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if tc.target != nil && !errors.Is(err, tc.target) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.target, err)
		}
	}
}
