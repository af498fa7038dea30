package formhelpers_test

import (
	"io/fs"
	"testing"

	"github.com/google/go-cmp/cmp"

	formhelpers "github.com/goliatone/go-formhelpers"
	"github.com/goliatone/go-formhelpers/pkg/template/gotemplate"
)

func TestNewRegistersServices(t *testing.T) {
	helpers, err := formhelpers.New(formhelpers.Config{Locales: []string{"en", "sv"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if diff := cmp.Diff([]string{"form", "html"}, helpers.List()); diff != "" {
		t.Fatalf("services mismatch (-want +got):\n%s", diff)
	}
	if got := helpers.Config().DefaultLocale; got != "en" {
		t.Fatalf("expected default locale en, got %q", got)
	}

	f := helpers.Form().Bind(map[string]any{
		"translatedAttributes": []string{"title"},
		"translations":         map[string]any{"sv": map[string]any{"title": "Hej"}},
	})
	got := f.Text("title_sv", nil, formhelpers.Attrs{"class": "form-control"})
	if want := `<input class="form-control" name="title_sv" type="text" value="Hej">`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}

	errs := formhelpers.Errors{"title_sv": {"Required"}}
	if got := helpers.Form().OpenGroup(errs.Has("title_sv")); got != `<div class="form-group has-error">` {
		t.Fatalf("unexpected group %s", got)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := formhelpers.New(formhelpers.Config{}); err == nil {
		t.Fatalf("expected error without locales")
	}
}

func TestBootEmbeddedTemplates(t *testing.T) {
	helpers, err := formhelpers.New(formhelpers.Config{Locales: []string{"en"}})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if _, err := fs.Stat(formhelpers.EmbeddedTemplates(), "layout.tpl"); err != nil {
		t.Fatalf("layout template missing: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(formhelpers.EmbeddedTemplates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := helpers.Boot(engine); err != nil {
		t.Fatalf("boot: %v", err)
	}

	got, err := engine.RenderString(`{{ html.Close("div")|safe }}{{ current_locale(default_locale) }}`, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "</div>en" {
		t.Fatalf("unexpected output %q", got)
	}
}
