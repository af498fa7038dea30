package markup_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/i18n"
	"github.com/goliatone/go-formhelpers/pkg/locale"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

func newBuilder() *markup.Builder {
	return markup.New(
		markup.WithLocales(locale.New("en", "sv")),
		markup.WithLabeler(i18n.Lookup{Translator: testsupport.StubTranslator{
			"locales.language.en": "English",
			"locales.language.sv": "Swedish",
		}}),
	)
}

func TestPrimitives(t *testing.T) {
	b := newBuilder()

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"label", b.Label("first_name", "", nil), `<label for="first_name">First Name</label>`},
		{"label text", b.Label("email", "E<mail>", markup.Attrs{"class": "control-label"}), `<label class="control-label" for="email">E&lt;mail&gt;</label>`},
		{"text", b.Text("title", "a&b", markup.Attrs{"class": "form-control"}), `<input class="form-control" name="title" type="text" value="a&amp;b">`},
		{"text empty", b.Text("title", nil, nil), `<input name="title" type="text">`},
		{"hidden", b.Hidden("token", "x", nil), `<input name="token" type="hidden" value="x">`},
		{"file", b.File("cover", markup.Attrs{"value": "x"}), `<input name="cover" type="file">`},
		{"checkbox", b.Checkbox("delete_cover", nil, false, nil), `<input name="delete_cover" type="checkbox" value="1">`},
		{"checkbox checked", b.Checkbox("agree", "yes", true, nil), `<input checked="checked" name="agree" type="checkbox" value="yes">`},
		{"link", b.Link("/a?b=1&c=2", "", nil), `<a href="/a?b=1&amp;c=2">/a?b=1&amp;c=2</a>`},
		{"image", b.Image("/img.png", "cover", markup.Attrs{"class": "thumbnail"}), `<img alt="cover" class="thumbnail" src="/img.png">`},
		{"open", b.Open("div", markup.Attrs{"class": "form-group"}), `<div class="form-group">`},
		{"close", b.Close("div"), `</div>`},
		{"span", b.Span("<x>", markup.Attrs{"class": "help-block"}), `<span class="help-block">&lt;x&gt;</span>`},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s mismatch\nwant: %s\n got: %s", tc.name, tc.want, tc.got)
		}
	}
}

func TestLabelDoesNotMutateCallerAttributes(t *testing.T) {
	attrs := markup.Attrs{"class": "x"}
	newBuilder().Label("name", "Name", attrs)
	if _, ok := attrs["for"]; ok {
		t.Fatalf("caller attributes must not be mutated")
	}
}

func TestNavTranslations(t *testing.T) {
	got := newBuilder().NavTranslations("title", markup.Attrs{"class": "nav nav-tabs"})
	want := `<ul class="nav nav-tabs">` +
		`<li class="active" role="presentation"><a data-toggle="tab" href="#title_en" role="tab">English</a></li>` +
		`<li role="presentation"><a data-toggle="tab" href="#title_sv" role="tab">Swedish</a></li>` +
		`</ul>`
	if got != want {
		t.Fatalf("nav mismatch\nwant: %s\n got: %s", want, got)
	}
	if n := strings.Count(got, "<li"); n != 2 {
		t.Fatalf("expected 2 list items, got %d", n)
	}
}

func TestNavTranslationsUsesRequestLabeler(t *testing.T) {
	b := newBuilder().ForLocale(i18n.Lookup{Translator: testsupport.StubTranslator{"locales.language.en": "Engelska"}})
	got := b.NavTranslations("title", nil)
	if !strings.Contains(got, ">Engelska<") {
		t.Fatalf("expected request labeler, got %s", got)
	}
	if !strings.Contains(got, ">locales.language.sv<") {
		t.Fatalf("expected key fallback for missing label, got %s", got)
	}
}

func TestOpenTranslationPane(t *testing.T) {
	b := newBuilder()

	got := b.OpenTranslationPane("title", "en", markup.Attrs{"class": "fade in"})
	want := `<div class="fade in tab-pane active" id="title_en" role="tabpanel">`
	if got != want {
		t.Fatalf("first pane mismatch\nwant: %s\n got: %s", want, got)
	}

	got = b.OpenTranslationPane("title", "sv", nil)
	want = `<div class="tab-pane" id="title_sv" role="tabpanel">`
	if got != want {
		t.Fatalf("second pane mismatch\nwant: %s\n got: %s", want, got)
	}

	if b.CloseTranslationPane() != "</div>" {
		t.Fatalf("unexpected pane close")
	}
}
