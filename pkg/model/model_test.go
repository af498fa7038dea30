package model_test

import (
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

type address struct {
	Street string `json:"street"`
}

type article struct {
	Title        string
	Slug         string `form:"slug_value"`
	Address      *address
	translations map[string]*articleTranslation
}

func (a *article) TranslatedAttributes() []string { return []string{"title"} }

func (a *article) Translate(locale string) *articleTranslation {
	return a.translations[locale]
}

type articleTranslation struct {
	Title string
}

type plain struct {
	Name string
}

type record struct {
	ID   int
	Slug string `form:"slug"`
}

type timestamps struct {
	Created string
}

type post struct {
	record
	*timestamps
	Title string
}

type deletable struct {
	Name    string
	deleted bool
}

func (d *deletable) Delete() error {
	d.deleted = true
	return nil
}

func (d *deletable) Label() string { return "label:" + d.Name }

func TestWrapAdaptsMapsAndStructs(t *testing.T) {
	if model.Wrap(nil) != nil {
		t.Fatalf("nil must wrap to nil")
	}
	if model.Wrap("scalar") != nil {
		t.Fatalf("scalars must wrap to nil")
	}
	var nilArticle *article
	if model.Wrap(nilArticle) != nil {
		t.Fatalf("nil pointers must wrap to nil")
	}

	m := model.Wrap(map[string]any{"name": "Ada"})
	if v, ok := m.Get("name"); !ok || v != "Ada" {
		t.Fatalf("map lookup failed: %v %v", v, ok)
	}

	s := model.Wrap(&article{Title: "Hello", Slug: "hello"})
	if v, ok := s.Get("title"); !ok || v != "Hello" {
		t.Fatalf("struct lookup by lowercase name failed: %v %v", v, ok)
	}
	if v, ok := s.Get("slug_value"); !ok || v != "hello" {
		t.Fatalf("struct lookup by form tag failed: %v %v", v, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Fatalf("expected missing field to be absent")
	}
}

func TestWrapResolvesPromotedFields(t *testing.T) {
	m := model.Wrap(&post{record: record{ID: 7, Slug: "hello"}, Title: "Hi"})

	if v, ok := m.Get("id"); !ok || v != 7 {
		t.Fatalf("promoted id = %v %v, want 7", v, ok)
	}
	if v, ok := m.Get("slug"); !ok || v != "hello" {
		t.Fatalf("promoted slug by tag = %v %v, want hello", v, ok)
	}
	if v, ok := m.Get("title"); !ok || v != "Hi" {
		t.Fatalf("own field = %v %v", v, ok)
	}
	if _, ok := m.Get("record"); ok {
		t.Fatalf("embedded struct itself must not resolve as a field")
	}
	if _, ok := m.Get("created"); ok {
		t.Fatalf("field behind a nil embedded pointer must be absent")
	}

	withTimes := model.Wrap(post{timestamps: &timestamps{Created: "today"}})
	if v, ok := withTimes.Get("created"); !ok || v != "today" {
		t.Fatalf("field behind embedded pointer = %v %v", v, ok)
	}
}

func TestWrapSkipsErrorOnlyMethods(t *testing.T) {
	d := &deletable{Name: "Ada"}
	m := model.Wrap(d)

	if _, ok := m.Get("delete"); ok {
		t.Fatalf("error-only method must not resolve")
	}
	if d.deleted {
		t.Fatalf("lookup must not call Delete")
	}
	if v, ok := m.Get("label"); !ok || v != "label:Ada" {
		t.Fatalf("value method = %v %v", v, ok)
	}
}

func TestIsTranslatable(t *testing.T) {
	cases := []struct {
		name  string
		model model.Model
		want  bool
	}{
		{"nil", nil, false},
		{"plain map", model.Map{"title": "x"}, false},
		{"marked map", model.Map{"translatedAttributes": []any{"title"}}, true},
		{"marked map without attributes", model.Map{"translatedAttributes": nil}, true},
		{"struct with marker method", model.Wrap(&article{}), true},
		{"plain struct", model.Wrap(plain{}), false},
	}
	for _, tc := range cases {
		if got := model.IsTranslatable(tc.model); got != tc.want {
			t.Fatalf("%s: IsTranslatable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMapTranslate(t *testing.T) {
	m := model.Map{
		"translations": map[string]any{
			"sv": map[string]any{"title": "Hej"},
		},
	}
	sub, ok := m.Translate("sv")
	if !ok {
		t.Fatalf("expected sv translation")
	}
	if v, _ := sub.Get("title"); v != "Hej" {
		t.Fatalf("unexpected translated title %v", v)
	}
	if _, ok := m.Translate("de"); ok {
		t.Fatalf("expected missing translation for de")
	}
	if _, ok := (model.Map{}).Translate("sv"); ok {
		t.Fatalf("expected no translation without translations key")
	}
}

func TestStructTranslateMethod(t *testing.T) {
	a := &article{translations: map[string]*articleTranslation{"sv": {Title: "Hej"}}}
	sub, ok := model.Translation(model.Wrap(a), "sv")
	if !ok {
		t.Fatalf("expected translation through Translate method")
	}
	if v, _ := sub.Get("title"); v != "Hej" {
		t.Fatalf("unexpected translated title %v", v)
	}
	if _, ok := model.Translation(model.Wrap(a), "de"); ok {
		t.Fatalf("nil translation must be absent")
	}
}

func TestString(t *testing.T) {
	cases := map[string]any{
		"":      nil,
		"abc":   "abc",
		"42":    42,
		"1":     true,
		"bytes": []byte("bytes"),
	}
	for want, in := range cases {
		if got := model.String(in); got != want {
			t.Fatalf("String(%#v) = %q, want %q", in, got, want)
		}
	}
}
