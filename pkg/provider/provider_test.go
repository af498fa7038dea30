package provider_test

import (
	"io"
	"path/filepath"
	"testing"
	"testing/fstest"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelpers/pkg/form"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/provider"
	"github.com/goliatone/go-formhelpers/pkg/template/gotemplate"
	"github.com/goliatone/go-formhelpers/pkg/testsupport"
)

func newProvider(t *testing.T, options ...provider.Option) (*provider.Provider, *provider.Registry) {
	t.Helper()

	cfg, err := provider.LoadConfig(filepath.Join("testdata", "formhelpers.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	p, err := provider.New(cfg, append([]provider.Option{provider.WithLogger(zap.NewNop())}, options...)...)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	reg := provider.NewRegistry()
	if err := p.Register(reg); err != nil {
		t.Fatalf("register: %v", err)
	}
	return p, reg
}

func TestProviderRegistersServices(t *testing.T) {
	_, reg := newProvider(t)

	if !reg.Has(markup.ServiceName) || !reg.Has(form.ServiceName) {
		t.Fatalf("expected html and form services, got %v", reg.List())
	}

	html, err := provider.HTML(reg)
	if err != nil {
		t.Fatalf("html service: %v", err)
	}
	got := html.NavTranslations("title", nil)
	want := `<ul>` +
		`<li class="active" role="presentation"><a data-toggle="tab" href="#title_en" role="tab">English</a></li>` +
		`<li role="presentation"><a data-toggle="tab" href="#title_sv" role="tab">Swedish</a></li>` +
		`<li role="presentation"><a data-toggle="tab" href="#title_de" role="tab">German</a></li>` +
		`</ul>`
	if got != want {
		t.Fatalf("nav mismatch\nwant: %s\n got: %s", want, got)
	}
}

func TestProviderLoadsConfiguredMessages(t *testing.T) {
	_, reg := newProvider(t)

	builder, err := provider.Form(reg)
	if err != nil {
		t.Fatalf("form service: %v", err)
	}
	if got := builder.ForLocale("de").Lookup().T("html.files.remove"); got != "Entfernen" {
		t.Fatalf("expected german message, got %q", got)
	}
	if got := builder.ForLocale("sv").Lookup().T("html.files.remove"); got != "Ta bort" {
		t.Fatalf("expected swedish message, got %q", got)
	}
	if got := builder.Lookup().T("labels.unknown"); got != "labels.unknown" {
		t.Fatalf("missing keys should render verbatim, got %q", got)
	}
}

func TestProviderMessageMarkup(t *testing.T) {
	_, reg := newProvider(t)
	builder, err := provider.Form(reg)
	if err != nil {
		t.Fatalf("form service: %v", err)
	}

	got := builder.HelpInline("title", form.Errors{"title": {"<strong>Required</strong>"}}, true)
	if want := `<span class="help-block"><strong>Required</strong></span>`; got != want {
		t.Fatalf("want %s, got %s", want, got)
	}
}

func TestProviderCustomTranslator(t *testing.T) {
	_, reg := newProvider(t, provider.WithTranslator(testsupport.StubTranslator{
		"labels.title": "Heading",
	}))
	builder, err := provider.Form(reg)
	if err != nil {
		t.Fatalf("form service: %v", err)
	}
	if got := builder.Label("title", "labels.title", nil); got != `<label for="title">Heading</label>` {
		t.Fatalf("unexpected label %s", got)
	}
}

func TestProviderRegisterTwiceFails(t *testing.T) {
	p, reg := newProvider(t)
	if err := p.Register(reg); err == nil {
		t.Fatalf("expected duplicate service error")
	}
}

func TestProviderBoot(t *testing.T) {
	p, reg := newProvider(t)

	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{
		"page.tpl": &fstest.MapFile{Data: []byte(
			`{% for code in locales %}{{ language_name(code, code) }};{% endfor %}` +
				`{{ form.OpenGroup(true)|safe }}{{ translate(locale, "html.files.choose_file") }}{{ form.CloseGroup()|safe }}`,
		)},
	}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := p.Boot(reg, engine); err != nil {
		t.Fatalf("boot: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("page", map[string]any{"locale": "sv"}, w)
	})
	want := `English;Svenska;Deutsch;<div class="form-group has-error">Välj fil</div>`
	if result != want || written != want {
		t.Fatalf("boot render mismatch\nwant: %s\n got: %s", want, result)
	}
}

func TestProviderBootRequiresServices(t *testing.T) {
	cfg, err := provider.ParseConfig([]byte("locales: [en]\n"))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	p, err := provider.New(cfg)
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	engine, err := gotemplate.New(gotemplate.WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if err := p.Boot(provider.NewRegistry(), engine); err == nil {
		t.Fatalf("expected error for empty registry")
	}
}
