package preview

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelpers/pkg/form"
	"github.com/goliatone/go-formhelpers/pkg/locale"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/template"
)

// LayoutTemplate is the page template rendered around the composed fields.
const LayoutTemplate = "layout"

//go:embed templates/*.tpl
var templateFS embed.FS

// Templates returns the embedded page templates.
func Templates() fs.FS {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Compose renders every fixture field with f. Translated fields are wrapped
// in a tab strip with one pane per locale.
func Compose(f *form.Form, fields []Field, errs form.ErrorSet) (string, error) {
	var b strings.Builder
	for _, field := range fields {
		var (
			out string
			err error
		)
		switch {
		case field.Kind == KindTranslated:
			out, err = translationTabs(f, field.Name, func(code string) (string, error) {
				return f.TextGroup(field.Name, field.Label, errs, code), nil
			})
		case field.Kind == KindStapler && field.Translated:
			out, err = translationTabs(f, field.Name, func(code string) (string, error) {
				return staplerGroup(f, field, errs, code)
			})
		case field.Kind == KindStapler:
			out, err = staplerGroup(f, field, errs, "")
		default:
			out = f.TextGroup(field.Name, field.Label, errs, "")
		}
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

func translationTabs(f *form.Form, name string, pane func(code string) (string, error)) (string, error) {
	html := f.HTML()

	var b strings.Builder
	b.WriteString(html.NavTranslations(name, markup.Attrs{"class": "nav nav-tabs"}))
	b.WriteString(html.Open("div", markup.Attrs{"class": "tab-content"}))
	for _, code := range f.Locales() {
		content, err := pane(code)
		if err != nil {
			return "", err
		}
		b.WriteString(html.OpenTranslationPane(name, code, markup.Attrs{"class": "fade in"}))
		b.WriteString(content)
		b.WriteString(html.CloseTranslationPane())
	}
	b.WriteString(html.Close("div"))
	return b.String(), nil
}

func staplerGroup(f *form.Form, field Field, errs form.ErrorSet, code string) (string, error) {
	name := locale.Suffix(field.Name, code)
	control, err := f.Stapler(name, form.StaplerOptions{
		ShowImage: field.Image,
		ImageSize: field.Size,
	})
	if err != nil {
		return "", err
	}

	hasError := errs != nil && errs.Has(name)
	return f.OpenGroup(hasError) +
		f.Label(field.Name, field.Label, markup.Attrs{form.LanguageOption: code}) +
		control +
		f.HelpInline(name, errs, true) +
		f.CloseGroup(), nil
}

// Page is the data handed to LayoutTemplate.
type Page struct {
	Title      string   `json:"title"`
	Locale     string   `json:"locale"`
	Body       string   `json:"body"`
	FormErrors []string `json:"form_errors"`
}

// Renderer renders fixtures through a template engine booted with the form
// helper services.
type Renderer struct {
	engine template.TemplateRenderer
	forms  *form.Builder
	logger *zap.Logger
}

// NewRenderer returns a Renderer. A nil logger is replaced with a no-op one.
func NewRenderer(engine template.TemplateRenderer, forms *form.Builder, logger *zap.Logger) (*Renderer, error) {
	if engine == nil || forms == nil {
		return nil, errors.New("preview: engine and form builder are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{engine: engine, forms: forms, logger: logger}, nil
}

// Locales returns the locales the renderer can switch between.
func (r *Renderer) Locales() locale.Static {
	return locale.New(r.forms.Locales()...)
}

// Page composes the fixture for code without rendering the layout. The body
// opens with a hidden LocaleParam field so a submitted form keeps its locale.
func (r *Renderer) Page(fixture Fixture, code string) (Page, error) {
	builder := r.forms.ForLocale(code)
	bound := builder.Bind(fixture.Model, form.WithValues(fixture.Old))
	mapping := fixture.ErrorSet(builder.Locales())

	body, err := Compose(bound, fixture.Fields, mapping.Fields)
	if err != nil {
		return Page{}, fmt.Errorf("preview: compose %q: %w", fixture.Title, err)
	}

	return Page{
		Title:      fixture.Title,
		Locale:     code,
		Body:       builder.HTML().Hidden(LocaleParam, code, nil) + body,
		FormErrors: mapping.Form,
	}, nil
}

// Render writes the full preview page for code to w.
func (r *Renderer) Render(w io.Writer, fixture Fixture, code string) error {
	page, err := r.Page(fixture, code)
	if err != nil {
		return err
	}

	r.logger.Debug("rendering preview",
		zap.String("fixture", fixture.Title),
		zap.String("locale", code),
		zap.Int("fields", len(fixture.Fields)),
	)

	_, err = r.engine.RenderTemplate(LayoutTemplate, map[string]any{
		"locale": code,
		"page":   page,
	}, w)
	if err != nil {
		return fmt.Errorf("preview: render layout: %w", err)
	}
	return nil
}
