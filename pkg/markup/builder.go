package markup

import (
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

// ServiceName is the registry name of the markup builder.
const ServiceName = "html"

// Labeler returns the display name of a locale code.
type Labeler interface {
	Language(code string) string
}

// Option configures a Builder.
type Option func(*Builder)

// WithLocales sets the locale registry used by the translation helpers.
func WithLocales(registry locale.Registry) Option {
	return func(b *Builder) {
		if registry != nil {
			b.locales = registry
		}
	}
}

// WithLabeler sets the locale display name source.
func WithLabeler(labeler Labeler) Option {
	return func(b *Builder) {
		if labeler != nil {
			b.labeler = labeler
		}
	}
}

// Builder renders HTML fragments. It holds no per-render state and is safe
// for concurrent use.
type Builder struct {
	locales locale.Registry
	labeler Labeler
}

// New constructs a Builder.
func New(options ...Option) *Builder {
	b := &Builder{
		locales: locale.Static(nil),
		labeler: codeLabeler{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// ServiceName implements provider.Service.
func (b *Builder) ServiceName() string {
	return ServiceName
}

// ForLocale returns a copy that labels locales through labeler.
func (b *Builder) ForLocale(labeler Labeler) *Builder {
	clone := *b
	if labeler != nil {
		clone.labeler = labeler
	}
	return &clone
}

// Locales returns the configured locales in registry order.
func (b *Builder) Locales() []string {
	if b.locales == nil {
		return nil
	}
	return b.locales.Locales()
}

// Attributes renders attrs. See the package level Attributes.
func (b *Builder) Attributes(attrs Attrs) string {
	return Attributes(attrs)
}

// Escape HTML-escapes text.
func (b *Builder) Escape(text string) string {
	return html.EscapeString(text)
}

// Label renders a <label> for name. An empty text falls back to a humanized
// version of name ("first_name" -> "First Name").
func (b *Builder) Label(name, text string, attrs Attrs) string {
	merged := attrs.Clone()
	if merged.String("for") == "" {
		merged["for"] = name
	}
	if text == "" {
		text = FormatLabel(name)
	}
	return "<label" + Attributes(merged) + ">" + html.EscapeString(text) + "</label>"
}

// Input renders an <input> of the given type.
func (b *Builder) Input(kind, name string, value any, attrs Attrs) string {
	merged := attrs.Clone()
	merged["type"] = kind
	if name != "" {
		merged["name"] = name
	}
	if value != nil {
		merged["value"] = value
	}
	return "<input" + Attributes(merged) + ">"
}

// Text renders a text input.
func (b *Builder) Text(name string, value any, attrs Attrs) string {
	return b.Input("text", name, value, attrs)
}

// Hidden renders a hidden input.
func (b *Builder) Hidden(name string, value any, attrs Attrs) string {
	return b.Input("hidden", name, value, attrs)
}

// File renders a file input. File inputs never carry a value.
func (b *Builder) File(name string, attrs Attrs) string {
	merged := attrs.Clone()
	delete(merged, "value")
	return b.Input("file", name, nil, merged)
}

// Checkbox renders a checkbox input. A nil value defaults to "1".
func (b *Builder) Checkbox(name string, value any, checked bool, attrs Attrs) string {
	merged := attrs.Clone()
	if value == nil {
		value = "1"
	}
	merged["checked"] = checked
	return b.Input("checkbox", name, value, merged)
}

// Link renders an anchor. An empty title falls back to the URL.
func (b *Builder) Link(url, title string, attrs Attrs) string {
	merged := attrs.Clone()
	merged["href"] = url
	if title == "" {
		title = url
	}
	return "<a" + Attributes(merged) + ">" + html.EscapeString(title) + "</a>"
}

// Image renders an <img>.
func (b *Builder) Image(url, alt string, attrs Attrs) string {
	merged := attrs.Clone()
	merged["src"] = url
	if alt != "" {
		merged["alt"] = alt
	}
	return "<img" + Attributes(merged) + ">"
}

// Open renders an opening tag.
func (b *Builder) Open(tag string, attrs Attrs) string {
	return "<" + tag + Attributes(attrs) + ">"
}

// Close renders a closing tag.
func (b *Builder) Close(tag string) string {
	return "</" + tag + ">"
}

// Span wraps escaped text in a <span>.
func (b *Builder) Span(text string, attrs Attrs) string {
	return b.Open("span", attrs) + html.EscapeString(text) + b.Close("span")
}

// FormatLabel humanizes a field name: underscores become spaces and the first
// letter of each word is upper-cased.
func FormatLabel(name string) string {
	words := strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.Und, cases.NoLower).String(words)
}

type codeLabeler struct{}

func (codeLabeler) Language(code string) string {
	return code
}
