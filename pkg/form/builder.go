package form

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formhelpers/pkg/i18n"
	"github.com/goliatone/go-formhelpers/pkg/locale"
	"github.com/goliatone/go-formhelpers/pkg/markup"
)

// ServiceName is the registry name of the form builder.
const ServiceName = "form"

// LanguageOption is the label attribute that selects a locale suffix.
const LanguageOption = "language"

// Option configures a Builder.
type Option func(*Builder)

// WithLocales sets the locale registry used for suffix resolution.
func WithLocales(registry locale.Registry) Option {
	return func(b *Builder) {
		if registry != nil {
			b.locales = registry
		}
	}
}

// WithLookup sets the translation lookup used for labels and widget text.
func WithLookup(lookup i18n.Lookup) Option {
	return func(b *Builder) {
		b.lookup = lookup
	}
}

// WithMessageMarkup renders error messages through an allow-list sanitizer
// instead of escaping them, keeping simple inline markup such as <strong>.
func WithMessageMarkup() Option {
	return func(b *Builder) {
		b.messagePolicy = messageSanitizer()
	}
}

// WithMessagePolicy is like WithMessageMarkup with a caller supplied policy.
func WithMessagePolicy(policy *bluemonday.Policy) Option {
	return func(b *Builder) {
		b.messagePolicy = policy
	}
}

// Builder renders form fragments that do not depend on a bound model.
type Builder struct {
	html          *markup.Builder
	locales       locale.Registry
	lookup        i18n.Lookup
	messagePolicy *bluemonday.Policy
}

// New constructs a Builder on top of html. A nil html builder is replaced
// by one sharing the configured locales and lookup.
func New(html *markup.Builder, options ...Option) *Builder {
	b := &Builder{
		html:    html,
		locales: locale.Static(nil),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.html == nil {
		b.html = markup.New(markup.WithLocales(b.locales), markup.WithLabeler(b.lookup))
	}
	return b
}

// ServiceName implements provider.Service.
func (b *Builder) ServiceName() string {
	return ServiceName
}

// HTML exposes the underlying markup builder.
func (b *Builder) HTML() *markup.Builder {
	return b.html
}

// Locales returns the configured locales in registry order.
func (b *Builder) Locales() []string {
	if b.locales == nil {
		return nil
	}
	return b.locales.Locales()
}

// ForLocale returns a copy translating labels and widget text into code.
func (b *Builder) ForLocale(code string) *Builder {
	clone := *b
	clone.lookup = b.lookup.WithLocale(code)
	clone.html = b.html.ForLocale(clone.lookup)
	return &clone
}

// Lookup returns the translation lookup bound to this builder.
func (b *Builder) Lookup() i18n.Lookup {
	return b.lookup
}

// Bind attaches m to a new request-scoped Form.
func (b *Builder) Bind(m any, options ...BindOption) *Form {
	f := &Form{Builder: b}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f.attach(m)
}

// Label renders a label for name. A non-empty "language" attribute appends
// the locale suffix to name and is not rendered. A non-empty messageKey is
// translated and used as the label text.
func (b *Builder) Label(name, messageKey string, attrs markup.Attrs) string {
	options := attrs.Clone()
	if language := options.String(LanguageOption); language != "" {
		name = locale.Suffix(name, language)
	}
	delete(options, LanguageOption)

	text := ""
	if messageKey != "" {
		text = b.lookup.T(messageKey)
	}
	return b.html.Label(name, text, options)
}

// HelpInline renders the first error message for name, or an empty string
// when there is none. block selects "help-block" over "help-inline".
func (b *Builder) HelpInline(name string, errors ErrorSet, block bool) string {
	if errors == nil || !errors.Has(name) {
		return ""
	}

	class := "help-inline"
	if block {
		class = "help-block"
	}

	return b.html.Open("span", markup.Attrs{"class": class}) +
		b.message(errors.First(name)) +
		b.html.Close("span")
}

// OpenGroup opens a form-group container, flagged with has-error when
// hasError is set.
func (b *Builder) OpenGroup(hasError bool) string {
	class := "form-group"
	if hasError {
		class += " has-error"
	}
	return b.html.Open("div", markup.Attrs{"class": class})
}

// CloseGroup closes a container opened with OpenGroup.
func (b *Builder) CloseGroup() string {
	return b.html.Close("div")
}

// File renders a file input.
func (b *Builder) File(name string, attrs markup.Attrs) string {
	return b.html.File(name, attrs)
}

// Checkbox renders a checkbox.
func (b *Builder) Checkbox(name string, value any, checked bool, attrs markup.Attrs) string {
	return b.html.Checkbox(name, value, checked, attrs)
}

func (b *Builder) message(text string) string {
	if b.messagePolicy != nil {
		return b.messagePolicy.Sanitize(text)
	}
	return b.html.Escape(text)
}
