package form

import (
	"github.com/goliatone/go-formhelpers/pkg/locale"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/model"
)

// BindOption configures a Form at bind time.
type BindOption func(*Form)

// WithValues pre-populates controls using dotted field names, typically the
// previous submission. Prefill values win over explicit and model values.
func WithValues(values map[string]any) BindOption {
	return func(f *Form) {
		if len(values) == 0 {
			return
		}
		f.values = make(map[string]any, len(values))
		for key, value := range values {
			f.values[model.TransformKey(key)] = value
		}
	}
}

// Form is a Builder bound to one model for one render. It must not be shared
// across concurrent renders.
type Form struct {
	*Builder

	model        model.Model
	translatable bool
	values       map[string]any
}

// WithModel returns a copy of f bound to m. The translatable flag is
// recomputed for the new model.
func (f *Form) WithModel(m any) *Form {
	clone := *f
	return clone.attach(m)
}

func (f *Form) attach(m any) *Form {
	f.model = model.Wrap(m)
	f.translatable = model.IsTranslatable(f.model)
	return f
}

// Model returns the bound model, or nil.
func (f *Form) Model() model.Model {
	return f.model
}

// Translatable reports whether the bound model declares translated
// attributes.
func (f *Form) Translatable() bool {
	return f.translatable
}

// Value resolves name against the bound model, honouring locale suffixes on
// translatable models.
func (f *Form) Value(name string) (any, bool) {
	return model.ResolveValue(f.model, name, f.Locales(), f.translatable)
}

// valueFor applies prefill, explicit and model precedence.
func (f *Form) valueFor(name string, explicit any) any {
	if v, ok := f.values[model.TransformKey(name)]; ok && v != nil {
		return v
	}
	if explicit != nil {
		return explicit
	}
	if v, ok := f.Value(name); ok {
		return v
	}
	return nil
}

// Text renders a text input whose value comes from prefill input, value or
// the bound model.
func (f *Form) Text(name string, value any, attrs markup.Attrs) string {
	resolved := f.valueFor(name, value)
	if resolved == nil {
		return f.html.Text(name, nil, attrs)
	}
	return f.html.Text(name, model.String(resolved), attrs)
}

// TextGroup renders group, label, text input and inline help for name. A
// non-empty language appends the locale suffix to name first.
func (f *Form) TextGroup(name, labelKey string, errors ErrorSet, language string) string {
	name = locale.Suffix(name, language)

	hasError := errors != nil && errors.Has(name)

	return f.OpenGroup(hasError) +
		f.Label(name, labelKey, nil) +
		f.Text(name, nil, markup.Attrs{"class": "form-control", "id": name}) +
		f.HelpInline(name, errors, true) +
		f.CloseGroup()
}
