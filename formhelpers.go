package formhelpers

import (
	"fmt"

	"github.com/goliatone/go-formhelpers/pkg/form"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/provider"
	"github.com/goliatone/go-formhelpers/pkg/template"
)

// Config aliases provider.Config so callers can configure the helpers from
// the top-level module.
type Config = provider.Config

// Option aliases provider.Option.
type Option = provider.Option

// Errors aliases form.Errors, the default validation error set.
type Errors = form.Errors

// Attrs aliases markup.Attrs.
type Attrs = markup.Attrs

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	return provider.LoadConfig(path)
}

// WithLogger re-exports provider.WithLogger.
var WithLogger = provider.WithLogger

// WithTranslator re-exports provider.WithTranslator.
var WithTranslator = provider.WithTranslator

// WithMessagesFS re-exports provider.WithMessagesFS.
var WithMessagesFS = provider.WithMessagesFS

// Helpers is a registry populated with the "html" and "form" services.
type Helpers struct {
	*provider.Registry

	provider *provider.Provider
}

// New validates cfg, builds the services and registers them.
func New(cfg Config, options ...Option) (*Helpers, error) {
	p, err := provider.New(cfg, options...)
	if err != nil {
		return nil, err
	}
	reg := provider.NewRegistry()
	if err := p.Register(reg); err != nil {
		return nil, err
	}
	return &Helpers{Registry: reg, provider: p}, nil
}

// Boot seeds engine with the services and translation helpers.
func (h *Helpers) Boot(engine template.TemplateRenderer) error {
	return h.provider.Boot(h.Registry, engine)
}

// Config returns the validated configuration.
func (h *Helpers) Config() Config {
	return h.provider.Config()
}

// HTML returns the markup builder. It panics if the registry was altered to
// hold a different service under that name.
func (h *Helpers) HTML() *markup.Builder {
	html, err := provider.HTML(h.Registry)
	if err != nil {
		panic(fmt.Errorf("formhelpers: %w", err))
	}
	return html
}

// Form returns the form builder. It panics under the same conditions as
// HTML.
func (h *Helpers) Form() *form.Builder {
	builder, err := provider.Form(h.Registry)
	if err != nil {
		panic(fmt.Errorf("formhelpers: %w", err))
	}
	return builder
}
