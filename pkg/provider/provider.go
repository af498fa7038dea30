package provider

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/goliatone/go-formhelpers/pkg/form"
	"github.com/goliatone/go-formhelpers/pkg/i18n"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/template"
)

// Global names seeded into template engines by Boot.
const (
	GlobalLocales       = "locales"
	GlobalDefaultLocale = "default_locale"
)

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for registration and missing translations.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMessagesFS loads additional message files from fsys. Without paths
// every message file in fsys is loaded.
func WithMessagesFS(fsys fs.FS, paths ...string) Option {
	return func(p *Provider) {
		if fsys != nil {
			p.bundleOptions = append(p.bundleOptions, i18n.WithMessages(fsys, paths...))
		}
	}
}

// WithTranslator replaces the built-in go-i18n bundle.
func WithTranslator(translator i18n.Translator) Option {
	return func(p *Provider) {
		p.translator = translator
	}
}

// Provider builds the helper services from a Config.
type Provider struct {
	mu sync.Mutex

	cfg           Config
	logger        *zap.Logger
	translator    i18n.Translator
	bundleOptions []i18n.BundleOption
}

// New validates cfg and returns a Provider.
func New(cfg Config, options ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Provider{
		cfg:    cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// Config returns the validated configuration.
func (p *Provider) Config() Config {
	return p.cfg
}

// Translator returns the translator, building the go-i18n bundle on first
// use.
func (p *Provider) Translator() (i18n.Translator, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.translator != nil {
		return p.translator, nil
	}

	options := []i18n.BundleOption{i18n.WithLogger(p.logger)}
	for _, file := range p.cfg.MessageFiles {
		dir, name := p.cfg.messagePath(file)
		options = append(options, i18n.WithMessages(os.DirFS(dir), name))
	}
	options = append(options, p.bundleOptions...)

	bundle, err := i18n.NewBundle(p.cfg.DefaultLocale, options...)
	if err != nil {
		return nil, fmt.Errorf("provider: build translations: %w", err)
	}
	p.translator = bundle
	return bundle, nil
}

// Lookup returns the default-locale translation lookup used by the services.
func (p *Provider) Lookup() (i18n.Lookup, error) {
	translator, err := p.Translator()
	if err != nil {
		return i18n.Lookup{}, err
	}
	return i18n.Lookup{
		Translator: translator,
		Locale:     p.cfg.DefaultLocale,
		OnMissing:  i18n.LogMissing(p.logger),
	}, nil
}

// Register binds the "html" and "form" services into reg.
func (p *Provider) Register(reg *Registry) error {
	if reg == nil {
		return errors.New("provider: registry is required")
	}

	lookup, err := p.Lookup()
	if err != nil {
		return err
	}
	locales := p.cfg.Registry()

	html := markup.New(
		markup.WithLocales(locales),
		markup.WithLabeler(lookup),
	)

	formOptions := []form.Option{
		form.WithLocales(locales),
		form.WithLookup(lookup),
	}
	if p.cfg.MessageMarkup {
		formOptions = append(formOptions, form.WithMessageMarkup())
	}

	for _, service := range []Service{html, form.New(html, formOptions...)} {
		if err := reg.Register(service); err != nil {
			return err
		}
	}

	p.logger.Debug("form helpers registered",
		zap.Strings("services", reg.List()),
		zap.Strings("locales", p.cfg.Locales),
	)
	return nil
}

// Boot exposes the registered services, the configured locales and the
// translation helpers as template globals.
func (p *Provider) Boot(reg *Registry, engine template.TemplateRenderer) error {
	if reg == nil || engine == nil {
		return errors.New("provider: registry and engine are required")
	}

	globals := map[string]any{
		GlobalLocales:       p.cfg.Locales,
		GlobalDefaultLocale: p.cfg.DefaultLocale,
	}
	for _, name := range []string{markup.ServiceName, form.ServiceName} {
		service, err := reg.Get(name)
		if err != nil {
			return fmt.Errorf("provider: boot: %w", err)
		}
		globals[name] = service
	}

	translator, err := p.Translator()
	if err != nil {
		return err
	}
	funcs := i18n.TemplateFuncs(translator, i18n.TemplateConfig{
		OnMissing: i18n.LogMissing(p.logger),
	})
	for name, fn := range funcs {
		globals[name] = fn
	}

	if err := engine.GlobalContext(globals); err != nil {
		return fmt.Errorf("provider: boot: %w", err)
	}
	return nil
}

// HTML returns the markup builder bound in reg.
func HTML(reg *Registry) (*markup.Builder, error) {
	service, err := reg.Get(markup.ServiceName)
	if err != nil {
		return nil, err
	}
	html, ok := service.(*markup.Builder)
	if !ok {
		return nil, fmt.Errorf("provider: service %q is %T", markup.ServiceName, service)
	}
	return html, nil
}

// Form returns the form builder bound in reg.
func Form(reg *Registry) (*form.Builder, error) {
	service, err := reg.Get(form.ServiceName)
	if err != nil {
		return nil, err
	}
	builder, ok := service.(*form.Builder)
	if !ok {
		return nil, fmt.Errorf("provider: service %q is %T", form.ServiceName, service)
	}
	return builder, nil
}
