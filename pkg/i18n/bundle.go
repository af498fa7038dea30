package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed messages/*.toml
var defaultMessages embed.FS

// BundleOption configures a Bundle.
type BundleOption func(*bundleConfig)

type bundleConfig struct {
	logger      *zap.Logger
	skipDefault bool
	sources     []messageSource
}

type messageSource struct {
	fsys  fs.FS
	paths []string
}

// WithLogger routes load failures and lookup misses to logger.
func WithLogger(logger *zap.Logger) BundleOption {
	return func(cfg *bundleConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithMessages loads extra message files from fsys. When no paths are given,
// every .toml, .yaml, .yml and .json file in fsys is loaded.
func WithMessages(fsys fs.FS, paths ...string) BundleOption {
	return func(cfg *bundleConfig) {
		if fsys == nil {
			return
		}
		cfg.sources = append(cfg.sources, messageSource{fsys: fsys, paths: paths})
	}
}

// WithoutDefaultMessages skips the embedded message files.
func WithoutDefaultMessages() BundleOption {
	return func(cfg *bundleConfig) {
		cfg.skipDefault = true
	}
}

// Bundle is a Translator backed by a go-i18n bundle.
type Bundle struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
	logger          *zap.Logger
}

var _ Translator = (*Bundle)(nil)

// NewBundle creates a bundle whose fallback language is defaultLocale and
// loads the embedded messages plus any configured sources.
func NewBundle(defaultLocale string, options ...BundleOption) (*Bundle, error) {
	cfg := bundleConfig{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tag := language.English
	if trimmed := strings.TrimSpace(defaultLocale); trimmed != "" {
		parsed, err := language.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("i18n: parse default locale %q: %w", trimmed, err)
		}
		tag = parsed
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	b := &Bundle{
		bundle:          bundle,
		defaultLanguage: tag,
		logger:          cfg.logger,
	}

	if !cfg.skipDefault {
		if err := b.LoadFS(defaultMessages); err != nil {
			return nil, err
		}
	}
	for _, src := range cfg.sources {
		if err := b.LoadFS(src.fsys, src.paths...); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// LoadFS loads message files from fsys. The locale of each file is taken from
// its name (active.sv.toml, sv.yaml).
func (b *Bundle) LoadFS(fsys fs.FS, paths ...string) error {
	if fsys == nil {
		return nil
	}

	if len(paths) == 0 {
		found, err := messageFiles(fsys)
		if err != nil {
			return fmt.Errorf("i18n: scan message files: %w", err)
		}
		paths = found
	}

	for _, file := range paths {
		if _, err := b.bundle.LoadMessageFileFS(fsys, file); err != nil {
			b.logger.Warn("i18n: failed to load message file",
				zap.String("file", file),
				zap.Error(err),
			)
			return fmt.Errorf("i18n: load %s: %w", file, err)
		}
	}
	return nil
}

// Translate renders key for locale, falling back to the bundle default
// language. The first map[string]any argument, if any, is used as template
// data.
func (b *Bundle) Translate(locale, key string, args ...any) (string, error) {
	if b == nil || b.bundle == nil {
		return "", ErrMissingTranslator
	}
	if key == "" {
		return "", nil
	}

	languages := make([]string, 0, 2)
	if locale = strings.TrimSpace(locale); locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, b.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(b.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData(args),
	})
	if msg != "" {
		return msg, nil
	}
	if err != nil {
		return "", fmt.Errorf("i18n: localize %q (%s): %w", key, strings.Join(languages, ","), err)
	}
	return msg, nil
}

// Languages lists the locales that have at least one message loaded.
func (b *Bundle) Languages() []string {
	if b == nil || b.bundle == nil {
		return nil
	}
	tags := b.bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}

func templateData(args []any) map[string]any {
	for _, arg := range args {
		if data, ok := arg.(map[string]any); ok {
			return data
		}
	}
	return nil
}

func messageFiles(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		switch strings.ToLower(path.Ext(p)) {
		case ".toml", ".yaml", ".yml", ".json":
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
