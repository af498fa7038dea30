package provider

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

// ErrNoLocales is returned when a configuration lists no locales.
var ErrNoLocales = errors.New("provider: at least one locale is required")

// Config is the YAML configuration of the helpers.
//
//	locales: [en, sv]
//	default_locale: en
//	messages:
//	  - lang/active.de.toml
//	message_markup: false
type Config struct {
	// Locales in registry order. The first one is the default locale of the
	// translation tabs.
	Locales []string `yaml:"locales" json:"locales"`
	// DefaultLocale is the translation fallback language. Defaults to the
	// first locale.
	DefaultLocale string `yaml:"default_locale" json:"default_locale"`
	// MessageFiles are extra go-i18n message files. Relative paths are
	// resolved against BaseDir.
	MessageFiles []string `yaml:"messages" json:"messages"`
	// MessageMarkup keeps simple inline markup in validation messages.
	MessageMarkup bool `yaml:"message_markup" json:"message_markup"`

	// BaseDir is set by LoadConfig to the directory of the config file.
	BaseDir string `yaml:"-" json:"-"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("provider: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("provider: config %s: %w", path, err)
	}
	cfg.BaseDir = filepath.Dir(path)
	return cfg, nil
}

// ParseConfig decodes and validates YAML configuration bytes.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("provider: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate normalises locale codes and checks the default locale.
func (c *Config) Validate() error {
	registry, err := locale.Parse(c.Locales...)
	if err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if len(registry) == 0 {
		return ErrNoLocales
	}
	c.Locales = registry.Locales()

	c.DefaultLocale = strings.TrimSpace(c.DefaultLocale)
	if c.DefaultLocale == "" {
		c.DefaultLocale = locale.Default(c.Locales)
	}
	if !locale.Contains(c.DefaultLocale, c.Locales) {
		return fmt.Errorf("provider: default locale %q is not one of %v", c.DefaultLocale, c.Locales)
	}

	var files []string
	for _, file := range c.MessageFiles {
		if file = strings.TrimSpace(file); file != "" {
			files = append(files, file)
		}
	}
	c.MessageFiles = files
	return nil
}

// Registry returns the configured locales as a locale.Registry.
func (c Config) Registry() locale.Static {
	return locale.New(c.Locales...)
}

// messagePath splits a configured message file into a directory and a file
// name usable with os.DirFS.
func (c Config) messagePath(file string) (dir, name string) {
	if !filepath.IsAbs(file) && c.BaseDir != "" {
		file = filepath.Join(c.BaseDir, file)
	}
	return filepath.Dir(file), filepath.Base(file)
}
