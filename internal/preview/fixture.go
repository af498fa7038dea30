package preview

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formhelpers/pkg/form"
)

// Field kinds understood by Compose.
const (
	KindText       = "text"
	KindTranslated = "translated"
	KindStapler    = "stapler"
)

//go:embed fixtures/article.yaml
var defaultFixture []byte

// Field describes one control on the preview page.
type Field struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
	// Translated renders a stapler once per locale.
	Translated bool `yaml:"translated"`
	// Image shows stapler previews as thumbnails.
	Image bool   `yaml:"image"`
	Size  string `yaml:"size"`
}

// Fixture is a model, a field list and a validation error payload.
type Fixture struct {
	Title  string              `yaml:"title"`
	Model  map[string]any      `yaml:"model"`
	Old    map[string]any      `yaml:"old"`
	Fields []Field             `yaml:"fields"`
	Errors map[string][]string `yaml:"errors"`
}

// DefaultFixture returns the built-in article fixture.
func DefaultFixture() (Fixture, error) {
	return ParseFixture(defaultFixture)
}

// LoadFixture reads a YAML fixture from path.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("preview: read fixture %s: %w", path, err)
	}
	return ParseFixture(data)
}

// ParseFixture decodes and validates a YAML fixture.
func ParseFixture(data []byte) (Fixture, error) {
	var fixture Fixture
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&fixture); err != nil {
		return Fixture{}, fmt.Errorf("preview: decode fixture: %w", err)
	}

	var errs []error
	for i := range fixture.Fields {
		field := &fixture.Fields[i]
		field.Name = strings.TrimSpace(field.Name)
		field.Kind = strings.ToLower(strings.TrimSpace(field.Kind))
		if field.Kind == "" {
			field.Kind = KindText
		}
		if field.Name == "" {
			errs = append(errs, fmt.Errorf("field %d: name is required", i))
		}
		switch field.Kind {
		case KindText, KindTranslated, KindStapler:
		default:
			errs = append(errs, fmt.Errorf("field %q: unknown kind %q", field.Name, field.Kind))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return Fixture{}, fmt.Errorf("preview: invalid fixture: %w", err)
	}
	return fixture, nil
}

// FieldNames lists every field name the fixture can render, including the
// locale suffixed variants of translated fields.
func (f Fixture) FieldNames(locales []string) []string {
	var names []string
	for _, field := range f.Fields {
		names = append(names, field.Name)
		if field.Kind == KindTranslated || field.Translated {
			for _, code := range locales {
				names = append(names, field.Name+"_"+code)
			}
		}
	}
	return names
}

// ErrorSet maps the fixture payload onto field names.
func (f Fixture) ErrorSet(locales []string) form.ErrorMapping {
	return form.MapErrorPayload(f.Errors, f.FieldNames(locales)...)
}
