package i18n

import (
	"fmt"
	"reflect"
	"strings"
)

// TemplateConfig configures template-level translation helpers.
type TemplateConfig struct {
	// LocaleKey selects the field/key used to infer locale from template data
	// when callers pass a struct or map instead of a raw string.
	LocaleKey string
	// FuncName customizes the translator helper name (defaults to "translate").
	FuncName string
	// OnMissing controls the string returned when a translation is missing.
	OnMissing MissingTranslationHandler
}

// TemplateFuncs returns helpers suitable for template engine globals:
//
//	translate(localeSrc, key, ...args) string
//	current_locale(localeSrc) string
//	language_name(localeSrc, code) string
//
// localeSrc can be a locale string (e.g. "sv") or a map/struct that carries
// the locale under cfg.LocaleKey.
func TemplateFuncs(t Translator, cfg TemplateConfig) map[string]any {
	localeKey := strings.TrimSpace(cfg.LocaleKey)
	if localeKey == "" {
		localeKey = "locale"
	}

	translateName := strings.TrimSpace(cfg.FuncName)
	if translateName == "" {
		translateName = "translate"
	}

	lookup := func(localeSrc any) Lookup {
		return Lookup{
			Translator: t,
			Locale:     resolveLocale(localeSrc, localeKey),
			OnMissing:  cfg.OnMissing,
		}
	}

	return map[string]any{
		translateName: func(localeSrc any, key string, params ...any) string {
			return lookup(localeSrc).T(key, params...)
		},
		"current_locale": func(localeSrc any) string {
			return resolveLocale(localeSrc, localeKey)
		},
		"language_name": func(localeSrc any, code string) string {
			return lookup(localeSrc).Language(code)
		},
	}
}

func resolveLocale(src any, key string) string {
	if src == nil {
		return ""
	}

	if str, ok := src.(string); ok {
		return str
	}

	if key == "" {
		return ""
	}

	switch data := src.(type) {
	case map[string]any:
		if v, ok := data[key]; ok {
			if str, ok := v.(string); ok {
				return str
			}
			if str := strings.TrimSpace(fmt.Sprint(v)); str != "" {
				return str
			}
		}
	case map[string]string:
		if v, ok := data[key]; ok {
			return v
		}
	}

	value := reflect.ValueOf(src)
	for value.IsValid() && value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}

	if !value.IsValid() {
		return ""
	}

	switch value.Kind() {
	case reflect.Struct:
		field := value.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, key)
		})
		if field.IsValid() && field.Kind() == reflect.String {
			return field.String()
		}
	case reflect.Map:
		if value.Type().Key().Kind() == reflect.String {
			val := value.MapIndex(reflect.ValueOf(key).Convert(value.Type().Key()))
			if val.IsValid() && val.Kind() == reflect.String {
				return val.String()
			}
		}
	}

	return ""
}
