package i18n

import (
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Message keys used by the built-in helpers.
const (
	KeyChooseFile     = "html.files.choose_file"
	KeyChange         = "html.files.change"
	KeyRemove         = "html.files.remove"
	LanguageKeyPrefix = "locales.language."
)

// ErrMissingTranslator is reported to MissingTranslationHandler when a Lookup
// has no Translator configured.
var ErrMissingTranslator = errors.New("i18n: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what to render when a key cannot be
// translated. err is nil when the translator returned an empty message.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// MissingKey renders the key itself.
func MissingKey(_ string, key string, _ []any, _ error) string {
	return key
}

// LogMissing returns a handler that logs the miss at debug level and renders
// the key.
func LogMissing(logger *zap.Logger) MissingTranslationHandler {
	if logger == nil {
		return MissingKey
	}
	return func(locale, key string, args []any, err error) string {
		logger.Debug("missing translation",
			zap.String("locale", locale),
			zap.String("key", key),
			zap.Error(err),
		)
		return key
	}
}

// Lookup binds a Translator to a locale. The zero value is usable and renders
// keys verbatim.
type Lookup struct {
	Translator Translator
	Locale     string
	OnMissing  MissingTranslationHandler
}

// WithLocale returns a copy of the lookup bound to locale.
func (l Lookup) WithLocale(locale string) Lookup {
	l.Locale = strings.TrimSpace(locale)
	return l
}

// T translates key in the lookup locale. Empty keys render as empty strings.
func (l Lookup) T(key string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	onMissing := l.OnMissing
	if onMissing == nil {
		onMissing = MissingKey
	}

	if l.Translator == nil {
		return onMissing(l.Locale, key, args, ErrMissingTranslator)
	}

	msg, err := l.Translator.Translate(l.Locale, key, args...)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(l.Locale, key, args, err)
	}
	return msg
}

// Language returns the display name of a locale code, e.g. "Swedish" for
// "sv", translated into the lookup locale.
func (l Lookup) Language(code string) string {
	return l.T(LanguageKeyPrefix + code)
}
