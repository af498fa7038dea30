// Package i18n provides the translation lookup used by the markup and form
// helpers: a Translator contract, a request-scoped Lookup with a fallback
// chain (translator, missing handler, key), a go-i18n backed Bundle with
// embedded defaults for the built-in message keys, and helper functions for
// template engines.
package i18n
