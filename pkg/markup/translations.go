package markup

import (
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

// PaneID is the id of the translation pane for name in locale. Navigation
// links target "#" + PaneID(name, locale).
func PaneID(name, code string) string {
	return locale.Suffix(name, code)
}

// NavTranslations renders tab navigation with one item per configured
// locale. The first locale is active.
func (b *Builder) NavTranslations(name string, attrs Attrs) string {
	locales := b.Locales()

	var items strings.Builder
	for _, code := range locales {
		liAttrs := Attrs{"role": "presentation"}
		if locale.IsDefault(code, locales) {
			liAttrs["class"] = "active"
		}

		items.WriteString(b.Open("li", liAttrs))
		items.WriteString(b.Link("#"+PaneID(name, code), b.labeler.Language(code), Attrs{
			"data-toggle": "tab",
			"role":        "tab",
		}))
		items.WriteString(b.Close("li"))
	}

	return b.Open("ul", attrs) + items.String() + b.Close("ul")
}

// OpenTranslationPane opens the tab pane for name in locale. Caller classes
// are kept and "tab-pane" is appended, plus "active" for the first locale.
func (b *Builder) OpenTranslationPane(name, code string, attrs Attrs) string {
	merged := attrs.Clone()
	merged["id"] = PaneID(name, code)

	classes := []string{merged.String("class"), "tab-pane"}
	if locale.IsDefault(code, b.Locales()) {
		classes = append(classes, "active")
	}
	merged["class"] = MergeClasses(classes...)
	merged["role"] = "tabpanel"

	return b.Open("div", merged)
}

// CloseTranslationPane closes a pane opened with OpenTranslationPane.
func (b *Builder) CloseTranslationPane() string {
	return b.Close("div")
}
