package form

import (
	"slices"
	"strconv"
	"strings"
)

// ErrorSet answers validation error queries for field names.
type ErrorSet interface {
	Has(name string) bool
	First(name string) string
}

// Errors maps dotted field names to their messages.
type Errors map[string][]string

var _ ErrorSet = Errors(nil)

// Has implements ErrorSet.
func (e Errors) Has(name string) bool {
	return len(e[name]) > 0
}

// First implements ErrorSet.
func (e Errors) First(name string) string {
	if messages := e[name]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// Add appends messages for name, skipping blanks and duplicates.
func (e Errors) Add(name string, messages ...string) {
	e[name] = normalizeMessages(append(e[name], messages...))
	if len(e[name]) == 0 {
		delete(e, name)
	}
}

// ErrorMapping splits a go-errors compatible payload into field-level and
// form-level messages.
type ErrorMapping struct {
	Fields Errors
	Form   []string
}

// MergeFormErrors concatenates and normalises multiple form-level error
// slices, trimming whitespace and removing duplicates while preserving order.
func MergeFormErrors(existing []string, extras ...string) []string {
	combined := make([]string, 0, len(existing)+len(extras))
	combined = append(combined, existing...)
	combined = append(combined, extras...)
	return normalizeMessages(combined)
}

// MapErrorPayload normalises server error payloads (including JSON pointer
// paths such as "/body/title_sv") into the dotted field names used by the
// form helpers. When knownFields is given, paths are matched against it
// (longest prefix wins) and unknown paths become form-level messages.
func MapErrorPayload(payload map[string][]string, knownFields ...string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(Errors)}
	if len(payload) == 0 {
		return mapping
	}

	known := make(map[string]struct{}, len(knownFields))
	for _, field := range knownFields {
		if field = strings.TrimSpace(field); field != "" {
			known[field] = struct{}{}
		}
	}

	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, rawPath := range keys {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}

		mapped, formLevel := mapErrorPath(rawPath, known)
		if formLevel {
			mapping.Form = append(mapping.Form, messages...)
			continue
		}
		mapping.Fields.Add(mapped, messages...)
	}

	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func mapErrorPath(raw string, known map[string]struct{}) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if isFormLevelKey(trimmed) {
		return "", true
	}

	segments := dropWrapperSegments(parsePathSegments(trimmed))
	if len(segments) == 0 {
		return "", true
	}

	if len(known) == 0 {
		return strings.Join(segments, "."), false
	}

	for _, variant := range [][]string{segments, stripNumericSegments(segments)} {
		for end := len(variant); end > 0; end-- {
			candidate := strings.Join(variant[:end], ".")
			if _, ok := known[candidate]; ok {
				return candidate, false
			}
		}
	}
	return "", true
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	wrappers := map[string]struct{}{
		"body":       {},
		"request":    {},
		"payload":    {},
		"data":       {},
		"attributes": {},
	}

	out := segments
	for len(out) > 0 {
		if _, ok := wrappers[strings.ToLower(out[0])]; ok {
			out = out[1:]
			continue
		}
		break
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func isFormLevelKey(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "", ".", "/", "#", "$", "form", "base", "__all__", "non_field_errors", "non-field-errors":
		return true
	default:
		return false
	}
}
