package markup

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Attrs are HTML attributes. Nil, false and empty string values are omitted
// when rendered; true renders as key="key".
type Attrs map[string]any

// Clone returns a shallow copy that callers can mutate.
func (a Attrs) Clone() Attrs {
	out := make(Attrs, len(a)+2)
	for key, value := range a {
		out[key] = value
	}
	return out
}

// String returns the attribute value as a string, or "" when absent.
func (a Attrs) String(key string) string {
	if a == nil {
		return ""
	}
	value, _ := attributeValue(key, a[key])
	return value
}

// Attributes renders attrs as ` key="value"` pairs sorted by key. Values are
// HTML escaped.
func Attributes(attrs Attrs) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		if strings.TrimSpace(key) == "" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for _, key := range keys {
		value, ok := attributeValue(key, attrs[key])
		if !ok {
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(strings.TrimSpace(key)))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value))
		builder.WriteByte('"')
	}
	return builder.String()
}

func attributeValue(key string, value any) (string, bool) {
	switch typed := value.(type) {
	case nil:
		return "", false
	case string:
		return typed, typed != ""
	case bool:
		if !typed {
			return "", false
		}
		return key, true
	case []string:
		joined := strings.Join(strings.Fields(strings.Join(typed, " ")), " ")
		return joined, joined != ""
	case fmt.Stringer:
		text := typed.String()
		return text, text != ""
	default:
		return fmt.Sprint(typed), true
	}
}

// MergeClasses joins class lists, dropping empty and duplicate tokens while
// preserving first occurrence order.
func MergeClasses(lists ...string) string {
	seen := make(map[string]struct{})
	var out []string
	for _, list := range lists {
		for _, token := range strings.Fields(list) {
			if _, exists := seen[token]; exists {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return strings.Join(out, " ")
}
