package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/locale"
)

// TransformKey converts bracketed field names into dotted paths:
// "address[street]" -> "address.street", "tags[]" -> "tags".
func TransformKey(name string) string {
	replacer := strings.NewReplacer("[]", "", "[", ".", "]", "")
	return strings.Trim(replacer.Replace(strings.TrimSpace(name)), ".")
}

// LastSegment returns the final segment of a dotted or bracketed path.
func LastSegment(path string) string {
	key := TransformKey(path)
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		return key[idx+1:]
	}
	return key
}

// Segments splits a dotted or bracketed path.
func Segments(path string) []string {
	key := TransformKey(path)
	if key == "" {
		return nil
	}
	return strings.Split(key, ".")
}

// Lookup is the base resolver: it walks the path segment by segment and
// reports absent when the model is nil or any segment is missing.
func Lookup(m Model, path string) (any, bool) {
	segments := Segments(path)
	if m == nil || len(segments) == 0 {
		return nil, false
	}

	current := m
	var value any
	for i, segment := range segments {
		v, ok := current.Get(segment)
		if !ok {
			return nil, false
		}
		value = v
		if i == len(segments)-1 {
			break
		}
		current = Wrap(v)
		if current == nil {
			return nil, false
		}
	}
	return value, true
}

// Translation returns the sub-model for locale when m is Translatable.
func Translation(m Model, code string) (Model, bool) {
	translatable, ok := m.(Translatable)
	if !ok {
		return nil, false
	}
	sub, ok := translatable.Translate(code)
	if !ok || sub == nil {
		return nil, false
	}
	return sub, true
}

// ResolveValue resolves name against m. When translatable is set and name
// ends with "_<locale>" for one of the configured locales, the suffix is
// stripped and the remaining path is resolved against that locale's
// translation. Otherwise it behaves exactly like Lookup.
func ResolveValue(m Model, name string, locales []string, translatable bool) (any, bool) {
	if m == nil {
		return nil, false
	}
	if !translatable {
		return Lookup(m, name)
	}

	base, code, ok := locale.MatchSuffix(TransformKey(name), locales)
	if !ok {
		return Lookup(m, name)
	}

	sub, ok := Translation(m, code)
	if !ok {
		return nil, false
	}
	return Lookup(sub, base)
}

// PathError reports a missing non-terminal segment while resolving an
// attachment path.
type PathError struct {
	Path    string
	Segment string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("model: attachment path %q: segment %q is absent", e.Path, e.Segment)
}

// Unwrap allows errors.Is(err, ErrMissingSegment).
func (e *PathError) Unwrap() error {
	return ErrMissingSegment
}

// ResolveAttachment walks path on m and returns the attachment at its end.
//
// Every non-terminal segment must exist; a missing one yields a *PathError.
// When the terminal value is absent and the model is translatable, the last
// segment is matched against the configured locale suffixes and looked up on
// the root model's translation for that locale. A nil attachment with a nil
// error means no attachment is present.
func ResolveAttachment(m Model, path string, translatable bool, locales []string) (Attachment, error) {
	if m == nil {
		return nil, nil
	}
	segments := Segments(path)
	if len(segments) == 0 {
		return nil, nil
	}

	current := m
	for _, segment := range segments[:len(segments)-1] {
		v, ok := current.Get(segment)
		if !ok || v == nil {
			return nil, &PathError{Path: path, Segment: segment}
		}
		current = Wrap(v)
		if current == nil {
			return nil, &PathError{Path: path, Segment: segment}
		}
	}

	last := segments[len(segments)-1]
	if v, ok := current.Get(last); ok {
		if attachment := AsAttachment(v); attachment != nil {
			return attachment, nil
		}
	}

	if !translatable {
		return nil, nil
	}

	base, code, ok := locale.MatchSuffix(last, locales)
	if !ok {
		return nil, nil
	}
	sub, ok := Translation(m, code)
	if !ok {
		return nil, nil
	}
	v, ok := sub.Get(base)
	if !ok {
		return nil, nil
	}
	return AsAttachment(v), nil
}

// String converts a resolved value into its display form. Absent values
// render as an empty string.
func String(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case []byte:
		return string(typed)
	case fmt.Stringer:
		if isNilPointer(typed) {
			return ""
		}
		return typed.String()
	case bool:
		if typed {
			return "1"
		}
		return "0"
	}
	if isNilPointer(v) {
		return ""
	}
	return fmt.Sprint(v)
}
