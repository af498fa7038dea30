package model

import (
	"reflect"
	"strings"
	"unicode"
)

// Marker keys recognised on map models.
const (
	TranslatedAttributesKey = "translatedAttributes"
	TranslationsKey         = "translations"
)

// Model answers single-segment attribute lookups.
type Model interface {
	Get(key string) (any, bool)
}

// Translatable models expose a sub-model per locale.
type Translatable interface {
	Translate(locale string) (Model, bool)
}

// Marker reports whether a model declares translated attributes. Models that
// do not implement it are inspected for a TranslatedAttributes method.
type Marker interface {
	IsTranslatable() bool
}

// IsTranslatable computes the translatable flag for m. It must be evaluated
// each time a model is attached to a form.
func IsTranslatable(m Model) bool {
	if m == nil {
		return false
	}
	if marker, ok := m.(Marker); ok {
		return marker.IsTranslatable()
	}
	_, ok := m.(interface{ TranslatedAttributes() []string })
	return ok
}

// Wrap adapts v to a Model. Scalars and nil values yield nil.
//
// Struct lookups try an exported zero-argument method first, so key
// "full_name" calls FullName() when it returns a single value. Methods that
// return only an error, such as Delete() error, are never called. Tagged and
// named fields, including promoted ones, come next.
func Wrap(v any) Model {
	switch typed := v.(type) {
	case nil:
		return nil
	case Model:
		if isNilPointer(typed) {
			return nil
		}
		return typed
	case map[string]any:
		return Map(typed)
	case map[string]string:
		out := make(Map, len(typed))
		for key, value := range typed {
			out[key] = value
		}
		return out
	}

	value := reflect.ValueOf(v)
	for value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}

	switch value.Kind() {
	case reflect.Struct:
		return reflectModel{value: reflect.ValueOf(v)}
	case reflect.Map:
		if value.Type().Key().Kind() == reflect.String {
			return reflectModel{value: reflect.ValueOf(v)}
		}
	}
	return nil
}

// Map is a map-like model. Translations live under the "translations" key,
// keyed by locale; the presence of the "translatedAttributes" key marks the
// model as translatable.
type Map map[string]any

var (
	_ Model        = Map(nil)
	_ Translatable = Map(nil)
	_ Marker       = Map(nil)
)

// Get implements Model.
func (m Map) Get(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m[key]
	return v, ok
}

// IsTranslatable implements Marker.
func (m Map) IsTranslatable() bool {
	_, ok := m[TranslatedAttributesKey]
	return ok
}

// TranslatedAttributes lists the declared translated attribute names.
func (m Map) TranslatedAttributes() []string {
	return toStrings(m[TranslatedAttributesKey])
}

// Translate implements Translatable.
func (m Map) Translate(locale string) (Model, bool) {
	raw, ok := m[TranslationsKey]
	if !ok || raw == nil {
		return nil, false
	}
	translations := Wrap(raw)
	if translations == nil {
		return nil, false
	}
	sub, ok := translations.Get(locale)
	if !ok {
		return nil, false
	}
	wrapped := Wrap(sub)
	return wrapped, wrapped != nil
}

// reflectModel adapts structs, pointers to structs and string keyed maps.
type reflectModel struct {
	value reflect.Value
}

func (r reflectModel) Get(key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	if method, ok := zeroArgMethod(r.value, key); ok {
		out := method.Call(nil)
		return out[0].Interface(), true
	}

	value := indirect(r.value)
	if !value.IsValid() {
		return nil, false
	}

	switch value.Kind() {
	case reflect.Map:
		entry := value.MapIndex(reflect.ValueOf(key).Convert(value.Type().Key()))
		if !entry.IsValid() {
			return nil, false
		}
		return entry.Interface(), true
	case reflect.Struct:
		field, ok := structField(value, key)
		if !ok {
			return nil, false
		}
		return field.Interface(), true
	}
	return nil, false
}

func (r reflectModel) IsTranslatable() bool {
	if _, ok := zeroArgMethod(r.value, TranslatedAttributesKey); ok {
		return true
	}
	value := indirect(r.value)
	if value.Kind() != reflect.Struct {
		return false
	}
	_, ok := value.Type().FieldByName("TranslatedAttributes")
	return ok
}

func (r reflectModel) Translate(locale string) (Model, bool) {
	method := r.value.MethodByName("Translate")
	if !method.IsValid() {
		if addr := addressable(r.value); addr.IsValid() {
			method = addr.MethodByName("Translate")
		}
	}
	if method.IsValid() {
		mt := method.Type()
		if mt.NumIn() == 1 && mt.In(0).Kind() == reflect.String && mt.NumOut() >= 1 {
			out := method.Call([]reflect.Value{reflect.ValueOf(locale).Convert(mt.In(0))})
			if len(out) > 1 {
				switch second := out[1].Interface().(type) {
				case bool:
					if !second {
						return nil, false
					}
				case error:
					return nil, false
				}
			}
			wrapped := Wrap(out[0].Interface())
			return wrapped, wrapped != nil
		}
	}

	raw, ok := r.Get(TranslationsKey)
	if !ok {
		return nil, false
	}
	translations := Wrap(raw)
	if translations == nil {
		return nil, false
	}
	sub, ok := translations.Get(locale)
	if !ok {
		return nil, false
	}
	wrapped := Wrap(sub)
	return wrapped, wrapped != nil
}

// structField matches form, json and yaml tags before field names. Fields
// promoted from embedded structs are visible; those behind a nil embedded
// pointer are not.
func structField(value reflect.Value, key string) (reflect.Value, bool) {
	fields := reflect.VisibleFields(value.Type())
	normalized := normalizeName(key)
	for _, sf := range fields {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		if tagName(sf, "form") == key || tagName(sf, "json") == key || tagName(sf, "yaml") == key {
			if field, err := value.FieldByIndexErr(sf.Index); err == nil {
				return field, true
			}
		}
	}
	for _, sf := range fields {
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		if sf.Name == key || normalizeName(sf.Name) == normalized {
			if field, err := value.FieldByIndexErr(sf.Index); err == nil {
				return field, true
			}
		}
	}
	return reflect.Value{}, false
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func zeroArgMethod(value reflect.Value, key string) (reflect.Value, bool) {
	name := exportedName(key)
	if name == "" || name == "Get" || name == "Translate" {
		return reflect.Value{}, false
	}
	candidates := []reflect.Value{value}
	if addr := addressable(value); addr.IsValid() {
		candidates = append(candidates, addr)
	}
	for _, candidate := range candidates {
		method := candidate.MethodByName(name)
		if !method.IsValid() {
			continue
		}
		mt := method.Type()
		if mt.NumIn() == 0 && mt.NumOut() == 1 && mt.Out(0) != errorType {
			return method, true
		}
	}
	return reflect.Value{}, false
}

func tagName(sf reflect.StructField, tag string) string {
	raw, ok := sf.Tag.Lookup(tag)
	if !ok {
		return ""
	}
	name, _, _ := strings.Cut(raw, ",")
	if name == "-" {
		return ""
	}
	return name
}

// exportedName converts snake_case or camelCase keys to a Go exported name:
// "original_file_name" -> "OriginalFileName".
func exportedName(key string) string {
	var b strings.Builder
	upper := true
	for _, r := range key {
		if r == '_' || r == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalizeName(name string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
}

func indirect(value reflect.Value) reflect.Value {
	for value.IsValid() && (value.Kind() == reflect.Pointer || value.Kind() == reflect.Interface) {
		if value.IsNil() {
			return reflect.Value{}
		}
		value = value.Elem()
	}
	return value
}

func addressable(value reflect.Value) reflect.Value {
	if value.Kind() == reflect.Pointer {
		return reflect.Value{}
	}
	ptr := reflect.New(value.Type())
	ptr.Elem().Set(value)
	return ptr
}

func isNilPointer(v any) bool {
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func:
		return value.IsNil()
	}
	return false
}

func toStrings(v any) []string {
	switch typed := v.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
