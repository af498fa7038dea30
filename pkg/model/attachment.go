package model

import (
	"errors"
	"strings"
)

// ErrMissingSegment is wrapped by PathError.
var ErrMissingSegment = errors.New("model: missing path segment")

// Attachment is an uploaded file associated with a model attribute.
type Attachment interface {
	OriginalFileName() string
	URL(size ...string) string
}

// File is a value Attachment. Styles maps size names ("thumb") to URLs.
type File struct {
	FileName string            `json:"original_file_name" yaml:"original_file_name"`
	Path     string            `json:"url" yaml:"url"`
	Styles   map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
}

var _ Attachment = File{}

// OriginalFileName implements Attachment.
func (f File) OriginalFileName() string {
	return f.FileName
}

// URL implements Attachment. Unknown sizes fall back to the original URL.
func (f File) URL(size ...string) string {
	if len(size) > 0 {
		if styled := strings.TrimSpace(f.Styles[size[0]]); styled != "" {
			return styled
		}
	}
	return f.Path
}

// AsAttachment adapts v to an Attachment. Maps carrying an
// "original_file_name" key are converted to File.
func AsAttachment(v any) Attachment {
	switch typed := v.(type) {
	case nil:
		return nil
	case Attachment:
		if isNilPointer(typed) {
			return nil
		}
		return typed
	}

	m := Wrap(v)
	if m == nil {
		return nil
	}
	name, ok := m.Get("original_file_name")
	if !ok {
		return nil
	}
	file := File{FileName: String(name)}
	if url, ok := m.Get("url"); ok {
		file.Path = String(url)
	}
	if styles, ok := m.Get("styles"); ok {
		switch typed := styles.(type) {
		case map[string]string:
			file.Styles = typed
		case map[string]any:
			file.Styles = make(map[string]string, len(typed))
			for key, value := range typed {
				file.Styles[key] = String(value)
			}
		}
	}
	return file
}
