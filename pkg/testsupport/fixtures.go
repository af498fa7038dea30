// Package testsupport holds small helpers shared by the package tests.
package testsupport

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/goliatone/go-formhelpers/pkg/model"
)

// ErrMissingTranslation is returned by StubTranslator for unknown keys.
var ErrMissingTranslation = errors.New("testsupport: missing translation")

// StubTranslator maps message keys to fixed strings regardless of locale.
type StubTranslator map[string]string

// Translate implements i18n.Translator.
func (t StubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", ErrMissingTranslation
}

// Attachment is an in-memory model.Attachment served from BaseURL.
type Attachment struct {
	FileName string
	BaseURL  string
}

var _ model.Attachment = (*Attachment)(nil)

// OriginalFileName implements model.Attachment.
func (a *Attachment) OriginalFileName() string {
	return a.FileName
}

// URL implements model.Attachment. A size is appended as a path segment.
func (a *Attachment) URL(size ...string) string {
	if len(size) > 0 && size[0] != "" {
		return a.BaseURL + "/" + size[0] + "/" + a.FileName
	}
	return a.BaseURL + "/" + a.FileName
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return string(data)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
