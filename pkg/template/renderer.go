package template

import (
	"io"
)

// TemplateRenderer is the template engine contract. The provider only needs GlobalContext; the rest is used by the
// preview command and by applications rendering their own views.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
