package formhelpers

import (
	"io/fs"

	"github.com/goliatone/go-formhelpers/internal/preview"
)

// EmbeddedTemplates exposes the preview page templates so callers can reuse
// or extend the layout with their own pongo2 engine.
func EmbeddedTemplates() fs.FS {
	return preview.Templates()
}
