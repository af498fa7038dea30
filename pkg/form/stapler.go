package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formhelpers/pkg/i18n"
	"github.com/goliatone/go-formhelpers/pkg/markup"
	"github.com/goliatone/go-formhelpers/pkg/model"
)

// DeletePrefix prefixes the remove checkbox name of an attachment field.
const DeletePrefix = "delete_"

// StaplerOptions configures the attachment widget.
type StaplerOptions struct {
	// ShowImage renders a thumbnail preview instead of a link.
	ShowImage bool
	// ImageSize selects the attachment style passed to Attachment.URL for the
	// thumbnail.
	ImageSize string
	// Attrs are applied to the file input.
	Attrs markup.Attrs
	// URL overrides the preview link target. Defaults to the attachment URL.
	URL string
}

// Stapler renders a file upload control for name. When the bound model holds
// an attachment with an original file name, a preview (thumbnail or link) and
// a "delete_<field>" checkbox are rendered ahead of the file input.
//
// A *model.PathError is returned when a non-terminal segment of name is
// missing on the model.
func (f *Form) Stapler(name string, opts StaplerOptions) (string, error) {
	attachment, err := model.ResolveAttachment(f.model, name, f.translatable, f.Locales())
	if err != nil {
		return "", fmt.Errorf("form: stapler %q: %w", name, err)
	}

	input := f.fileInputGroup(name, opts.Attrs)

	if attachment == nil || attachment.OriginalFileName() == "" {
		return input, nil
	}

	var preview string
	if opts.ShowImage {
		preview = f.html.Image(attachment.URL(opts.ImageSize), name, markup.Attrs{
			"class": "thumbnail img-responsive",
			"style": "max-height: 180px;",
		})
	} else {
		target := opts.URL
		if target == "" {
			target = attachment.URL()
		}
		preview = f.html.Link(target, attachment.OriginalFileName(), nil)
	}

	// The checkbox is named after the attribute itself, even when it sits on
	// a related model.
	remove := `<div class="checkbox block"><label>` +
		f.Checkbox(DeletePrefix+model.LastSegment(name), nil, false, nil) +
		f.html.Escape(f.lookup.T(i18n.KeyRemove)) +
		`</label></div>`

	return preview + remove + input, nil
}

func (f *Form) fileInputGroup(name string, attrs markup.Attrs) string {
	var b strings.Builder

	b.WriteString(`<div class="fileinput fileinput-new input-group" data-provides="fileinput">`)
	b.WriteString(`<div class="form-control" data-trigger="fileinput">`)
	b.WriteString(`<i class="glyphicon glyphicon-file fileinput-exists"></i> <span class="fileinput-filename"></span>`)
	b.WriteString(`</div>`)

	b.WriteString(`<span class="input-group-addon btn btn-default btn-file">`)
	b.WriteString(f.html.Span(f.lookup.T(i18n.KeyChooseFile), markup.Attrs{"class": "fileinput-new"}))
	b.WriteString(f.html.Span(f.lookup.T(i18n.KeyChange), markup.Attrs{"class": "fileinput-exists"}))
	b.WriteString(f.File(name, attrs))
	b.WriteString(`</span>`)

	b.WriteString(f.html.Link("#", f.lookup.T(i18n.KeyRemove), markup.Attrs{
		"class":        "input-group-addon btn btn-default fileinput-exists",
		"data-dismiss": "fileinput",
	}))
	b.WriteString(`</div>`)

	return b.String()
}
