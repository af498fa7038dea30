// Package gotemplate provides a pongo2-backed template.TemplateRenderer.
//
// Context values are normalised through JSON so structs render with their
// json field names. Helper services (values with a ServiceName method) and
// functions are kept as-is so templates can call them:
//
//	{{ form.OpenGroup(false)|safe }}
package gotemplate
