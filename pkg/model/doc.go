// Package model resolves form field values against the model bound to a form.
//
// A model is anything that can answer single-segment lookups (Model). Maps
// and structs are adapted through Wrap. Translatable models expose one
// sub-model per locale; a field name carrying a configured locale suffix
// ("title_sv") is redirected through that locale's translation ("title" on
// the "sv" sub-model). Dotted names ("address.street") and bracketed names
// ("address[street]") address nested values.
//
// Missing values are reported as absent (ok == false), never as errors. The
// one exception is ResolveAttachment, which returns a *PathError when a
// non-terminal segment is missing since attachments are expected to live on
// concrete nested objects.
package model
