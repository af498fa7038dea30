// Package form composes markup fragments into Bootstrap form controls.
//
// Builder is stateless and shared between requests; it renders labels, help
// blocks and group wrappers. Bind attaches a model to a request-scoped Form,
// computing the translatable flag once, and the Form renders value-aware
// controls (text inputs, field groups and the attachment widget) whose values
// come from prefill input, explicit arguments or the bound model, in that
// order.
package form
