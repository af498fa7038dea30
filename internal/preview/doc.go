// Package preview renders a fixture-driven page exercising the form helpers.
// It backs the render and serve commands of cmd/formhelpers.
package preview
