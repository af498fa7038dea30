// Package template defines the template engine seam the registration shim
// seeds with helper services. Engines live in sub-packages.
package template
