// Package provider binds the markup and form builders into a named service
// registry and seeds template engines with them.
//
// A typical application wires it once at start-up:
//
//	cfg, err := provider.LoadConfig("formhelpers.yaml")
//	p, err := provider.New(cfg, provider.WithLogger(logger))
//	reg := provider.NewRegistry()
//	err = p.Register(reg)
//	err = p.Boot(reg, engine)
package provider
