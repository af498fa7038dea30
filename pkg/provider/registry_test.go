package provider_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formhelpers/pkg/provider"
)

type namedService string

func (s namedService) ServiceName() string { return string(s) }

func TestRegistryRegisterAndGet(t *testing.T) {
	reg := provider.NewRegistry()
	reg.MustRegister(namedService("html"))
	reg.MustRegister(namedService("form"))

	if err := reg.Register(namedService("html")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := reg.Register(namedService("")); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil service error")
	}

	got, err := reg.Get("form")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ServiceName() != "form" {
		t.Fatalf("unexpected service %v", got)
	}
	if _, err := reg.Get("missing"); err == nil {
		t.Fatalf("expected missing service error")
	}
	if !reg.Has("html") || reg.Has("missing") {
		t.Fatalf("unexpected Has results")
	}
	if diff := cmp.Diff([]string{"form", "html"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryMustGetPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	provider.NewRegistry().MustGet("missing")
}
