package particles

import (
	"errors"
	"testing"
)

func TestAddAndReadProperty(t *testing.T) {
	g := NewGroup("fluid", 4)

	if err := g.AddProperty("x"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	x, err := g.Property("x")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(x) != 4 {
		t.Errorf("expected length 4, got %d", len(x))
	}

	x[2] = 1.5
	again, _ := g.Property("x")
	if again[2] != 1.5 {
		t.Error("property lookups should alias the same backing array")
	}
}

func TestAddPropertyTwice(t *testing.T) {
	g := NewGroup("fluid", 2)
	if err := g.AddProperty("x"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	err := g.AddProperty("x")
	if !errors.Is(err, ErrDuplicateProperty) {
		t.Errorf("expected ErrDuplicateProperty, got %v", err)
	}
}

func TestAddPropertyWithLengthMismatch(t *testing.T) {
	g := NewGroup("fluid", 3)
	err := g.AddPropertyWith("x", []float64{1, 2})
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestAddPropertyWithCopies(t *testing.T) {
	g := NewGroup("fluid", 2)
	src := []float64{1, 2}
	if err := g.AddPropertyWith("x", src); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	src[0] = 99

	x := g.MustProperty("x")
	if x[0] != 1 {
		t.Error("AddPropertyWith should copy the source slice")
	}
}

func TestUnknownProperty(t *testing.T) {
	g := NewGroup("fluid", 2)
	_, err := g.Property("missing")
	if !errors.Is(err, ErrUnknownProperty) {
		t.Errorf("expected ErrUnknownProperty, got %v", err)
	}
}

func TestEnsureProperties(t *testing.T) {
	g := NewGroup("fluid", 3)
	if err := g.AddPropertyWith("x", []float64{1, 2, 3}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	g.EnsureProperties("x", "x0")

	x := g.MustProperty("x")
	if x[0] != 1 {
		t.Error("EnsureProperties must not clobber an existing array")
	}
	if !g.HasProperty("x0") {
		t.Error("EnsureProperties should add the missing array")
	}
}

func TestConstants(t *testing.T) {
	g := NewGroup("fluid", 2)
	g.SetConstant("c1", 1.0)
	g.SetConstant("c2", 2.0, 3.0)

	c1, err := g.Constant("c1")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if len(c1) != 1 || c1[0] != 1.0 {
		t.Errorf("unexpected c1: %v", c1)
	}

	c2, _ := g.Constant("c2")
	if len(c2) != 2 || c2[1] != 3.0 {
		t.Errorf("unexpected c2: %v", c2)
	}

	_, err = g.Constant("c3")
	if !errors.Is(err, ErrUnknownConstant) {
		t.Errorf("expected ErrUnknownConstant, got %v", err)
	}
}

func TestPropertyNamesSorted(t *testing.T) {
	g := NewGroup("fluid", 1)
	for _, name := range []string{"z", "a", "m"} {
		if err := g.AddProperty(name); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}
	names := g.PropertyNames()
	want := []string{"a", "m", "z"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestOutputArraysCopied(t *testing.T) {
	g := NewGroup("fluid", 1)
	sel := []string{"x", "y"}
	g.SetOutputArrays(sel)
	sel[0] = "mutated"

	out := g.OutputArrays()
	if out[0] != "x" || out[1] != "y" {
		t.Errorf("unexpected output selection: %v", out)
	}
}

func TestSchemaGroups(t *testing.T) {
	tests := []struct {
		name  string
		group *Group
		props []string
	}{
		{"basic", NewBasicGroup("g", 5), []string{"x", "u", "rho", "arho"}},
		{"wcsph", NewWCSPHGroup("g", 5), []string{"x0", "rho0", "ax", "vmag2", "uhat"}},
		{"solid", NewSolidMechGroup("g", 5), []string{"s00", "s220", "as22", "e0"}},
		{"gas", NewGasGroup("g", 5), []string{"converged", "omega", "h0", "ae"}},
	}

	for _, tt := range tests {
		for _, p := range tt.props {
			if !tt.group.HasProperty(p) {
				t.Errorf("%s schema missing %q", tt.name, p)
			}
		}
		if tt.group.Len() != 5 {
			t.Errorf("%s schema has wrong particle count", tt.name)
		}
		if len(tt.group.OutputArrays()) == 0 {
			t.Errorf("%s schema has no default output selection", tt.name)
		}
	}
}
