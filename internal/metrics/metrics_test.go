package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/lagsim/internal/particles"
)

func TestKineticEnergy(t *testing.T) {
	g := particles.NewBasicGroup("fluid", 2)
	u := g.MustProperty("u")
	m := g.MustProperty("m")
	u[0], u[1] = 2.0, 0.0
	m[0], m[1] = 3.0, 1.0

	// 0.5 * 3 * 4 = 6
	if got := KineticEnergy(g); math.Abs(got-6.0) > 1e-15 {
		t.Errorf("kinetic energy = %v, want 6.0", got)
	}
}

func TestKineticEnergyUnitMassFallback(t *testing.T) {
	g := particles.NewGroup("bare", 1)
	if err := g.AddPropertyWith("u", []float64{4.0}); err != nil {
		t.Fatal(err)
	}

	if got := KineticEnergy(g); got != 8.0 {
		t.Errorf("kinetic energy = %v, want 8.0", got)
	}
}

func TestMaxAndMeanSpeed(t *testing.T) {
	g := particles.NewBasicGroup("fluid", 2)
	u := g.MustProperty("u")
	v := g.MustProperty("v")
	u[0], v[0] = 3.0, 4.0 // speed 5
	u[1], v[1] = 0.0, 1.0 // speed 1

	if got := MaxSpeed(g); math.Abs(got-5.0) > 1e-15 {
		t.Errorf("max speed = %v, want 5.0", got)
	}
	if got := MeanSpeed(g); math.Abs(got-3.0) > 1e-15 {
		t.Errorf("mean speed = %v, want 3.0", got)
	}
}

func TestMeanDensity(t *testing.T) {
	g := particles.NewBasicGroup("fluid", 2)
	rho := g.MustProperty("rho")
	rho[0], rho[1] = 1000.0, 998.0

	if got := MeanDensity(g); math.Abs(got-999.0) > 1e-12 {
		t.Errorf("mean density = %v, want 999.0", got)
	}

	empty := particles.NewGroup("none", 3)
	if got := MeanDensity(empty); got != 0 {
		t.Errorf("mean density without rho = %v, want 0", got)
	}
}
