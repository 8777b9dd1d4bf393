package viz

import (
	"testing"

	"github.com/san-kum/lagsim/internal/integrator"
	"github.com/san-kum/lagsim/internal/metrics"
	"github.com/san-kum/lagsim/internal/particles"
	"github.com/san-kum/lagsim/internal/steppers"
)

func TestModelMeanSpeedMatchesMetrics(t *testing.T) {
	g := particles.NewWCSPHGroup("fluid", 3)
	u := g.MustProperty("u")
	v := g.MustProperty("v")
	u[0], v[0] = 3.0, 4.0
	u[1] = 1.0

	in, err := integrator.New(g, steppers.NewWCSPH(), integrator.DefaultConfig())
	if err != nil {
		t.Fatalf("bind failed: %v", err)
	}

	m := NewModel(in, nil, "wcsph", 1e-3)
	if got, want := m.meanSpeed(), metrics.MeanSpeed(g); got != want {
		t.Errorf("mean speed = %v, want %v", got, want)
	}
}
