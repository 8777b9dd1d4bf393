// Package forces provides simple acceleration evaluators for driving the
// integrator: a uniform body force and a no-force evaluator for dry runs.
// Real SPH force pipelines (pressure, viscosity, boundary terms) are
// external collaborators that satisfy the same Evaluate signature.
package forces

import (
	"fmt"

	"github.com/san-kum/lagsim/internal/particles"
)

// rateNames are every rate array the bundled schemes read.
var rateNames = []string{
	"au", "av", "aw", "ax", "ay", "az", "arho", "ae",
	"auhat", "avhat",
	"as00", "as01", "as02", "as11", "as12", "as22",
}

// ConstantGravity applies a uniform body acceleration. The position rates
// ax, ay, az mirror the current velocity so predictor-corrector schemes
// drift with the physical velocity (no XSPH correction); every other rate
// array present on the group is zeroed.
type ConstantGravity struct {
	GX, GY, GZ float64
}

func NewConstantGravity(gx, gy, gz float64) *ConstantGravity {
	return &ConstantGravity{GX: gx, GY: gy, GZ: gz}
}

func (f *ConstantGravity) Evaluate(g *particles.Group, _, _ float64) {
	zeroRates(g)
	n := g.Len()

	fillIfPresent(g, "au", f.GX)
	fillIfPresent(g, "av", f.GY)
	fillIfPresent(g, "aw", f.GZ)

	for name, vel := range map[string]string{"ax": "u", "ay": "v", "az": "w"} {
		rate, err := g.Property(name)
		if err != nil {
			continue
		}
		v, err := g.Property(vel)
		if err != nil {
			continue
		}
		for i := 0; i < n; i++ {
			rate[i] = v[i]
		}
	}
}

func (f *ConstantGravity) GetParams() map[string]float64 {
	return map[string]float64{"gx": f.GX, "gy": f.GY, "gz": f.GZ}
}

func (f *ConstantGravity) SetParam(name string, v float64) error {
	switch name {
	case "gx":
		f.GX = v
	case "gy":
		f.GY = v
	case "gz":
		f.GZ = v
	default:
		return fmt.Errorf("forces: unknown parameter %q", name)
	}
	return nil
}

// PrescribedAcceleration drives the rigid-body schemes, which read their
// body acceleration from ax, ay, az rather than au, av, aw. The vector goes
// straight into those arrays; every other rate array present on the group is
// zeroed.
type PrescribedAcceleration struct {
	AX, AY, AZ float64
}

func NewPrescribedAcceleration(ax, ay, az float64) *PrescribedAcceleration {
	return &PrescribedAcceleration{AX: ax, AY: ay, AZ: az}
}

func (f *PrescribedAcceleration) Evaluate(g *particles.Group, _, _ float64) {
	zeroRates(g)
	fillIfPresent(g, "ax", f.AX)
	fillIfPresent(g, "ay", f.AY)
	fillIfPresent(g, "az", f.AZ)
}

// Still zeroes every rate array present on the group, so any scheme it
// drives leaves the group stationary. Useful for dt=0 dry runs.
type Still struct{}

func NewStill() *Still { return &Still{} }

func (f *Still) Evaluate(g *particles.Group, _, _ float64) {
	zeroRates(g)
}

func zeroRates(g *particles.Group) {
	for _, name := range rateNames {
		fillIfPresent(g, name, 0)
	}
}

func fillIfPresent(g *particles.Group, name string, val float64) {
	buf, err := g.Property(name)
	if err != nil {
		return
	}
	for i := range buf {
		buf[i] = val
	}
}
