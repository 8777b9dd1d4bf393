package steppers

import "github.com/san-kum/lagsim/internal/particles"

// TransportVelocity implements the integrator from Adami, Hu and Adams,
// "A transport-velocity formulation for smoothed particle hydrodynamics",
// JCP 241 (2013). It carries a separate advection velocity (uhat, vhat):
// stage 1 half-kicks the momentum velocity, derives the advection velocity
// with its own half-kick, and drifts positions a full dt along the advection
// velocity. Stage 2 completes the momentum half-kick and refreshes vmag2.
//
// Run this scheme in PEC mode only.
type TransportVelocity struct {
	x, y         []float64
	u, v         []float64
	au, av       []float64
	uhat, vhat   []float64
	auhat, avhat []float64
	vmag2        []float64
}

func NewTransportVelocity() *TransportVelocity { return &TransportVelocity{} }

func (s *TransportVelocity) Requires() []string {
	return []string{
		"x", "y", "u", "v", "au", "av",
		"uhat", "vhat", "auhat", "avhat", "vmag2",
	}
}

func (s *TransportVelocity) Stages() int { return 2 }

func (s *TransportVelocity) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y = b.prop("x"), b.prop("y")
	s.u, s.v = b.prop("u"), b.prop("v")
	s.au, s.av = b.prop("au"), b.prop("av")
	s.uhat, s.vhat = b.prop("uhat"), b.prop("vhat")
	s.auhat, s.avhat = b.prop("auhat"), b.prop("avhat")
	s.vmag2 = b.prop("vmag2")
	return b.err
}

func (s *TransportVelocity) Initialize(idx int) {}

func (s *TransportVelocity) Stage(k, idx int, dt float64) {
	dtb2 := 0.5 * dt
	switch k {
	case 1:
		s.u[idx] += dtb2 * s.au[idx]
		s.v[idx] += dtb2 * s.av[idx]

		s.uhat[idx] = s.u[idx] + dtb2*s.auhat[idx]
		s.vhat[idx] = s.v[idx] + dtb2*s.avhat[idx]

		// positions drift along the advection velocity
		s.x[idx] += dt * s.uhat[idx]
		s.y[idx] += dt * s.vhat[idx]
	case 2:
		s.u[idx] += dtb2 * s.au[idx]
		s.v[idx] += dtb2 * s.av[idx]

		s.vmag2[idx] = s.u[idx]*s.u[idx] + s.v[idx]*s.v[idx]
	}
}
