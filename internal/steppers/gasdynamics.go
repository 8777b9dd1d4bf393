package steppers

import "github.com/san-kum/lagsim/internal/particles"

// GasDynamics is the predictor-corrector scheme for compressible gas
// dynamics. It steps thermal energy alongside velocity and position, and
// positions advance with the freshly kicked velocity rather than a separate
// position rate. Density is not integrated; the summation density with
// grad-h terms supplies it.
type GasDynamics struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	e, e0      []float64
	h, h0      []float64
	au, av, aw []float64
	ae         []float64
	converged  []float64
	omega      []float64
}

func NewGasDynamics() *GasDynamics { return &GasDynamics{} }

func (s *GasDynamics) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"e", "e0", "h", "h0",
		"au", "av", "aw", "ae",
		"converged", "omega",
	}
}

func (s *GasDynamics) Stages() int { return 2 }

func (s *GasDynamics) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.x0, s.y0, s.z0 = b.prop("x0"), b.prop("y0"), b.prop("z0")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.u0, s.v0, s.w0 = b.prop("u0"), b.prop("v0"), b.prop("w0")
	s.e, s.e0 = b.prop("e"), b.prop("e0")
	s.h, s.h0 = b.prop("h"), b.prop("h0")
	s.au, s.av, s.aw = b.prop("au"), b.prop("av"), b.prop("aw")
	s.ae = b.prop("ae")
	s.converged = b.prop("converged")
	s.omega = b.prop("omega")
	return b.err
}

func (s *GasDynamics) Initialize(idx int) {
	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]

	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.e0[idx] = s.e[idx]
	s.h0[idx] = s.h[idx]

	// The smoothing-length iteration re-derives these every timestep, so
	// they start each group pass from their defaults.
	s.converged[idx] = 0
	s.omega[idx] = 1.0
}

func (s *GasDynamics) Stage(k, idx int, dt float64) {
	switch k {
	case 1:
		s.step(idx, 0.5*dt)
	case 2:
		s.step(idx, dt)
	}
}

func (s *GasDynamics) step(idx int, h float64) {
	s.u[idx] = s.u0[idx] + h*s.au[idx]
	s.v[idx] = s.v0[idx] + h*s.av[idx]
	s.w[idx] = s.w0[idx] + h*s.aw[idx]

	// positions use the updated velocity
	s.x[idx] = s.x0[idx] + h*s.u[idx]
	s.y[idx] = s.y0[idx] + h*s.v[idx]
	s.z[idx] = s.z0[idx] + h*s.w[idx]

	s.e[idx] = s.e0[idx] + h*s.ae[idx]
}
