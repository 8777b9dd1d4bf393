package steppers

import "github.com/san-kum/lagsim/internal/particles"

// AdamiVerlet is the Verlet stepping from Adami, Hu and Adams, "A
// generalized wall boundary condition for smoothed particle hydrodynamics",
// JCP 231 (2012). Stage 1 half-kicks velocity and half-drifts position;
// stage 2 repeats both half-steps, advances density a full dt through the
// continuity rate and refreshes vmag2. Works in PEC or EPEC mode.
type AdamiVerlet struct {
	x, y      []float64
	u, v      []float64
	au, av    []float64
	rho, arho []float64
	vmag2     []float64
}

func NewAdamiVerlet() *AdamiVerlet { return &AdamiVerlet{} }

func (s *AdamiVerlet) Requires() []string {
	return []string{"x", "y", "u", "v", "au", "av", "rho", "arho", "vmag2"}
}

func (s *AdamiVerlet) Stages() int { return 2 }

func (s *AdamiVerlet) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y = b.prop("x"), b.prop("y")
	s.u, s.v = b.prop("u"), b.prop("v")
	s.au, s.av = b.prop("au"), b.prop("av")
	s.rho, s.arho = b.prop("rho"), b.prop("arho")
	s.vmag2 = b.prop("vmag2")
	return b.err
}

func (s *AdamiVerlet) Initialize(idx int) {}

func (s *AdamiVerlet) Stage(k, idx int, dt float64) {
	dtb2 := 0.5 * dt
	switch k {
	case 1:
		s.u[idx] += dtb2 * s.au[idx]
		s.v[idx] += dtb2 * s.av[idx]

		s.x[idx] += dtb2 * s.u[idx]
		s.y[idx] += dtb2 * s.v[idx]
	case 2:
		s.u[idx] += dtb2 * s.au[idx]
		s.v[idx] += dtb2 * s.av[idx]

		s.x[idx] += dtb2 * s.u[idx]
		s.y[idx] += dtb2 * s.v[idx]

		s.rho[idx] += dt * s.arho[idx]

		s.vmag2[idx] = s.u[idx]*s.u[idx] + s.v[idx]*s.v[idx]
	}
}
