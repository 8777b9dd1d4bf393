package steppers

import "github.com/san-kum/lagsim/internal/particles"

// Euler is single-stage forward Euler. Fast but inaccurate; use it for
// testing.
type Euler struct {
	x, y, z          []float64
	u, v, w          []float64
	rho              []float64
	au, av, aw, arho []float64
}

func NewEuler() *Euler { return &Euler{} }

func (s *Euler) Requires() []string {
	return []string{"x", "y", "z", "u", "v", "w", "rho", "au", "av", "aw", "arho"}
}

func (s *Euler) Stages() int { return 1 }

func (s *Euler) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.rho = b.prop("rho")
	s.au, s.av, s.aw = b.prop("au"), b.prop("av"), b.prop("aw")
	s.arho = b.prop("arho")
	return b.err
}

func (s *Euler) Initialize(idx int) {}

func (s *Euler) Stage(k, idx int, dt float64) {
	if k != 1 {
		return
	}
	s.u[idx] += dt * s.au[idx]
	s.v[idx] += dt * s.av[idx]
	s.w[idx] += dt * s.aw[idx]

	s.x[idx] += dt * s.u[idx]
	s.y[idx] += dt * s.v[idx]
	s.z[idx] += dt * s.w[idx]

	s.rho[idx] += dt * s.arho[idx]
}
