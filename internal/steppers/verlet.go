package steppers

import "github.com/san-kum/lagsim/internal/particles"

// VerletSymplectic is the second-order symplectic scheme from Monaghan's
// review (Rep. Prog. Phys. 68, 2005): a half drift on the current velocity,
// a full velocity kick, then a second half drift on the XSPH-corrected
// velocity stored in ax, ay, az. The drift-kick-drift split is what
// preserves the discrete energy behaviour, so the second drift must use the
// corrected velocity and not the raw one.
//
// Density is intentionally not integrated; summation density supplies it.
// Run in PEC mode: the forces are evaluated at the half-drifted positions.
type VerletSymplectic struct {
	x, y, z    []float64
	u, v, w    []float64
	au, av, aw []float64
	ax, ay, az []float64
}

func NewVerletSymplectic() *VerletSymplectic { return &VerletSymplectic{} }

func (s *VerletSymplectic) Requires() []string {
	return []string{
		"x", "y", "z", "u", "v", "w",
		"au", "av", "aw", "ax", "ay", "az",
	}
}

func (s *VerletSymplectic) Stages() int { return 2 }

func (s *VerletSymplectic) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.au, s.av, s.aw = b.prop("au"), b.prop("av"), b.prop("aw")
	s.ax, s.ay, s.az = b.prop("ax"), b.prop("ay"), b.prop("az")
	return b.err
}

func (s *VerletSymplectic) Initialize(idx int) {}

func (s *VerletSymplectic) Stage(k, idx int, dt float64) {
	dtb2 := 0.5 * dt
	switch k {
	case 1:
		s.x[idx] += dtb2 * s.u[idx]
		s.y[idx] += dtb2 * s.v[idx]
		s.z[idx] += dtb2 * s.w[idx]
	case 2:
		s.u[idx] += dt * s.au[idx]
		s.v[idx] += dt * s.av[idx]
		s.w[idx] += dt * s.aw[idx]

		// second drift uses the XSPH corrected velocity
		s.x[idx] += dtb2 * s.ax[idx]
		s.y[idx] += dtb2 * s.ay[idx]
		s.z[idx] += dtb2 * s.az[idx]
	}
}
