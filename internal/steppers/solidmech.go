package steppers

import "github.com/san-kum/lagsim/internal/particles"

// SolidMech is the WCSPH predictor-corrector extended for solid mechanics:
// it additionally steps the specific internal energy e and the six
// independent components of the symmetric deviatoric stress tensor against
// their own predictor copies and rates.
type SolidMech struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	rho, rho0  []float64
	e, e0      []float64
	au, av, aw []float64
	ax, ay, az []float64
	arho, ae   []float64

	s00, s01, s02, s11, s12, s22       []float64
	s000, s010, s020, s110, s120, s220 []float64
	as00, as01, as02, as11, as12, as22 []float64
}

func NewSolidMech() *SolidMech { return &SolidMech{} }

func (s *SolidMech) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"rho", "rho0", "e", "e0",
		"au", "av", "aw", "ax", "ay", "az", "arho", "ae",
		"s00", "s01", "s02", "s11", "s12", "s22",
		"s000", "s010", "s020", "s110", "s120", "s220",
		"as00", "as01", "as02", "as11", "as12", "as22",
	}
}

func (s *SolidMech) Stages() int { return 2 }

func (s *SolidMech) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.x0, s.y0, s.z0 = b.prop("x0"), b.prop("y0"), b.prop("z0")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.u0, s.v0, s.w0 = b.prop("u0"), b.prop("v0"), b.prop("w0")
	s.rho, s.rho0 = b.prop("rho"), b.prop("rho0")
	s.e, s.e0 = b.prop("e"), b.prop("e0")
	s.au, s.av, s.aw = b.prop("au"), b.prop("av"), b.prop("aw")
	s.ax, s.ay, s.az = b.prop("ax"), b.prop("ay"), b.prop("az")
	s.arho, s.ae = b.prop("arho"), b.prop("ae")
	s.s00, s.s01, s.s02 = b.prop("s00"), b.prop("s01"), b.prop("s02")
	s.s11, s.s12, s.s22 = b.prop("s11"), b.prop("s12"), b.prop("s22")
	s.s000, s.s010, s.s020 = b.prop("s000"), b.prop("s010"), b.prop("s020")
	s.s110, s.s120, s.s220 = b.prop("s110"), b.prop("s120"), b.prop("s220")
	s.as00, s.as01, s.as02 = b.prop("as00"), b.prop("as01"), b.prop("as02")
	s.as11, s.as12, s.as22 = b.prop("as11"), b.prop("as12"), b.prop("as22")
	return b.err
}

func (s *SolidMech) Initialize(idx int) {
	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]

	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.rho0[idx] = s.rho[idx]
	s.e0[idx] = s.e[idx]

	s.s000[idx] = s.s00[idx]
	s.s010[idx] = s.s01[idx]
	s.s020[idx] = s.s02[idx]
	s.s110[idx] = s.s11[idx]
	s.s120[idx] = s.s12[idx]
	s.s220[idx] = s.s22[idx]
}

func (s *SolidMech) Stage(k, idx int, dt float64) {
	switch k {
	case 1:
		s.step(idx, 0.5*dt)
	case 2:
		s.step(idx, dt)
	}
}

func (s *SolidMech) step(idx int, h float64) {
	s.u[idx] = s.u0[idx] + h*s.au[idx]
	s.v[idx] = s.v0[idx] + h*s.av[idx]
	s.w[idx] = s.w0[idx] + h*s.aw[idx]

	s.x[idx] = s.x0[idx] + h*s.ax[idx]
	s.y[idx] = s.y0[idx] + h*s.ay[idx]
	s.z[idx] = s.z0[idx] + h*s.az[idx]

	s.rho[idx] = s.rho0[idx] + h*s.arho[idx]
	s.e[idx] = s.e0[idx] + h*s.ae[idx]

	s.s00[idx] = s.s000[idx] + h*s.as00[idx]
	s.s01[idx] = s.s010[idx] + h*s.as01[idx]
	s.s02[idx] = s.s020[idx] + h*s.as02[idx]
	s.s11[idx] = s.s110[idx] + h*s.as11[idx]
	s.s12[idx] = s.s120[idx] + h*s.as12[idx]
	s.s22[idx] = s.s220[idx] + h*s.as22[idx]
}
