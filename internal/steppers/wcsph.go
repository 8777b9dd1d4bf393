package steppers

import "github.com/san-kum/lagsim/internal/particles"

// WCSPH is the standard predictor-corrector scheme for the weakly
// compressible SPH formulation. The predictor advances particles to
// t + dt/2; the corrector repeats the step with the forces computed there.
// Works in PEC or EPEC mode; the choice of how often forces are refreshed
// between stages belongs to the driver.
//
// Positions advance with the dedicated position rates ax, ay, az (XSPH
// corrected velocity), not the momentum velocity.
type WCSPH struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	rho, rho0  []float64
	au, av, aw []float64
	ax, ay, az []float64
	arho       []float64
}

func NewWCSPH() *WCSPH { return &WCSPH{} }

func (s *WCSPH) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"rho", "rho0",
		"au", "av", "aw", "ax", "ay", "az", "arho",
	}
}

func (s *WCSPH) Stages() int { return 2 }

func (s *WCSPH) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.x0, s.y0, s.z0 = b.prop("x0"), b.prop("y0"), b.prop("z0")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.u0, s.v0, s.w0 = b.prop("u0"), b.prop("v0"), b.prop("w0")
	s.rho, s.rho0 = b.prop("rho"), b.prop("rho0")
	s.au, s.av, s.aw = b.prop("au"), b.prop("av"), b.prop("aw")
	s.ax, s.ay, s.az = b.prop("ax"), b.prop("ay"), b.prop("az")
	s.arho = b.prop("arho")
	return b.err
}

func (s *WCSPH) Initialize(idx int) {
	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]

	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.rho0[idx] = s.rho[idx]
}

func (s *WCSPH) Stage(k, idx int, dt float64) {
	switch k {
	case 1:
		s.step(idx, 0.5*dt)
	case 2:
		s.step(idx, dt)
	}
}

// step advances from the predictor state over h, the half or full timestep.
func (s *WCSPH) step(idx int, h float64) {
	s.u[idx] = s.u0[idx] + h*s.au[idx]
	s.v[idx] = s.v0[idx] + h*s.av[idx]
	s.w[idx] = s.w0[idx] + h*s.aw[idx]

	s.x[idx] = s.x0[idx] + h*s.ax[idx]
	s.y[idx] = s.y0[idx] + h*s.ay[idx]
	s.z[idx] = s.z0[idx] + h*s.az[idx]

	s.rho[idx] = s.rho0[idx] + h*s.arho[idx]
}
