package steppers

import "github.com/san-kum/lagsim/internal/particles"

// WCSPHTVDRK3 is the third-order TVD Runge-Kutta scheme for WCSPH. Stage 1
// takes a full Euler step from the predictor state; stages 2 and 3 blend the
// predictor with a re-stepped intermediate using the classic convex
// combinations 3/4 + 1/4 and 1/3 + 2/3. For a constant right-hand side the
// three stages collapse to a single full-dt Euler step.
type WCSPHTVDRK3 struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	rho, rho0  []float64
	au, av, aw []float64
	ax, ay, az []float64
	arho       []float64
}

func NewWCSPHTVDRK3() *WCSPHTVDRK3 { return &WCSPHTVDRK3{} }

func (s *WCSPHTVDRK3) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"rho", "rho0",
		"au", "av", "aw", "ax", "ay", "az", "arho",
	}
}

func (s *WCSPHTVDRK3) Stages() int { return 3 }

func (s *WCSPHTVDRK3) Bind(g *particles.Group) error {
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

func (s *WCSPHTVDRK3) Initialize(idx int) {
	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]

	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.rho0[idx] = s.rho[idx]
}

func (s *WCSPHTVDRK3) Stage(k, idx int, dt float64) {
	switch k {
	case 1:
		s.u[idx] = s.u0[idx] + dt*s.au[idx]
		s.v[idx] = s.v0[idx] + dt*s.av[idx]
		s.w[idx] = s.w0[idx] + dt*s.aw[idx]

		s.x[idx] = s.x0[idx] + dt*s.ax[idx]
		s.y[idx] = s.y0[idx] + dt*s.ay[idx]
		s.z[idx] = s.z0[idx] + dt*s.az[idx]

		s.rho[idx] = s.rho0[idx] + dt*s.arho[idx]
	case 2:
		s.blend(idx, dt, 0.75, 0.25)
	case 3:
		s.blend(idx, dt, 1.0/3.0, 2.0/3.0)
	}
}

// blend forms a*predictor + b*(current + dt*rate) for every integrated
// quantity. The coefficients are the exact TVD-RK3 rationals.
func (s *WCSPHTVDRK3) blend(idx int, dt, a, b float64) {
	s.u[idx] = a*s.u0[idx] + b*(s.u[idx]+dt*s.au[idx])
	s.v[idx] = a*s.v0[idx] + b*(s.v[idx]+dt*s.av[idx])
	s.w[idx] = a*s.w0[idx] + b*(s.w[idx]+dt*s.aw[idx])

	s.x[idx] = a*s.x0[idx] + b*(s.x[idx]+dt*s.ax[idx])
	s.y[idx] = a*s.y0[idx] + b*(s.y[idx]+dt*s.ay[idx])
	s.z[idx] = a*s.z0[idx] + b*(s.z[idx]+dt*s.az[idx])

	s.rho[idx] = a*s.rho0[idx] + b*(s.rho[idx]+dt*s.arho[idx])
}
