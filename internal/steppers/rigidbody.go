package steppers

import "github.com/san-kum/lagsim/internal/particles"

// Rigid-body motion steppers. The prescribed body accelerations live in the
// ax, ay, az arrays. Positions always advance with the time-centered average
// of the old and new velocity, which reproduces constant-acceleration motion
// exactly.

// TwoStageRigidBody advances velocity and position at both the half and the
// full step.
type TwoStageRigidBody struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	ax, ay, az []float64
}

func NewTwoStageRigidBody() *TwoStageRigidBody { return &TwoStageRigidBody{} }

func (s *TwoStageRigidBody) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"ax", "ay", "az",
	}
}

func (s *TwoStageRigidBody) Stages() int { return 2 }

func (s *TwoStageRigidBody) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.x0, s.y0, s.z0 = b.prop("x0"), b.prop("y0"), b.prop("z0")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.u0, s.v0, s.w0 = b.prop("u0"), b.prop("v0"), b.prop("w0")
	s.ax, s.ay, s.az = b.prop("ax"), b.prop("ay"), b.prop("az")
	return b.err
}

func (s *TwoStageRigidBody) Initialize(idx int) {
	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]
}

func (s *TwoStageRigidBody) Stage(k, idx int, dt float64) {
	switch k {
	case 1:
		s.step(idx, 0.5*dt)
	case 2:
		s.step(idx, dt)
	}
}

func (s *TwoStageRigidBody) step(idx int, h float64) {
	s.u[idx] = s.u0[idx] + h*s.ax[idx]
	s.v[idx] = s.v0[idx] + h*s.ay[idx]
	s.w[idx] = s.w0[idx] + h*s.az[idx]

	s.x[idx] = s.x0[idx] + h*0.5*(s.u[idx]+s.u0[idx])
	s.y[idx] = s.y0[idx] + h*0.5*(s.v[idx]+s.v0[idx])
	s.z[idx] = s.z0[idx] + h*0.5*(s.w[idx]+s.w0[idx])
}

// OneStageRigidBody defers all motion to stage 2; stage 1 is a no-op so the
// scheme can share a driver with two-stage schemes.
type OneStageRigidBody struct {
	x, y, z    []float64
	x0, y0, z0 []float64
	u, v, w    []float64
	u0, v0, w0 []float64
	ax, ay, az []float64
}

func NewOneStageRigidBody() *OneStageRigidBody { return &OneStageRigidBody{} }

func (s *OneStageRigidBody) Requires() []string {
	return []string{
		"x", "y", "z", "x0", "y0", "z0",
		"u", "v", "w", "u0", "v0", "w0",
		"ax", "ay", "az",
	}
}

func (s *OneStageRigidBody) Stages() int { return 2 }

func (s *OneStageRigidBody) Bind(g *particles.Group) error {
	b := binder{g: g}
	s.x, s.y, s.z = b.prop("x"), b.prop("y"), b.prop("z")
	s.x0, s.y0, s.z0 = b.prop("x0"), b.prop("y0"), b.prop("z0")
	s.u, s.v, s.w = b.prop("u"), b.prop("v"), b.prop("w")
	s.u0, s.v0, s.w0 = b.prop("u0"), b.prop("v0"), b.prop("w0")
	s.ax, s.ay, s.az = b.prop("ax"), b.prop("ay"), b.prop("az")
	return b.err
}

func (s *OneStageRigidBody) Initialize(idx int) {
	s.u0[idx] = s.u[idx]
	s.v0[idx] = s.v[idx]
	s.w0[idx] = s.w[idx]

	s.x0[idx] = s.x[idx]
	s.y0[idx] = s.y[idx]
	s.z0[idx] = s.z[idx]
}

func (s *OneStageRigidBody) Stage(k, idx int, dt float64) {
	if k != 2 {
		return
	}
	s.u[idx] += dt * s.ax[idx]
	s.v[idx] += dt * s.ay[idx]
	s.w[idx] += dt * s.az[idx]

	s.x[idx] += dt * 0.5 * (s.u[idx] + s.u0[idx])
	s.y[idx] += dt * 0.5 * (s.v[idx] + s.v0[idx])
	s.z[idx] += dt * 0.5 * (s.w[idx] + s.w0[idx])
}
