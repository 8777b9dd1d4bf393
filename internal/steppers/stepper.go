// Package steppers implements multi-stage time integration schemes for
// particle groups.
//
// Every scheme satisfies [Stepper]: a driver calls Initialize once per
// particle per timestep, then Stage(1..Stages) per particle with the current
// dt, refreshing acceleration arrays between stages. All scheme "memory"
// (predictor copies, rates) lives in named group properties; the stepper
// structs themselves only hold resolved slices.
//
// Arithmetic is plain float64 with no NaN guarding: invalid accelerations
// propagate unchanged, validity checking belongs to the force evaluator.
package steppers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/lagsim/internal/particles"
)

// ErrUnknownScheme indicates a scheme kind not present in the registry.
var ErrUnknownScheme = errors.New("steppers: unknown scheme")

// Stepper advances one particle group under a fixed integration scheme.
type Stepper interface {
	// Bind resolves the scheme's property names against g once, before the
	// first timestep. A missing property is a configuration error reported
	// here, never a per-particle failure.
	Bind(g *particles.Group) error

	// Requires lists every property name the scheme reads or writes.
	Requires() []string

	// Stages reports how many stage calls make up one timestep.
	Stages() int

	// Initialize copies current state into the predictor arrays for
	// particle idx. Runs exactly once per timestep, before any stage.
	Initialize(idx int)

	// Stage applies stage k (1-based) to particle idx. Calling a stage
	// again with refreshed accelerations is the predictor-corrector
	// pattern, not an error. Stages outside 1..Stages() are no-ops.
	Stage(k, idx int, dt float64)
}

// binder accumulates property lookups so Bind methods read as one block and
// report the first missing name.
type binder struct {
	g   *particles.Group
	err error
}

func (b *binder) prop(name string) []float64 {
	if b.err != nil {
		return nil
	}
	buf, err := b.g.Property(name)
	if err != nil {
		b.err = err
		return nil
	}
	return buf
}

var schemes = map[string]func() Stepper{
	"euler":                func() Stepper { return NewEuler() },
	"wcsph":                func() Stepper { return NewWCSPH() },
	"wcsph_tvdrk3":         func() Stepper { return NewWCSPHTVDRK3() },
	"solid_mech":           func() Stepper { return NewSolidMech() },
	"transport_velocity":   func() Stepper { return NewTransportVelocity() },
	"adami_verlet":         func() Stepper { return NewAdamiVerlet() },
	"gas_dynamics":         func() Stepper { return NewGasDynamics() },
	"rigid_body_two_stage": func() Stepper { return NewTwoStageRigidBody() },
	"rigid_body_one_stage": func() Stepper { return NewOneStageRigidBody() },
	"verlet_symplectic":    func() Stepper { return NewVerletSymplectic() },
}

// New constructs a stepper by registry kind.
func New(kind string) (Stepper, error) {
	ctor, ok := schemes[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, kind)
	}
	return ctor(), nil
}

// Kinds returns the registered scheme kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(schemes))
	for kind := range schemes {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}
