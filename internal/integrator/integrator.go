// Package integrator drives multi-stage particle stepping.
//
// An [Integrator] binds one scheme to one particle group and runs the
// initialize/stage protocol for each timestep: initialize every particle,
// then for each stage refresh the acceleration arrays through the
// [Evaluator] and apply the stage to every particle. Phases are separated by
// barriers ([ParallelFor] blocks until a phase completes on all particles);
// within a phase particles are independent.
package integrator

import (
	"context"
	"fmt"

	"github.com/san-kum/lagsim/internal/particles"
	"github.com/san-kum/lagsim/internal/steppers"
)

// Evaluator populates the acceleration and rate arrays a scheme reads. It
// runs between stages on the whole group; the integrator never verifies that
// it actually wrote anything, so a stale evaluator silently freezes the
// group.
type Evaluator interface {
	Evaluate(g *particles.Group, t, dt float64)
}

// Config controls stage scheduling.
type Config struct {
	// EvaluateBeforeStage1 selects EPEC mode: the evaluator also runs
	// before the first stage of every timestep. When false (PEC) the
	// first stage uses whatever the rate arrays held, typically the
	// previous step's forces.
	EvaluateBeforeStage1 bool

	// MinChunk is the smallest particle range handed to one worker.
	MinChunk int
}

func DefaultConfig() Config {
	return Config{EvaluateBeforeStage1: false, MinChunk: 2048}
}

// Result summarizes a Run.
type Result struct {
	Times      []float64
	StepsTaken int
}

// Integrator steps one particle group under one bound scheme.
type Integrator struct {
	group   *particles.Group
	stepper steppers.Stepper
	cfg     Config
}

// New binds the scheme to the group. A property the scheme needs but the
// group lacks is reported here, before any timestep runs.
func New(g *particles.Group, st steppers.Stepper, cfg Config) (*Integrator, error) {
	if err := st.Bind(g); err != nil {
		return nil, fmt.Errorf("integrator: binding scheme to group %q: %w", g.Name(), err)
	}
	if cfg.MinChunk <= 0 {
		cfg.MinChunk = DefaultConfig().MinChunk
	}
	return &Integrator{group: g, stepper: st, cfg: cfg}, nil
}

func (in *Integrator) Group() *particles.Group   { return in.group }
func (in *Integrator) Stepper() steppers.Stepper { return in.stepper }
func (in *Integrator) Stages() int               { return in.stepper.Stages() }

// StepOnce advances the group from t to t+dt. Cancellation is honored
// between phases only; an interrupted timestep leaves the group needing a
// fresh initialize before it is stepped again.
func (in *Integrator) StepOnce(ctx context.Context, ev Evaluator, t, dt float64) error {
	n := in.group.Len()

	ParallelFor(n, in.cfg.MinChunk, func(start, end int) {
		for i := start; i < end; i++ {
			in.stepper.Initialize(i)
		}
	})

	for k := 1; k <= in.stepper.Stages(); k++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ev != nil && (k > 1 || in.cfg.EvaluateBeforeStage1) {
			ev.Evaluate(in.group, t, dt)
		}

		stage := k
		ParallelFor(n, in.cfg.MinChunk, func(start, end int) {
			for i := start; i < end; i++ {
				in.stepper.Stage(stage, i, dt)
			}
		})
	}

	return nil
}

// Run advances the group by steps timesteps of size dt starting at t0.
func (in *Integrator) Run(ctx context.Context, ev Evaluator, t0, dt float64, steps int) (*Result, error) {
	if dt < 0 {
		return nil, fmt.Errorf("integrator: dt must be non-negative, got %f", dt)
	}
	if steps < 0 {
		return nil, fmt.Errorf("integrator: steps must be non-negative, got %d", steps)
	}

	result := &Result{Times: make([]float64, 0, steps+1)}
	t := t0
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		if err := in.StepOnce(ctx, ev, t, dt); err != nil {
			return result, err
		}
		t += dt
		result.StepsTaken++
		result.Times = append(result.Times, t)
	}

	return result, nil
}
