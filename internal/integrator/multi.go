package integrator

import (
	"context"
	"errors"
	"sync"
)

// Multi advances several bound integrators through a shared clock. All
// members initialize, then each stage runs across every member before the
// next stage starts, so groups coupled through their evaluators see each
// other at a consistent stage. Members with fewer stages sit out the extra
// stages of longer schemes.
type Multi struct {
	members []*Integrator
}

func NewMulti(members ...*Integrator) (*Multi, error) {
	if len(members) == 0 {
		return nil, errors.New("integrator: multi needs at least one member")
	}
	return &Multi{members: members}, nil
}

// Stages returns the longest stage count among the members.
func (m *Multi) Stages() int {
	max := 0
	for _, in := range m.members {
		if s := in.Stages(); s > max {
			max = s
		}
	}
	return max
}

// StepOnce advances every member from t to t+dt in lockstep.
func (m *Multi) StepOnce(ctx context.Context, ev Evaluator, t, dt float64) error {
	var wg sync.WaitGroup
	for _, in := range m.members {
		wg.Add(1)
		go func(in *Integrator) {
			defer wg.Done()
			n := in.group.Len()
			ParallelFor(n, in.cfg.MinChunk, func(start, end int) {
				for i := start; i < end; i++ {
					in.stepper.Initialize(i)
				}
			})
		}(in)
	}
	wg.Wait()

	for k := 1; k <= m.Stages(); k++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if ev != nil {
			for _, in := range m.members {
				if k > in.Stages() {
					continue
				}
				if k > 1 || in.cfg.EvaluateBeforeStage1 {
					ev.Evaluate(in.group, t, dt)
				}
			}
		}

		for _, in := range m.members {
			if k > in.Stages() {
				continue
			}
			wg.Add(1)
			go func(in *Integrator, stage int) {
				defer wg.Done()
				n := in.group.Len()
				ParallelFor(n, in.cfg.MinChunk, func(start, end int) {
					for i := start; i < end; i++ {
						in.stepper.Stage(stage, i, dt)
					}
				})
			}(in, k)
		}
		wg.Wait()
	}

	return nil
}

// Run advances every member by steps timesteps of size dt starting at t0.
func (m *Multi) Run(ctx context.Context, ev Evaluator, t0, dt float64, steps int) (*Result, error) {
	if dt < 0 {
		return nil, errors.New("integrator: dt must be non-negative")
	}
	if steps < 0 {
		return nil, errors.New("integrator: steps must be non-negative")
	}

	result := &Result{Times: make([]float64, 0, steps+1)}
	t := t0
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		if err := m.StepOnce(ctx, ev, t, dt); err != nil {
			return result, err
		}
		t += dt
		result.StepsTaken++
		result.Times = append(result.Times, t)
	}

	return result, nil
}
