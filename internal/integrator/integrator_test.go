package integrator_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/lagsim/internal/forces"
	"github.com/san-kum/lagsim/internal/integrator"
	"github.com/san-kum/lagsim/internal/particles"
	"github.com/san-kum/lagsim/internal/steppers"
)

// countingEvaluator records how often the driver refreshes forces.
type countingEvaluator struct {
	calls int
}

func (c *countingEvaluator) Evaluate(_ *particles.Group, _, _ float64) {
	c.calls++
}

var _ = Describe("Integrator", func() {
	var group *particles.Group

	BeforeEach(func() {
		group = particles.NewWCSPHGroup("fluid", 16)
	})

	Describe("New", func() {
		It("binds the scheme to the group", func() {
			in, err := integrator.New(group, steppers.NewWCSPH(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			Expect(in.Stages()).To(Equal(2))
		})

		It("reports a missing property at bind time", func() {
			bare := particles.NewGroup("bare", 4)
			_, err := integrator.New(bare, steppers.NewWCSPH(), integrator.DefaultConfig())
			Expect(err).To(MatchError(particles.ErrUnknownProperty))
		})
	})

	Describe("StepOnce", func() {
		It("evaluates forces once per step for a two-stage scheme in PEC mode", func() {
			in, err := integrator.New(group, steppers.NewWCSPH(), integrator.Config{})
			Expect(err).NotTo(HaveOccurred())

			ev := &countingEvaluator{}
			Expect(in.StepOnce(context.Background(), ev, 0, 0.01)).To(Succeed())
			Expect(ev.calls).To(Equal(1))
		})

		It("evaluates forces before every stage in EPEC mode", func() {
			cfg := integrator.Config{EvaluateBeforeStage1: true}
			in, err := integrator.New(group, steppers.NewWCSPH(), cfg)
			Expect(err).NotTo(HaveOccurred())

			ev := &countingEvaluator{}
			Expect(in.StepOnce(context.Background(), ev, 0, 0.01)).To(Succeed())
			Expect(ev.calls).To(Equal(2))
		})

		It("leaves positions and velocities unchanged for dt=0", func() {
			x := group.MustProperty("x")
			u := group.MustProperty("u")
			for i := range x {
				x[i] = float64(i)
				u[i] = 2 * float64(i)
			}

			in, err := integrator.New(group, steppers.NewWCSPH(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			Expect(in.StepOnce(context.Background(), forces.NewStill(), 0, 0)).To(Succeed())
			for i := range x {
				Expect(x[i]).To(Equal(float64(i)))
				Expect(u[i]).To(Equal(2 * float64(i)))
			}
		})

		It("stops between stages when the context is canceled", func() {
			in, err := integrator.New(group, steppers.NewWCSPH(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			err = in.StepOnce(ctx, forces.NewStill(), 0, 0.01)
			Expect(err).To(MatchError(context.Canceled))
		})
	})

	Describe("Run", func() {
		It("matches a hand-stepped forward Euler trajectory under gravity", func() {
			const (
				dt    = 0.01
				steps = 50
				gy    = -9.81
			)
			small := particles.NewWCSPHGroup("fluid", 4)
			y := small.MustProperty("y")
			v := small.MustProperty("v")
			for i := range y {
				y[i] = 10.0
			}

			cfg := integrator.Config{EvaluateBeforeStage1: true}
			in, err := integrator.New(small, steppers.NewEuler(), cfg)
			Expect(err).NotTo(HaveOccurred())

			res, err := in.Run(context.Background(), forces.NewConstantGravity(0, gy, 0), 0, dt, steps)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StepsTaken).To(Equal(steps))
			Expect(res.Times).To(HaveLen(steps + 1))

			wantY, wantV := 10.0, 0.0
			for s := 0; s < steps; s++ {
				wantV += dt * gy
				wantY += dt * wantV
			}
			for i := range y {
				Expect(v[i]).To(BeNumerically("~", wantV, 1e-12))
				Expect(y[i]).To(BeNumerically("~", wantY, 1e-12))
			}
		})

		It("rejects a negative dt", func() {
			in, err := integrator.New(group, steppers.NewEuler(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			_, err = in.Run(context.Background(), nil, 0, -0.01, 10)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Multi", func() {
		It("requires at least one member", func() {
			_, err := integrator.NewMulti()
			Expect(err).To(HaveOccurred())
		})

		It("reports the longest stage count among members", func() {
			fluid, err := integrator.New(particles.NewWCSPHGroup("fluid", 8),
				steppers.NewWCSPHTVDRK3(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			solid, err := integrator.New(particles.NewWCSPHGroup("solid", 8),
				steppers.NewEuler(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())

			m, err := integrator.NewMulti(fluid, solid)
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Stages()).To(Equal(3))
		})

		It("steps members with different stage counts to the same result as stepping them alone", func() {
			const dt = 0.01
			gravity := forces.NewConstantGravity(0, -9.81, 0)

			alone := particles.NewWCSPHGroup("fluid", 8)
			together := particles.NewWCSPHGroup("fluid", 8)
			other := particles.NewWCSPHGroup("solid", 8)

			cfg := integrator.Config{EvaluateBeforeStage1: true}
			ref, err := integrator.New(alone, steppers.NewWCSPH(), cfg)
			Expect(err).NotTo(HaveOccurred())
			a, err := integrator.New(together, steppers.NewWCSPH(), cfg)
			Expect(err).NotTo(HaveOccurred())
			b, err := integrator.New(other, steppers.NewEuler(), cfg)
			Expect(err).NotTo(HaveOccurred())

			_, err = ref.Run(context.Background(), gravity, 0, dt, 10)
			Expect(err).NotTo(HaveOccurred())

			m, err := integrator.NewMulti(a, b)
			Expect(err).NotTo(HaveOccurred())
			_, err = m.Run(context.Background(), gravity, 0, dt, 10)
			Expect(err).NotTo(HaveOccurred())

			want := alone.MustProperty("y")
			got := together.MustProperty("y")
			for i := range want {
				Expect(got[i]).To(BeNumerically("~", want[i], 1e-12))
			}
		})

		It("stops between stages when the context is canceled", func() {
			in, err := integrator.New(group, steppers.NewWCSPH(), integrator.DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
			m, err := integrator.NewMulti(in)
			Expect(err).NotTo(HaveOccurred())

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			Expect(m.StepOnce(ctx, forces.NewStill(), 0, 0.01)).To(MatchError(context.Canceled))
		})
	})

	Describe("ParallelFor", func() {
		It("covers the full range exactly once", func() {
			seen := make([]int, 10000)
			integrator.ParallelFor(len(seen), 64, func(start, end int) {
				for i := start; i < end; i++ {
					seen[i]++
				}
			})
			for i, c := range seen {
				Expect(c).To(Equal(1), "index %d visited %d times", i, c)
			}
		})
	})
})
