// Package metrics computes scalar diagnostics over particle groups.
// Missing arrays contribute zero, so the functions work across every group
// schema.
package metrics

import (
	"math"

	"github.com/san-kum/lagsim/internal/particles"
)

func component(g *particles.Group, name string) []float64 {
	buf, err := g.Property(name)
	if err != nil {
		return nil
	}
	return buf
}

func speed2(u, v, w []float64, i int) float64 {
	s := 0.0
	if u != nil {
		s += u[i] * u[i]
	}
	if v != nil {
		s += v[i] * v[i]
	}
	if w != nil {
		s += w[i] * w[i]
	}
	return s
}

// KineticEnergy returns the summed 0.5*m*|v|^2 over the group. Particles
// without a mass array count with unit mass.
func KineticEnergy(g *particles.Group) float64 {
	u := component(g, "u")
	v := component(g, "v")
	w := component(g, "w")
	m := component(g, "m")

	total := 0.0
	for i := 0; i < g.Len(); i++ {
		mass := 1.0
		if m != nil {
			mass = m[i]
		}
		total += 0.5 * mass * speed2(u, v, w, i)
	}
	return total
}

// MaxSpeed returns the largest particle speed in the group.
func MaxSpeed(g *particles.Group) float64 {
	u := component(g, "u")
	v := component(g, "v")
	w := component(g, "w")

	max := 0.0
	for i := 0; i < g.Len(); i++ {
		if s := speed2(u, v, w, i); s > max {
			max = s
		}
	}
	return math.Sqrt(max)
}

// MeanSpeed returns the average particle speed in the group.
func MeanSpeed(g *particles.Group) float64 {
	if g.Len() == 0 {
		return 0
	}
	u := component(g, "u")
	v := component(g, "v")
	w := component(g, "w")

	sum := 0.0
	for i := 0; i < g.Len(); i++ {
		sum += math.Sqrt(speed2(u, v, w, i))
	}
	return sum / float64(g.Len())
}

// MeanDensity returns the average density, or zero when the group carries
// no rho array.
func MeanDensity(g *particles.Group) float64 {
	rho := component(g, "rho")
	if rho == nil || g.Len() == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range rho {
		sum += r
	}
	return sum / float64(g.Len())
}
