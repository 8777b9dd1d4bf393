// Package particles holds per-particle state as named flat arrays.
//
// A [Group] is a collection of properties (one []float64 per physical
// quantity, one element per particle) plus named constants shared by all
// particles of the group. Property lookups resolve to the backing slice, so
// callers that step particles in a hot loop resolve names once and index
// directly afterwards.
//
// Naming conventions follow the usual SPH ones: a predictor copy of property
// "x" is "x0", a rate/acceleration of "x" is "ax" (or a domain prefix such
// as "arho", "ae", "as00").
package particles

import (
	"fmt"
	"sort"
)

// Group is a named set of particles sharing one property schema.
type Group struct {
	name      string
	n         int
	props     map[string][]float64
	constants map[string][]float64
	output    []string
}

// NewGroup creates an empty group holding n particles and no properties.
func NewGroup(name string, n int) *Group {
	return &Group{
		name:      name,
		n:         n,
		props:     make(map[string][]float64),
		constants: make(map[string][]float64),
	}
}

func (g *Group) Name() string { return g.name }

// Len returns the particle count. Every property array has this length.
func (g *Group) Len() int { return g.n }

// AddProperty adds a zero-filled property array.
func (g *Group) AddProperty(name string) error {
	if _, ok := g.props[name]; ok {
		return fmt.Errorf("%w: %q in group %q", ErrDuplicateProperty, name, g.name)
	}
	g.props[name] = make([]float64, g.n)
	return nil
}

// AddPropertyWith adds a property initialized from values. The slice is
// copied; its length must equal the particle count.
func (g *Group) AddPropertyWith(name string, values []float64) error {
	if _, ok := g.props[name]; ok {
		return fmt.Errorf("%w: %q in group %q", ErrDuplicateProperty, name, g.name)
	}
	if len(values) != g.n {
		return fmt.Errorf("%w: %q has %d values, group %q holds %d particles",
			ErrLengthMismatch, name, len(values), g.name, g.n)
	}
	buf := make([]float64, g.n)
	copy(buf, values)
	g.props[name] = buf
	return nil
}

// EnsureProperties adds any of the named properties that are missing,
// zero-filled. Existing arrays are left untouched.
func (g *Group) EnsureProperties(names ...string) {
	for _, name := range names {
		if _, ok := g.props[name]; !ok {
			g.props[name] = make([]float64, g.n)
		}
	}
}

// Property returns the backing slice for a named property. Mutations through
// the slice are visible to every holder; arrays are never resized during
// integration.
func (g *Group) Property(name string) ([]float64, error) {
	buf, ok := g.props[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in group %q", ErrUnknownProperty, name, g.name)
	}
	return buf, nil
}

// MustProperty is Property for callers that have already validated the
// schema; it panics on a missing name.
func (g *Group) MustProperty(name string) []float64 {
	buf, err := g.Property(name)
	if err != nil {
		panic(err)
	}
	return buf
}

func (g *Group) HasProperty(name string) bool {
	_, ok := g.props[name]
	return ok
}

// PropertyNames returns all property names, sorted.
func (g *Group) PropertyNames() []string {
	names := make([]string, 0, len(g.props))
	for name := range g.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetConstant attaches a named scalar or fixed-length vector value shared by
// all particles of the group. A scalar is a length-1 value.
func (g *Group) SetConstant(name string, values ...float64) {
	buf := make([]float64, len(values))
	copy(buf, values)
	g.constants[name] = buf
}

// Constant returns a group constant by name.
func (g *Group) Constant(name string) ([]float64, error) {
	buf, ok := g.constants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in group %q", ErrUnknownConstant, name, g.name)
	}
	return buf, nil
}

// ConstantNames returns all constant names, sorted.
func (g *Group) ConstantNames() []string {
	names := make([]string, 0, len(g.constants))
	for name := range g.constants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetOutputArrays records which properties a persistence dump must preserve.
// Properties outside the selection may be dropped by the codec. An empty
// selection means every property is persisted.
func (g *Group) SetOutputArrays(names []string) {
	g.output = make([]string, len(names))
	copy(g.output, names)
}

// OutputArrays returns the ordered output selection.
func (g *Group) OutputArrays() []string {
	out := make([]string, len(g.output))
	copy(out, g.output)
	return out
}
