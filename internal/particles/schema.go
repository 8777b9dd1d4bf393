package particles

// Standard property schemas for the supported particle formulations. Setup
// code builds a group from one of these and the scheme binder validates it;
// schemes never add arrays themselves.

var basicProps = []string{
	"x", "y", "z", "u", "v", "w",
	"rho", "m", "h", "p",
	"au", "av", "aw", "arho",
}

var wcsphProps = append([]string{
	"x0", "y0", "z0", "u0", "v0", "w0", "rho0",
	"ax", "ay", "az", "cs", "vmag2",
	"uhat", "vhat", "auhat", "avhat",
}, basicProps...)

var solidMechProps = append([]string{
	"e", "e0", "ae",
	"s00", "s01", "s02", "s11", "s12", "s22",
	"s000", "s010", "s020", "s110", "s120", "s220",
	"as00", "as01", "as02", "as11", "as12", "as22",
}, wcsphProps...)

var gasProps = append([]string{
	"e", "e0", "ae", "h0", "converged", "omega",
}, wcsphProps...)

// DefaultOutputArrays is the output selection new groups start with.
var DefaultOutputArrays = []string{"x", "y", "z", "u", "v", "w", "rho", "m", "h", "p"}

func newSchemaGroup(name string, n int, props []string) *Group {
	g := NewGroup(name, n)
	g.EnsureProperties(props...)
	g.SetOutputArrays(DefaultOutputArrays)
	return g
}

// NewBasicGroup creates a group with the minimal property set every scheme
// shares (positions, velocities, density and their rates).
func NewBasicGroup(name string, n int) *Group {
	return newSchemaGroup(name, n, basicProps)
}

// NewWCSPHGroup creates a group carrying the weakly-compressible SPH schema:
// the basic set plus predictor copies, position rates, sound speed and the
// transport-velocity arrays.
func NewWCSPHGroup(name string, n int) *Group {
	return newSchemaGroup(name, n, wcsphProps)
}

// NewSolidMechGroup extends the WCSPH schema with internal energy and the six
// deviatoric stress components, their predictor copies and rates.
func NewSolidMechGroup(name string, n int) *Group {
	return newSchemaGroup(name, n, solidMechProps)
}

// NewGasGroup extends the WCSPH schema with internal energy, the smoothing
// length predictor and the grad-h iteration fields.
func NewGasGroup(name string, n int) *Group {
	return newSchemaGroup(name, n, gasProps)
}
