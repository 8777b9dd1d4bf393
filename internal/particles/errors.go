package particles

import "errors"

// Domain errors for particle group operations.
var (
	// ErrUnknownProperty indicates a property name not present in the group.
	ErrUnknownProperty = errors.New("particles: unknown property")

	// ErrUnknownConstant indicates a constant name not present in the group.
	ErrUnknownConstant = errors.New("particles: unknown constant")

	// ErrDuplicateProperty indicates an attempt to add a property twice.
	ErrDuplicateProperty = errors.New("particles: property already exists")

	// ErrLengthMismatch indicates a property array whose length differs
	// from the group's particle count.
	ErrLengthMismatch = errors.New("particles: property length does not match particle count")
)
