package dxf

import "errors"

var (
	// ErrInvalidConstruction is returned when entity data violates the
	// entity's structural rules.
	ErrInvalidConstruction = errors.New("dxf: invalid construction")

	// ErrNilInput is returned when a required input is missing entirely.
	ErrNilInput = errors.New("dxf: nil input")
)
