// Package modular implements modular arithmetic over machine integer types:
// canonical residue reduction, the extended Euclidean algorithm, modular
// inversion, and the usual modular combinators built on top of them.
//
// All operations are pure functions over value types. A modulus is always an
// unsigned value interpreted as strictly positive; operands may be signed,
// and negative operands are canonicalized to their residue in [0, modulus).
// Intermediate sums and products use native arithmetic without overflow
// protection, so callers choose an operand type wide enough to hold them.
package modular

import (
	"golang.org/x/exp/constraints"
)

// Integer is the operand capability: any built-in integer type.
type Integer interface {
	constraints.Integer
}

// Signed is the operand capability for operations that rely on signedness,
// namely ExtGCD, Invert, DivMod and CRT.
type Signed interface {
	constraints.Signed
}

// Unsigned is the modulus capability: a non-negative integer type
// convertible into the operand type.
type Unsigned interface {
	constraints.Unsigned
}

// castModulus converts a modulus into the operand type.
//
// Panics when the modulus is zero or not representable as a strictly
// positive value of T.
func castModulus[T Integer, M Unsigned](modulus M) T {
	m := T(modulus)
	if m <= 0 || M(m) != modulus {
		panic("modulus must be positive and fit in the operand type")
	}
	return m
}
