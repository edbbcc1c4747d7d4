// Package modring provides a fixed-modulus view over the modular package.
// A Ring value carries a validated modulus, so call sites working in a
// single ring of integers do not repeat it on every operation.
package modring

import (
	"golang.org/x/exp/constraints"

	"github.com/sp301415/modarith/modular"
)

// Ring is the ring of integers modulo a fixed positive modulus.
// It is a stateless value type; copies are safe to use concurrently.
//
// The zero value is not usable; create a Ring with New.
type Ring[T constraints.Signed] struct {
	modulus T
}

// New creates a Ring modulo the given modulus.
//
// Panics when the modulus is not positive.
func New[T constraints.Signed](modulus T) Ring[T] {
	if modulus <= 0 {
		panic("modulus must be positive")
	}
	return Ring[T]{modulus: modulus}
}

// Modulus returns the modulus of the Ring.
func (r Ring[T]) Modulus() T {
	return r.modulus
}

// Reduce maps v to its canonical residue in [0, modulus).
func (r Ring[T]) Reduce(v T) T {
	return (v%r.modulus + r.modulus) % r.modulus
}

// Add returns the canonical residue of a + b.
func (r Ring[T]) Add(a, b T) T {
	return r.Reduce(a + b)
}

// Sub returns the canonical residue of a - b.
func (r Ring[T]) Sub(a, b T) T {
	return r.Reduce(a - b)
}

// Mul returns the canonical residue of a * b.
func (r Ring[T]) Mul(a, b T) T {
	return r.Reduce(a * b)
}

// Inv returns the multiplicative inverse of a as a canonical residue.
// ok is false when a is not coprime with the modulus.
func (r Ring[T]) Inv(a T) (inverse T, ok bool) {
	d, x, _ := modular.ExtGCD(r.Reduce(a), r.modulus)
	if d != 1 {
		return 0, false
	}
	return r.Reduce(x), true
}

// Div returns the canonical residue of a * b⁻¹.
// ok is false when b is not invertible.
func (r Ring[T]) Div(a, b T) (quotient T, ok bool) {
	inverse, ok := r.Inv(b)
	if !ok {
		return 0, false
	}
	return r.Mul(inverse, a), true
}

// Pow returns the canonical residue of a raised to the exponent e,
// by binary exponentiation.
//
// Panics when e is negative.
func (r Ring[T]) Pow(a, e T) T {
	if e < 0 {
		panic("exponent must be non-negative")
	}

	result, base := T(1), a
	for e != 0 {
		if e%2 == 1 {
			result = r.Mul(result, base)
		}
		base = r.Mul(base, base)
		e = e / 2
	}
	return result
}

// Eq reports whether a and b are congruent in the Ring.
func (r Ring[T]) Eq(a, b T) bool {
	return r.Reduce(a) == r.Reduce(b)
}
