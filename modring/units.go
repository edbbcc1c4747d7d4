package modring

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/sp301415/modarith/modular"
)

// Units returns a bitmap over [0, modulus) in which bit i is set if and
// only if i is invertible in the Ring, that is, gcd(i, modulus) = 1.
func (r Ring[T]) Units() *bitset.BitSet {
	units := bitset.New(uint(r.modulus))
	for i := T(0); i < r.modulus; i++ {
		if modular.GCD(i, r.modulus) == 1 {
			units.Set(uint(i))
		}
	}
	return units
}

// UnitCount returns the number of invertible residues in the Ring,
// the Euler totient of the modulus.
func (r Ring[T]) UnitCount() uint {
	return r.Units().Count()
}
