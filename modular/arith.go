package modular

// AddMod returns the canonical residue of a + b.
func AddMod[T Integer, M Unsigned](a, b T, modulus M) T {
	return Constrain(a+b, modulus)
}

// SubMod returns the canonical residue of a - b.
func SubMod[T Integer, M Unsigned](a, b T, modulus M) T {
	return Constrain(a-b, modulus)
}

// MulMod returns the canonical residue of a * b.
func MulMod[T Integer, M Unsigned](a, b T, modulus M) T {
	return Constrain(a*b, modulus)
}

// DivMod returns the canonical residue of a * b⁻¹, the modular quotient of
// a by b. ok is false when b is not invertible modulo the modulus.
func DivMod[T Signed, M Unsigned](a, b T, modulus M) (quotient T, ok bool) {
	inverse, ok := Invert(b, modulus)
	if !ok {
		return 0, false
	}
	return MulMod(inverse, a, modulus), true
}

// PowMod returns the canonical residue of a raised to the exponent e,
// computed by binary exponentiation in O(log e) modular multiplications.
// PowMod(a, 0, modulus) is 1 for every a, including a ≡ 0.
//
// Panics when e is negative.
func PowMod[T Integer, M Unsigned](a, e T, modulus M) T {
	if e < 0 {
		panic("exponent must be non-negative")
	}

	result, base := T(1), a
	for e != 0 {
		if e%2 == 1 {
			result = MulMod(result, base, modulus)
		}
		base = MulMod(base, base, modulus)
		e = e / 2
	}
	return result
}

// EqMod reports whether a and b are congruent modulo the given modulus.
func EqMod[T Integer, M Unsigned](a, b T, modulus M) bool {
	return Constrain(a, modulus) == Constrain(b, modulus)
}

// NeMod reports whether a and b are not congruent modulo the given modulus.
func NeMod[T Integer, M Unsigned](a, b T, modulus M) bool {
	return !EqMod(a, b, modulus)
}
