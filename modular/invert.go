package modular

// Invert returns the multiplicative inverse of a modulo the given modulus,
// as a canonical residue in [0, modulus). The inverse exists if and only if
// the residue of a is coprime with the modulus; ok reports whether it does.
// In particular a ≡ 0, which shares the whole modulus as a factor, is never
// invertible.
//
// Panics when the modulus is zero or does not fit in T.
func Invert[T Signed, M Unsigned](a T, modulus M) (inverse T, ok bool) {
	d, x, _ := ExtGCD(Constrain(a, modulus), castModulus[T](modulus))
	if d != 1 {
		return 0, false
	}
	return Constrain(x, modulus), true
}
