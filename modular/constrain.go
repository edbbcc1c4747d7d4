package modular

// Constrain maps v to its canonical residue: the unique value in
// [0, modulus) congruent to v, regardless of the sign of v.
// Constraining an already canonical value returns it unchanged.
//
// Panics when the modulus is zero or does not fit in T.
func Constrain[T Integer, M Unsigned](v T, modulus M) T {
	m := castModulus[T](modulus)
	return (v%m + m) % m
}
