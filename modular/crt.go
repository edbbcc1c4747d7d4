package modular

// CRT solves the system of simultaneous congruences x ≡ remainders[i]
// (mod moduli[i]) by the Chinese remainder theorem, returning the unique
// solution in [0, ∏moduli). The moduli must be pairwise coprime; ok is
// false otherwise. The product of the moduli, and intermediate products
// up to it, must fit in T.
//
// Panics when the slices are empty or of unequal length, or when any
// modulus is zero or does not fit in T.
func CRT[T Signed, M Unsigned](remainders []T, moduli []M) (solution T, ok bool) {
	if len(remainders) == 0 || len(remainders) != len(moduli) {
		panic("remainders and moduli must have equal non-zero length")
	}

	x := Constrain(remainders[0], moduli[0])
	n := castModulus[T](moduli[0])
	for i := 1; i < len(moduli); i++ {
		m := castModulus[T](moduli[i])

		// Lift x from [0, n) to [0, n*m): x' = x + n*t, where t is chosen
		// so that x' ≡ remainders[i] (mod m).
		inverse, ok := Invert(n, moduli[i])
		if !ok {
			return 0, false
		}
		r := Constrain(remainders[i], moduli[i])
		t := MulMod(r-x, inverse, moduli[i])

		x += n * t
		n *= m
	}
	return x, true
}
