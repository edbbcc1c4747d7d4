package modular

// ExtGCD runs the extended Euclidean algorithm on a and b, returning
// d = gcd(a, b) together with the Bezout coefficients x, y satisfying
//
//	a*x + b*y = d
//
// Division and remainder follow the machine truncating semantics, so the
// signs of d, x, y on negative inputs follow directly from those semantics;
// for non-negative inputs d is non-negative. The recursion terminates after
// O(log min(|a|, |b|)) steps, since the remainder sequence strictly
// decreases in magnitude.
func ExtGCD[T Signed](a, b T) (d, x, y T) {
	if b == 0 {
		return a, 1, 0
	}
	d, x, y = ExtGCD(b, a%b)
	return d, y, x - (a/b)*y
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD[T Signed](a, b T) T {
	d, _, _ := ExtGCD(a, b)
	if d < 0 {
		return -d
	}
	return d
}

// LCM returns the least common multiple of a and b, always non-negative.
// LCM(0, b) and LCM(a, 0) are 0.
func LCM[T Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}
