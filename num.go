package fractex

import "math"

// newtonTol is the per-component convergence tolerance for Newton steps.
const newtonTol = 1e-6

// escaped reports whether z has left the radius-2 escape circle,
// compared on the squared magnitude to avoid the square root.
func escaped(z complex128) bool {
	re, im := real(z), imag(z)
	return re*re+im*im > 4
}

// powInt raises z to a positive integer power by repeated multiplication.
// The degree is validated by the caller.
func powInt(z complex128, d int) complex128 {
	w := z
	for k := 1; k < d; k++ {
		w *= z
	}
	return w
}

func isBad(z complex128) bool {
	return math.IsNaN(real(z)) || math.IsNaN(imag(z)) ||
		math.IsInf(real(z), 0) || math.IsInf(imag(z), 0)
}
