package fractex

import (
	"fmt"
	"math"
)

// The escape-time kinds. Each Sample iterates its update rule until the
// orbit leaves the radius-2 circle or the budget runs out and returns
// the iteration count divided by maxIter.

// Mandelbrot iterates z <- z^2 + c with c the grid point and z0 = 0.
type Mandelbrot struct{}

func (Mandelbrot) Name() string    { return "mandelbrot" }
func (Mandelbrot) validate() error { return nil }

func (Mandelbrot) Sample(x, y float64, maxIter int) float64 {
	c := complex(x, y)
	var z complex128
	n := 0
	for n < maxIter && !escaped(z) {
		z = z*z + c
		n++
	}
	return float64(n) / float64(maxIter)
}

// Julia iterates z <- z^2 + c with fixed c and z0 the grid point.
type Julia struct {
	CRe, CIm float64
}

func (Julia) Name() string    { return "julia" }
func (Julia) validate() error { return nil }

func (f Julia) Sample(x, y float64, maxIter int) float64 {
	c := complex(f.CRe, f.CIm)
	z := complex(x, y)
	n := 0
	for n < maxIter && !escaped(z) {
		z = z*z + c
		n++
	}
	return float64(n) / float64(maxIter)
}

// BurningShip iterates z <- (|re z| + i|im z|)^2 + c, folding the
// absolute value into the cross term.
type BurningShip struct{}

func (BurningShip) Name() string    { return "burningship" }
func (BurningShip) validate() error { return nil }

func (BurningShip) Sample(x, y float64, maxIter int) float64 {
	var a, b float64
	n := 0
	for n < maxIter && a*a+b*b <= 4 {
		a, b = a*a-b*b+x, math.Abs(2*a*b)+y
		n++
	}
	return float64(n) / float64(maxIter)
}

// Tricorn iterates z <- conj(z)^2 + c.
type Tricorn struct{}

func (Tricorn) Name() string    { return "tricorn" }
func (Tricorn) validate() error { return nil }

func (Tricorn) Sample(x, y float64, maxIter int) float64 {
	var a, b float64
	n := 0
	for n < maxIter && a*a+b*b <= 4 {
		a, b = a*a-b*b+x, -2*a*b+y
		n++
	}
	return float64(n) / float64(maxIter)
}

// Buffalo takes component-wise absolute values before squaring:
// re' = |re|^2 - |im|^2, im' = 2|re||im|.
type Buffalo struct{}

func (Buffalo) Name() string    { return "buffalo" }
func (Buffalo) validate() error { return nil }

func (Buffalo) Sample(x, y float64, maxIter int) float64 {
	var a, b float64
	n := 0
	for n < maxIter && a*a+b*b <= 4 {
		aa, bb := math.Abs(a), math.Abs(b)
		a, b = aa*aa-bb*bb+x, 2*aa*bb+y
		n++
	}
	return float64(n) / float64(maxIter)
}

// Phoenix iterates z <- z^2 + P*z_prev + c with fixed c and P and z0 the
// grid point.
type Phoenix struct {
	CRe, CIm float64
	P        float64
}

// DefaultPhoenix returns the classic parameterization c = 0.5667,
// P = -0.5.
func DefaultPhoenix() Phoenix {
	return Phoenix{CRe: 0.5667, P: -0.5}
}

func (Phoenix) Name() string    { return "phoenix" }
func (Phoenix) validate() error { return nil }

func (f Phoenix) Sample(x, y float64, maxIter int) float64 {
	c := complex(f.CRe, f.CIm)
	p := complex(f.P, 0)
	z := complex(x, y)
	var prev complex128
	n := 0
	for n < maxIter && !escaped(z) {
		z, prev = z*z+p*prev+c, z
		n++
	}
	return float64(n) / float64(maxIter)
}

// Magnet iterates z <- ((z^2 + c - 1) / (2z + c - 2))^2 with c the grid
// point and z0 = 0. A zero denominator ends the orbit with the current
// count.
type Magnet struct{}

func (Magnet) Name() string    { return "magnet" }
func (Magnet) validate() error { return nil }

func (Magnet) Sample(x, y float64, maxIter int) float64 {
	c := complex(x, y)
	var z complex128
	n := 0
	for n < maxIter && !escaped(z) {
		den := 2*z + c - 2
		if den == 0 {
			break
		}
		w := (z*z + c - 1) / den
		z = w * w
		n++
		if isBad(z) {
			break
		}
	}
	return float64(n) / float64(maxIter)
}

// Multibrot iterates z <- z^d + c with c the grid point and z0 = 0.
// Degree must be at least 1.
type Multibrot struct {
	Degree int
}

func (Multibrot) Name() string { return "multibrot" }

func (f Multibrot) validate() error {
	if f.Degree < 1 {
		return fmt.Errorf("degree %d: %w", f.Degree, ErrUnsupportedDegree)
	}
	return nil
}

func (f Multibrot) Sample(x, y float64, maxIter int) float64 {
	c := complex(x, y)
	var z complex128
	n := 0
	for n < maxIter && !escaped(z) {
		z = powInt(z, f.Degree) + c
		n++
	}
	return float64(n) / float64(maxIter)
}

// Newton iterates Newton's method on f(z) = z^3 - 1 from the grid point
// and counts the steps until the update falls below the tolerance in
// both components. A zero derivative ends the orbit with the current
// count.
type Newton struct{}

func (Newton) Name() string    { return "newton" }
func (Newton) validate() error { return nil }

func (Newton) Sample(x, y float64, maxIter int) float64 {
	z := complex(x, y)
	for n := 0; n < maxIter; n++ {
		den := 3 * z * z
		if den == 0 {
			return float64(n) / float64(maxIter)
		}
		d := (z*z*z - 1) / den
		z -= d
		if math.Abs(real(d)) < newtonTol && math.Abs(imag(d)) < newtonTol {
			return float64(n) / float64(maxIter)
		}
	}
	return 1
}
