package fractex

import (
	"math"
	"testing"
)

func TestMandelbrotInterior(t *testing.T) {
	// The origin is inside the set and must exhaust the budget.
	if got := (Mandelbrot{}).Sample(0, 0, 50); got != 1 {
		t.Errorf("Sample(0,0) = %g, want 1", got)
	}
}

func TestMandelbrotImmediateEscape(t *testing.T) {
	// (2,2) escapes on the first iteration for any budget.
	for _, maxIter := range []int{1, 10, 1000} {
		want := 1 / float64(maxIter)
		if got := (Mandelbrot{}).Sample(2, 2, maxIter); got != want {
			t.Errorf("Sample(2,2,%d) = %g, want %g", maxIter, got, want)
		}
	}
}

func TestEscapeKindsNormalized(t *testing.T) {
	kinds := []GridKind{
		Mandelbrot{},
		Julia{CRe: -0.8, CIm: 0.156},
		BurningShip{},
		Tricorn{},
		Buffalo{},
		DefaultPhoenix(),
		Magnet{},
		Multibrot{Degree: 5},
		Newton{},
	}
	for _, k := range kinds {
		g := UniformGrid(DefaultRegion(k), 9, 9)
		var buf Buffer
		if err := SampleGrid(k, g, 30, &buf); err != nil {
			t.Fatalf("%s: SampleGrid: %v", k.Name(), err)
		}
		for _, rec := range buf.Samples {
			if rec.Value < 0 || rec.Value > 1 || math.IsNaN(rec.Value) {
				t.Fatalf("%s: value %g at (%g,%g) outside [0,1]",
					k.Name(), rec.Value, rec.Pos.X, rec.Pos.Y)
			}
		}
	}
}

func TestMultibrotDegreeTwoMatchesMandelbrot(t *testing.T) {
	mb := Mandelbrot{}
	m2 := Multibrot{Degree: 2}
	pts := [][2]float64{{0, 0}, {-1, 0}, {0.3, 0.5}, {2, 2}, {-0.75, 0.1}}
	for _, p := range pts {
		a := mb.Sample(p[0], p[1], 64)
		b := m2.Sample(p[0], p[1], 64)
		if a != b {
			t.Errorf("Sample(%g,%g): multibrot(2) = %g, mandelbrot = %g", p[0], p[1], b, a)
		}
	}
}

func TestNewtonConvergesNearRoot(t *testing.T) {
	// Points at and near the cube roots of unity converge in 0-2 steps.
	roots := [][2]float64{
		{1, 0},
		{-0.5, 0.8660254},
		{-0.5, -0.8660254},
	}
	for _, p := range roots {
		got := (Newton{}).Sample(p[0], p[1], 20)
		if got > 2.0/20 {
			t.Errorf("Sample(%g,%g) = %g, want <= %g", p[0], p[1], got, 2.0/20)
		}
	}
}

func TestNewtonZeroDerivative(t *testing.T) {
	// The derivative vanishes at the origin; the orbit stops immediately.
	if got := (Newton{}).Sample(0, 0, 20); got != 0 {
		t.Errorf("Sample(0,0) = %g, want 0", got)
	}
}

func TestMagnetZeroDenominator(t *testing.T) {
	// At c = 2 the first denominator 2z + c - 2 is zero; the orbit stops
	// with count 0.
	if got := (Magnet{}).Sample(2, 0, 10); got != 0 {
		t.Errorf("Sample(2,0) = %g, want 0", got)
	}
}

func TestTricornConjugateSymmetry(t *testing.T) {
	k := Tricorn{}
	pts := [][2]float64{{0.1, 0.7}, {-1.1, 0.3}, {0.4, 1.2}}
	for _, p := range pts {
		a := k.Sample(p[0], p[1], 50)
		b := k.Sample(p[0], -p[1], 50)
		if a != b {
			t.Errorf("Sample(%g,±%g): %g vs %g", p[0], p[1], a, b)
		}
	}
}
