package fractex

import (
	"fmt"
	"math"
)

// Region is a rectangular sampling domain on the complex plane. The
// Lyapunov kind reads it as the (a, b) parameter rectangle of the
// logistic map instead.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Validate reports whether the region is non-empty.
func (r Region) Validate() error {
	if r.Xmin >= r.Xmax {
		return fmt.Errorf("xmin %g >= xmax %g: %w", r.Xmin, r.Xmax, ErrInvalidDomain)
	}
	if r.Ymin >= r.Ymax {
		return fmt.Errorf("ymin %g >= ymax %g: %w", r.Ymin, r.Ymax, ErrInvalidDomain)
	}
	return nil
}

// Grid is a region together with per-axis step sizes. Sample coordinates
// are computed as min + i*step rather than by accumulating the step, so
// the sample count is fixed up front.
type Grid struct {
	Region Region
	Dx, Dy float64
}

// stepEpsilon guards the per-axis sample count against float division
// error when the span is an exact multiple of the step.
const stepEpsilon = 1e-9

// UniformGrid builds a grid with the given number of samples per axis,
// placing the first and last samples on the region bounds.
func UniformGrid(r Region, cols, rows int) Grid {
	return Grid{
		Region: r,
		Dx:     (r.Xmax - r.Xmin) / float64(cols-1),
		Dy:     (r.Ymax - r.Ymin) / float64(rows-1),
	}
}

// Validate reports whether the grid has a non-empty region and positive
// step sizes.
func (g Grid) Validate() error {
	if err := g.Region.Validate(); err != nil {
		return err
	}
	if g.Dx <= 0 {
		return fmt.Errorf("dx %g: %w", g.Dx, ErrInvalidDomain)
	}
	if g.Dy <= 0 {
		return fmt.Errorf("dy %g: %w", g.Dy, ErrInvalidDomain)
	}
	return nil
}

// Cols returns the number of samples along the x axis.
//
// Boundary policy: when the span is an exact multiple of the step the
// final sample lands on the max bound; otherwise the final sample is the
// last point min + i*step below count, which may exceed the max bound by
// less than one step.
func (g Grid) Cols() int {
	return axisSamples(g.Region.Xmax-g.Region.Xmin, g.Dx)
}

// Rows returns the number of samples along the y axis.
func (g Grid) Rows() int {
	return axisSamples(g.Region.Ymax-g.Region.Ymin, g.Dy)
}

func axisSamples(span, step float64) int {
	return int(math.Ceil(span/step-stepEpsilon)) + 1
}

// X returns the x coordinate of grid column i.
func (g Grid) X(i int) float64 { return g.Region.Xmin + float64(i)*g.Dx }

// Y returns the y coordinate of grid row j.
func (g Grid) Y(j int) float64 { return g.Region.Ymin + float64(j)*g.Dy }

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}
)

// DefaultRegion returns the canonical full view for a fractal kind: the
// whole set for escape-time kinds, the interesting parameter window for
// Lyapunov, and the attractor's bounding region for point kinds.
func DefaultRegion(f Fractal) Region {
	switch f.(type) {
	case Mandelbrot, Multibrot:
		return Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 2}
	case Julia, Phoenix:
		return Region{Xmin: -1.5, Xmax: 1.5, Ymin: -1.5, Ymax: 1.5}
	case BurningShip:
		return Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 1}
	case Tricorn, Buffalo:
		return Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 2}
	case Magnet:
		return Region{Xmin: -1.5, Xmax: 3.5, Ymin: -2.5, Ymax: 2.5}
	case Newton:
		return Region{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}
	case Lyapunov:
		return Region{Xmin: 2, Xmax: 4, Ymin: 2, Ymax: 4}
	case BarnsleyFern:
		return Region{Xmin: -3, Xmax: 3, Ymin: 0, Ymax: 10}
	case Sierpinski:
		return Region{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 0.8660254}
	case Gingerbreadman:
		return Region{Xmin: -4, Xmax: 8, Ymin: -4, Ymax: 8}
	}
	return Region{}
}
