package fractex

import (
	"math/rand"

	"seehuhn.de/go/geom/vec"
)

// Fractal identifies one of the supported fractal kinds together with its
// parameters. The set of kinds is closed: only types in this package
// implement the interface.
type Fractal interface {
	// Name returns a short lowercase identifier for logs.
	Name() string

	validate() error
}

// GridKind is a fractal sampled over a rectangular grid. Sample returns
// the metadata value for a single grid point: the iteration count divided
// by maxIter for escape-time kinds, or the raw exponent estimate for
// Lyapunov. Sample is pure; grid points are independent of each other.
type GridKind interface {
	Fractal
	Sample(x, y float64, maxIter int) float64
}

// PointKind is a fractal generated as a sequence of points, each derived
// from the previous one. Deterministic kinds ignore the RNG.
type PointKind interface {
	Fractal
	Start() vec.Vec2
	Next(p vec.Vec2, rng *rand.Rand) vec.Vec2
}
