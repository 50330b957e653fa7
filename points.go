package fractex

import (
	"fmt"
	"math"
	"math/rand"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Option customizes a GeneratePoints call.
type Option func(*genConfig)

type genConfig struct {
	rng *rand.Rand
}

// WithSeed makes the generated sequence reproducible by seeding a fresh
// RNG with the given value.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("fractex: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// GeneratePoints applies the kind's map n times starting from its seed
// point and emits each resulting point in generation order. The seed
// itself is not emitted. The sequence is strictly sequential; each call
// owns its RNG state, so independent calls may run concurrently.
func GeneratePoints(f PointKind, n int, em PointEmitter, opts ...Option) error {
	if err := f.validate(); err != nil {
		return err
	}
	if n <= 0 {
		return fmt.Errorf("num points %d: %w", n, ErrInvalidBudget)
	}
	var cfg genConfig
	for _, o := range opts {
		o(&cfg)
	}
	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	p := f.Start()
	for i := 0; i < n; i++ {
		p = f.Next(p, rng)
		if err := em.EmitPoint(p); err != nil {
			return err
		}
	}
	return nil
}

// BarnsleyFern is Barnsley's four-map affine IFS. Each step draws one of
// the fixed coefficient sets with its canonical probability and applies
// it to the running point.
type BarnsleyFern struct{}

// The canonical coefficient sets, stored as affine matrices applied as
// x' = m[0]x + m[2]y + m[4], y' = m[1]x + m[3]y + m[5].
var fernMaps = [4]matrix.Matrix{
	{0, 0, 0, 0.16, 0, 0},
	{0.85, -0.04, 0.04, 0.85, 0, 1.6},
	{0.2, 0.23, -0.26, 0.22, 0, 1.6},
	{-0.15, 0.26, 0.28, 0.24, 0, 0.44},
}

// Cumulative selection thresholds for a uniform draw in [0, 1).
var fernThresholds = [4]float64{0.01, 0.86, 0.93, 1.0}

func (BarnsleyFern) Name() string    { return "barnsleyfern" }
func (BarnsleyFern) validate() error { return nil }

func (BarnsleyFern) Start() vec.Vec2 { return vec.Vec2{} }

func (BarnsleyFern) Next(p vec.Vec2, rng *rand.Rand) vec.Vec2 {
	r := rng.Float64()
	k := 0
	for k < len(fernThresholds)-1 && r >= fernThresholds[k] {
		k++
	}
	return applyAffine(fernMaps[k], p)
}

func applyAffine(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Sierpinski is the chaos game on a fixed equilateral triangle: each
// step moves the point halfway toward a uniformly chosen vertex.
type Sierpinski struct{}

var sierpinskiVertices = [3]vec.Vec2{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0.5, Y: 0.8660254},
}

func (Sierpinski) Name() string    { return "sierpinski" }
func (Sierpinski) validate() error { return nil }

func (Sierpinski) Start() vec.Vec2 { return vec.Vec2{} }

func (Sierpinski) Next(p vec.Vec2, rng *rand.Rand) vec.Vec2 {
	v := sierpinskiVertices[rng.Intn(len(sierpinskiVertices))]
	return vec.Vec2{X: (p.X + v.X) / 2, Y: (p.Y + v.Y) / 2}
}

// Gingerbreadman is the deterministic piecewise-linear map
// x' = 1 - y + |x|, y' = x, seeded at (-0.1, 0.1).
type Gingerbreadman struct{}

func (Gingerbreadman) Name() string    { return "gingerbreadman" }
func (Gingerbreadman) validate() error { return nil }

func (Gingerbreadman) Start() vec.Vec2 { return vec.Vec2{X: -0.1, Y: 0.1} }

func (Gingerbreadman) Next(p vec.Vec2, _ *rand.Rand) vec.Vec2 {
	return vec.Vec2{X: 1 - p.Y + math.Abs(p.X), Y: p.X}
}
