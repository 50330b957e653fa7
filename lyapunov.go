package fractex

import "math"

// lyapunovPenalty is added to the accumulator when the logistic map's
// derivative vanishes and its log-magnitude is undefined.
const lyapunovPenalty = -10

// Lyapunov estimates the Lyapunov exponent of the logistic map
// x <- r*x*(1-x) with the multiplier alternating a, b, a, b, ... over
// the (a, b) parameter grid. The emitted value is the mean log-magnitude
// of the derivative over exactly maxIter steps, unnormalized; there is
// no early exit.
type Lyapunov struct{}

func (Lyapunov) Name() string    { return "lyapunov" }
func (Lyapunov) validate() error { return nil }

func (Lyapunov) Sample(a, b float64, maxIter int) float64 {
	x := 0.5
	sum := 0.0
	for n := 0; n < maxIter; n++ {
		r := a
		if n%2 == 1 {
			r = b
		}
		x = r * x * (1 - x)
		d := math.Abs(r * (1 - 2*x))
		if d == 0 {
			sum += lyapunovPenalty
		} else {
			sum += math.Log(d)
		}
	}
	return sum / float64(maxIter)
}
