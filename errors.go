package fractex

import "errors"

// Fail-fast errors reported before any record is emitted. Degenerate
// arithmetic inside an orbit (zero denominators, zero derivatives) is
// handled locally by the iteration loops and never surfaces as an error.
var (
	// ErrInvalidDomain indicates an empty region or non-positive step size.
	ErrInvalidDomain = errors.New("fractex: invalid sampling domain")

	// ErrInvalidBudget indicates a non-positive iteration or point budget.
	ErrInvalidBudget = errors.New("fractex: invalid iteration budget")

	// ErrUnsupportedDegree indicates a multibrot degree below 1.
	ErrUnsupportedDegree = errors.New("fractex: unsupported multibrot degree")
)
