package metrics

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// PearsonCorrelation computes the Pearson correlation coefficient between two
// equal-length sequences. The result lies in [-1, 1], where 1 means perfect
// positive correlation; floating-point rounding may push it marginally outside
// that interval, and no clamping is applied.
// A constant input has zero variance and yields ErrUndefinedResult.
func PearsonCorrelation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, fmt.Errorf("%w: empty sequences", ErrUndefinedResult)
	}

	n := float64(len(x))
	dx := slices.Clone(x)
	dy := slices.Clone(y)
	floats.AddConst(-floats.Sum(x)/n, dx)
	floats.AddConst(-floats.Sum(y)/n, dy)

	sxx := floats.Dot(dx, dx)
	syy := floats.Dot(dy, dy)
	if sxx == 0 {
		return 0, fmt.Errorf("%w: x has zero variance", ErrUndefinedResult)
	}
	if syy == 0 {
		return 0, fmt.Errorf("%w: y has zero variance", ErrUndefinedResult)
	}

	return floats.Dot(dx, dy) / math.Sqrt(sxx*syy), nil
}
