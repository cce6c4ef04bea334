package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity computes the cosine of the angle between two equal-length
// sequences. The result lies in [-1, 1], where 1 means the sequences point in
// the same direction; floating-point rounding may push it marginally outside
// that interval, and no clamping is applied.
// A zero-magnitude input yields ErrUndefinedResult.
func CosineSimilarity(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}

	normX := floats.Norm(x, 2)
	normY := floats.Norm(y, 2)
	if normX == 0 {
		return 0, fmt.Errorf("%w: x has zero magnitude", ErrUndefinedResult)
	}
	if normY == 0 {
		return 0, fmt.Errorf("%w: y has zero magnitude", ErrUndefinedResult)
	}

	return floats.Dot(x, y) / (normX * normY), nil
}
