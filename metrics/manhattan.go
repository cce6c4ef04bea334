package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ManhattanSimilarity computes similarity based on Manhattan (L1) distance.
// Returns 1 / (1 + distance), so the result is always in (0, 1].
func ManhattanSimilarity(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	return 1 / (1 + floats.Distance(x, y, 1)), nil
}
