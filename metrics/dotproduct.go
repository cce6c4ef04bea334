package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// DotProduct computes the dot product between two equal-length sequences.
// No normalization is applied, so results depend on sequence magnitudes.
func DotProduct(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: len(x)=%d, len(y)=%d", ErrShapeMismatch, len(x), len(y))
	}
	return floats.Dot(x, y), nil
}
