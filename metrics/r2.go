package metrics

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// R2Score computes the coefficient of determination between a ground-truth
// sequence y and a prediction sequence yHat. The result is bounded above by 1
// (perfect prediction) and unbounded below: predictions worse than the mean of
// y produce negative scores.
// A constant y has zero total sum of squares and yields ErrUndefinedResult.
func R2Score(y, yHat []float64) (float64, error) {
	if len(y) != len(yHat) {
		return 0, fmt.Errorf("%w: len(y)=%d, len(yHat)=%d", ErrShapeMismatch, len(y), len(yHat))
	}
	if len(y) == 0 {
		return 0, fmt.Errorf("%w: empty sequences", ErrUndefinedResult)
	}

	res := make([]float64, len(y))
	floats.SubTo(res, y, yHat)
	ssRes := floats.Dot(res, res)

	dy := slices.Clone(y)
	floats.AddConst(-floats.Sum(y)/float64(len(y)), dy)
	ssTot := floats.Dot(dy, dy)
	if ssTot == 0 {
		return 0, fmt.Errorf("%w: y has zero total sum of squares", ErrUndefinedResult)
	}

	return 1 - ssRes/ssTot, nil
}
