package metrics

import "errors"

// Common metric errors
var (
	// ErrShapeMismatch indicates the two input sequences differ in length
	ErrShapeMismatch = errors.New("sequence lengths differ")

	// ErrUndefinedResult indicates a denominator of the metric formula
	// (variance, total sum of squares, magnitude) is exactly zero
	ErrUndefinedResult = errors.New("metric is undefined for this input")

	// ErrUnknownMetric indicates an unrecognized metric name
	ErrUnknownMetric = errors.New("unknown metric")
)
