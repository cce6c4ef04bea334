// Package metrics provides pairwise statistical metrics over equal-length
// float64 sequences: Pearson correlation, coefficient of determination (R²),
// cosine similarity, and a few distance-derived similarities.
//
// Every metric shares the same contract: inputs are read-only and never
// retained, the computation is a single O(n) pass, and shape or domain
// violations surface as typed errors instead of NaN or Inf.
package metrics

// Func represents a metric computed between two equal-length sequences.
// Implementations return ErrShapeMismatch when the lengths differ and
// ErrUndefinedResult when a required denominator is exactly zero.
type Func func(x, y []float64) (float64, error)

// Metric identifies a built-in metric by name.
type Metric string

const (
	MetricPearson   Metric = "pearson"
	MetricR2        Metric = "r2"
	MetricCosine    Metric = "cosine"
	MetricDot       Metric = "dot"
	MetricEuclidean Metric = "euclidean"
	MetricManhattan Metric = "manhattan"
)

// Lookup returns the Func for a built-in metric name.
func Lookup(m Metric) (Func, error) {
	switch m {
	case MetricPearson:
		return PearsonCorrelation, nil
	case MetricR2:
		return R2Score, nil
	case MetricCosine:
		return CosineSimilarity, nil
	case MetricDot:
		return DotProduct, nil
	case MetricEuclidean:
		return EuclideanSimilarity, nil
	case MetricManhattan:
		return ManhattanSimilarity, nil
	default:
		return nil, ErrUnknownMetric
	}
}
