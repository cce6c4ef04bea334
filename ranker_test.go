package vecmetrics_test

import (
	"errors"
	"testing"

	"github.com/botirk38/vecmetrics"
	"github.com/botirk38/vecmetrics/metrics"
)

func newTestRanker(t *testing.T) *vecmetrics.Ranker {
	t.Helper()
	r, err := vecmetrics.New(10, metrics.CosineSimilarity)
	if err != nil {
		t.Fatalf("Failed to create ranker: %v", err)
	}
	return r
}

func TestNew(t *testing.T) {
	if _, err := vecmetrics.New(10, nil); err == nil {
		t.Error("Expected error for nil scorer")
	}
	if _, err := vecmetrics.New(-1, metrics.CosineSimilarity); err == nil {
		t.Error("Expected error for negative capacity")
	}
}

func TestSetGet(t *testing.T) {
	r := newTestRanker(t)

	if err := r.Set("foo", vecmetrics.Sequence{1, 0, 0}, "bar-value"); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	val, ok := r.Get("foo")
	if !ok || val != "bar-value" {
		t.Errorf("Expected bar-value, got %v", val)
	}

	if !r.Contains("foo") {
		t.Error("Expected Contains to report foo")
	}
	if r.Len() != 1 {
		t.Errorf("Expected Len 1, got %d", r.Len())
	}

	if err := r.Set("", vecmetrics.Sequence{1}, nil); err == nil {
		t.Error("Expected error for empty key")
	}
	if err := r.Set("empty", nil, nil); err == nil {
		t.Error("Expected error for empty sequence")
	}
}

func TestLookup(t *testing.T) {
	r := newTestRanker(t)

	if err := r.Set("foo", vecmetrics.Sequence{0.1, 0.2}, "bar-value"); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	match, ok, err := r.Lookup(vecmetrics.Sequence{0.1, 0.2}, 0.9)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if !ok || match.Value != "bar-value" {
		t.Errorf("Expected bar-value, got %v", match.Value)
	}

	// Orthogonal query scores 0, below threshold.
	_, ok, err = r.Lookup(vecmetrics.Sequence{-0.2, 0.1}, 0.9)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if ok {
		t.Error("Expected no match below threshold")
	}
}

func TestTopMatches(t *testing.T) {
	r := newTestRanker(t)

	entries := map[string]vecmetrics.Sequence{
		"east":      {1, 0, 0},
		"north":     {0, 1, 0},
		"northeast": {0.9, 0.1, 0},
	}
	for key, seq := range entries {
		if err := r.Set(key, seq, key); err != nil {
			t.Fatalf("Failed to set %q: %v", key, err)
		}
	}

	matches, err := r.TopMatches(vecmetrics.Sequence{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("TopMatches error: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	if matches[0].Key != "east" {
		t.Errorf("Expected east first, got %q", matches[0].Key)
	}
	if matches[1].Key != "northeast" {
		t.Errorf("Expected northeast second, got %q", matches[1].Key)
	}
	if matches[0].Score < matches[1].Score {
		t.Errorf("Expected descending scores, got %v then %v", matches[0].Score, matches[1].Score)
	}
}

func TestScorerErrorPropagation(t *testing.T) {
	r := newTestRanker(t)

	if err := r.Set("short", vecmetrics.Sequence{1, 2}, nil); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}

	_, _, err := r.Lookup(vecmetrics.Sequence{1, 2, 3}, 0.5)
	if !errors.Is(err, metrics.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch from Lookup, got %v", err)
	}

	_, err = r.TopMatches(vecmetrics.Sequence{1, 2, 3}, 1)
	if !errors.Is(err, metrics.ErrShapeMismatch) {
		t.Errorf("Expected ErrShapeMismatch from TopMatches, got %v", err)
	}
}

func TestEviction(t *testing.T) {
	r, err := vecmetrics.New(2, metrics.CosineSimilarity)
	if err != nil {
		t.Fatalf("Failed to create ranker: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if err := r.Set(key, vecmetrics.Sequence{1, 1}, key); err != nil {
			t.Fatalf("Failed to set %q: %v", key, err)
		}
	}

	if r.Len() != 2 {
		t.Errorf("Expected Len 2 after eviction, got %d", r.Len())
	}
	if r.Contains("a") {
		t.Error("Expected oldest entry to be evicted")
	}
}

func TestFlush(t *testing.T) {
	r := newTestRanker(t)

	if err := r.Set("foo", vecmetrics.Sequence{1, 0}, nil); err != nil {
		t.Fatalf("Failed to set entry: %v", err)
	}
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush error: %v", err)
	}
	if r.Len() != 0 {
		t.Errorf("Expected empty ranker after Flush, got %d entries", r.Len())
	}
}
