// Package vecmetrics provides an in-memory ranker over named float64
// sequences, scored pairwise against a query with a configurable metric from
// the metrics package.
package vecmetrics

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/botirk38/vecmetrics/metrics"
)

// Sequence is an ordered, fixed-length run of float64 samples.
type Sequence = []float64

// Entry holds a stored sequence and its associated value.
type Entry struct {
	Sequence Sequence
	Value    any
}

// Match represents a scored entry.
type Match struct {
	Key   string
	Value any
	Score float64
}

// Ranker is an in-memory store of named sequences with LRU eviction.
// Entries are scored against query sequences with the configured metric.
type Ranker struct {
	mu       sync.RWMutex
	cache    *lru.Cache[string, Entry]
	scorer   metrics.Func
	capacity int
}

// New creates a Ranker with the given capacity and scorer function.
func New(capacity int, scorer metrics.Func) (*Ranker, error) {
	if scorer == nil {
		return nil, errors.New("scorer function cannot be nil")
	}
	lruCache, err := lru.New[string, Entry](capacity)
	if err != nil {
		return nil, err
	}
	return &Ranker{
		cache:    lruCache,
		scorer:   scorer,
		capacity: capacity,
	}, nil
}

// Set stores or updates the entry for key.
func (r *Ranker) Set(key string, seq Sequence, value any) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(seq) == 0 {
		return errors.New("sequence cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Add(key, Entry{Sequence: seq, Value: value})
	return nil
}

// Get retrieves the value for key, if present.
func (r *Ranker) Get(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if entry, ok := r.cache.Get(key); ok {
		return entry.Value, true
	}
	return nil, false
}

// Contains checks for key presence without affecting recency.
func (r *Ranker) Contains(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache.Contains(key)
}

// Delete removes the entry for key.
func (r *Ranker) Delete(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(key)
}

// Flush clears all entries.
func (r *Ranker) Flush() error {
	newCache, err := lru.New[string, Entry](r.capacity)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = newCache
	return nil
}

// Len returns the number of stored entries.
func (r *Ranker) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cache.Len()
}

// Lookup returns the first entry whose score against query is >= threshold.
// A scorer failure (shape mismatch or undefined result against a stored
// sequence) aborts the scan and is returned to the caller.
func (r *Ranker) Lookup(query Sequence, threshold float64) (Match, bool, error) {
	r.mu.RLock()
	keys := r.cache.Keys()
	r.mu.RUnlock()

	for _, key := range keys {
		r.mu.RLock()
		entry, ok := r.cache.Peek(key)
		r.mu.RUnlock()
		if !ok {
			continue
		}
		score, err := r.scorer(query, entry.Sequence)
		if err != nil {
			return Match{}, false, fmt.Errorf("scoring %q: %w", key, err)
		}
		if score >= threshold {
			// Promote the hit to most recently used.
			r.mu.Lock()
			r.cache.Get(key)
			r.mu.Unlock()
			return Match{Key: key, Value: entry.Value, Score: score}, true, nil
		}
	}
	return Match{}, false, nil
}

// TopMatches returns up to n matches sorted by descending score.
func (r *Ranker) TopMatches(query Sequence, n int) ([]Match, error) {
	r.mu.RLock()
	keys := r.cache.Keys()
	r.mu.RUnlock()

	matches := make([]Match, 0, len(keys))
	for _, key := range keys {
		r.mu.RLock()
		entry, ok := r.cache.Peek(key)
		r.mu.RUnlock()
		if !ok {
			continue
		}
		score, err := r.scorer(query, entry.Sequence)
		if err != nil {
			return nil, fmt.Errorf("scoring %q: %w", key, err)
		}
		matches = append(matches, Match{Key: key, Value: entry.Value, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > n {
		matches = matches[:n]
	}
	return matches, nil
}
