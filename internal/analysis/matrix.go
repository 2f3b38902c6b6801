// Package analysis builds the symptom co-occurrence matrix from per-patient
// symptom sets and derives ranked relationship pairs, related-symptom lists,
// a weighted relationship graph, and answer-based similarity.
package analysis

import (
	"sort"

	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

// Pair is an unordered symptom pair stored in canonical order (A < B).
type Pair struct {
	A, B string
}

// MakePair returns the canonical pair for two symptom names.
func MakePair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Matrix holds pairwise co-occurrence counts and per-symptom totals for one
// analysis run. It is built fresh per run and never shared or persisted.
type Matrix struct {
	pairs  map[Pair]int
	totals map[string]int
	sets   int
}

// NewMatrix returns an empty matrix.
func NewMatrix() *Matrix {
	return &Matrix{pairs: map[Pair]int{}, totals: map[string]int{}}
}

// BuildMatrix accumulates all symptom sets into a fresh matrix. Each set
// with k unique symptoms contributes k total increments and one increment
// per unordered pair of distinct symptoms; empty and singleton sets
// contribute totals only.
func BuildMatrix(sets []symptoms.Set) *Matrix {
	m := NewMatrix()
	for _, s := range sets {
		m.Add(s)
	}
	return m
}

// Add accumulates one patient symptom set.
func (m *Matrix) Add(s symptoms.Set) {
	m.sets++
	for i, a := range s {
		m.totals[a]++
		for _, b := range s[i+1:] {
			if a == b {
				continue
			}
			m.pairs[MakePair(a, b)]++
		}
	}
}

// Count returns the co-occurrence count for a symptom pair.
func (m *Matrix) Count(a, b string) int {
	return m.pairs[MakePair(a, b)]
}

// Total returns how many patient sets a symptom appears in.
func (m *Matrix) Total(s string) int {
	return m.totals[s]
}

// Sets returns how many patient sets were accumulated, empty ones included.
func (m *Matrix) Sets() int {
	return m.sets
}

// Symptoms returns every symptom with a non-zero total, sorted.
func (m *Matrix) Symptoms() []string {
	out := make([]string, 0, len(m.totals))
	for s := range m.totals {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Pairs returns every pair with a non-zero count in canonical order, sorted
// lexicographically so iteration is deterministic.
func (m *Matrix) Pairs() []Pair {
	out := make([]Pair, 0, len(m.pairs))
	for p := range m.pairs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}
