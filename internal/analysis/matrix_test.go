package analysis

import (
	"testing"

	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

func TestBuildMatrixSingleRecord(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{{"fever", "headache"}})
	if got := m.Total("fever"); got != 1 {
		t.Fatalf("total fever = %d, want 1", got)
	}
	if got := m.Total("headache"); got != 1 {
		t.Fatalf("total headache = %d, want 1", got)
	}
	if got := m.Count("fever", "headache"); got != 1 {
		t.Fatalf("count (fever,headache) = %d, want 1", got)
	}
	if got := m.Count("headache", "fever"); got != 1 {
		t.Fatalf("count is not symmetric: %d", got)
	}
}

func TestBuildMatrixTwoRecords(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{
		{"fever", "headache"},
		{"cough", "fever"},
	})
	if got := m.Total("fever"); got != 2 {
		t.Fatalf("total fever = %d, want 2", got)
	}
	if got := m.Total("headache"); got != 1 {
		t.Fatalf("total headache = %d, want 1", got)
	}
	if got := m.Total("cough"); got != 1 {
		t.Fatalf("total cough = %d, want 1", got)
	}
	if got := m.Count("fever", "headache"); got != 1 {
		t.Fatalf("count (fever,headache) = %d, want 1", got)
	}
	if got := m.Count("cough", "fever"); got != 1 {
		t.Fatalf("count (cough,fever) = %d, want 1", got)
	}
	if got := m.Count("cough", "headache"); got != 0 {
		t.Fatalf("count (cough,headache) = %d, want 0", got)
	}
}

func TestBuildMatrixTotalAndPairCardinality(t *testing.T) {
	// A set with k unique symptoms must produce k totals and C(k,2) pairs.
	set := symptoms.Set{"a", "b", "c", "d", "e"}
	m := BuildMatrix([]symptoms.Set{set})
	if got := len(m.Symptoms()); got != 5 {
		t.Fatalf("symptoms = %d, want 5", got)
	}
	pairs := m.Pairs()
	if len(pairs) != 10 { // C(5,2)
		t.Fatalf("pairs = %d, want 10", len(pairs))
	}
	for _, p := range pairs {
		if m.Count(p.A, p.B) != 1 {
			t.Fatalf("pair %v count = %d, want 1", p, m.Count(p.A, p.B))
		}
		if p.A >= p.B {
			t.Fatalf("pair %v not in canonical order", p)
		}
	}
}

func TestBuildMatrixSingletonAndEmptySets(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{
		{"fever"},
		nil,
		{},
	})
	if got := m.Total("fever"); got != 1 {
		t.Fatalf("total fever = %d, want 1", got)
	}
	if got := len(m.Pairs()); got != 0 {
		t.Fatalf("pairs = %d, want 0", got)
	}
	if got := m.Sets(); got != 3 {
		t.Fatalf("sets = %d, want 3", got)
	}
}

func TestBuildMatrixEmptyBatch(t *testing.T) {
	m := BuildMatrix(nil)
	if got := len(m.Symptoms()); got != 0 {
		t.Fatalf("symptoms = %d, want 0", got)
	}
	if got := len(m.Pairs()); got != 0 {
		t.Fatalf("pairs = %d, want 0", got)
	}
}

func TestBuildMatrixCountBoundedByTotals(t *testing.T) {
	sets := []symptoms.Set{
		{"a", "b", "c"},
		{"a", "b"},
		{"b", "c"},
		{"a"},
	}
	m := BuildMatrix(sets)
	for _, p := range m.Pairs() {
		c := m.Count(p.A, p.B)
		ta, tb := m.Total(p.A), m.Total(p.B)
		lo := ta
		if tb < lo {
			lo = tb
		}
		if c > lo {
			t.Fatalf("count(%s,%s)=%d exceeds min(total)=%d", p.A, p.B, c, lo)
		}
	}
}

func TestBuildMatrixOrderIndependence(t *testing.T) {
	a := BuildMatrix([]symptoms.Set{{"a", "b"}, {"b", "c"}, {"a", "c"}})
	b := BuildMatrix([]symptoms.Set{{"a", "c"}, {"a", "b"}, {"b", "c"}})
	for _, p := range a.Pairs() {
		if a.Count(p.A, p.B) != b.Count(p.A, p.B) {
			t.Fatalf("counts differ for %v under reordered input", p)
		}
	}
	for _, s := range a.Symptoms() {
		if a.Total(s) != b.Total(s) {
			t.Fatalf("totals differ for %s under reordered input", s)
		}
	}
}
