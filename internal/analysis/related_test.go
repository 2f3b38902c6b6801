package analysis

import (
	"testing"

	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

func TestRelatedSymptoms(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{
		{"a", "b", "c"},
		{"a", "b"},
		{"a", "d"},
	})
	rel := RelatedSymptoms(m, 5)
	if len(rel) != 4 {
		t.Fatalf("related entries = %d, want 4", len(rel))
	}
	// Entries come back in symptom order.
	if rel[0].Symptom != "a" || rel[1].Symptom != "b" || rel[2].Symptom != "c" || rel[3].Symptom != "d" {
		t.Fatalf("entry order = %v", rel)
	}
	a := rel[0]
	if len(a.Partners) != 3 {
		t.Fatalf("partners of a = %v", a.Partners)
	}
	// b co-occurs with a twice, c and d once each (lexicographic tie).
	if a.Partners[0].Symptom != "b" || a.Partners[0].Count != 2 {
		t.Fatalf("top partner of a = %+v", a.Partners[0])
	}
	if a.Partners[1].Symptom != "c" || a.Partners[2].Symptom != "d" {
		t.Fatalf("tie-break order = %v", a.Partners)
	}
}

func TestRelatedSymptomsTopN(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{{"a", "b", "c", "d"}})
	rel := RelatedSymptoms(m, 2)
	for _, r := range rel {
		if len(r.Partners) > 2 {
			t.Fatalf("partners of %s = %d, want <= 2", r.Symptom, len(r.Partners))
		}
	}
}

func TestRelatedSymptomsIsolated(t *testing.T) {
	m := BuildMatrix([]symptoms.Set{{"lonely"}})
	rel := RelatedSymptoms(m, 5)
	if len(rel) != 1 || rel[0].Symptom != "lonely" || len(rel[0].Partners) != 0 {
		t.Fatalf("related = %v", rel)
	}
}
