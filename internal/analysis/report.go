package analysis

import (
	"fmt"
	"strings"
)

// Markdown renders a compact report of the run. This is a convenience for
// terminal display; the canonical output stays the ordered Pairs slice.
func (r *Result) Markdown() string {
	var b strings.Builder
	b.WriteString("[ANALYSIS SUMMARY]\n")
	fmt.Fprintf(&b, "Run: %s\n", r.RunID)
	fmt.Fprintf(&b, "Records: %d (with symptoms: %d, multi-symptom: %d)\n", r.Records, r.Observed, r.MultiSymptom)
	fmt.Fprintf(&b, "Symptoms: %d\n", len(r.Matrix.Symptoms()))

	b.WriteString("\n[RANKED PAIRS]\n")
	if len(r.Pairs) == 0 {
		b.WriteString("- no co-occurring symptom pairs\n")
	}
	for _, p := range r.Pairs {
		fmt.Fprintf(&b, "- %s ~ %s: score=%.3f (n=%d)\n", safeVal(p.SymptomA), safeVal(p.SymptomB), p.Score, p.Count)
	}

	if len(r.Related) > 0 {
		b.WriteString("\n[RELATED SYMPTOMS]\n")
		for _, rel := range r.Related {
			if len(rel.Partners) == 0 {
				continue
			}
			parts := make([]string, len(rel.Partners))
			for i, p := range rel.Partners {
				parts[i] = fmt.Sprintf("%s (%d)", safeVal(p.Symptom), p.Count)
			}
			fmt.Fprintf(&b, "- %s: %s\n", safeVal(rel.Symptom), strings.Join(parts, "; "))
		}
	}

	if len(r.Graph.Edges) > 0 {
		b.WriteString("\n[GRAPH]\n")
		fmt.Fprintf(&b, "Nodes: %d, edges: %d\n", len(r.Graph.Nodes), len(r.Graph.Edges))
		for _, e := range r.Graph.Edges {
			fmt.Fprintf(&b, "- %s -- %s (w=%d)\n", safeVal(e.A), safeVal(e.B), e.Weight)
		}
	}

	if r.Similarity != nil {
		b.WriteString("\n[SIMILARITY]\n")
		n := len(r.Similarity.Symptoms)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				fmt.Fprintf(&b, "- %s ~ %s: %.3f\n",
					safeVal(r.Similarity.Symptoms[i]), safeVal(r.Similarity.Symptoms[j]), r.Similarity.Values[i][j])
			}
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
