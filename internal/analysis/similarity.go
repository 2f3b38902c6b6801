package analysis

import (
	"math"
	"strings"
	"unicode"

	"github.com/symscreen/symscreen-cli/internal/dataset"
	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

// SimilarityMatrix is a symmetric cosine-similarity matrix over symptoms
// that carry answer text. Values[i][j] compares Symptoms[i] and Symptoms[j].
type SimilarityMatrix struct {
	Symptoms []string
	Values   [][]float64
}

// AnswerSimilarity compares symptoms by the words of their accumulated
// follow-up answers: each symptom becomes a word-count vector over every
// answer recorded for it, and pairs are scored by cosine similarity.
// Symptoms without any answer text are left out; fewer than two usable
// symptoms yield a nil result.
func AnswerSimilarity(rows []dataset.Row, opt symptoms.ExtractOptions, syms []string) *SimilarityMatrix {
	wanted := make(map[string]bool, len(syms))
	for _, s := range syms {
		wanted[s] = true
	}
	counts := map[string]map[string]float64{}
	for _, row := range rows {
		for _, o := range symptoms.Extract(row, opt) {
			if !wanted[o.Name] || len(o.Answers) == 0 {
				continue
			}
			vec := counts[o.Name]
			if vec == nil {
				vec = map[string]float64{}
				counts[o.Name] = vec
			}
			for _, a := range o.Answers {
				for _, w := range tokenize(a) {
					vec[w]++
				}
			}
		}
	}

	var usable []string
	for _, s := range syms {
		if len(counts[s]) > 0 {
			usable = append(usable, s)
		}
	}
	if len(usable) < 2 {
		return nil
	}

	n := len(usable)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := cosine(counts[usable[i]], counts[usable[j]])
			values[i][j] = s
			values[j][i] = s
		}
	}
	return &SimilarityMatrix{Symptoms: usable, Values: values}
}

// tokenize lowercases and splits on non-letter/digit runs.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// cosine computes similarity between two sparse count vectors.
// Returns 0 when either vector is empty.
func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for w, va := range a {
		na += va * va
		if vb, ok := b[w]; ok {
			dot += va * vb
		}
	}
	for _, vb := range b {
		nb += vb * vb
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
