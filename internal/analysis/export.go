package analysis

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/symscreen/symscreen-cli/internal/utils"
)

// Export artifact file names.
const (
	RankedPairsFile = "ranked_pairs.csv"
	RelationsFile   = "symptom_relations.csv"
	MatrixFile      = "symptom_cooccurrence.csv"
	SimilarityFile  = "symptom_similarity.csv"
	GraphFile       = "symptom_network.dot"
)

// ExportCSV writes the run's artifacts into dir (created if needed) and
// returns the written paths in a stable order. The similarity file is only
// written when similarity was computed.
func (r *Result) ExportCSV(dir string) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var written []string
	write := func(name string, data []byte) error {
		path := filepath.Join(dir, name)
		if err := utils.SafeWriteFile(path, data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}

	if err := write(RankedPairsFile, r.rankedPairsCSV()); err != nil {
		return written, err
	}
	if err := write(RelationsFile, r.relationsCSV()); err != nil {
		return written, err
	}
	if err := write(MatrixFile, r.matrixCSV()); err != nil {
		return written, err
	}
	if err := write(GraphFile, []byte(r.Graph.DOT())); err != nil {
		return written, err
	}
	if r.Similarity != nil {
		if err := write(SimilarityFile, r.similarityCSV()); err != nil {
			return written, err
		}
	}
	return written, nil
}

func (r *Result) rankedPairsCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"symptom_a", "symptom_b", "cooccurrence_count", "normalized_score"})
	for _, p := range r.Pairs {
		_ = w.Write([]string{p.SymptomA, p.SymptomB, strconv.Itoa(p.Count), strconv.FormatFloat(p.Score, 'f', 6, 64)})
	}
	w.Flush()
	return buf.Bytes()
}

func (r *Result) relationsCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"symptom", "related_symptoms"})
	for _, rel := range r.Related {
		var joined bytes.Buffer
		for i, p := range rel.Partners {
			if i > 0 {
				joined.WriteString("; ")
			}
			fmt.Fprintf(&joined, "%s (%d)", p.Symptom, p.Count)
		}
		_ = w.Write([]string{rel.Symptom, joined.String()})
	}
	w.Flush()
	return buf.Bytes()
}

func (r *Result) matrixCSV() []byte {
	syms := r.Matrix.Symptoms()
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(append([]string{""}, syms...))
	for _, a := range syms {
		row := make([]string, 0, len(syms)+1)
		row = append(row, a)
		for _, b := range syms {
			if a == b {
				row = append(row, "0")
				continue
			}
			row = append(row, strconv.Itoa(r.Matrix.Count(a, b)))
		}
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}

func (r *Result) similarityCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(append([]string{""}, r.Similarity.Symptoms...))
	for i, a := range r.Similarity.Symptoms {
		row := make([]string, 0, len(r.Similarity.Symptoms)+1)
		row = append(row, a)
		for j := range r.Similarity.Symptoms {
			row = append(row, strconv.FormatFloat(r.Similarity.Values[i][j], 'f', 6, 64))
		}
		_ = w.Write(row)
	}
	w.Flush()
	return buf.Bytes()
}
