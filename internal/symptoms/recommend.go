package symptoms

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/symscreen/symscreen-cli/internal/utils"
)

// DefaultRecommendations is shown for symptoms without a curated entry.
var DefaultRecommendations = []string{
	"Get plenty of rest",
	"Drink plenty of fluids",
	"See a doctor if symptoms persist or worsen",
}

// templateHeader is the column layout of the recommendations CSV.
var templateHeader = []string{"symptom", "recommendation_1", "recommendation_2", "recommendation_3"}

// Recommendations maps a symptom to its curated recommendation texts.
type Recommendations map[string][]string

// LoadRecommendations reads the recommendations CSV. The first column is the
// symptom; every further non-blank cell on the row is one recommendation.
func LoadRecommendations(path string) (Recommendations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recommendations: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read recommendations: %w", err)
	}
	out := Recommendations{}
	for i, rec := range records {
		if i == 0 || len(rec) == 0 {
			continue // header
		}
		symptom := strings.TrimSpace(rec[0])
		if symptom == "" {
			continue
		}
		var recs []string
		for _, cell := range rec[1:] {
			if cell = strings.TrimSpace(cell); cell != "" {
				recs = append(recs, cell)
			}
		}
		out[symptom] = recs
	}
	return out, nil
}

// For returns the curated recommendations for a symptom, falling back to
// DefaultRecommendations when none exist.
func (r Recommendations) For(symptom string) []string {
	if recs, ok := r[symptom]; ok && len(recs) > 0 {
		return recs
	}
	return DefaultRecommendations
}

// WriteTemplate writes a recommendations CSV seeded with the default texts
// for every given symptom, ready for clinician editing.
func WriteTemplate(path string, syms []string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(templateHeader); err != nil {
		return fmt.Errorf("write template header: %w", err)
	}
	for _, s := range syms {
		row := append([]string{s}, DefaultRecommendations...)
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write template row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush template: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}
