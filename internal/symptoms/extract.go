// Package symptoms extracts symptom observations from raw dataset rows and
// answers catalog-style queries over them (unique symptoms, answers per
// symptom, recommendation lookups).
package symptoms

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/symscreen/symscreen-cli/internal/dataset"
)

// DefaultPayloadColumn is the dataset column holding the encoded summary.
const DefaultPayloadColumn = "summary"

// Observation is one reported symptom with its follow-up answers, as taken
// from a single patient record. Names may repeat across observations of the
// same record; deduplication happens when sets are built.
type Observation struct {
	Name    string
	Answers []string
}

// ExtractOptions controls payload extraction.
type ExtractOptions struct {
	// PayloadColumn holds the encoded summary payload. Empty means
	// DefaultPayloadColumn.
	PayloadColumn string
	// Replacements are literal substitutions applied to the payload text
	// before parsing, used to standardize inconsistently spelled terms.
	Replacements map[string]string
}

func (o ExtractOptions) payloadColumn() string {
	if o.PayloadColumn == "" {
		return DefaultPayloadColumn
	}
	return o.PayloadColumn
}

// summaryPayload is the expected shape of the payload column. Every field is
// optional; anything else in the payload is ignored.
type summaryPayload struct {
	YesSymptoms []symptomEntry `json:"yes_symptoms"`
}

type symptomEntry struct {
	Text    string   `json:"text"`
	Answers []string `json:"answers"`
}

// Extract parses one row's payload into observations. A missing, empty, or
// malformed payload yields zero observations; it is never an error. Entries
// without a usable name are skipped.
func Extract(row dataset.Row, opt ExtractOptions) []Observation {
	raw := row.Get(opt.payloadColumn())
	if raw == "" {
		return nil
	}
	for from, to := range opt.Replacements {
		raw = strings.ReplaceAll(raw, from, to)
	}
	p, ok := parsePayload(raw)
	if !ok {
		return nil
	}
	var out []Observation
	for _, e := range p.YesSymptoms {
		name := strings.TrimSpace(e.Text)
		if name == "" {
			continue
		}
		answers := make([]string, 0, len(e.Answers))
		for _, a := range e.Answers {
			if a = strings.TrimSpace(a); a != "" {
				answers = append(answers, a)
			}
		}
		out = append(out, Observation{Name: name, Answers: answers})
	}
	return out
}

// parsePayload decodes the payload text. Exported datasets frequently hold
// Python-repr payloads with single quotes, so a failed strict parse is
// retried with quotes normalized.
func parsePayload(raw string) (*summaryPayload, bool) {
	var p summaryPayload
	if err := json.Unmarshal([]byte(raw), &p); err == nil {
		return &p, true
	}
	normalized := strings.ReplaceAll(raw, "'", `"`)
	p = summaryPayload{}
	if err := json.Unmarshal([]byte(normalized), &p); err == nil {
		return &p, true
	}
	return nil, false
}

// Set is the unique, sorted symptom names of one patient record.
type Set []string

// BuildSet deduplicates observation names into a Set, dropping any names in
// exclude (matched exactly after trimming).
func BuildSet(obs []Observation, exclude []string) Set {
	if len(obs) == 0 {
		return nil
	}
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		if e = strings.TrimSpace(e); e != "" {
			skip[e] = true
		}
	}
	seen := make(map[string]bool, len(obs))
	var s Set
	for _, o := range obs {
		if skip[o.Name] || seen[o.Name] {
			continue
		}
		seen[o.Name] = true
		s = append(s, o.Name)
	}
	sort.Strings(s)
	return s
}

// Sets extracts one Set per row. Rows with no usable payload produce an
// empty (nil) set and stay in the result so positions match the input rows.
func Sets(rows []dataset.Row, opt ExtractOptions, exclude []string) []Set {
	out := make([]Set, len(rows))
	for i, row := range rows {
		out[i] = BuildSet(Extract(row, opt), exclude)
	}
	return out
}
