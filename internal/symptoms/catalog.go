package symptoms

import (
	"sort"
	"strings"

	"github.com/symscreen/symscreen-cli/internal/dataset"
)

// OtherGroup is the answer group used for answers without a leading
// group word.
const OtherGroup = "other"

// All returns every unique symptom name observed in the dataset, sorted.
func All(rows []dataset.Row, opt ExtractOptions) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		for _, o := range Extract(row, opt) {
			seen[o.Name] = true
		}
	}
	return sortedKeys(seen)
}

// WithAnswers returns the sorted symptoms that carry at least one non-blank
// follow-up answer somewhere in the dataset, excluding the given labels.
// These are the symptoms worth a recommendation entry.
func WithAnswers(rows []dataset.Row, opt ExtractOptions, exclude []string) []string {
	skip := map[string]bool{}
	for _, e := range exclude {
		if e = strings.TrimSpace(e); e != "" {
			skip[e] = true
		}
	}
	seen := map[string]bool{}
	for _, row := range rows {
		for _, o := range Extract(row, opt) {
			if skip[o.Name] || len(o.Answers) == 0 {
				continue
			}
			seen[o.Name] = true
		}
	}
	return sortedKeys(seen)
}

// Answers returns the unique answers recorded for one symptom, sorted.
func Answers(rows []dataset.Row, opt ExtractOptions, symptom string) []string {
	seen := map[string]bool{}
	for _, row := range rows {
		for _, o := range Extract(row, opt) {
			if o.Name != symptom {
				continue
			}
			for _, a := range o.Answers {
				seen[a] = true
			}
		}
	}
	return sortedKeys(seen)
}

// AnswerGroup is a set of answers sharing a leading group word.
type AnswerGroup struct {
	Key     string
	Answers []string
}

// GroupAnswers buckets answers by their first word. Answers without a space
// fall into OtherGroup. Groups and their answers come back sorted.
func GroupAnswers(answers []string) []AnswerGroup {
	byKey := map[string][]string{}
	for _, a := range answers {
		key := OtherGroup
		if parts := strings.SplitN(a, " ", 2); len(parts) > 1 {
			key = parts[0]
		}
		byKey[key] = append(byKey[key], a)
	}
	out := make([]AnswerGroup, 0, len(byKey))
	for key, list := range byKey {
		sort.Strings(list)
		out = append(out, AnswerGroup{Key: key, Answers: list})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Option is one dropdown entry: a display label and the underlying value.
type Option struct {
	Label string
	Value string
}

// DropdownOptions formats answers for dropdown display. The label is the
// remainder after the group word with interior spaces removed; answers
// without a group word use the full text.
func DropdownOptions(items []string) []Option {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	out := make([]Option, 0, len(sorted))
	for _, item := range sorted {
		label := item
		if parts := strings.SplitN(item, " ", 2); len(parts) > 1 {
			label = strings.ReplaceAll(parts[1], " ", "")
		}
		out = append(out, Option{Label: label, Value: item})
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
