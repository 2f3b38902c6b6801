package analysis

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/symscreen/symscreen-cli/internal/dataset"
)

func pipelineRows() []dataset.Row {
	return []dataset.Row{
		payloadRow(1, `{"yes_symptoms": [{"text": "fever", "answers": ["three days"]}, {"text": "headache", "answers": []}]}`),
		payloadRow(2, `{"yes_symptoms": [{"text": "fever", "answers": ["one week"]}, {"text": "cough", "answers": ["dry"]}]}`),
		payloadRow(3, `not json`),
		payloadRow(4, ``),
	}
}

func TestAnalyzePipeline(t *testing.T) {
	res, err := Analyze(pipelineRows(), DefaultPipelineOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.RunID == "" {
		t.Fatalf("missing run id")
	}
	if res.Records != 4 || res.Observed != 2 || res.MultiSymptom != 2 {
		t.Fatalf("accounting = %d/%d/%d", res.Records, res.Observed, res.MultiSymptom)
	}
	if got := res.Matrix.Total("fever"); got != 2 {
		t.Fatalf("total fever = %d", got)
	}
	if len(res.Pairs) != 2 {
		t.Fatalf("pairs = %+v", res.Pairs)
	}
}

func TestAnalyzeMalformedPayloadDoesNotAbort(t *testing.T) {
	rows := []dataset.Row{
		payloadRow(1, `not json`),
		payloadRow(2, `{"yes_symptoms": "wrong shape"}`),
		payloadRow(3, `{"yes_symptoms": [{"text": "fever"}, {"text": "cough"}]}`),
	}
	res, err := Analyze(rows, DefaultPipelineOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Observed != 1 {
		t.Fatalf("observed = %d, want 1", res.Observed)
	}
	if got := res.Matrix.Count("cough", "fever"); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
}

func TestAnalyzeEmptyDataset(t *testing.T) {
	res, err := Analyze(nil, DefaultPipelineOptions())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(res.Pairs) != 0 {
		t.Fatalf("pairs = %+v, want empty", res.Pairs)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected a no-usable-records note")
	}
}

func TestAnalyzeRejectsBadOptions(t *testing.T) {
	opt := DefaultPipelineOptions()
	opt.Rank.MinSupport = -1
	if _, err := Analyze(pipelineRows(), opt); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	opt := DefaultPipelineOptions()
	first, err := Analyze(pipelineRows(), opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	second, err := Analyze(pipelineRows(), opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if !reflect.DeepEqual(first.Pairs, second.Pairs) {
		t.Fatalf("pairs differ across identical runs:\n%v\n%v", first.Pairs, second.Pairs)
	}
	if !reflect.DeepEqual(first.Related, second.Related) {
		t.Fatalf("related lists differ across identical runs")
	}
}

func TestAnalyzeExcludeLabels(t *testing.T) {
	rows := []dataset.Row{
		payloadRow(1, `{"yes_symptoms": [{"text": "fever"}, {"text": "previous treatment", "answers": ["antibiotics"]}]}`),
	}
	opt := DefaultPipelineOptions()
	opt.ExcludeLabels = []string{"previous treatment"}
	res, err := Analyze(rows, opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if got := res.Matrix.Total("previous treatment"); got != 0 {
		t.Fatalf("excluded label in totals: %d", got)
	}
	if got := res.Matrix.Total("fever"); got != 1 {
		t.Fatalf("total fever = %d", got)
	}
}

func TestResultMarkdown(t *testing.T) {
	opt := DefaultPipelineOptions()
	opt.MinEdgeWeight = 1
	opt.Similarity = true
	res, err := Analyze(pipelineRows(), opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	md := res.Markdown()
	for _, want := range []string{
		"[ANALYSIS SUMMARY]",
		"Records: 4 (with symptoms: 2, multi-symptom: 2)",
		"[RANKED PAIRS]",
		"- cough ~ fever: score=1.000 (n=1)",
		"[RELATED SYMPTOMS]",
		"- fever: cough (1); headache (1)",
		"[GRAPH]",
		"[SIMILARITY]",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestExportCSV(t *testing.T) {
	opt := DefaultPipelineOptions()
	opt.MinEdgeWeight = 1
	opt.Similarity = true
	res, err := Analyze(pipelineRows(), opt)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	dir := filepath.Join(t.TempDir(), "out")
	written, err := res.ExportCSV(dir)
	if err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if len(written) != 5 {
		t.Fatalf("written = %v", written)
	}

	pairs, err := os.ReadFile(filepath.Join(dir, RankedPairsFile))
	if err != nil {
		t.Fatalf("read ranked pairs: %v", err)
	}
	if !strings.Contains(string(pairs), "symptom_a,symptom_b,cooccurrence_count,normalized_score") {
		t.Fatalf("ranked pairs header missing: %s", pairs)
	}
	if !strings.Contains(string(pairs), "cough,fever,1,1.000000") {
		t.Fatalf("ranked pairs row missing: %s", pairs)
	}

	rel, err := os.ReadFile(filepath.Join(dir, RelationsFile))
	if err != nil {
		t.Fatalf("read relations: %v", err)
	}
	if !strings.Contains(string(rel), "fever,cough (1); headache (1)") {
		t.Fatalf("relations row missing: %s", rel)
	}

	matrix, err := os.ReadFile(filepath.Join(dir, MatrixFile))
	if err != nil {
		t.Fatalf("read matrix: %v", err)
	}
	if !strings.Contains(string(matrix), ",cough,fever,headache") {
		t.Fatalf("matrix header missing: %s", matrix)
	}

	dot, err := os.ReadFile(filepath.Join(dir, GraphFile))
	if err != nil {
		t.Fatalf("read dot: %v", err)
	}
	if !strings.Contains(string(dot), "graph symptoms {") {
		t.Fatalf("dot content missing: %s", dot)
	}
}
