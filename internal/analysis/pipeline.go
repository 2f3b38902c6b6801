package analysis

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/symscreen/symscreen-cli/internal/dataset"
	"github.com/symscreen/symscreen-cli/internal/logging"
	"github.com/symscreen/symscreen-cli/internal/symptoms"
)

// Options parameterizes one full analysis run. Every run gets its own
// Options value; nothing here is shared or retained across runs.
type Options struct {
	Extract       symptoms.ExtractOptions
	ExcludeLabels []string
	Rank          RankOptions
	// MinEdgeWeight is the minimum co-occurrence count for a graph edge.
	MinEdgeWeight int
	// RelatedTopN caps the partner list per symptom; <=0 means unbounded.
	RelatedTopN int
	// Similarity enables answer-based symptom similarity.
	Similarity bool
}

// DefaultPipelineOptions mirrors the original tool's defaults.
func DefaultPipelineOptions() Options {
	return Options{
		Rank:          DefaultRankOptions(),
		MinEdgeWeight: 2,
		RelatedTopN:   5,
	}
}

// Validate rejects the run before computation on bad parameters.
func (o Options) Validate() error {
	if err := o.Rank.Validate(); err != nil {
		return err
	}
	if o.MinEdgeWeight < 0 {
		return fmt.Errorf("%w: min edge weight must be >= 0, got %d", ErrInvalidOptions, o.MinEdgeWeight)
	}
	return nil
}

// Result is everything one analysis run produced. All fields are owned by
// the run; callers may retain them freely.
type Result struct {
	RunID string

	// Record accounting
	Records      int // rows in the batch
	Observed     int // rows yielding at least one observation
	MultiSymptom int // rows with two or more unique symptoms

	Matrix     *Matrix
	Pairs      []RelationshipScore
	Related    []Related
	Graph      Graph
	Similarity *SimilarityMatrix
	Warnings   []string
}

// Analyze runs the full pipeline over an in-memory batch of rows:
// extract -> build matrix -> rank, plus the derived views. The batch is read
// fresh from the caller each run; no intermediate state survives the call.
func Analyze(rows []dataset.Row, opt Options) (*Result, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	res := &Result{
		RunID:   uuid.NewString(),
		Records: len(rows),
	}
	log := logging.WithFields(logrus.Fields{"run_id": res.RunID, "records": len(rows)})
	log.Debug("analysis started")

	sets := symptoms.Sets(rows, opt.Extract, opt.ExcludeLabels)
	for _, s := range sets {
		if len(s) > 0 {
			res.Observed++
		}
		if len(s) > 1 {
			res.MultiSymptom++
		}
	}
	res.Matrix = BuildMatrix(sets)
	log.WithFields(logrus.Fields{
		"observed":  res.Observed,
		"symptoms":  len(res.Matrix.Symptoms()),
		"pair_keys": len(res.Matrix.Pairs()),
	}).Debug("matrix built")

	pairs, err := Rank(res.Matrix, opt.Rank)
	if err != nil {
		return nil, err
	}
	res.Pairs = pairs
	res.Related = RelatedSymptoms(res.Matrix, opt.RelatedTopN)
	res.Graph = BuildGraph(res.Matrix, opt.MinEdgeWeight)

	if opt.Similarity {
		res.Similarity = AnswerSimilarity(rows, opt.Extract, res.Matrix.Symptoms())
		if res.Similarity == nil {
			res.Warnings = append(res.Warnings, "similarity skipped: fewer than two symptoms with answer text")
		}
	}
	if res.Observed == 0 {
		res.Warnings = append(res.Warnings, "no usable records: every payload was missing, empty, or malformed")
	}
	log.WithField("ranked_pairs", len(res.Pairs)).Debug("analysis finished")
	return res, nil
}
