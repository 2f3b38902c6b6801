package analysis

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidOptions marks configuration rejected before any computation.
var ErrInvalidOptions = errors.New("invalid analysis options")

// Denominator selects how a pair's co-occurrence count is normalized.
type Denominator string

const (
	// DenomMin divides by the smaller of the two totals: of the times the
	// less common symptom appeared, how often did the other appear too.
	DenomMin Denominator = "min"
	// DenomMax divides by the larger of the two totals.
	DenomMax Denominator = "max"
	// DenomUnion divides by total(a)+total(b)-count (Jaccard).
	DenomUnion Denominator = "union"
)

// RankOptions parameterizes one ranking pass. Values are passed explicitly
// per call; there is no process-wide ranking state.
type RankOptions struct {
	// MinSupport excludes pairs where either symptom's total is below this
	// threshold. Must be >= 1; 1 means no filtering.
	MinSupport int
	// TopN truncates the ranked list; 0 means unbounded.
	TopN int
	// Denominator selects the normalization strategy; empty means DenomMin.
	Denominator Denominator
}

// DefaultRankOptions returns the no-threshold, unbounded defaults.
func DefaultRankOptions() RankOptions {
	return RankOptions{MinSupport: 1, Denominator: DenomMin}
}

// Validate rejects out-of-range parameters before computation starts.
func (o RankOptions) Validate() error {
	if o.MinSupport < 1 {
		return fmt.Errorf("%w: min support must be >= 1, got %d", ErrInvalidOptions, o.MinSupport)
	}
	if o.TopN < 0 {
		return fmt.Errorf("%w: top-n must be >= 0, got %d", ErrInvalidOptions, o.TopN)
	}
	switch o.Denominator {
	case "", DenomMin, DenomMax, DenomUnion:
	default:
		return fmt.Errorf("%w: unknown denominator %q (use min|max|union)", ErrInvalidOptions, o.Denominator)
	}
	return nil
}

// RelationshipScore is one ranked symptom pair. Score is always in (0,1].
type RelationshipScore struct {
	SymptomA string  `json:"symptom_a"`
	SymptomB string  `json:"symptom_b"`
	Count    int     `json:"cooccurrence_count"`
	Score    float64 `json:"normalized_score"`
}

// Rank converts the matrix into the ordered relationship list: zero-count
// pairs never appear, under-supported pairs are filtered, and ordering is
// fully deterministic (score desc, count desc, lexicographic pair).
func Rank(m *Matrix, opt RankOptions) ([]RelationshipScore, error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	denom := opt.Denominator
	if denom == "" {
		denom = DenomMin
	}
	var out []RelationshipScore
	for _, p := range m.Pairs() {
		count := m.Count(p.A, p.B)
		if count == 0 {
			continue
		}
		ta, tb := m.Total(p.A), m.Total(p.B)
		if ta < opt.MinSupport || tb < opt.MinSupport {
			continue
		}
		var d int
		switch denom {
		case DenomMin:
			d = ta
			if tb < ta {
				d = tb
			}
		case DenomMax:
			d = ta
			if tb > ta {
				d = tb
			}
		case DenomUnion:
			d = ta + tb - count
		}
		out = append(out, RelationshipScore{
			SymptomA: p.A,
			SymptomB: p.B,
			Count:    count,
			Score:    float64(count) / float64(d),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].SymptomA != out[j].SymptomA {
			return out[i].SymptomA < out[j].SymptomA
		}
		return out[i].SymptomB < out[j].SymptomB
	})
	if opt.TopN > 0 && len(out) > opt.TopN {
		out = out[:opt.TopN]
	}
	return out, nil
}
