// Package sentiment scores tweet text with a compound polarity function and
// aggregates the scores into a distribution.
package sentiment

import (
	"math"
	"sort"

	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"

	"tweetscope/internal/dataset"
	"tweetscope/internal/textclean"
)

// Polarity maps cleaned text to a compound score in [-1, 1]
type Polarity func(text string) float64

// VADER returns the lexicon-based VADER compound score as a Polarity
func VADER() Polarity {
	analyzer := govader.NewSentimentIntensityAnalyzer()
	return func(text string) float64 {
		return analyzer.PolarityScores(text).Compound
	}
}

// Thresholds split scores into positive, neutral and negative. Neutral is the
// closed interval [Negative, Positive].
type Thresholds struct {
	Positive float64
	Negative float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{Positive: 0.05, Negative: -0.05}
}

// Distribution is the aggregate of all non-null scores
type Distribution struct {
	Mean          float64 `json:"mean"`
	Median        float64 `json:"median"`
	Std           float64 `json:"std"`
	PositiveRatio float64 `json:"positive_ratio"`
	NeutralRatio  float64 `json:"neutral_ratio"`
	NegativeRatio float64 `json:"negative_ratio"`
}

// Result is the output of Score. Distribution is nil when no record produced a score.
type Result struct {
	HasSentimentData bool               `json:"has_sentiment_data"`
	Distribution     *Distribution      `json:"sentiment_distribution,omitempty"`
	ByCategory       map[string]float64 `json:"sentiment_by_category,omitempty"`
	ByRegion         map[string]float64 `json:"sentiment_by_region,omitempty"`

	// Scores holds one entry per record, nil where the text was null or the
	// polarity was undefined
	Scores []*float64 `json:"-"`
}

// Scorer scores records. The zero value is not usable; build one with NewScorer.
type Scorer struct {
	polarity   Polarity
	cleaner    *textclean.Cleaner
	thresholds Thresholds
}

// NewScorer builds a scorer. A nil polarity falls back to VADER and a nil
// cleaner to the English stop-word cleaner.
func NewScorer(polarity Polarity, cleaner *textclean.Cleaner, thresholds Thresholds) *Scorer {
	if polarity == nil {
		polarity = VADER()
	}
	if cleaner == nil {
		cleaner = textclean.Default()
	}
	return &Scorer{polarity: polarity, cleaner: cleaner, thresholds: thresholds}
}

var requirements = dataset.Requirements{
	Required: []dataset.Column{dataset.Content},
	Optional: []dataset.Column{dataset.AccountCategory, dataset.Region},
}

// Score computes per-record scores and their aggregate. It fails with
// *dataset.MissingColumnError when the table has no content column.
func (s *Scorer) Score(table *dataset.Table) (*Result, error) {
	view, err := table.View(requirements)
	if err != nil {
		return nil, err
	}

	texts := view.Strings(dataset.Content)
	scores := make([]*float64, len(texts))
	var values []float64
	for i, text := range texts {
		if text == nil {
			continue
		}
		v := s.polarity(s.cleaner.Clean(text))
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		scores[i] = &v
		values = append(values, v)
	}

	result := &Result{Scores: scores}
	if len(values) == 0 {
		return result, nil
	}
	result.HasSentimentData = true
	result.Distribution = Aggregate(values, s.thresholds)
	if view.Has(dataset.AccountCategory) {
		result.ByCategory = GroupMeans(scores, view.Strings(dataset.AccountCategory))
	}
	if view.Has(dataset.Region) {
		result.ByRegion = GroupMeans(scores, view.Strings(dataset.Region))
	}
	return result, nil
}

// Aggregate summarizes scores. It returns nil for an empty slice.
func Aggregate(scores []float64, th Thresholds) *Distribution {
	n := len(scores)
	if n == 0 {
		return nil
	}
	var pos, neg, neutral int
	for _, v := range scores {
		switch {
		case v > th.Positive:
			pos++
		case v < th.Negative:
			neg++
		default:
			neutral++
		}
	}
	mean, std := stat.PopMeanStdDev(scores, nil)
	total := float64(n)
	return &Distribution{
		Mean:          mean,
		Median:        median(scores),
		Std:           std,
		PositiveRatio: float64(pos) / total,
		NeutralRatio:  float64(neutral) / total,
		NegativeRatio: float64(neg) / total,
	}
}

// GroupMeans averages scores per group label. Rows with a null score or a
// null label are skipped.
func GroupMeans(scores []*float64, groups []*string) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, g := range groups {
		if g == nil || i >= len(scores) || scores[i] == nil {
			continue
		}
		sums[*g] += *scores[i]
		counts[*g]++
	}
	means := make(map[string]float64, len(sums))
	for g, sum := range sums {
		means[g] = sum / float64(counts[g])
	}
	return means
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
