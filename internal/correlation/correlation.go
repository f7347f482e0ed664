// Package correlation computes Pearson correlations between numeric tweet features
package correlation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"tweetscope/internal/dataset"
)

// Options controls which features are correlated and which pairs are reported
type Options struct {
	Features  []dataset.Column
	Threshold float64
	TopN      int
}

// DefaultOptions correlates the NLP feature columns, reporting up to 10 pairs with |r| > 0.3
func DefaultOptions() Options {
	return Options{
		Features:  dataset.NLPFeatures,
		Threshold: 0.3,
		TopN:      10,
	}
}

// Pair is one correlated feature pair
type Pair struct {
	Feature1    string  `json:"feature1"`
	Feature2    string  `json:"feature2"`
	Correlation float64 `json:"correlation"`
}

// Result holds the correlation matrix and the strongest pairs. Undefined
// correlations are absent from both.
type Result struct {
	HasCorrelations bool                          `json:"has_correlations"`
	Features        []string                      `json:"features,omitempty"`
	Matrix          map[string]map[string]float64 `json:"correlation_matrix,omitempty"`
	TopCorrelations []Pair                        `json:"top_correlations,omitempty"`
}

// Correlate computes the matrix over the features present in the table.
// Fewer than two present features yields HasCorrelations=false.
func Correlate(table *dataset.Table, opts Options) *Result {
	view, err := table.View(dataset.Requirements{Optional: opts.Features})
	if err != nil {
		return &Result{}
	}
	present := view.Present(opts.Features)
	if len(present) < 2 {
		return &Result{}
	}

	columns := make([][]*float64, len(present))
	names := make([]string, len(present))
	matrix := make(map[string]map[string]float64, len(present))
	for i, c := range present {
		columns[i] = view.Floats(c)
		names[i] = string(c)
		matrix[names[i]] = map[string]float64{names[i]: 1}
	}

	var pairs []Pair
	for i := 0; i < len(present); i++ {
		for j := i + 1; j < len(present); j++ {
			r := Pearson(columns[i], columns[j])
			if math.IsNaN(r) {
				continue
			}
			matrix[names[i]][names[j]] = r
			matrix[names[j]][names[i]] = r
			if math.Abs(r) > opts.Threshold {
				pairs = append(pairs, Pair{Feature1: names[i], Feature2: names[j], Correlation: r})
			}
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return math.Abs(pairs[a].Correlation) > math.Abs(pairs[b].Correlation)
	})
	if opts.TopN > 0 && len(pairs) > opts.TopN {
		pairs = pairs[:opts.TopN]
	}

	return &Result{
		HasCorrelations: true,
		Features:        names,
		Matrix:          matrix,
		TopCorrelations: pairs,
	}
}

// Pearson correlates the rows where both values are non-null. It returns NaN
// when fewer than two such rows exist or either side has zero variance.
func Pearson(x, y []*float64) float64 {
	var xs, ys []float64
	for i := range x {
		if i >= len(y) || x[i] == nil || y[i] == nil {
			continue
		}
		if math.IsNaN(*x[i]) || math.IsNaN(*y[i]) {
			continue
		}
		xs = append(xs, *x[i])
		ys = append(ys, *y[i])
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	if stat.Variance(xs, nil) == 0 || stat.Variance(ys, nil) == 0 {
		return math.NaN()
	}
	r := stat.Correlation(xs, ys, nil)
	// float error can push |r| just past 1
	return math.Max(-1, math.Min(1, r))
}
