package report

import (
	"tweetscope/internal/correlation"
	"tweetscope/internal/dataset"
)

// Shape is the table size
type Shape struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// ColumnSummary describes one numeric column
type ColumnSummary struct {
	Min         Float `json:"min"`
	Max         Float `json:"max"`
	Mean        Float `json:"mean"`
	Median      Float `json:"median"`
	Std         Float `json:"std"`
	HasOutliers bool  `json:"has_outliers"`
}

// Overview is the dataset_overview section
type Overview struct {
	Shape              Shape                    `json:"dataset_shape"`
	MissingValues      map[string]int           `json:"missing_values"`
	NumericalColumns   []string                 `json:"numerical_columns"`
	CategoricalColumns []string                 `json:"categorical_columns"`
	NumericalSummary   map[string]ColumnSummary `json:"numerical_summary"`
}

// allColumns is a view over every column the table has
func allColumns(table *dataset.Table) *dataset.View {
	view, _ := table.View(dataset.Requirements{Optional: table.Columns()})
	return view
}

// DatasetOverview counts missing values and summarizes the numeric columns
func DatasetOverview(table *dataset.Table) *Overview {
	view := allColumns(table)
	cols := table.Columns()
	ov := &Overview{
		Shape:              Shape{Rows: table.Len(), Columns: len(cols)},
		MissingValues:      make(map[string]int, len(cols)),
		NumericalColumns:   []string{},
		CategoricalColumns: []string{},
		NumericalSummary:   make(map[string]ColumnSummary),
	}
	for _, c := range cols {
		name := string(c)
		if !c.IsNumeric() {
			ov.CategoricalColumns = append(ov.CategoricalColumns, name)
			missing := 0
			for _, s := range view.Strings(c) {
				if s == nil {
					missing++
				}
			}
			ov.MissingValues[name] = missing
			continue
		}

		ov.NumericalColumns = append(ov.NumericalColumns, name)
		values := view.NonNull(c)
		ov.MissingValues[name] = table.Len() - len(values)
		lo, hi := minMax(values)
		ov.NumericalSummary[name] = ColumnSummary{
			Min:         Float(lo),
			Max:         Float(hi),
			Mean:        Float(mean(values)),
			Median:      Float(median(values)),
			Std:         Float(sampleStd(values)),
			HasOutliers: hasOutliers(values),
		}
	}
	return ov
}

// CategoryCount is one value of a categorical distribution
type CategoryCount struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoricalStats is the value distribution of one text column
type CategoricalStats struct {
	UniqueValues int             `json:"unique_values"`
	MostCommon   *string         `json:"most_common"`
	Distribution []CategoryCount `json:"distribution"`
}

const topCategories = 10

// CategoricalAnalysis ranks the values of region, language, account type and
// account category. Absent columns are skipped.
func CategoricalAnalysis(table *dataset.Table) map[string]*CategoricalStats {
	view, _ := table.View(dataset.Requirements{Optional: dataset.CategoricalColumns})
	out := make(map[string]*CategoricalStats)
	for _, c := range view.Present(dataset.CategoricalColumns) {
		counts := newTally()
		total := 0
		for _, s := range view.Strings(c) {
			if s == nil {
				continue
			}
			counts.add(*s)
			total++
		}

		stats := &CategoricalStats{UniqueValues: counts.len(), Distribution: []CategoryCount{}}
		for i, r := range counts.top(topCategories) {
			if i == 0 {
				first := r.key
				stats.MostCommon = &first
			}
			stats.Distribution = append(stats.Distribution, CategoryCount{
				Value:      r.key,
				Count:      r.count,
				Percentage: float64(r.count) / float64(total) * 100,
			})
		}
		out[string(c)] = stats
	}
	return out
}

// NumericalStats is the distribution of one numeric column plus its
// correlation with the other numeric columns
type NumericalStats struct {
	Percentiles map[string]Float   `json:"percentiles"`
	Skewness    Float              `json:"skewness"`
	Kurtosis    Float              `json:"kurtosis"`
	Correlation map[string]float64 `json:"correlation"`
}

var percentiles = []struct {
	label string
	p     float64
}{
	{"10%", 0.10}, {"25%", 0.25}, {"50%", 0.50}, {"75%", 0.75}, {"90%", 0.90},
}

// NumericalAnalysis computes percentiles, shape and pairwise correlations.
// Undefined correlations are left out.
func NumericalAnalysis(table *dataset.Table) map[string]*NumericalStats {
	view, _ := table.View(dataset.Requirements{Optional: dataset.NumericColumns})
	cols := view.Present(dataset.NumericColumns)
	columns := make(map[dataset.Column][]*float64, len(cols))
	for _, c := range cols {
		columns[c] = view.Floats(c)
	}

	out := make(map[string]*NumericalStats, len(cols))
	for _, c := range cols {
		values := view.NonNull(c)
		s := sorted(values)
		stats := &NumericalStats{
			Percentiles: make(map[string]Float, len(percentiles)),
			Skewness:    Float(skewness(values)),
			Kurtosis:    Float(kurtosis(values)),
			Correlation: make(map[string]float64),
		}
		for _, p := range percentiles {
			stats.Percentiles[p.label] = Float(quantile(s, p.p))
		}
		for _, other := range cols {
			if other == c {
				continue
			}
			r := Float(correlation.Pearson(columns[c], columns[other]))
			if r.Defined() {
				stats.Correlation[string(other)] = float64(r)
			}
		}
		out[string(c)] = stats
	}
	return out
}
