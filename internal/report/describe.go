package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"tweetscope/internal/dataset"
)

var describeHeader = []string{
	"column", "count", "unique", "top", "freq",
	"mean", "std", "min", "25%", "50%", "75%", "max",
}

// Describe builds the descriptive statistics table: one row per column.
// Text columns fill count/unique/top/freq, numeric columns count and the
// distribution fields. Undefined cells are empty.
func Describe(table *dataset.Table) dataframe.DataFrame {
	view := allColumns(table)
	records := [][]string{describeHeader}
	for _, c := range table.Columns() {
		row := make([]string, len(describeHeader))
		row[0] = string(c)
		if c.IsNumeric() {
			values := view.NonNull(c)
			s := sorted(values)
			lo, hi := minMax(values)
			row[1] = strconv.Itoa(len(values))
			row[5] = formatFloat(mean(values))
			row[6] = formatFloat(sampleStd(values))
			row[7] = formatFloat(lo)
			row[8] = formatFloat(quantile(s, 0.25))
			row[9] = formatFloat(quantile(s, 0.5))
			row[10] = formatFloat(quantile(s, 0.75))
			row[11] = formatFloat(hi)
		} else {
			counts := newTally()
			n := 0
			for _, v := range view.Strings(c) {
				if v != nil {
					counts.add(*v)
					n++
				}
			}
			row[1] = strconv.Itoa(n)
			row[2] = strconv.Itoa(counts.len())
			if top := counts.top(1); len(top) == 1 {
				row[3] = top[0].key
				row[4] = strconv.Itoa(top[0].count)
			}
		}
		records = append(records, row)
	}
	return dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

// WriteDescribe writes the Describe table as CSV
func WriteDescribe(table *dataset.Table, w io.Writer) error {
	df := Describe(table)
	if df.Err != nil {
		return fmt.Errorf("building descriptive stats: %w", df.Err)
	}
	if err := df.WriteCSV(w); err != nil {
		return fmt.Errorf("writing descriptive stats: %w", err)
	}
	return nil
}

func formatFloat(v float64) string {
	if !Float(v).Defined() {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
