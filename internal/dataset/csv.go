package dataset

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadFrame reads one CSV file with a header row. Every column is loaded as
// a string; typing happens when the frame is converted to records.
func ReadFrame(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithLazyQuotes(true),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("reading %s: %w", path, df.Err)
	}
	return df, nil
}

// StackFrames reads the files and appends their rows in order
func StackFrames(paths []string) (dataframe.DataFrame, error) {
	var stacked dataframe.DataFrame
	for i, p := range paths {
		df, err := ReadFrame(p)
		if err != nil {
			return dataframe.DataFrame{}, err
		}
		if i == 0 {
			stacked = df
			continue
		}
		stacked = stacked.RBind(df)
		if stacked.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("appending %s: %w", p, stacked.Err)
		}
	}
	return stacked, nil
}

// MergeFrames joins raw and derived frames side by side. Columns of derived
// that already exist in raw are dropped so the raw value wins.
func MergeFrames(raw, derived dataframe.DataFrame) (dataframe.DataFrame, error) {
	if derived.Ncol() == 0 {
		return raw, nil
	}
	if raw.Ncol() == 0 {
		return derived, nil
	}
	if raw.Nrow() != derived.Nrow() {
		return dataframe.DataFrame{}, fmt.Errorf("row count mismatch: raw has %d rows, derived has %d", raw.Nrow(), derived.Nrow())
	}

	have := make(map[string]bool)
	for _, name := range raw.Names() {
		have[name] = true
	}
	var dup []string
	for _, name := range derived.Names() {
		if have[name] {
			dup = append(dup, name)
		}
	}
	if len(dup) == derived.Ncol() {
		return raw, nil
	}
	if len(dup) > 0 {
		derived = derived.Drop(dup)
		if derived.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("dropping duplicate columns: %w", derived.Err)
		}
	}

	merged := raw.CBind(derived)
	if merged.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("merging frames: %w", merged.Err)
	}
	return merged, nil
}

// FromFrame converts a string-typed frame into a Table. Columns the dataset
// does not know about are skipped.
func FromFrame(df dataframe.DataFrame) (*Table, error) {
	n := df.Nrow()
	records := make([]Record, n)
	var columns []Column

	for _, name := range df.Names() {
		col := Column(name)
		if !col.Known() {
			continue
		}
		columns = append(columns, col)
		cells := df.Col(name).Records()
		for i := 0; i < n && i < len(cells); i++ {
			if err := records[i].Set(col, cells[i]); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
	}
	return NewTable(columns, records), nil
}

// LoadCSV stacks the raw files, stacks the derived files, and merges the two
// column sets into one table. Either list may be empty.
func LoadCSV(rawPaths, derivedPaths []string) (*Table, error) {
	if len(rawPaths) == 0 && len(derivedPaths) == 0 {
		return nil, fmt.Errorf("no input files")
	}

	var raw, derived dataframe.DataFrame
	var err error
	if len(rawPaths) > 0 {
		if raw, err = StackFrames(rawPaths); err != nil {
			return nil, err
		}
	}
	if len(derivedPaths) > 0 {
		if derived, err = StackFrames(derivedPaths); err != nil {
			return nil, err
		}
	}

	merged, err := MergeFrames(raw, derived)
	if err != nil {
		return nil, err
	}
	return FromFrame(merged)
}
