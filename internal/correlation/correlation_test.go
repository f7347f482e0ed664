package correlation

import (
	"encoding/json"
	"math"
	"testing"

	"tweetscope/internal/dataset"
)

func f(v float64) *float64 { return &v }

// numTable builds a table from per-column values; nil entries are null cells
func numTable(cols map[dataset.Column][]*float64, rows int) *dataset.Table {
	recs := make([]dataset.Record, rows)
	var names []dataset.Column
	for _, c := range dataset.NumericColumns {
		values, ok := cols[c]
		if !ok {
			continue
		}
		names = append(names, c)
		for i, v := range values {
			if v == nil {
				continue
			}
			if recs[i].Num == nil {
				recs[i].Num = make(map[dataset.Column]float64)
			}
			recs[i].Num[c] = *v
		}
	}
	return dataset.NewTable(names, recs)
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []*float64
		want float64
	}{
		{"perfect", []*float64{f(1), f(2), f(3)}, []*float64{f(2), f(4), f(6)}, 1},
		{"inverse", []*float64{f(1), f(2), f(3)}, []*float64{f(3), f(2), f(1)}, -1},
		{"skips nulls", []*float64{f(1), nil, f(2), f(3)}, []*float64{f(1), f(100), f(2), f(3)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pearson(tt.x, tt.y); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Pearson = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPearson_Undefined(t *testing.T) {
	if r := Pearson([]*float64{f(1), f(1), f(1)}, []*float64{f(1), f(2), f(3)}); !math.IsNaN(r) {
		t.Errorf("constant column: got %v, want NaN", r)
	}
	if r := Pearson([]*float64{f(1), nil}, []*float64{f(1), f(2)}); !math.IsNaN(r) {
		t.Errorf("one complete row: got %v, want NaN", r)
	}
}

func TestCorrelate_FewerThanTwoFeatures(t *testing.T) {
	table := numTable(map[dataset.Column][]*float64{
		dataset.WordCount: {f(1), f(2)},
	}, 2)
	res := Correlate(table, DefaultOptions())
	if res.HasCorrelations {
		t.Error("one feature should not produce correlations")
	}
}

func TestCorrelate_MatrixAndTopPairs(t *testing.T) {
	table := numTable(map[dataset.Column][]*float64{
		dataset.WordCount:     {f(1), f(2), f(3), f(4)},
		dataset.TextLength:    {f(10), f(20), f(30), f(40)},
		dataset.CountHashtags: {f(4), f(3), f(2), f(1)},
		dataset.CountEmojis:   {f(1), f(-1), f(-1), f(1)},
	}, 4)
	res := Correlate(table, DefaultOptions())
	if !res.HasCorrelations {
		t.Fatal("expected correlations")
	}
	if len(res.Features) != 4 {
		t.Fatalf("features = %v", res.Features)
	}

	for _, a := range res.Features {
		if res.Matrix[a][a] != 1 {
			t.Errorf("diagonal %s = %v", a, res.Matrix[a][a])
		}
		for _, b := range res.Features {
			if res.Matrix[a][b] != res.Matrix[b][a] {
				t.Errorf("asymmetric %s/%s", a, b)
			}
		}
	}

	// emoji column is uncorrelated with the others and falls under the threshold
	for _, p := range res.TopCorrelations {
		if p.Feature1 == string(dataset.CountEmojis) || p.Feature2 == string(dataset.CountEmojis) {
			t.Errorf("unexpected pair %+v", p)
		}
		if math.Abs(p.Correlation) <= 0.3 {
			t.Errorf("pair under threshold %+v", p)
		}
	}
	if len(res.TopCorrelations) != 3 {
		t.Errorf("top pairs = %d, want 3", len(res.TopCorrelations))
	}
}

func TestCorrelate_TopNCap(t *testing.T) {
	table := numTable(map[dataset.Column][]*float64{
		dataset.WordCount:     {f(1), f(2), f(3)},
		dataset.TextLength:    {f(2), f(4), f(7)},
		dataset.CountHashtags: {f(3), f(2), f(1)},
	}, 3)
	opts := DefaultOptions()
	opts.TopN = 2
	res := Correlate(table, opts)
	if len(res.TopCorrelations) != 2 {
		t.Fatalf("top pairs = %d, want 2", len(res.TopCorrelations))
	}
	if math.Abs(res.TopCorrelations[0].Correlation) < math.Abs(res.TopCorrelations[1].Correlation) {
		t.Error("pairs not sorted by |r|")
	}
}

func TestCorrelate_UndefinedOmittedAndEncodable(t *testing.T) {
	table := numTable(map[dataset.Column][]*float64{
		dataset.WordCount:  {f(1), f(2), f(3)},
		dataset.TextLength: {f(5), f(5), f(5)},
	}, 3)
	res := Correlate(table, DefaultOptions())
	if _, ok := res.Matrix[string(dataset.WordCount)][string(dataset.TextLength)]; ok {
		t.Error("undefined correlation should be omitted")
	}
	if _, err := json.Marshal(res); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}
