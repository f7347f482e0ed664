package report

import (
	"encoding/json"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Float is a float64 that encodes NaN and ±Inf as JSON null
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

// Defined reports whether the value is a finite number
func (f Float) Defined() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func sorted(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.Float64s(out)
	return out
}

// quantile interpolates linearly between closest ranks on sorted data,
// position p*(n-1)
func quantile(sortedValues []float64, p float64) float64 {
	n := len(sortedValues)
	if n == 0 {
		return math.NaN()
	}
	pos := p * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sortedValues[lo]
	}
	frac := pos - float64(lo)
	return sortedValues[lo] + frac*(sortedValues[hi]-sortedValues[lo])
}

func median(values []float64) float64 {
	return quantile(sorted(values), 0.5)
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// sampleStd is the n-1 standard deviation; NaN below two values
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return stat.StdDev(values, nil)
}

func minMax(values []float64) (float64, float64) {
	if len(values) == 0 {
		return math.NaN(), math.NaN()
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// hasOutliers applies the 1.5·IQR fence
func hasOutliers(values []float64) bool {
	if len(values) == 0 {
		return false
	}
	s := sorted(values)
	q1, q3 := quantile(s, 0.25), quantile(s, 0.75)
	iqr := q3 - q1
	lower, upper := q1-1.5*iqr, q3+1.5*iqr
	return s[0] < lower || s[len(s)-1] > upper
}

// skewness is the bias-corrected sample skewness; NaN below three values
func skewness(values []float64) float64 {
	if len(values) < 3 {
		return math.NaN()
	}
	return stat.Skew(values, nil)
}

// kurtosis is the bias-corrected sample excess kurtosis; NaN below four values
func kurtosis(values []float64) float64 {
	if len(values) < 4 {
		return math.NaN()
	}
	return stat.ExKurtosis(values, nil)
}

// tally counts strings and ranks them by count, ties in first-seen order
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) len() int { return len(t.order) }

type ranked struct {
	key   string
	count int
}

func (t *tally) top(n int) []ranked {
	out := make([]ranked, len(t.order))
	for i, k := range t.order {
		out[i] = ranked{key: k, count: t.counts[k]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
