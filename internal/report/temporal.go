package report

import (
	"math"
	"sort"
	"strconv"

	"tweetscope/internal/dataset"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Temporal is the temporal_analysis section
type Temporal struct {
	HasTemporalData    bool           `json:"has_temporal_data"`
	HourlyDistribution map[string]int `json:"hourly_distribution,omitempty"`
	PeakHours          []int          `json:"peak_hours,omitempty"`
	DailyDistribution  map[string]int `json:"daily_distribution,omitempty"`
}

const peakHourCount = 3

// TemporalAnalysis counts tweets per hour of day and per weekday (0 = Monday).
// Non-integral hours and days outside 0..6 are ignored.
func TemporalAnalysis(table *dataset.Table) *Temporal {
	view, _ := table.View(dataset.Requirements{
		Optional: []dataset.Column{dataset.HourOfDay, dataset.DayOfWeek},
	})
	res := &Temporal{}

	if hours := integral(view.NonNull(dataset.HourOfDay)); len(hours) > 0 {
		counts := make(map[int]int)
		for _, h := range hours {
			counts[h]++
		}
		keys := make([]int, 0, len(counts))
		res.HourlyDistribution = make(map[string]int, len(counts))
		for h, n := range counts {
			keys = append(keys, h)
			res.HourlyDistribution[strconv.Itoa(h)] = n
		}
		sort.Ints(keys)
		sort.SliceStable(keys, func(i, j int) bool { return counts[keys[i]] > counts[keys[j]] })
		if len(keys) > peakHourCount {
			keys = keys[:peakHourCount]
		}
		res.PeakHours = keys
		res.HasTemporalData = true
	}

	if days := integral(view.NonNull(dataset.DayOfWeek)); len(days) > 0 {
		res.DailyDistribution = make(map[string]int)
		for _, d := range days {
			if d >= 0 && d < len(weekdays) {
				res.DailyDistribution[weekdays[d]]++
			}
		}
		res.HasTemporalData = true
	}
	return res
}

func integral(values []float64) []int {
	var out []int
	for _, v := range values {
		if v == math.Trunc(v) {
			out = append(out, int(v))
		}
	}
	return out
}
