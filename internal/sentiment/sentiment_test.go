package sentiment

import (
	"errors"
	"math"
	"testing"

	"tweetscope/internal/dataset"
	"tweetscope/internal/textclean"
)

func lexicon(words map[string]float64) Polarity {
	return func(text string) float64 {
		if v, ok := words[text]; ok {
			return v
		}
		return math.NaN()
	}
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

type row struct {
	content, category, region string
}

func sentimentTable(t *testing.T, cols []dataset.Column, rows []row) *dataset.Table {
	t.Helper()
	recs := make([]dataset.Record, len(rows))
	for i, r := range rows {
		for col, v := range map[dataset.Column]string{
			dataset.Content:         r.content,
			dataset.AccountCategory: r.category,
			dataset.Region:          r.region,
		} {
			if err := recs[i].Set(col, v); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}
	return dataset.NewTable(cols, recs)
}

func TestAggregate_RatioBoundaries(t *testing.T) {
	d := Aggregate([]float64{0.5, -0.5, 0.0, 0.05, -0.05}, DefaultThresholds())
	if d == nil {
		t.Fatal("expected distribution")
	}
	if !approx(d.PositiveRatio, 0.2) {
		t.Errorf("positive = %v, want 0.2", d.PositiveRatio)
	}
	if !approx(d.NegativeRatio, 0.2) {
		t.Errorf("negative = %v, want 0.2", d.NegativeRatio)
	}
	if !approx(d.NeutralRatio, 0.6) {
		t.Errorf("neutral = %v, want 0.6", d.NeutralRatio)
	}
	if !approx(d.PositiveRatio+d.NeutralRatio+d.NegativeRatio, 1) {
		t.Error("ratios do not partition")
	}
	if !approx(d.Mean, 0) || !approx(d.Median, 0) {
		t.Errorf("mean/median = %v/%v, want 0/0", d.Mean, d.Median)
	}
}

func TestAggregate_PopulationStd(t *testing.T) {
	d := Aggregate([]float64{1, -1}, DefaultThresholds())
	if !approx(d.Std, 1) {
		t.Errorf("std = %v, want 1", d.Std)
	}
	if !approx(d.Median, 0) {
		t.Errorf("median = %v, want 0", d.Median)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if d := Aggregate(nil, DefaultThresholds()); d != nil {
		t.Errorf("expected nil, got %+v", d)
	}
}

func TestScore_MissingContent(t *testing.T) {
	table := sentimentTable(t, []dataset.Column{dataset.Region}, []row{{region: "US"}})
	_, err := NewScorer(lexicon(nil), nil, DefaultThresholds()).Score(table)
	var missing *dataset.MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
	if missing.Column != dataset.Content {
		t.Errorf("column = %q", missing.Column)
	}
}

func TestScore_CleansBeforeScoring(t *testing.T) {
	var seen []string
	polarity := func(text string) float64 {
		seen = append(seen, text)
		return 0
	}
	table := sentimentTable(t, []dataset.Column{dataset.Content}, []row{
		{content: "Sunny http://x.co @bob #weather 42!!"},
	})
	if _, err := NewScorer(polarity, textclean.Default(), DefaultThresholds()).Score(table); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 || seen[0] != "sunny" {
		t.Errorf("polarity saw %q, want [sunny]", seen)
	}
}

func TestScore_GroupsAndNulls(t *testing.T) {
	cols := []dataset.Column{dataset.Content, dataset.AccountCategory, dataset.Region}
	table := sentimentTable(t, cols, []row{
		{content: "sunny", category: "RightTroll", region: "US"},
		{content: "rainy", category: "RightTroll", region: "US"},
		{content: "cloudy", category: "LeftTroll", region: ""},
		{content: "", category: "LeftTroll", region: "UK"},
		{content: "gibberish", category: "LeftTroll", region: "UK"},
	})
	scorer := NewScorer(lexicon(map[string]float64{"sunny": 0.8, "rainy": -0.4, "cloudy": 0}), nil, DefaultThresholds())

	res, err := scorer.Score(table)
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasSentimentData || res.Distribution == nil {
		t.Fatal("expected sentiment data")
	}
	if len(res.Scores) != 5 {
		t.Fatalf("scores len = %d", len(res.Scores))
	}
	if res.Scores[3] != nil || res.Scores[4] != nil {
		t.Error("null text and NaN polarity should have no score")
	}
	if !approx(res.Distribution.Mean, 0.4/3) {
		t.Errorf("mean = %v", res.Distribution.Mean)
	}
	if !approx(res.ByCategory["RightTroll"], 0.2) || !approx(res.ByCategory["LeftTroll"], 0) {
		t.Errorf("by category = %v", res.ByCategory)
	}
	if _, ok := res.ByRegion["UK"]; ok {
		t.Error("UK has no scored rows and should be absent")
	}
	if !approx(res.ByRegion["US"], 0.2) {
		t.Errorf("by region = %v", res.ByRegion)
	}
}

func TestScore_NoScoresOmitsAggregate(t *testing.T) {
	table := sentimentTable(t, []dataset.Column{dataset.Content, dataset.Region}, []row{
		{content: "", region: "US"},
	})
	res, err := NewScorer(lexicon(nil), nil, DefaultThresholds()).Score(table)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasSentimentData || res.Distribution != nil || res.ByRegion != nil {
		t.Errorf("expected empty result, got %+v", res)
	}
}

func TestVADER_Direction(t *testing.T) {
	polarity := VADER()
	if v := polarity("good"); v <= 0.05 {
		t.Errorf("good = %v, want positive", v)
	}
	if v := polarity("terrible"); v >= -0.05 {
		t.Errorf("terrible = %v, want negative", v)
	}
}
