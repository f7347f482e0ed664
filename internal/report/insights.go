package report

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"tweetscope/internal/correlation"
)

// Pattern is a notable regularity in the data
type Pattern struct {
	PatternType string `json:"pattern_type"`
	Description string `json:"description"`
}

// Anomaly flags a feature that needs care
type Anomaly struct {
	Feature     string `json:"feature"`
	Description string `json:"description"`
}

// Imbalance describes how concentrated a categorical column is
type Imbalance struct {
	TopCategory    string  `json:"top_category"`
	ImbalanceRatio float64 `json:"imbalance_ratio"`
}

// NetworkInsight describes one tag network in words
type NetworkInsight struct {
	Size        int     `json:"size"`
	Density     float64 `json:"density"`
	Description string  `json:"description"`
}

// TagWeight is a tag and its frequency
type TagWeight struct {
	Tag    string `json:"tag"`
	Weight int    `json:"weight"`
}

// NetworkInsights covers both tag networks
type NetworkInsights struct {
	HashtagNetwork *NetworkInsight `json:"hashtag_network,omitempty"`
	TopHashtags    []TagWeight     `json:"top_hashtags,omitempty"`
	MentionNetwork *NetworkInsight `json:"mention_network,omitempty"`
	TopMentions    []TagWeight     `json:"top_mentions,omitempty"`
}

// Insights is the condensed reading of a Summary
type Insights struct {
	KeyPatterns   []Pattern            `json:"key_patterns"`
	Anomalies     []Anomaly            `json:"anomalies"`
	Distributions map[string]Imbalance `json:"distributions"`
	Correlations  []correlation.Pair   `json:"correlations"`
	Networks      NetworkInsights      `json:"networks"`
}

const (
	strongCorrelation = 0.7
	denseThreshold    = 0.5
	insightTopTags    = 5
)

// Derive extracts key patterns, anomalies, imbalances, strong correlations and
// network descriptions from a summary
func Derive(s *Summary) *Insights {
	in := &Insights{
		KeyPatterns:   []Pattern{},
		Anomalies:     []Anomaly{},
		Distributions: make(map[string]Imbalance),
		Correlations:  []correlation.Pair{},
	}

	for name, stats := range s.CategoricalAnalysis {
		if stats.UniqueValues <= 1 || len(stats.Distribution) == 0 {
			continue
		}
		top := stats.Distribution[0]
		for _, c := range stats.Distribution[1:] {
			if c.Percentage > top.Percentage {
				top = c
			}
		}
		in.Distributions[name] = Imbalance{TopCategory: top.Value, ImbalanceRatio: top.Percentage}
	}

	for _, feature := range sortedKeys(s.NumericalAnalysis) {
		corr := s.NumericalAnalysis[feature].Correlation
		for _, other := range sortedKeys(corr) {
			if r := corr[other]; math.Abs(r) > strongCorrelation {
				in.Correlations = append(in.Correlations, correlation.Pair{
					Feature1: feature, Feature2: other, Correlation: r,
				})
			}
		}
	}

	if t := s.TemporalAnalysis; t != nil && t.HasTemporalData && len(t.PeakHours) > 0 {
		hours := make([]string, len(t.PeakHours))
		for i, h := range t.PeakHours {
			hours[i] = strconv.Itoa(h)
		}
		in.KeyPatterns = append(in.KeyPatterns, Pattern{
			PatternType: "temporal",
			Description: fmt.Sprintf("Peak activity hours: [%s]", strings.Join(hours, ", ")),
		})
	}

	if sent := s.SentimentAnalysis; sent != nil && sent.HasSentimentData && sent.Distribution != nil {
		d := sent.Distribution
		label, ratio := "positive", d.PositiveRatio
		if d.NeutralRatio > ratio {
			label, ratio = "neutral", d.NeutralRatio
		}
		if d.NegativeRatio > ratio {
			label, ratio = "negative", d.NegativeRatio
		}
		in.KeyPatterns = append(in.KeyPatterns, Pattern{
			PatternType: "sentiment",
			Description: fmt.Sprintf("Dominant sentiment is %s (%.1f%%)", label, ratio*100),
		})
	}

	if ov := s.DatasetOverview; ov != nil {
		for _, feature := range sortedKeys(ov.NumericalSummary) {
			if ov.NumericalSummary[feature].HasOutliers {
				in.Anomalies = append(in.Anomalies, Anomaly{
					Feature:     feature,
					Description: "Contains outliers that may affect analysis",
				})
			}
		}
	}

	if net := s.NetworkAnalysis; net != nil && net.HasNetworkData {
		sum := net.Summary
		if sum.HashtagNetworkSize > 0 {
			in.Networks.HashtagNetwork = describeNetwork(sum.HashtagNetworkSize, sum.HashtagNetworkDensity, "hashtag co-occurrence network")
			in.Networks.TopHashtags = topWeights(net.HashtagNetwork)
		}
		if sum.MentionNetworkSize > 0 {
			in.Networks.MentionNetwork = describeNetwork(sum.MentionNetworkSize, sum.MentionNetworkDensity, "mention network")
			in.Networks.TopMentions = topWeights(net.MentionNetwork)
		}
	}
	return in
}

func describeNetwork(size int, density float64, kind string) *NetworkInsight {
	shape := "Sparse"
	if density > denseThreshold {
		shape = "Dense"
	}
	return &NetworkInsight{Size: size, Density: density, Description: shape + " " + kind}
}

func topWeights(net *TopNetwork) []TagWeight {
	if net == nil {
		return nil
	}
	var out []TagWeight
	for i, n := range net.TopNodes {
		if i == insightTopTags {
			break
		}
		out = append(out, TagWeight{Tag: n.ID, Weight: n.Weight})
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
