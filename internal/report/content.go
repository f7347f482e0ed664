package report

import (
	"strings"

	"tweetscope/internal/correlation"
	"tweetscope/internal/dataset"
	"tweetscope/internal/graph"
)

// FeatureStats summarizes one NLP feature
type FeatureStats struct {
	Mean   Float `json:"mean"`
	Median Float `json:"median"`
	Std    Float `json:"std"`
}

// TagCount is a tag with its number of occurrences
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// NLP is the nlp_analysis section
type NLP struct {
	HasNLPFeatures      bool                    `json:"has_nlp_features"`
	FeatureStats        map[string]FeatureStats `json:"feature_stats,omitempty"`
	FeatureCorrelations *correlation.Result     `json:"feature_correlations,omitempty"`
	TopHashtags         []TagCount              `json:"top_hashtags,omitempty"`
}

// NLPAnalysis summarizes the derived NLP features, their correlations and
// the most used hashtags
func NLPAnalysis(table *dataset.Table, corr correlation.Options, delimiter string) *NLP {
	view, _ := table.View(dataset.Requirements{
		Optional: append([]dataset.Column{dataset.Hashtags}, corr.Features...),
	})
	res := &NLP{}

	stats := make(map[string]FeatureStats)
	for _, c := range view.Present(corr.Features) {
		values := view.NonNull(c)
		if len(values) == 0 {
			continue
		}
		stats[string(c)] = FeatureStats{
			Mean:   Float(mean(values)),
			Median: Float(median(values)),
			Std:    Float(sampleStd(values)),
		}
	}
	if len(stats) > 0 {
		res.HasNLPFeatures = true
		res.FeatureStats = stats
		if c := correlation.Correlate(table, corr); c.HasCorrelations {
			res.FeatureCorrelations = c
		}
	}

	if top := topTags(view.Strings(dataset.Hashtags), delimiter, 10); len(top) > 0 {
		res.TopHashtags = top
		res.HasNLPFeatures = true
	}
	return res
}

// topTags ranks tags by occurrence count, ties in first-seen order
func topTags(fields []*string, delimiter string, n int) []TagCount {
	counts := newTally()
	for _, f := range fields {
		for _, tag := range graph.ExtractTags(f, delimiter) {
			counts.add(tag)
		}
	}
	var out []TagCount
	for _, r := range counts.top(n) {
		out = append(out, TagCount{Tag: r.key, Count: r.count})
	}
	return out
}

// WordCount is a word with its number of occurrences
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// FormatStats counts the tweets that do and do not start with a tag
type FormatStats struct {
	YesCount      int     `json:"yes_count"`
	NoCount       int     `json:"no_count"`
	YesPercentage float64 `json:"yes_percentage"`
}

// Content is the content_analysis section
type Content struct {
	HasContentData       bool                   `json:"has_content_data"`
	HasHashtagData       bool                   `json:"has_hashtag_data"`
	HasSpecialFormatData bool                   `json:"has_special_format_data"`
	TopWords             []WordCount            `json:"top_words,omitempty"`
	TopHashtags          []TagCount             `json:"top_hashtags,omitempty"`
	SpecialFormatStats   map[string]FormatStats `json:"special_format_stats,omitempty"`
}

const contentTopN = 20

var formatFlags = []dataset.Column{dataset.StartsWithHashtag, dataset.StartsWithMention}

// ContentAnalysis ranks the raw words and hashtags of the corpus and counts
// tweets that start with a hashtag or mention
func ContentAnalysis(table *dataset.Table, delimiter string) *Content {
	view, _ := table.View(dataset.Requirements{
		Optional: append([]dataset.Column{dataset.Content, dataset.Hashtags}, formatFlags...),
	})
	res := &Content{}

	words := newTally()
	hasText := false
	for _, s := range view.Strings(dataset.Content) {
		if s == nil {
			continue
		}
		hasText = true
		for _, w := range strings.Fields(strings.ToLower(*s)) {
			words.add(w)
		}
	}
	if hasText {
		res.HasContentData = true
		for _, r := range words.top(contentTopN) {
			res.TopWords = append(res.TopWords, WordCount{Word: r.key, Count: r.count})
		}
	}

	if top := topTags(view.Strings(dataset.Hashtags), delimiter, contentTopN); len(top) > 0 {
		res.HasHashtagData = true
		res.TopHashtags = top
	}

	for _, c := range view.Present(formatFlags) {
		res.HasSpecialFormatData = true
		yes := 0
		for _, v := range view.NonNull(c) {
			yes += int(v)
		}
		total := view.Len()
		fs := FormatStats{YesCount: yes, NoCount: total - yes}
		if total > 0 {
			fs.YesPercentage = float64(yes) / float64(total) * 100
		}
		if res.SpecialFormatStats == nil {
			res.SpecialFormatStats = make(map[string]FormatStats)
		}
		res.SpecialFormatStats[string(c)] = fs
	}
	return res
}
