// Package report assembles the full EDA summary of a tweet table: dataset
// overview, per-column statistics, temporal patterns, NLP features, content,
// sentiment, tag networks and account behavior. The summary is plain
// JSON-serializable data meant to be handed to an LLM prompt builder.
package report

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"tweetscope/internal/correlation"
	"tweetscope/internal/dataset"
	"tweetscope/internal/graph"
	"tweetscope/internal/sentiment"
)

// Options configures Generate. Zero fields take their defaults.
type Options struct {
	DatasetName string
	Network     graph.Options
	Structure   *graph.StructureConfig
	Correlation correlation.Options
	Scorer      *sentiment.Scorer
	TopNodes    int
	TopEdges    int

	// Now stamps the metadata; time.Now when nil
	Now func() time.Time
}

// DefaultOptions returns the standard report settings with a VADER scorer
func DefaultOptions() Options {
	return Options{
		DatasetName: "Twitter Troll Dataset",
		Network:     graph.DefaultOptions(),
		Correlation: correlation.DefaultOptions(),
		TopNodes:    10,
		TopEdges:    20,
	}
}

// Metadata identifies one analysis run
type Metadata struct {
	DatasetName       string `json:"dataset_name"`
	AnalysisID        string `json:"analysis_id"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	NumberOfFeatures  int    `json:"number_of_features"`
	NumberOfSamples   int    `json:"number_of_samples"`
}

// Summary is the complete report
type Summary struct {
	DatasetOverview     *Overview                    `json:"dataset_overview"`
	CategoricalAnalysis map[string]*CategoricalStats `json:"categorical_analysis"`
	NumericalAnalysis   map[string]*NumericalStats   `json:"numerical_analysis"`
	TemporalAnalysis    *Temporal                    `json:"temporal_analysis"`
	NLPAnalysis         *NLP                         `json:"nlp_analysis"`
	ContentAnalysis     *Content                     `json:"content_analysis"`
	SentimentAnalysis   *sentiment.Result            `json:"sentiment_analysis"`
	NetworkAnalysis     *NetworkDigest               `json:"network_analysis"`
	AccountBehavior     *AccountBehavior             `json:"account_behavior"`
	Metadata            Metadata                     `json:"metadata"`
}

func (o *Options) fill() {
	def := DefaultOptions()
	if o.DatasetName == "" {
		o.DatasetName = def.DatasetName
	}
	if o.Network.TopK <= 0 {
		o.Network.TopK = def.Network.TopK
	}
	if o.Network.Delimiter == "" {
		o.Network.Delimiter = def.Network.Delimiter
	}
	if o.Correlation.Features == nil {
		o.Correlation = def.Correlation
	}
	if o.TopNodes <= 0 {
		o.TopNodes = def.TopNodes
	}
	if o.TopEdges <= 0 {
		o.TopEdges = def.TopEdges
	}
	if o.Scorer == nil {
		o.Scorer = sentiment.NewScorer(nil, nil, sentiment.DefaultThresholds())
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// Generate runs every analysis over the table. A table without content
// yields an empty sentiment section rather than an error.
func Generate(table *dataset.Table, opts Options) (*Summary, error) {
	opts.fill()

	sent, err := opts.Scorer.Score(table)
	if err != nil {
		var missing *dataset.MissingColumnError
		if !errors.As(err, &missing) {
			return nil, err
		}
		sent = &sentiment.Result{}
	}

	nets := graph.AnalyzeNetworks(table, opts.Network, opts.Structure)

	return &Summary{
		DatasetOverview:     DatasetOverview(table),
		CategoricalAnalysis: CategoricalAnalysis(table),
		NumericalAnalysis:   NumericalAnalysis(table),
		TemporalAnalysis:    TemporalAnalysis(table),
		NLPAnalysis:         NLPAnalysis(table, opts.Correlation, opts.Network.Delimiter),
		ContentAnalysis:     ContentAnalysis(table, opts.Network.Delimiter),
		SentimentAnalysis:   sent,
		NetworkAnalysis:     DigestNetworks(nets, opts.TopNodes, opts.TopEdges),
		AccountBehavior:     AccountBehaviorAnalysis(table),
		Metadata: Metadata{
			DatasetName:       opts.DatasetName,
			AnalysisID:        uuid.NewString(),
			AnalysisTimestamp: opts.Now().UTC().Format(time.RFC3339),
			NumberOfFeatures:  len(table.Columns()),
			NumberOfSamples:   table.Len(),
		},
	}, nil
}
