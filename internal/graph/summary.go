package graph

import "tweetscope/internal/dataset"

// NetworkSummary compares the hashtag and mention networks
type NetworkSummary struct {
	HasNetworks           bool    `json:"has_networks"`
	HashtagNetworkSize    int     `json:"hashtag_network_size"`
	HashtagNetworkDensity float64 `json:"hashtag_network_density"`
	MentionNetworkSize    int     `json:"mention_network_size"`
	MentionNetworkDensity float64 `json:"mention_network_density"`
}

// Density is edges over the N(N-1)/2 possible undirected edges; 0 for N <= 1
func Density(net *Network) float64 {
	n := len(net.Nodes)
	if n <= 1 {
		return 0
	}
	return float64(len(net.Edges)) / (float64(n) * float64(n-1) / 2)
}

// Summarize derives sizes and densities of both networks
func Summarize(hashtags, mentions *Network) NetworkSummary {
	return NetworkSummary{
		HasNetworks:           hashtags.HasNetwork || mentions.HasNetwork,
		HashtagNetworkSize:    len(hashtags.Nodes),
		HashtagNetworkDensity: Density(hashtags),
		MentionNetworkSize:    len(mentions.Nodes),
		MentionNetworkDensity: Density(mentions),
	}
}

// Networks is the full network analysis written to network_data.json
type Networks struct {
	HashtagNetwork *Network          `json:"hashtag_network"`
	MentionNetwork *Network          `json:"mention_network"`
	Summary        NetworkSummary    `json:"summary"`
	Structure      *StructureSummary `json:"structure,omitempty"`
}

// StructureSummary holds the structural analysis of both networks
type StructureSummary struct {
	Hashtags *StructureReport `json:"hashtags"`
	Mentions *StructureReport `json:"mentions"`
}

// AnalyzeNetworks builds both tag networks and summarizes them. With a
// non-nil structure config it also runs the structural analysis.
func AnalyzeNetworks(table *dataset.Table, opts Options, structure *StructureConfig) *Networks {
	hashtags := BuildNetwork(table, dataset.Hashtags, opts)
	mentions := BuildNetwork(table, dataset.Mentions, opts)

	result := &Networks{
		HashtagNetwork: hashtags,
		MentionNetwork: mentions,
		Summary:        Summarize(hashtags, mentions),
	}
	if structure != nil {
		result.Structure = &StructureSummary{
			Hashtags: Analyze(hashtags, structure),
			Mentions: Analyze(mentions, structure),
		}
	}
	return result
}
