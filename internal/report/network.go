package report

import (
	"sort"

	"tweetscope/internal/graph"
)

// TopNetwork is a trimmed view of a tag network: the heaviest nodes and the
// edges among them
type TopNetwork struct {
	TopNodes []graph.Node `json:"top_nodes"`
	TopEdges []graph.Edge `json:"top_edges"`
}

// NetworkDigest is the network_analysis section
type NetworkDigest struct {
	HasNetworkData bool                    `json:"has_network_data"`
	Summary        graph.NetworkSummary    `json:"summary"`
	HashtagNetwork *TopNetwork             `json:"hashtag_network,omitempty"`
	MentionNetwork *TopNetwork             `json:"mention_network,omitempty"`
	Structure      *graph.StructureSummary `json:"structure,omitempty"`
}

// DigestNetworks trims both networks to topNodes nodes and at most topEdges edges
func DigestNetworks(nets *graph.Networks, topNodes, topEdges int) *NetworkDigest {
	d := &NetworkDigest{
		HasNetworkData: nets.Summary.HasNetworks,
		Summary:        nets.Summary,
		Structure:      nets.Structure,
	}
	if nets.HashtagNetwork.HasNetwork {
		d.HashtagNetwork = trimNetwork(nets.HashtagNetwork, topNodes, topEdges)
	}
	if nets.MentionNetwork.HasNetwork {
		d.MentionNetwork = trimNetwork(nets.MentionNetwork, topNodes, topEdges)
	}
	return d
}

func trimNetwork(net *graph.Network, topNodes, topEdges int) *TopNetwork {
	nodes := make([]graph.Node, len(net.Nodes))
	copy(nodes, net.Nodes)
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Weight > nodes[j].Weight })
	if len(nodes) > topNodes {
		nodes = nodes[:topNodes]
	}

	keep := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		keep[n.ID] = true
	}
	edges := []graph.Edge{}
	for _, e := range net.Edges {
		if len(edges) == topEdges {
			break
		}
		if keep[e.Source] && keep[e.Target] {
			edges = append(edges, e)
		}
	}
	return &TopNetwork{TopNodes: nodes, TopEdges: edges}
}
