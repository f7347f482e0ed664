package graph

import "sort"

// HubTag is a tag connected to many other tags
type HubTag struct {
	ID        string `json:"id"`
	Degree    int    `json:"degree"`
	Strength  int    `json:"strength"`
	Frequency int    `json:"frequency"`
}

// DegreeBucket is one bucket in the degree histogram
type DegreeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopologyReport describes how the tag network hangs together
type TopologyReport struct {
	TotalNodes        int            `json:"total_nodes"`
	TotalEdges        int            `json:"total_edges"`
	NumComponents     int            `json:"num_components"`
	LargestComponent  int            `json:"largest_component"`
	SmallestComponent int            `json:"smallest_component"`
	IsolatedCount     int            `json:"isolated_count"`
	IsolatedTags      []string       `json:"isolated_tags"`
	DegreeHistogram   []DegreeBucket `json:"degree_histogram"`
	Hubs              []HubTag       `json:"hubs"`
}

// adjacency is an index-based view of a network. Node i is net.Nodes[i].
type adjacency struct {
	ids      []string
	weights  []int
	nbrs     [][]int
	strength []int
}

func newAdjacency(net *Network) *adjacency {
	n := len(net.Nodes)
	a := &adjacency{
		ids:      make([]string, n),
		weights:  make([]int, n),
		nbrs:     make([][]int, n),
		strength: make([]int, n),
	}
	index := make(map[string]int, n)
	for i, node := range net.Nodes {
		a.ids[i] = node.ID
		a.weights[i] = node.Weight
		index[node.ID] = i
	}
	for _, e := range net.Edges {
		u, okU := index[e.Source]
		v, okV := index[e.Target]
		if !okU || !okV || u == v {
			continue
		}
		a.nbrs[u] = append(a.nbrs[u], v)
		a.nbrs[v] = append(a.nbrs[v], u)
		a.strength[u] += e.Weight
		a.strength[v] += e.Weight
	}
	return a
}

// ComputeTopology finds components, isolated tags, the degree distribution
// and hub tags (degree > hubThreshold, at most topN of them)
func ComputeTopology(net *Network, hubThreshold, topN int) *TopologyReport {
	if len(net.Nodes) == 0 {
		return &TopologyReport{
			IsolatedTags:    []string{},
			DegreeHistogram: defaultHistogram(),
			Hubs:            []HubTag{},
		}
	}

	adj := newAdjacency(net)
	n := len(adj.ids)

	uf := newUnionFind(n)
	for u := 0; u < n; u++ {
		for _, v := range adj.nbrs[u] {
			uf.union(u, v)
		}
	}
	sizes := uf.componentSizes()
	largest, smallest := 0, n
	for _, s := range sizes {
		if s > largest {
			largest = s
		}
		if s < smallest {
			smallest = s
		}
	}

	isolated := []string{}
	isolatedCount := 0
	histogram := defaultHistogram()
	for i := 0; i < n; i++ {
		degree := len(adj.nbrs[i])
		histogram[degreeBucket(degree)].Count++
		if degree == 0 {
			isolatedCount++
			if len(isolated) < topN {
				isolated = append(isolated, adj.ids[i])
			}
		}
	}

	hubs := []HubTag{}
	for i := 0; i < n; i++ {
		if degree := len(adj.nbrs[i]); degree > hubThreshold {
			hubs = append(hubs, HubTag{
				ID:        adj.ids[i],
				Degree:    degree,
				Strength:  adj.strength[i],
				Frequency: adj.weights[i],
			})
		}
	}
	sort.SliceStable(hubs, func(i, j int) bool {
		if hubs[i].Degree != hubs[j].Degree {
			return hubs[i].Degree > hubs[j].Degree
		}
		return hubs[i].Strength > hubs[j].Strength
	})
	if len(hubs) > topN {
		hubs = hubs[:topN]
	}

	return &TopologyReport{
		TotalNodes:        n,
		TotalEdges:        len(net.Edges),
		NumComponents:     len(sizes),
		LargestComponent:  largest,
		SmallestComponent: smallest,
		IsolatedCount:     isolatedCount,
		IsolatedTags:      isolated,
		DegreeHistogram:   histogram,
		Hubs:              hubs,
	}
}

func defaultHistogram() []DegreeBucket {
	return []DegreeBucket{
		{Label: "0"}, {Label: "1"}, {Label: "2-3"},
		{Label: "4-7"}, {Label: "8-15"}, {Label: "16-31"}, {Label: "32+"},
	}
}

func degreeBucket(degree int) int {
	switch {
	case degree == 0:
		return 0
	case degree == 1:
		return 1
	case degree <= 3:
		return 2
	case degree <= 7:
		return 3
	case degree <= 15:
		return 4
	case degree <= 31:
		return 5
	default:
		return 6
	}
}
