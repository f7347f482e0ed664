package graph

// ArticulationTag is a tag whose removal splits its component
type ArticulationTag struct {
	ID     string `json:"id"`
	Degree int    `json:"degree"`
}

// BridgeEdge is a co-occurrence whose removal splits its component
type BridgeEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// BridgeReport lists the tags and edges that hold tag clusters together
type BridgeReport struct {
	ArticulationTags []ArticulationTag `json:"articulation_tags"`
	BridgeEdges      []BridgeEdge      `json:"bridge_edges"`
	APCount          int               `json:"ap_count"`
	BridgeCount      int               `json:"bridge_count"`
}

// ComputeBridges runs an iterative Tarjan search for articulation tags and
// bridge edges
func ComputeBridges(net *Network) *BridgeReport {
	report := &BridgeReport{ArticulationTags: []ArticulationTag{}, BridgeEdges: []BridgeEdge{}}
	if len(net.Nodes) == 0 {
		return report
	}

	adj := newAdjacency(net)
	n := len(adj.ids)
	weight := make(map[pair]int, len(net.Edges))
	for _, e := range net.Edges {
		weight[newPair(e.Source, e.Target)] = e.Weight
	}

	disc := make([]int, n)
	low := make([]int, n)
	isAP := make([]bool, n)
	var bridgePairs [][2]int
	counter := 1

	const noParent = -1

	type frame struct {
		node, parent, next int
	}

	for start := 0; start < n; start++ {
		if disc[start] != 0 {
			continue
		}
		disc[start] = counter
		low[start] = counter
		counter++

		stack := []frame{{start, noParent, 0}}
		rootChildren := 0

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			u := top.node

			if top.next < len(adj.nbrs[u]) {
				v := adj.nbrs[u][top.next]
				top.next++
				if v == top.parent {
					continue
				}
				if disc[v] != 0 {
					// back edge
					if disc[v] < low[u] {
						low[u] = disc[v]
					}
					continue
				}
				disc[v] = counter
				low[v] = counter
				counter++
				if u == start {
					rootChildren++
				}
				stack = append(stack, frame{v, u, 0})
				continue
			}

			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			p := stack[len(stack)-1].node
			if low[u] < low[p] {
				low[p] = low[u]
			}
			if low[u] > disc[p] {
				bridgePairs = append(bridgePairs, [2]int{p, u})
			}
			if p != start && low[u] >= disc[p] {
				isAP[p] = true
			}
		}

		if rootChildren >= 2 {
			isAP[start] = true
		}
	}

	for i := 0; i < n; i++ {
		if isAP[i] {
			report.ArticulationTags = append(report.ArticulationTags, ArticulationTag{
				ID:     adj.ids[i],
				Degree: len(adj.nbrs[i]),
			})
		}
	}
	for _, bp := range bridgePairs {
		s, t := adj.ids[bp[0]], adj.ids[bp[1]]
		key := newPair(s, t)
		report.BridgeEdges = append(report.BridgeEdges, BridgeEdge{
			Source: key.a,
			Target: key.b,
			Weight: weight[key],
		})
	}
	report.APCount = len(report.ArticulationTags)
	report.BridgeCount = len(report.BridgeEdges)
	return report
}
