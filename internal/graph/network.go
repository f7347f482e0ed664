package graph

import (
	"sort"

	"tweetscope/internal/dataset"
)

// DefaultTopK is the number of most frequent tags kept as network nodes
const DefaultTopK = 50

// Node is a tag weighted by its frequency across all records
type Node struct {
	ID     string `json:"id"`
	Weight int    `json:"weight"`
}

// Edge joins two tags that appear in the same record. Source < Target.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// Network is a co-occurrence graph restricted to the top-K tags
type Network struct {
	Nodes      []Node `json:"nodes"`
	Edges      []Edge `json:"edges"`
	HasNetwork bool   `json:"has_network"`
}

// EmptyNetwork is the result for a missing column or no data
func EmptyNetwork() *Network {
	return &Network{Nodes: []Node{}, Edges: []Edge{}}
}

// Options controls network construction
type Options struct {
	TopK      int
	Delimiter string
	Workers   int
}

// DefaultOptions returns the standard top-50, comma-delimited settings
func DefaultOptions() Options {
	return Options{TopK: DefaultTopK, Delimiter: DefaultDelimiter, Workers: 1}
}

type pair struct{ a, b string }

func newPair(x, y string) pair {
	if y < x {
		return pair{y, x}
	}
	return pair{x, y}
}

// Counts accumulates tag frequencies and pairwise co-occurrences.
// Keys remember the order in which they were first seen.
type Counts struct {
	freq      map[string]int
	tagOrder  []string
	cooc      map[pair]int
	pairOrder []pair
}

// NewCounts returns empty counters
func NewCounts() *Counts {
	return &Counts{
		freq: make(map[string]int),
		cooc: make(map[pair]int),
	}
}

// Add counts one record's tags. Every tag adds to the global frequency;
// every index pair i<j of distinct strings adds one co-occurrence, so a tag
// repeated within a record pairs with its partners more than once.
func (c *Counts) Add(tags []string) {
	for _, t := range tags {
		if _, ok := c.freq[t]; !ok {
			c.tagOrder = append(c.tagOrder, t)
		}
		c.freq[t]++
	}
	if len(tags) < 2 {
		return
	}
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if tags[i] == tags[j] {
				continue
			}
			c.addPair(newPair(tags[i], tags[j]), 1)
		}
	}
}

func (c *Counts) addPair(p pair, n int) {
	if _, ok := c.cooc[p]; !ok {
		c.pairOrder = append(c.pairOrder, p)
	}
	c.cooc[p] += n
}

// Merge adds other into c. Merging shards in record order keeps the
// first-seen order identical to a sequential pass.
func (c *Counts) Merge(other *Counts) {
	for _, t := range other.tagOrder {
		if _, ok := c.freq[t]; !ok {
			c.tagOrder = append(c.tagOrder, t)
		}
		c.freq[t] += other.freq[t]
	}
	for _, p := range other.pairOrder {
		c.addPair(p, other.cooc[p])
	}
}

// Frequency returns the global count of a tag
func (c *Counts) Frequency(tag string) int { return c.freq[tag] }

// CoOccurrence returns the pair weight regardless of argument order
func (c *Counts) CoOccurrence(a, b string) int { return c.cooc[newPair(a, b)] }

// Ranked returns tags by frequency descending, ties in first-seen order
func (c *Counts) Ranked() []Node {
	nodes := make([]Node, 0, len(c.tagOrder))
	for _, t := range c.tagOrder {
		nodes = append(nodes, Node{ID: t, Weight: c.freq[t]})
	}
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Weight > nodes[j].Weight })
	return nodes
}

// Network keeps the topK most frequent tags and the edges between them
func (c *Counts) Network(topK int) *Network {
	if topK <= 0 {
		topK = DefaultTopK
	}
	net := EmptyNetwork()
	ranked := c.Ranked()
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	net.Nodes = append(net.Nodes, ranked...)

	keep := make(map[string]bool, len(ranked))
	for _, n := range ranked {
		keep[n.ID] = true
	}
	for _, p := range c.pairOrder {
		if keep[p.a] && keep[p.b] {
			net.Edges = append(net.Edges, Edge{Source: p.a, Target: p.b, Weight: c.cooc[p]})
		}
	}
	net.HasNetwork = len(net.Edges) > 0
	return net
}

// CountFields extracts and counts the tags of every field
func CountFields(fields []*string, delimiter string) *Counts {
	c := NewCounts()
	for _, f := range fields {
		c.Add(ExtractTags(f, delimiter))
	}
	return c
}

// BuildNetwork builds the co-occurrence network of a tag column. A missing
// column or a table without tags yields an empty network.
func BuildNetwork(table *dataset.Table, field dataset.Column, opts Options) *Network {
	view, err := table.View(dataset.Requirements{Optional: []dataset.Column{field}})
	if err != nil || !view.Has(field) {
		return EmptyNetwork()
	}
	fields := view.Strings(field)

	var counts *Counts
	if opts.Workers > 1 {
		counts = CountParallel(fields, opts.Delimiter, opts.Workers)
	} else {
		counts = CountFields(fields, opts.Delimiter)
	}
	return counts.Network(opts.TopK)
}
