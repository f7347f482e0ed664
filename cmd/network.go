package cmd

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tweetscope/internal/graph"
	"tweetscope/internal/report"
)

var (
	networkJSON         bool
	networkTopK         int
	networkHubThreshold int
	networkWorkers      int
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build hashtag and mention co-occurrence networks",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		opts := networkOptions()
		if networkTopK > 0 {
			opts.TopK = networkTopK
		}
		if networkWorkers > 0 {
			opts.Workers = networkWorkers
		}
		structure := structureConfig()
		if networkHubThreshold > 0 {
			structure.HubThreshold = networkHubThreshold
		}

		nets := graph.AnalyzeNetworks(table, opts, structure)
		path, err := report.WriteJSON(cfg.OutputDir, report.NetworkFile, nets)
		if err != nil {
			return err
		}
		slog.Info("network data written", "path", path)

		if networkJSON {
			return printJSON(nets)
		}
		printNetworks(nets)
		return nil
	},
}

func init() {
	networkCmd.Flags().BoolVar(&networkJSON, "json", false, "Output as JSON")
	networkCmd.Flags().IntVar(&networkTopK, "top-k", 0, "Number of most frequent tags kept as nodes (default from config)")
	networkCmd.Flags().IntVar(&networkHubThreshold, "hub-threshold", 0, "Minimum degree to consider a tag a hub (default from config)")
	networkCmd.Flags().IntVar(&networkWorkers, "workers", 0, "Goroutines used for pair counting (default from config)")
	rootCmd.AddCommand(networkCmd)
}

func printNetworks(nets *graph.Networks) {
	s := nets.Summary
	fmt.Println()
	printNetworkSection("HASHTAG NETWORK", nets.HashtagNetwork, s.HashtagNetworkDensity, structureOf(nets, true))
	printNetworkSection("MENTION NETWORK", nets.MentionNetwork, s.MentionNetworkDensity, structureOf(nets, false))
	fmt.Println()
}

func structureOf(nets *graph.Networks, hashtags bool) *graph.StructureReport {
	if nets.Structure == nil {
		return nil
	}
	if hashtags {
		return nets.Structure.Hashtags
	}
	return nets.Structure.Mentions
}

func printNetworkSection(title string, net *graph.Network, density float64, st *graph.StructureReport) {
	fmt.Printf("  %s\n", title)
	fmt.Println("  ────────────────────────────────────────")
	if !net.HasNetwork {
		fmt.Printf("  No co-occurring tags (%d tags, 0 edges)\n\n", len(net.Nodes))
		return
	}

	densityBar := int(math.Round(density * 20))
	fmt.Printf("  Nodes: %d  Edges: %d  Density: %.3f  [%s%s]\n",
		len(net.Nodes), len(net.Edges), density,
		strings.Repeat("█", densityBar), strings.Repeat("░", 20-densityBar))

	fmt.Println("\n  Most frequent tags:")
	limit := 10
	if len(net.Nodes) < limit {
		limit = len(net.Nodes)
	}
	for _, n := range net.Nodes[:limit] {
		fmt.Printf("    %s %s\n", padRunes(truncTag(n.ID, 30), 30), humanize.Comma(int64(n.Weight)))
	}

	if st == nil {
		fmt.Println()
		return
	}

	t := st.Topology
	fmt.Printf("\n  Components: %d  Largest: %d  Smallest: %d\n", t.NumComponents, t.LargestComponent, t.SmallestComponent)
	if t.IsolatedCount > 0 {
		fmt.Printf("  Isolated tags: %d\n", t.IsolatedCount)
		for _, id := range t.IsolatedTags {
			fmt.Printf("    - %s\n", truncTag(id, 40))
		}
		if t.IsolatedCount > len(t.IsolatedTags) {
			fmt.Printf("    ... and %d more\n", t.IsolatedCount-len(t.IsolatedTags))
		}
	}

	fmt.Println("\n  Degree distribution:")
	for _, b := range t.DegreeHistogram {
		if b.Count > 0 {
			barWidth := int(math.Log2(float64(b.Count))) + 2
			fmt.Printf("    %5s: %4d  %s\n", b.Label, b.Count, strings.Repeat("=", barWidth))
		}
	}

	if len(t.Hubs) > 0 {
		fmt.Println("\n  Hub tags (degree > threshold):")
		for _, hub := range t.Hubs {
			fmt.Printf("    %s degree=%d strength=%s freq=%s\n",
				padRunes(truncTag(hub.ID, 30), 30), hub.Degree,
				humanize.Comma(int64(hub.Strength)), humanize.Comma(int64(hub.Frequency)))
		}
	}

	br := st.Bridges
	if br.APCount > 0 || br.BridgeCount > 0 {
		fmt.Println("\n  Bridging tags:")
		limit := 10
		if len(br.ArticulationTags) < limit {
			limit = len(br.ArticulationTags)
		}
		for _, ap := range br.ArticulationTags[:limit] {
			fmt.Printf("    %s (degree %d)\n", truncTag(ap.ID, 40), ap.Degree)
		}
		if br.BridgeCount > 0 {
			fmt.Printf("  %d bridge edges (removal splits a cluster):\n", br.BridgeCount)
			limit := 10
			if len(br.BridgeEdges) < limit {
				limit = len(br.BridgeEdges)
			}
			for _, be := range br.BridgeEdges[:limit] {
				fmt.Printf("    %s -- %s (%d)\n", truncTag(be.Source, 30), truncTag(be.Target, 30), be.Weight)
			}
		}
	}
	fmt.Println()
}
