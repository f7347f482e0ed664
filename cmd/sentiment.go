package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var sentimentJSON bool

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Score tweet content with VADER and aggregate by category and region",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		scorer, err := newScorer()
		if err != nil {
			return err
		}
		res, err := scorer.Score(table)
		if err != nil {
			return err
		}

		if sentimentJSON {
			return printJSON(res)
		}
		if !res.HasSentimentData {
			fmt.Println("No content could be scored.")
			return nil
		}

		d := res.Distribution
		fmt.Printf("\n  Mean: %.4f  Median: %.4f  Std: %.4f\n", d.Mean, d.Median, d.Std)
		fmt.Println()
		printRatio("positive", d.PositiveRatio)
		printRatio("neutral", d.NeutralRatio)
		printRatio("negative", d.NegativeRatio)

		printGroupMeans("By account category", res.ByCategory)
		printGroupMeans("By region", res.ByRegion)
		fmt.Println()
		return nil
	},
}

func init() {
	sentimentCmd.Flags().BoolVar(&sentimentJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(sentimentCmd)
}

func printRatio(label string, ratio float64) {
	filled := int(ratio * 30)
	fmt.Printf("  %s %5.1f%% %s\n", padRunes(label, 9), ratio*100, strings.Repeat("█", filled))
}

func printGroupMeans(title string, means map[string]float64) {
	if len(means) == 0 {
		return
	}
	keys := make([]string, 0, len(means))
	for k := range means {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return means[keys[i]] > means[keys[j]] })

	fmt.Printf("\n  %s:\n", title)
	for _, k := range keys {
		fmt.Printf("    %s %+.4f\n", padRunes(truncTag(k, 30), 30), means[k])
	}
}
