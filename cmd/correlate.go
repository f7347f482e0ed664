package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tweetscope/internal/correlation"
)

var (
	correlateJSON      bool
	correlateThreshold float64
	correlateTop       int
)

var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "Pearson correlations between the NLP feature columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		opts := correlationOptions()
		if cmd.Flags().Changed("threshold") {
			opts.Threshold = correlateThreshold
		}
		if correlateTop > 0 {
			opts.TopN = correlateTop
		}
		res := correlation.Correlate(table, opts)

		if correlateJSON {
			return printJSON(res)
		}
		if !res.HasCorrelations {
			fmt.Println("Fewer than two NLP feature columns present.")
			return nil
		}

		fmt.Printf("\n  Features: %d\n", len(res.Features))
		if len(res.TopCorrelations) == 0 {
			fmt.Printf("  No pair with |r| > %.2f\n\n", opts.Threshold)
			return nil
		}
		fmt.Printf("  Pairs with |r| > %.2f:\n", opts.Threshold)
		for _, p := range res.TopCorrelations {
			fmt.Printf("    %s %s %+.3f\n", padRunes(p.Feature1, 26), padRunes(p.Feature2, 26), p.Correlation)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	correlateCmd.Flags().BoolVar(&correlateJSON, "json", false, "Output as JSON")
	correlateCmd.Flags().Float64Var(&correlateThreshold, "threshold", 0, "Minimum |r| for a reported pair (default from config)")
	correlateCmd.Flags().IntVar(&correlateTop, "top", 0, "Maximum number of reported pairs (default from config)")
	rootCmd.AddCommand(correlateCmd)
}
