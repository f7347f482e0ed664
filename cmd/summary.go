package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tweetscope/internal/report"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Write the full EDA context and its derived insights as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}

		summary, err := report.Generate(table, opts)
		if err != nil {
			return err
		}
		insights := report.Derive(summary)

		if summaryJSON {
			return printJSON(summary)
		}

		summaryPath, err := report.WriteJSON(cfg.OutputDir, report.SummaryFile, summary)
		if err != nil {
			return err
		}
		insightsPath, err := report.WriteJSON(cfg.OutputDir, report.InsightsFile, insights)
		if err != nil {
			return err
		}
		slog.Debug("summary written", "analysis_id", summary.Metadata.AnalysisID)

		printInsights(insights)
		fmt.Printf("Wrote %s\n      %s\n", summaryPath, insightsPath)
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "Print the summary as JSON instead of writing files")
	rootCmd.AddCommand(summaryCmd)
}

func printInsights(in *report.Insights) {
	fmt.Println()
	if len(in.KeyPatterns) > 0 {
		fmt.Println("  Key patterns:")
		for _, p := range in.KeyPatterns {
			fmt.Printf("    [%s] %s\n", p.PatternType, p.Description)
		}
	}
	if len(in.Anomalies) > 0 {
		fmt.Println("  Anomalies:")
		for _, a := range in.Anomalies {
			fmt.Printf("    %s: %s\n", a.Feature, a.Description)
		}
	}
	if len(in.Correlations) > 0 {
		fmt.Println("  Strong correlations:")
		for _, c := range in.Correlations {
			fmt.Printf("    %s ~ %s %+.3f\n", c.Feature1, c.Feature2, c.Correlation)
		}
	}
	for _, n := range []*report.NetworkInsight{in.Networks.HashtagNetwork, in.Networks.MentionNetwork} {
		if n != nil {
			fmt.Printf("  %s\n", n.Description)
		}
	}
	fmt.Println()
}
