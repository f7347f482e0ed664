package cmd

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"tweetscope/internal/report"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Dataset overview and per-column descriptive statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(cmd.Context())
		if err != nil {
			return err
		}

		path, err := report.WriteDescribeFile(cfg.OutputDir, table)
		if err != nil {
			return err
		}
		slog.Info("descriptive statistics written", "path", path)

		overview := report.DatasetOverview(table)
		if statsJSON {
			return printJSON(overview)
		}

		fmt.Printf("\n  Rows: %s  Columns: %d\n", humanize.Comma(int64(overview.Shape.Rows)), overview.Shape.Columns)

		fmt.Println("\n  Missing values:")
		missing := make([]string, 0, len(overview.MissingValues))
		for c := range overview.MissingValues {
			missing = append(missing, c)
		}
		sort.Strings(missing)
		for _, c := range missing {
			if n := overview.MissingValues[c]; n > 0 {
				fmt.Printf("    %s %s\n", padRunes(c, 28), humanize.Comma(int64(n)))
			}
		}

		fmt.Println("\n  Numeric columns:")
		fmt.Printf("    %s %12s %12s %12s %12s %12s\n", padRunes("column", 28), "min", "max", "mean", "median", "std")
		for _, c := range overview.NumericalColumns {
			s, ok := overview.NumericalSummary[c]
			if !ok {
				continue
			}
			flag := ""
			if s.HasOutliers {
				flag = "  outliers"
			}
			fmt.Printf("    %s %12s %12s %12s %12s %12s%s\n", padRunes(c, 28),
				statCell(s.Min), statCell(s.Max), statCell(s.Mean), statCell(s.Median), statCell(s.Std), flag)
		}
		fmt.Printf("\n  Categorical columns: %d\n\n", len(overview.CategoricalColumns))
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}

func statCell(f report.Float) string {
	if !f.Defined() {
		return "-"
	}
	return fmt.Sprintf("%.3f", float64(f))
}
