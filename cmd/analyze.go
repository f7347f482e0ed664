package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"tweetscope/internal/dataset"
	"tweetscope/internal/graph"
	"tweetscope/internal/report"
)

var analyzeQuiet bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run every analysis and write all result files",
	Long: "Computes descriptive statistics, tag networks, sentiment, correlations and the " +
		"LLM context summary, writing each result into the output directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		table, err := loadTable(ctx)
		if err != nil {
			return err
		}
		opts, err := reportOptions()
		if err != nil {
			return err
		}

		steps := analysisSteps(table, opts, cfg.OutputDir)
		var bar *progress
		if !analyzeQuiet {
			bar = newProgress(os.Stderr, len(steps))
		}

		written, err := runSteps(ctx, steps, bar)
		if err != nil {
			return err
		}

		fmt.Printf("Analyzed %s tweets", humanize.Comma(int64(table.Len())))
		if bar != nil {
			fmt.Printf(" in %s", bar.elapsed())
		}
		fmt.Println()
		for _, paths := range written {
			for _, path := range paths {
				fmt.Printf("  %s\n", path)
			}
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVarP(&analyzeQuiet, "quiet", "q", false, "Hide the progress bar")
	rootCmd.AddCommand(analyzeCmd)
}

// analysisStep produces one or more output files
type analysisStep struct {
	label string
	run   func() ([]string, error)
}

func analysisSteps(table *dataset.Table, opts report.Options, dir string) []analysisStep {
	return []analysisStep{
		{"descriptive statistics", func() ([]string, error) {
			path, err := report.WriteDescribeFile(dir, table)
			return []string{path}, err
		}},
		{"tag networks", func() ([]string, error) {
			nets := graph.AnalyzeNetworks(table, opts.Network, opts.Structure)
			path, err := report.WriteJSON(dir, report.NetworkFile, nets)
			return []string{path}, err
		}},
		{"summary and insights", func() ([]string, error) {
			summary, err := report.Generate(table, opts)
			if err != nil {
				return nil, err
			}
			summaryPath, err := report.WriteJSON(dir, report.SummaryFile, summary)
			if err != nil {
				return nil, err
			}
			insightsPath, err := report.WriteJSON(dir, report.InsightsFile, report.Derive(summary))
			return []string{summaryPath, insightsPath}, err
		}},
	}
}

// runSteps runs the steps concurrently over the shared read-only table and
// returns the written paths in step order. The first failure cancels steps
// that have not started.
func runSteps(ctx context.Context, steps []analysisStep, bar *progress) ([][]string, error) {
	written := make([][]string, len(steps))
	g, gctx := errgroup.WithContext(ctx)
	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slog.Debug("analysis step started", "step", step.label)
			paths, err := step.run()
			if err != nil {
				return fmt.Errorf("%s: %w", step.label, err)
			}
			written[i] = paths
			if bar != nil {
				bar.advance(step.label)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return written, nil
}
